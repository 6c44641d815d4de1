package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/services"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r categoryRequest) form() services.CategoryForm {
	return services.CategoryForm{Name: r.Name, Description: r.Description}
}

// GetProductCategories feeds the multi-select in the product forms and
// the category management dialog.
func GetProductCategories(c *gin.Context) {
	categories, err := categoriesSvc.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": categories})
}

func CreateProductCategory(c *gin.Context) {
	var req categoryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := categoriesSvc.Create(c.Request.Context(), req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "category created"})
}

func UpdateProductCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req categoryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := categoriesSvc.Update(c.Request.Context(), id, req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated"})
}

func DeleteProductCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := categoriesSvc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
