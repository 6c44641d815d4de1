package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/export"
	"guestadmin/internal/services"
)

type customerRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

func (r customerRequest) form() services.CustomerForm {
	return services.CustomerForm{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Gender:    r.Gender,
		Location:  r.Location,
		Status:    r.Status,
	}
}

func GetCustomers(c *gin.Context) {
	f, s, page := listQuery(c, "status")
	view, err := customersSvc.List(c.Request.Context(), f, s, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":          view.Items,
		"total_filtered": view.TotalFiltered,
		"total_pages":    view.TotalPages,
		"page":           view.Page.Page,
		"stats":          view.Stats,
		"stale":          view.Stale,
	})
}

func CreateCustomer(c *gin.Context) {
	var req customerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := customersSvc.Create(c.Request.Context(), req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "guest account created"})
}

func UpdateCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req customerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := customersSvc.Update(c.Request.Context(), id, req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guest account updated"})
}

func DeleteCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := customersSvc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guest account deleted"})
}

func ExportCustomers(c *gin.Context) {
	f, s, _ := listQuery(c, "status")
	items, err := customersSvc.Export(c.Request.Context(), f, s)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := export.CustomersCSV(items)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
