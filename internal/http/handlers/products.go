package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/export"
	"guestadmin/internal/services"
)

// productForm reads the multipart form the add/edit dialogs submit.
// The optional image rides along under "image".
func productForm(c *gin.Context) (services.ProductForm, string, io.Reader) {
	form := services.ProductForm{
		Name:        c.PostForm("name"),
		ProductCode: c.PostForm("product_code"),
		Cost:        c.PostForm("cost"),
		Price:       c.PostForm("price"),
		Quantity:    c.PostForm("quantity"),
		Description: c.PostForm("description"),
		IsActive:    c.DefaultPostForm("is_active", "true") == "true",
	}
	for _, raw := range c.PostFormArray("categories") {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			form.CategoryIDs = append(form.CategoryIDs, id)
		}
	}

	header, err := c.FormFile("image")
	if err != nil {
		return form, "", nil
	}
	file, err := header.Open()
	if err != nil {
		return form, "", nil
	}
	return form, header.Filename, file
}

func GetProducts(c *gin.Context) {
	f, s, page := listQuery(c, "category", "status")
	view, err := productsSvc.List(c.Request.Context(), f, s, page)
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

func CreateProduct(c *gin.Context) {
	form, imageName, image := productForm(c)
	if err := productsSvc.Create(c.Request.Context(), form, imageName, image); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "product created"})
}

func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	form, imageName, image := productForm(c)
	if err := productsSvc.Update(c.Request.Context(), id, form, imageName, image); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := productsSvc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func ExportProducts(c *gin.Context) {
	f, s, _ := listQuery(c, "category", "status")
	items, err := productsSvc.Export(c.Request.Context(), f, s)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := export.ProductsCSV(items)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
