package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/domain"
	"guestadmin/internal/export"
	"guestadmin/internal/services"
)

type userRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r userRequest) form() services.UserForm {
	return services.UserForm{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Role:            r.Role,
		Status:          r.Status,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

func GetUsers(c *gin.Context) {
	f, s, page := listQuery(c, "role", "status")
	view, err := usersSvc.List(c.Request.Context(), f, s, page)
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
		"role_options":   enumOptions(domain.UserRoles(), domain.UserRole.Label),
	})
}

func CreateUser(c *gin.Context) {
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := usersSvc.Create(c.Request.Context(), req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "staff account created"})
}

func UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := usersSvc.Update(c.Request.Context(), id, req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff account updated"})
}

func DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := usersSvc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff account deleted"})
}

type resetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func ResetUserPassword(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req resetPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := usersSvc.ResetPassword(c.Request.Context(), id, req.Password, req.ConfirmPassword); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

func ExportUsers(c *gin.Context) {
	f, s, _ := listQuery(c, "role", "status")
	items, err := usersSvc.Export(c.Request.Context(), f, s)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := export.UsersCSV(items)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
