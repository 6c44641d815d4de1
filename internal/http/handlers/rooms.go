package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/domain"
	"guestadmin/internal/export"
	"guestadmin/internal/services"
)

type roomRequest struct {
	RoomCode      string `json:"room_code"`
	Category      string `json:"categories"`
	PricePerNight string `json:"price_per_night"`
	Capacity      string `json:"capacity"`
	Description   string `json:"description"`
	IsActive      bool   `json:"is_active"`
}

func (r roomRequest) form() services.RoomForm {
	return services.RoomForm{
		RoomCode:      r.RoomCode,
		Category:      r.Category,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Description:   r.Description,
		IsActive:      r.IsActive,
	}
}

func GetRooms(c *gin.Context) {
	f, s, page := listQuery(c, "category", "status", "availability")
	view, err := roomsSvc.List(c.Request.Context(), f, s, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":            view.Items,
		"total_filtered":   view.TotalFiltered,
		"total_pages":      view.TotalPages,
		"page":             view.Page.Page,
		"stats":            view.Stats,
		"stale":            view.Stale,
		"category_options": enumOptions(domain.RoomCategories(), domain.RoomCategory.Label),
	})
}

func CreateRoom(c *gin.Context) {
	var req roomRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := roomsSvc.Create(c.Request.Context(), req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "room created"})
}

func UpdateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req roomRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := roomsSvc.Update(c.Request.Context(), id, req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room updated"})
}

func DeleteRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := roomsSvc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

func ExportRooms(c *gin.Context) {
	f, s, _ := listQuery(c, "category", "status", "availability")
	items, err := roomsSvc.Export(c.Request.Context(), f, s)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := export.RoomsCSV(items)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
