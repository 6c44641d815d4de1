package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/domain"
	"guestadmin/internal/export"
	"guestadmin/internal/services"
)

type reservationRequest struct {
	RoomID     string `json:"room"`
	CustomerID string `json:"customer"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     string `json:"guests"`
	Notes      string `json:"notes"`
	Total      string `json:"total_amount"`
}

func (r reservationRequest) form() services.ReservationForm {
	return services.ReservationForm{
		RoomID:     r.RoomID,
		CustomerID: r.CustomerID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Guests:     r.Guests,
		Notes:      r.Notes,
		Total:      r.Total,
	}
}

func GetReservations(c *gin.Context) {
	f, s, page := listQuery(c, "status", "category")
	view, err := reservationsSvc.List(c.Request.Context(), f, s, page)
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
		"status_options": enumOptions(domain.ReservationStatuses(), domain.ReservationStatus.Label),
	})
}

func CreateReservation(c *gin.Context) {
	var req reservationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := reservationsSvc.Create(c.Request.Context(), req.form()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "reservation created"})
}

type reservationStatusRequest struct {
	Status string `json:"status"`
}

func UpdateReservationStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req reservationStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := reservationsSvc.UpdateStatus(c.Request.Context(), id, domain.ReservationStatus(req.Status)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation status updated"})
}

func DeleteReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := reservationsSvc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}

func ExportReservations(c *gin.Context) {
	f, s, _ := listQuery(c, "status", "category")
	items, err := reservationsSvc.Export(c.Request.Context(), f, s)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := export.ReservationsCSV(items)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
