package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/domain"
	"guestadmin/internal/export"
)

// GetOrders renders one page of the order list.
func GetOrders(c *gin.Context) {
	f, s, page := listQuery(c, "status")
	view, err := ordersSvc.List(c.Request.Context(), f, s, page)
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
		"status_options": enumOptions(domain.OrderStatuses(), domain.OrderStatus.Label),
	})
}

func GetOrderByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := ordersSvc.Detail(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req orderStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := ordersSvc.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

// ExportOrders streams the filtered collection as CSV.
func ExportOrders(c *gin.Context) {
	f, s, _ := listQuery(c, "status")
	items, err := ordersSvc.Export(c.Request.Context(), f, s)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := export.OrdersCSV(items)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// PrintOrder returns the order summary PDF.
func PrintOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := ordersSvc.Detail(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := export.BuildOrderPDF(order)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build pdf", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
