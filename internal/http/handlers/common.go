package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/backend"
	"guestadmin/internal/config"
	"guestadmin/internal/http/middleware"
	"guestadmin/internal/listview"
	"guestadmin/internal/services"
	"guestadmin/internal/utils"
)

var (
	env    config.Env
	client *backend.Client

	ordersSvc       *services.OrderService
	roomsSvc        *services.RoomService
	productsSvc     *services.ProductService
	categoriesSvc   *services.CategoryService
	usersSvc        *services.UserService
	customersSvc    *services.CustomerService
	reservationsSvc *services.ReservationService
)

// Setup wires the backend client and the long-lived page services. The
// services are shared so their collection stores survive across
// requests.
func Setup(e config.Env, c *backend.Client) {
	env = e
	client = c
	ordersSvc = services.NewOrderService(c)
	roomsSvc = services.NewRoomService(c)
	productsSvc = services.NewProductService(c)
	categoriesSvc = services.NewCategoryService(c)
	usersSvc = services.NewUserService(c)
	customersSvc = services.NewCustomerService(c)
	reservationsSvc = services.NewReservationService(c)
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// option is one entry of a filter dropdown or status picker.
type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// enumOptions renders a status or category enumeration for the page's
// dropdowns, pairing each backend code with its display label.
func enumOptions[T ~string](values []T, label func(T) string) []option {
	opts := make([]option, 0, len(values))
	for _, v := range values {
		opts = append(opts, option{Value: string(v), Label: label(v)})
	}
	return opts
}

// listQuery reads the shared list controls: search box, date range,
// sortable header, page number, plus the page's facet selectors. The
// filter is pinned to a single UTC instant so the date buckets stay
// consistent across the request.
func listQuery(c *gin.Context, facetNames ...string) (listview.Filter, listview.Sort, int) {
	f := listview.Filter{
		Query: c.Query("search"),
		Range: listview.ParseDateRange(c.Query("range")),
		Now:   utils.NowUTC(),
	}
	if len(facetNames) > 0 {
		f.Facets = map[string]string{}
		for _, name := range facetNames {
			if v := c.Query(name); v != "" {
				f.Facets[name] = v
			}
		}
	}

	sortField := c.Query("sort")
	if sortField == "" {
		sortField = "created_at"
	}
	s := listview.Sort{
		Field:     sortField,
		Direction: listview.ParseDirection(c.DefaultQuery("dir", "desc")),
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return f, s, page
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
