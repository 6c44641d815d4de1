package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/backend"
	"guestadmin/internal/config"
	h "guestadmin/internal/http/handlers"
	"guestadmin/internal/http/middleware"
	rolemw "guestadmin/middleware"
)

func NewRouter(env config.Env) *gin.Engine {
	client := backend.NewClient(env.BackendBaseURL, env.BackendTimeout)
	h.Setup(env, client)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/logout", middleware.Session(env.SessionSecret), h.Logout)

		admin := api.Group("/admin", middleware.Session(env.SessionSecret))
		mutate := rolemw.RequireRoles("ADMIN", "MANAGER")

		admin.GET("/dashboard", h.GetDashboard)

		orders := admin.Group("/orders")
		orders.GET("", h.GetOrders)
		orders.GET("/export.csv", h.ExportOrders)
		orders.GET("/:id", h.GetOrderByID)
		orders.GET("/:id/print", h.PrintOrder)
		orders.PATCH("/:id/status", mutate, h.UpdateOrderStatus)

		rooms := admin.Group("/rooms")
		rooms.GET("", h.GetRooms)
		rooms.GET("/export.csv", h.ExportRooms)
		rooms.POST("", mutate, h.CreateRoom)
		rooms.PUT("/:id", mutate, h.UpdateRoom)
		rooms.DELETE("/:id", mutate, h.DeleteRoom)

		products := admin.Group("/products")
		products.GET("", h.GetProducts)
		products.GET("/export.csv", h.ExportProducts)
		products.GET("/categories", h.GetProductCategories)
		products.POST("/categories", mutate, h.CreateProductCategory)
		products.PUT("/categories/:id", mutate, h.UpdateProductCategory)
		products.DELETE("/categories/:id", mutate, h.DeleteProductCategory)
		products.POST("", mutate, h.CreateProduct)
		products.PUT("/:id", mutate, h.UpdateProduct)
		products.DELETE("/:id", mutate, h.DeleteProduct)

		users := admin.Group("/users")
		users.GET("", h.GetUsers)
		users.GET("/export.csv", h.ExportUsers)
		users.POST("", mutate, h.CreateUser)
		users.PUT("/:id", mutate, h.UpdateUser)
		users.DELETE("/:id", mutate, h.DeleteUser)
		users.POST("/:id/reset-password", mutate, h.ResetUserPassword)

		customers := admin.Group("/customers")
		customers.GET("", h.GetCustomers)
		customers.GET("/export.csv", h.ExportCustomers)
		customers.POST("", mutate, h.CreateCustomer)
		customers.PUT("/:id", mutate, h.UpdateCustomer)
		customers.DELETE("/:id", mutate, h.DeleteCustomer)

		reservations := admin.Group("/reservations")
		reservations.GET("", h.GetReservations)
		reservations.GET("/export.csv", h.ExportReservations)
		reservations.POST("", mutate, h.CreateReservation)
		reservations.PATCH("/:id/status", mutate, h.UpdateReservationStatus)
		reservations.DELETE("/:id", mutate, h.DeleteReservation)
	}

	return r
}
