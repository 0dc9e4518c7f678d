package rest

import (
	"strconv"

	"bookshop-be/internal/auth"
	"bookshop-be/internal/book"
	"bookshop-be/internal/cart"
	"bookshop-be/internal/category"
	"bookshop-be/internal/middleware"
	"bookshop-be/internal/order"
	"bookshop-be/internal/shipping"
	"bookshop-be/internal/user"
	"bookshop-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// Services are the domain services the HTTP layer delegates to.
type Services struct {
	Auth       auth.Service
	Users      user.Service
	Categories category.Service
	Books      book.Service
	Carts      cart.Service
	Shipping   shipping.Service
	Orders     order.Service
}

type Handler struct {
	svc          Services
	secureCookie bool
}

func NewHandler(svc Services, secureCookie bool) *Handler {
	setupValidator()
	return &Handler{svc: svc, secureCookie: secureCookie}
}

// Register mounts every /v1 route on r.
func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	{
		protected := authGroup.Group("", middleware.RequireAuth())
		protected.POST("/logout", h.logout)
		protected.GET("/user", h.currentUser)
		protected.PUT("/shipping", h.updateShipping)
	}

	categories := v1.Group("/categories")
	categories.GET("", h.listCategories)
	categories.GET("/random/:count", h.randomCategories)
	categories.GET("/slug/:slug", h.categoryBySlug)

	books := v1.Group("/books")
	books.GET("", h.listBooks)
	books.GET("/top/:count", h.topBooks)
	books.GET("/slug/:slug", h.bookBySlug)
	books.GET("/search/:keyword", h.searchBooks)
	books.POST("/cart", h.reconcileCart)
	{
		admin := books.Group("", middleware.RequireAuth(), middleware.RequireRole(utils.RoleAdmin))
		admin.POST("", h.createBook)
		admin.PUT("/:id", h.updateBook)
	}

	shop := v1.Group("/shop")
	shop.GET("/provinces", h.provinces)
	shop.GET("/cities", h.cities)
	shop.GET("/couriers", h.couriers)
	{
		protected := shop.Group("", middleware.RequireAuth())
		protected.POST("/shipping", h.shippingCost)
		protected.POST("/services", h.shippingServices)
		protected.POST("/payment", h.payment)
		protected.GET("/my-order", h.myOrders)
	}
}

// pageParam reads ?page=; anything unparsable falls back to the first page.
func pageParam(c *gin.Context) int {
	page, _ := strconv.Atoi(c.Query("page"))
	return page
}

func currentUserID(c *gin.Context) uint {
	id, _ := utils.GetUserIDFromContext(c.Request.Context())
	return id
}
