package rest

import (
	"bookshop-be/internal/cart"
	"bookshop-be/internal/httpx"
	"bookshop-be/internal/order"
	"bookshop-be/internal/shipping"

	"github.com/gin-gonic/gin"
)

type citiesQuery struct {
	ProvinceID int `form:"province_id" binding:"required,gt=0"`
}

type shippingRequest struct {
	Origin      int    `json:"origin" binding:"required,gt=0"`
	Destination int    `json:"destination" binding:"required,gt=0"`
	Weight      int    `json:"weight" binding:"required,gt=0"`
	Courier     string `json:"courier" binding:"required"`
}

type servicesRequest struct {
	Destination int        `json:"destination" binding:"required,gt=0"`
	Courier     string     `json:"courier" binding:"required"`
	Carts       cart.Lines `json:"carts" binding:"required,min=1,dive"`
}

func (h *Handler) provinces(c *gin.Context) {
	provinces, err := h.svc.Shipping.Provinces(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Provinces retrieved", provinces)
}

func (h *Handler) cities(c *gin.Context) {
	var q citiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	cities, err := h.svc.Shipping.Cities(c.Request.Context(), q.ProvinceID)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Cities retrieved", cities)
}

func (h *Handler) couriers(c *gin.Context) {
	httpx.OK(c, "Couriers retrieved", h.svc.Shipping.Couriers())
}

func (h *Handler) shippingCost(c *gin.Context) {
	var req shippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	quotes, err := h.svc.Shipping.Quote(c.Request.Context(), shipping.CostRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Weight:      req.Weight,
		Courier:     req.Courier,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Shipping cost retrieved", quotes)
}

func (h *Handler) shippingServices(c *gin.Context) {
	var req servicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	quote, err := h.svc.Shipping.QuoteCart(c.Request.Context(), req.Destination, req.Courier, req.Carts)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Shipping services retrieved", quote)
}

func (h *Handler) payment(c *gin.Context) {
	var req order.PlaceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	o, err := h.svc.Orders.PlaceOrder(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.Created(c, "Order created successfully", o)
}

func (h *Handler) myOrders(c *gin.Context) {
	orders, err := h.svc.Orders.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Orders retrieved", orders)
}
