package rest

import (
	"strconv"

	"bookshop-be/internal/book"
	"bookshop-be/internal/cart"
	"bookshop-be/internal/httpx"
	"bookshop-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type cartRequest struct {
	Carts cart.Lines `json:"carts" binding:"required,dive"`
}

type createBookRequest struct {
	CategoryID  *uint           `json:"category_id" binding:"omitempty,gt=0"`
	Title       string          `json:"title" binding:"required,max=255"`
	Description *string         `json:"description"`
	Author      *string         `json:"author" binding:"omitempty,max=255"`
	Publisher   *string         `json:"publisher" binding:"omitempty,max=255"`
	Cover       *string         `json:"cover" binding:"omitempty,max=255"`
	Price       decimal.Decimal `json:"price" binding:"gte=0"`
	Weight      int             `json:"weight" binding:"gte=0"`
	Stock       int             `json:"stock" binding:"gte=0"`
	Status      book.Status     `json:"status" binding:"omitempty,oneof=PUBLISH DRAFT"`
}

type updateBookRequest struct {
	CategoryID  *uint            `json:"category_id" binding:"omitempty,gt=0"`
	Title       *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Author      *string          `json:"author" binding:"omitempty,max=255"`
	Publisher   *string          `json:"publisher" binding:"omitempty,max=255"`
	Cover       *string          `json:"cover" binding:"omitempty,max=255"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Weight      *int             `json:"weight" binding:"omitempty,gte=0"`
	Stock       *int             `json:"stock" binding:"omitempty,gte=0"`
	Status      *book.Status     `json:"status" binding:"omitempty,oneof=PUBLISH DRAFT"`
}

// countParam parses the :count path segment.
func countParam(c *gin.Context) (int, bool) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		httpx.ValidationError(c, map[string]string{"count": "must be a number"})
		return 0, false
	}
	return count, true
}

// ----------------- Categories -----------------

func (h *Handler) listCategories(c *gin.Context) {
	page, err := h.svc.Categories.List(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Categories retrieved", page)
}

func (h *Handler) randomCategories(c *gin.Context) {
	count, ok := countParam(c)
	if !ok {
		return
	}

	categories, err := h.svc.Categories.Random(c.Request.Context(), count)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Categories retrieved", categories)
}

func (h *Handler) categoryBySlug(c *gin.Context) {
	detail, err := h.svc.Categories.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Category retrieved", detail)
}

// ----------------- Books -----------------

func (h *Handler) listBooks(c *gin.Context) {
	page, err := h.svc.Books.List(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Books retrieved", page)
}

func (h *Handler) topBooks(c *gin.Context) {
	count, ok := countParam(c)
	if !ok {
		return
	}

	books, err := h.svc.Books.Top(c.Request.Context(), count)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Top books retrieved", books)
}

func (h *Handler) bookBySlug(c *gin.Context) {
	b, err := h.svc.Books.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Book retrieved", b)
}

func (h *Handler) searchBooks(c *gin.Context) {
	page, err := h.svc.Books.Search(c.Request.Context(), c.Param("keyword"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Search results", page)
}

func (h *Handler) reconcileCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	items, err := h.svc.Carts.Reconcile(c.Request.Context(), req.Carts)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Cart data retrieved", items)
}

func (h *Handler) createBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	b, err := h.svc.Books.Create(c.Request.Context(), book.CreateInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Publisher:   req.Publisher,
		Cover:       req.Cover,
		Price:       req.Price,
		Weight:      req.Weight,
		Stock:       req.Stock,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.Created(c, "Book created", b)
}

func (h *Handler) updateBook(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil || id == 0 {
		httpx.ValidationError(c, map[string]string{"id": "must be a positive number"})
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	b, err := h.svc.Books.Update(c.Request.Context(), book.UpdateInput{
		ID:          id,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Publisher:   req.Publisher,
		Cover:       req.Cover,
		Price:       req.Price,
		Weight:      req.Weight,
		Stock:       req.Stock,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Book updated", b)
}
