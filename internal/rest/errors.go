package rest

import (
	"errors"
	"net/http"

	"bookshop-be/internal/auth"
	"bookshop-be/internal/book"
	"bookshop-be/internal/cart"
	"bookshop-be/internal/category"
	"bookshop-be/internal/httpx"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/order"
	"bookshop-be/internal/shipping"
	"bookshop-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternal = "internal server error"

// respondError maps a service error onto the response envelope.
// Unknown errors are logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var itemErr *order.ItemError
	if errors.As(err, &itemErr) {
		httpx.ValidationError(c, map[string]string{itemErr.Key(): itemErr.Err.Error()})
		return
	}

	if field, ok := fieldOf(err); ok {
		httpx.ValidationError(c, map[string]string{field: err.Error()})
		return
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		httpx.Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, user.ErrUserInactive):
		httpx.Error(c, http.StatusUnauthorized, "account is inactive")
	case errors.Is(err, auth.ErrNotAuthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked),
		errors.Is(err, order.ErrUnauthorized):
		httpx.Error(c, http.StatusUnauthorized, "unauthenticated")

	case errors.Is(err, book.ErrBookNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, user.ErrUserNotFound):
		httpx.Error(c, http.StatusNotFound, err.Error())

	case errors.Is(err, shipping.ErrUpstreamRejected):
		httpx.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, shipping.ErrServiceUnavailable),
		errors.Is(err, shipping.ErrOriginNotSet):
		logger.FromCtx(c.Request.Context()).Error("shipping failure", zap.Error(err))
		httpx.Error(c, http.StatusInternalServerError, "shipping service unavailable")

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled error",
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		httpx.Error(c, http.StatusInternalServerError, msgInternal)
	}
}

// fieldOf names the request field a validation-like service error belongs to.
func fieldOf(err error) (string, bool) {
	switch {
	case errors.Is(err, user.ErrEmailExists):
		return "email", true
	case errors.Is(err, user.ErrPasswordTooLong):
		return "password", true
	case errors.Is(err, book.ErrSlugExists), errors.Is(err, book.ErrInvalidTitle):
		return "title", true
	case errors.Is(err, book.ErrUnknownCategory):
		return "category_id", true
	case errors.Is(err, book.ErrInvalidCount), errors.Is(err, category.ErrInvalidCount):
		return "count", true
	case errors.Is(err, book.ErrEmptyKeyword):
		return "keyword", true
	case errors.Is(err, cart.ErrInvalidCart), errors.Is(err, cart.ErrCartTooHeavy):
		return "carts", true
	case errors.Is(err, shipping.ErrInvalidWeight):
		return "weight", true
	case errors.Is(err, shipping.ErrUnknownCourier):
		return "courier", true
	case errors.Is(err, order.ErrEmptyOrder):
		return "items", true
	case errors.Is(err, order.ErrTotalMismatch):
		return "total_amount", true
	}
	return "", false
}
