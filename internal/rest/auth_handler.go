package rest

import (
	"net/http"
	"time"

	"bookshop-be/internal/auth"
	"bookshop-be/internal/httpx"
	"bookshop-be/internal/user"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type shippingProfileRequest struct {
	Address    *string `json:"address" binding:"omitempty,max=255"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	ProvinceID *int    `json:"province_id" binding:"omitempty,gt=0"`
	CityID     *int    `json:"city_id" binding:"omitempty,gt=0"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	session, err := h.svc.Auth.Register(c.Request.Context(), user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, session)
	httpx.Created(c, "User registered successfully", session)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	session, err := h.svc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, session)
	httpx.OK(c, "Login successful", session)
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Auth.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, "", -1, "/", "", h.secureCookie, true)
	httpx.OK(c, "Successfully logged out", nil)
}

func (h *Handler) currentUser(c *gin.Context) {
	u, err := h.svc.Users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "User retrieved", u)
}

func (h *Handler) updateShipping(c *gin.Context) {
	var req shippingProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.ValidationError(c, bindErrors(err))
		return
	}

	u, err := h.svc.Users.UpdateShipping(c.Request.Context(), user.UpdateShippingParams{
		UserID:     currentUserID(c),
		Address:    req.Address,
		Phone:      req.Phone,
		ProvinceID: req.ProvinceID,
		CityID:     req.CityID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.OK(c, "Shipping profile updated", u)
}

func (h *Handler) setTokenCookie(c *gin.Context, s *auth.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, s.Token, maxAge, "/", "", h.secureCookie, true)
}
