package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSuccess(t *testing.T) {
	w, resp := perform(func(c *gin.Context) {
		Created(c, "created", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, "created", resp.Message)
	assert.Equal(t, map[string]any{"id": float64(1)}, resp.Data)
	assert.Nil(t, resp.Errors)
}

func TestError(t *testing.T) {
	w, resp := perform(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "book not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "book not found", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestValidationError(t *testing.T) {
	w, resp := perform(func(c *gin.Context) {
		ValidationError(c, map[string]string{"email": "email is required"})
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "email is required", resp.Errors["email"])

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "errors")
}
