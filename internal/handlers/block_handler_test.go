package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/NavalhaDigital/barber-agenda/internal/middleware"
)

// A validação de escopo e formato acontece antes de qualquer acesso a
// banco, então dá para exercitá-la sem infraestrutura.
func postBlock(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)

	h := NewBlockHandler(nil, nil)

	r := gin.New()
	r.POST("/me/blocks", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
		c.Set(middleware.ContextBarbershopID, uint(1))
		h.Create(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/me/blocks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	return w
}

func TestBlockCreate_EscopoObrigatorio(t *testing.T) {
	// nem data nem weekday
	w := postBlock(t, `{"start_time":"12:00","end_time":"13:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_block_scope")

	// os dois ao mesmo tempo
	w = postBlock(t, `{"date":"2024-06-01","weekday":2,"start_time":"12:00","end_time":"13:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_block_scope")
}

func TestBlockCreate_ValidaHorario(t *testing.T) {
	w := postBlock(t, `{"weekday":2,"start_time":"25:00","end_time":"13:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_time_format")

	w = postBlock(t, `{"weekday":2,"start_time":"14:00","end_time":"13:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "start_after_end")

	w = postBlock(t, `{"weekday":9,"start_time":"12:00","end_time":"13:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_weekday")
}
