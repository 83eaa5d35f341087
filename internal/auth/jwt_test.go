package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(10, true)
	require.NoError(t, err)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(10), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestTokenAdulteradoERejeitado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	token, err := GerarToken(1, false)
	require.NoError(t, err)

	_, err = ValidarToken(token + "x")
	assert.Error(t, err)
}

func TestMiddlewarePropagaClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	var gotID uint
	var gotAdmin bool
	interno := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value(CtxUserID).(uint)
		gotAdmin, _ = r.Context().Value(CtxIsAdmin).(bool)
	})

	token, err := GerarToken(7, true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/etapas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	MiddlewareAutenticacao(interno).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), gotID)
	assert.True(t, gotAdmin)
}

func TestMiddlewareSemToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/etapas", nil)
	MiddlewareAutenticacao(http.NotFoundHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminBloqueiaNaoAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	token, err := GerarToken(2, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/etapas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	MiddlewareAutenticacao(RequireAdmin(http.NotFoundHandler())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
