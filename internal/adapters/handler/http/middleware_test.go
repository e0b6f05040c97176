package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ballotbox/api/internal/core/domain"
)

func newProtectedServer(role string) (http.Handler, *string) {
	var gotSubject string
	mux := http.NewServeMux()
	handler := RequireRole(testSecret, role)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sub, ok := r.Context().Value(SubjectKey).(string); ok {
			gotSubject = sub
		}
		w.WriteHeader(http.StatusOK)
	}))
	mux.Handle("/protected", handler)
	return mux, &gotSubject
}

func TestRequireRoleMissingToken(t *testing.T) {
	mux, _ := newProtectedServer(domain.RoleVoter)

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleBadSignature(t *testing.T) {
	mux, _ := newProtectedServer(domain.RoleVoter)

	token := signToken(t, "V001", domain.RoleVoter, []byte("some-other-secret"))
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleWrongRole(t *testing.T) {
	mux, _ := newProtectedServer(domain.RoleAdmin)

	token := signToken(t, "V001", domain.RoleVoter, testSecret)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleBearerHeader(t *testing.T) {
	mux, gotSubject := newProtectedServer(domain.RoleVoter)

	token := signToken(t, "V001", domain.RoleVoter, testSecret)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "V001", *gotSubject)
}

func TestRequireRoleCookie(t *testing.T) {
	mux, gotSubject := newProtectedServer(domain.RoleAdmin)

	token := signToken(t, "admin", domain.RoleAdmin, testSecret)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", *gotSubject)
}
