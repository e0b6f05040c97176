package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// SubjectKey carries the authenticated identity: the voter id for voter
// tokens, the admin username for admin tokens.
const SubjectKey contextKey = "subject"

// RequireRole validates the access token (Authorization: Bearer header or
// access_token cookie) and rejects tokens whose role claim does not match.
// The subject claim is placed on the request context.
func RequireRole(jwtSecret []byte, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractToken(r)
			if tokenStr == "" {
				http.Error(w, "missing access token", http.StatusUnauthorized)
				return
			}

			subject, tokenRole, err := parseAccessToken(tokenStr, jwtSecret)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}
			if tokenRole != role {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func parseAccessToken(tokenStr string, secret []byte) (subject, role string, err error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token claims")
	}

	subject, ok = claims["sub"].(string)
	if !ok || subject == "" {
		return "", "", errors.New("missing sub claim")
	}
	role, ok = claims["role"].(string)
	if !ok || role == "" {
		return "", "", errors.New("missing role claim")
	}
	return subject, role, nil
}
