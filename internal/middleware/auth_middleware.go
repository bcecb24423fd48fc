package middleware

import (
	"CivicReportAPI/internal/constant"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/service"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const UserContextKey contextKey = "user"

type AuthMiddleware struct {
	authService *service.AuthService
}

func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

func (m *AuthMiddleware) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			helper.WriteError(w, helper.NewUnauthorizedError("Missing or malformed authorization header"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := m.authService.VerifyUser(r.Context(), tokenString)
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyWSToken reads the token from the query string because browser
// WebSocket clients cannot set an Authorization header.
func (m *AuthMiddleware) VerifyWSToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			helper.WriteError(w, helper.NewUnauthorizedError("Missing token"))
			return
		}

		user, err := m.authService.VerifyUser(r.Context(), tokenString)
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(UserContextKey).(*model.UserDTO)
		if !ok || user == nil {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}
		if user.Role != constant.RoleAdmin {
			helper.WriteError(w, helper.NewForbiddenError(""))
			return
		}
		next.ServeHTTP(w, r)
	})
}
