package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/warung-order/application/admin"
	"github.com/muhammadheryan/warung-order/constant"
	utilsContext "github.com/muhammadheryan/warung-order/utils/context"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware returns a middleware that validates admin sessions using AdminApp.
// It lets /admin/login through without a token.
func AuthMiddleware(adminApp admin.AdminApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via AdminApp
			session, err := adminApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("[AuthMiddleware] rejected token", zap.String("path", r.URL.Path), zap.Error(err))
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed session into context
			ctx := utilsContext.WithAdminSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which admin endpoints are public (no auth required)
func isPublicPath(path string) bool {
	return path == "/admin/login"
}
