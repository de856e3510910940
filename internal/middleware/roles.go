package middleware

import (
	"net/http"

	"penlink/internal/logger"
	"penlink/internal/reqctx"
	"penlink/internal/utils/helpers"

	"go.uber.org/zap"
)

// OnlyRole JWTAuth'tan SONRA durmalı: kimlik bağlamda olmalı.
func OnlyRole(role string) func(http.Handler) http.Handler {
	return AnyRole(role)
}

func AnyRole(allowedRoles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{})
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := reqctx.GetIdentity(r.Context())
			if !ok {
				helpers.Error(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}
			if _, found := roleSet[id.Role]; !found {
				logger.WithCtx(r.Context()).Warn("Yetkisiz rol", zap.Strings("allowed", allowedRoles))
				helpers.Error(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
