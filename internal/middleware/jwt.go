package middleware

import (
	"net/http"
	"strings"

	"penlink/internal/logger"
	"penlink/internal/reqctx"
	"penlink/internal/utils"
	"penlink/internal/utils/helpers"

	"go.uber.org/zap"
)

const msgAuthRequired = "Authentication required"

// JWTAuth geçerli bir bearer token ister; yoksa 401 döner.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				logger.WithCtx(r.Context()).Warn("JWTAuth: access token yok")
				helpers.Error(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}

			claims, err := utils.ParseToken(secret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: geçersiz veya süresi dolmuş token", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := reqctx.WithIdentity(r.Context(), identityFrom(claims))
			logger.WithCtx(ctx).Debug("JWTAuth: token geçerli")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWTAuth token varsa ve geçerliyse kimliği bağlama ekler, aksi halde isteği anonim geçirir.
func OptionalJWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenString, ok := bearerToken(r); ok {
				claims, err := utils.ParseToken(secret, tokenString)
				if err == nil {
					r = r.WithContext(reqctx.WithIdentity(r.Context(), identityFrom(claims)))
				} else {
					logger.WithCtx(r.Context()).Debug("OptionalJWTAuth: token yok sayıldı", zap.Error(err))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return tok, tok != ""
}

func identityFrom(c *utils.Claims) reqctx.Identity {
	return reqctx.Identity{UserID: c.UserID, Username: c.Username, Role: c.Role}
}
