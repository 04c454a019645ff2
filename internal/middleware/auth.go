package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"restaurant-backoffice/internal/auth"
)

type contextKey string

const authContextKey contextKey = "authContext"

// localOperatorID identifies requests served without a token in development.
const localOperatorID = "local"

type AuthContext struct {
	UserID   string
	Role     auth.Role
	Name     string
	OutletID string
}

func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	value := ctx.Value(authContextKey)
	if value == nil {
		return nil, false
	}
	ac, ok := value.(*AuthContext)
	return ac, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	writeAuthErrorDebug(w, status, "UNAUTHORIZED", message, "")
}

func writeAuthErrorDebug(w http.ResponseWriter, status int, code string, message string, debug string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload := map[string]any{
		"success": false,
		"error":   code,
		"message": message,
	}

	if os.Getenv("APP_ENV") == "development" && strings.TrimSpace(debug) != "" {
		payload["debug"] = debug
	}

	_ = json.NewEncoder(w).Encode(payload)
}

// OperatorAuth verifies the operator bearer token and the role permission for
// the route. With an empty secret and allowAnonymous set, requests run as a
// local admin operator.
func OperatorAuth(jwtSecret string, allowAnonymous bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var authCtx *AuthContext

			if strings.TrimSpace(jwtSecret) == "" {
				if !allowAnonymous {
					writeAuthError(w, http.StatusUnauthorized, "Authentication is not configured")
					return
				}
				authCtx = &AuthContext{UserID: localOperatorID, Role: auth.RoleAdmin, Name: "Local operator"}
			} else {
				token := auth.ParseBearerToken(r.Header.Get("Authorization"))
				claims, err := auth.VerifyAccessToken(token, jwtSecret)
				if err != nil {
					writeAuthErrorDebug(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization token required", err.Error())
					return
				}
				authCtx = &AuthContext{UserID: claims.UserID, Role: claims.Role, Name: claims.Name}
				if claims.OutletID != nil {
					authCtx.OutletID = strings.TrimSpace(*claims.OutletID)
				}
			}

			if perm := auth.GetPermissionForAPI(r.URL.Path, r.Method); perm != nil {
				if !auth.RoleHasPermission(authCtx.Role, *perm) {
					writeAuthErrorDebug(w, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", string(*perm))
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithAuthContext(r.Context(), authCtx)))
		})
	}
}
