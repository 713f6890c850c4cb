package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/auth"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hr-backend-go/internal/pkg/jwt"
)

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// UserID extracts the authenticated user's id from the verified claims.
func UserID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	// jwx decodes numeric claims as float64
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return int64(id), nil
}
