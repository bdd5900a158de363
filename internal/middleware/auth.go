package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/booktime/storefront/internal/common"
	inErrors "github.com/booktime/storefront/internal/errors"
	inHttp "github.com/booktime/storefront/internal/http"
	"github.com/booktime/storefront/internal/log"
)

func Auth(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Auth").
				Logger()
			c := logger.WithContext(r.Context())

			authorization := r.Header.Get(inHttp.KeyHeaderAuthorization)
			if authorization == "" {
				logger.Error().
					Err(inErrors.ErrEmptyAuth).
					Msg(inErrors.ErrEmptyAuth.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrEmptyAuth.Error(),
				})
				return
			}

			token := strings.TrimPrefix(authorization, "Bearer ")
			jwtToken, err := common.VerifyToken(c, token, secretKey)
			if err != nil {
				logger.Error().
					Err(inErrors.ErrTokenInvalid).
					Msg(inErrors.ErrTokenInvalid.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrTokenInvalid.Error(),
				})
				return
			}

			c = common.AttachJwtToken(c, jwtToken)
			next.ServeHTTP(w, r.WithContext(c))
		})
	}
}
