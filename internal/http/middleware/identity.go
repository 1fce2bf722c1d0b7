package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/url-shortener/internal/http/errors"
	"github.com/pribylovaa/url-shortener/internal/models"
	"github.com/pribylovaa/url-shortener/internal/pkg/identity"
	"github.com/pribylovaa/url-shortener/internal/pkg/log"
	"github.com/pribylovaa/url-shortener/internal/service"
)

// Identifier определяет пользователя по access-токену.
type Identifier interface {
	IdentifyByToken(ctx context.Context, token string) (*models.User, error)
}

// Identity извлекает Bearer-токен из Authorization и кладёт пользователя
// в контекст (internal/pkg/identity). Без токена, с невалидным токеном или
// с токеном несуществующего пользователя запрос продолжается анонимно:
// защищённые операции сами вернут 401.
func Identity(id Identifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := service.TokenFromHeader(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := id.IdentifyByToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthorized) || errors.Is(err, service.ErrNotFound) {
					log.From(r.Context()).Debug("anonymous_request",
						slog.String("reason", err.Error()),
					)
					next.ServeHTTP(w, r)
					return
				}

				log.From(r.Context()).Error("identify_failed", slog.String("err", err.Error()))
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := identity.Into(r.Context(), user)
			ctx = log.With(ctx, slog.Int64("user_id", user.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
