// identity переносит аутентифицированного пользователя текущего запроса
// через context.Context.
package identity

import (
	"context"

	"github.com/pribylovaa/url-shortener/internal/models"
)

type ctxKey struct{}

// Into кладёт пользователя в контекст.
func Into(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// From достаёт пользователя из контекста; ok == false для анонимного запроса.
func From(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*models.User)
	if !ok || u == nil {
		return nil, false
	}

	return u, true
}
