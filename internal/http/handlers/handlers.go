package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/url-shortener/internal/http/errors"
	"github.com/pribylovaa/url-shortener/internal/models"
	"github.com/pribylovaa/url-shortener/internal/service"
)

// Service — операции, которые HTTP-слой вызывает у сервиса.
type Service interface {
	Register(ctx context.Context, login, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, identifier, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)

	CreateURL(ctx context.Context, longURL string, expiresAt *time.Time) (*models.ShortURL, error)
	ResolveURL(ctx context.Context, code string) (*models.ShortURL, error)
	UpdateURL(ctx context.Context, code string, expiresAt *time.Time) (*models.ShortURL, error)
	DeleteURL(ctx context.Context, code string) error

	ListURLs(ctx context.Context) (*models.URLStats, error)
	ListActiveURLs(ctx context.Context) (*models.URLStats, error)
	URLVisits(ctx context.Context, code string) (int64, error)
}

// Handlers агрегирует зависимости HTTP-обработчиков.
type Handlers struct {
	svc Service
}

func New(svc Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// malformedBody — локальная ошибка разбора тела -> 400/validation_error.
func malformedBody() error {
	return service.NewValidationError(apierrors.MsgMalformedBody)
}
