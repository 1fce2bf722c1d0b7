package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/url-shortener/internal/metrics"
	"github.com/pribylovaa/url-shortener/internal/models"
	"github.com/pribylovaa/url-shortener/internal/pkg/log"
	"github.com/pribylovaa/url-shortener/internal/storage"
)

// CreateURL создаёт короткую ссылку вызывающего пользователя.
// expiresAt == nil означает бессрочную ссылку.
func (s *Service) CreateURL(ctx context.Context, longURL string, expiresAt *time.Time) (*models.ShortURL, error) {
	const op = "service.urls.CreateURL"

	user, err := AuthenticatedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if msg := validateLongURL(longURL); msg != "" {
		return nil, fmt.Errorf("%s: %w", op, NewValidationError(msg))
	}

	now := s.clock()
	if err := checkExpiration(expiresAt, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url := &models.ShortURL{
		LongURL:    longURL,
		ExpiresAt:  expiresAt,
		UserID:     user.ID,
		OwnerLogin: user.Login,
	}

	err = s.withFreshCode(ctx, func(code string) error {
		url.ShortCode = code
		return s.storage.SaveURL(ctx, url)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.URLCreated()
	log.From(ctx).Info("url_created",
		slog.String("code", url.ShortCode),
		slog.Int64("user_id", user.ID),
	)

	return url, nil
}

// ResolveURL возвращает ссылку по коду и засчитывает посещение.
// Аутентификация не требуется. Посещение истёкшей ссылки не засчитывается.
func (s *Service) ResolveURL(ctx context.Context, code string) (*models.ShortURL, error) {
	const op = "service.urls.ResolveURL"

	if code == "" {
		s.metrics.Resolve(metrics.ResultInvalid)
		return nil, fmt.Errorf("%s: %w", op, NewValidationError(msgURLIncorrect))
	}

	url, err := s.storage.IncrementVisits(ctx, code, s.clock())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			s.metrics.Resolve(metrics.ResultNotFound)
			return nil, fmt.Errorf("%s: %w", op, notFoundError(msgURLNotFound))
		case errors.Is(err, storage.ErrExpired):
			s.metrics.Resolve(metrics.ResultExpired)
			return nil, fmt.Errorf("%s: %w", op, NewValidationError(msgURLExpired))
		default:
			s.metrics.Resolve(metrics.ResultError)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	s.metrics.Resolve(metrics.ResultOK)
	log.From(ctx).Debug("url_resolved",
		slog.String("code", code),
		slog.Int64("visits", url.Visits),
	)

	return url, nil
}

// UpdateURL выдаёт ссылке новый короткий код и, если expiresAt != nil,
// меняет срок действия. Старый код перестаёт работать.
func (s *Service) UpdateURL(ctx context.Context, code string, expiresAt *time.Time) (*models.ShortURL, error) {
	const op = "service.urls.UpdateURL"

	user, err := AuthenticatedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url, err := s.ownedURL(ctx, user, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := checkExpiration(expiresAt, s.clock()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var updated *models.ShortURL
	err = s.withFreshCode(ctx, func(newCode string) error {
		var uerr error
		updated, uerr = s.storage.UpdateURL(ctx, url.ID, user.ID, newCode, expiresAt)
		return uerr
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Ссылку удалили между чтением и обновлением.
			return nil, fmt.Errorf("%s: %w", op, notFoundError(msgURLNotFound))
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("url_updated",
		slog.String("old_code", code),
		slog.String("code", updated.ShortCode),
		slog.Int64("user_id", user.ID),
	)

	return updated, nil
}

// DeleteURL удаляет ссылку вызывающего пользователя.
func (s *Service) DeleteURL(ctx context.Context, code string) error {
	const op = "service.urls.DeleteURL"

	user, err := AuthenticatedUser(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	url, err := s.ownedURL(ctx, user, code)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteURL(ctx, url.ID, user.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, notFoundError(msgURLNotFound))
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("url_deleted",
		slog.String("code", code),
		slog.Int64("user_id", user.ID),
	)

	return nil
}

// ownedURL загружает ссылку по коду и проверяет владельца.
// Чужая ссылка неотличима от отсутствующей.
func (s *Service) ownedURL(ctx context.Context, user *models.User, code string) (*models.ShortURL, error) {
	const op = "service.urls.ownedURL"

	if code == "" {
		return nil, fmt.Errorf("%s: %w", op, notFoundError(msgURLNotFound))
	}

	url, err := s.storage.URLByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, notFoundError(msgURLNotFound))
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if url.UserID != user.ID {
		log.From(ctx).Debug("url_foreign_owner",
			slog.String("code", code),
			slog.Int64("user_id", user.ID),
		)
		return nil, fmt.Errorf("%s: %w", op, notFoundError(msgURLNotFound))
	}

	return url, nil
}

// withFreshCode подбирает свободный короткий код и передаёт его в store.
// Занятый код и коллизия при записи (storage.ErrAlreadyExists) ведут к
// новой попытке; после maxCodeAttempts возвращается ErrCodeSpaceExhausted.
func (s *Service) withFreshCode(ctx context.Context, store func(code string) error) error {
	const op = "service.urls.withFreshCode"

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := s.codes.Generate()

		exists, err := s.storage.URLCodeExists(ctx, code)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if exists {
			continue
		}

		err = store(code)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("%s: %w", op, err)
		}

		log.From(ctx).Debug("short_code_collision",
			slog.String("code", code),
			slog.Int("attempt", attempt),
		)
	}

	log.From(ctx).Error("short_code_attempts_exceeded",
		slog.String("op", op),
		slog.Int("attempts", maxCodeAttempts),
	)

	return fmt.Errorf("%s: %w", op, ErrCodeSpaceExhausted)
}

// checkExpiration отклоняет срок действия, не лежащий строго в будущем.
func checkExpiration(expiresAt *time.Time, now time.Time) error {
	if expiresAt != nil && !expiresAt.After(now) {
		return NewValidationError(msgPastExpiration)
	}

	return nil
}
