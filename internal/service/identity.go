package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/url-shortener/internal/models"
	"github.com/pribylovaa/url-shortener/internal/pkg/identity"
	"github.com/pribylovaa/url-shortener/internal/storage"
)

// ResolveIdentity загружает пользователя по идентификатору:
// логин ищется по логину, e-mail — по e-mail, пустой идентификатор отклоняется сразу.
func (s *Service) ResolveIdentity(ctx context.Context, identifier string) (*models.User, error) {
	const op = "service.identity.ResolveIdentity"

	var (
		user     *models.User
		err      error
		notFound string
	)

	switch models.ClassifyIdentifier(identifier) {
	case models.IdentifierLogin:
		user, err = s.storage.UserByLogin(ctx, identifier)
		notFound = msgLoginNotFound(identifier)
	case models.IdentifierEmail:
		user, err = s.storage.UserByEmail(ctx, identifier)
		notFound = msgEmailNotFound(identifier)
	case models.IdentifierEmpty:
		return nil, fmt.Errorf("%s: %w", op, unauthorizedError(msgIdentifierEmpty))
	}

	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, notFoundError(notFound))
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// IdentifyByToken определяет пользователя по access-токену:
// проверяет токен, извлекает логин и загружает пользователя.
func (s *Service) IdentifyByToken(ctx context.Context, token string) (*models.User, error) {
	const op = "service.identity.IdentifyByToken"

	if !s.tokens.Validate(token) {
		return nil, fmt.Errorf("%s: %w", op, unauthorizedError(msgTokenIncorrect))
	}

	login, err := s.tokens.ExtractLogin(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, unauthorizedError(msgTokenIncorrect))
	}

	user, err := s.ResolveIdentity(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// AuthenticatedUser возвращает пользователя текущего запроса или
// ErrUnauthorized, если запрос анонимный.
func AuthenticatedUser(ctx context.Context) (*models.User, error) {
	user, ok := identity.From(ctx)
	if !ok {
		return nil, unauthorizedError(msgUnauthorized)
	}

	return user, nil
}
