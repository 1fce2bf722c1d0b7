package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/url-shortener/internal/metrics"
	"github.com/pribylovaa/url-shortener/internal/models"
	"github.com/pribylovaa/url-shortener/internal/pkg/log"
	"github.com/pribylovaa/url-shortener/internal/storage"
	"github.com/pribylovaa/url-shortener/pkg/redact"
)

// Register регистрирует нового пользователя с ролью USER.
// Ошибки всех полей и конфликты логина/e-mail собираются в одно сообщение.
func (s *Service) Register(ctx context.Context, login, email, password string) (*models.User, error) {
	const op = "service.auth.Register"

	lg := log.From(ctx)

	if err := validateRegistration(login, email, password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	msg, err := s.registrationConflicts(ctx, login, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if msg != "" {
		return nil, fmt.Errorf("%s: %w", op, conflictError(msg))
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		Login:        login,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// Параллельная регистрация успела занять логин или e-mail.
		msg, cerr := s.registrationConflicts(ctx, login, email)
		if cerr != nil {
			return nil, fmt.Errorf("%s: %w", op, cerr)
		}
		if msg == "" {
			msg = msgLoginExists(login)
		}

		return nil, fmt.Errorf("%s: %w", op, conflictError(msg))
	}

	lg.Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", redact.Email(email)),
	)

	return user, nil
}

// Authenticate проверяет идентификатор (логин или e-mail) и пароль
// и выпускает пару токенов. Отсутствие пользователя и неверный пароль
// неотличимы для клиента.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*models.TokenPair, error) {
	const op = "service.auth.Authenticate"

	lg := log.From(ctx)

	if err := validateCredentials(identifier, password); err != nil {
		s.metrics.Login(metrics.ResultInvalid)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.ResolveIdentity(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			lg.Warn("login_unknown_identifier",
				slog.String("identifier", redact.Identifier(identifier)),
			)
			s.metrics.Login(metrics.ResultUnauthorized)
			return nil, fmt.Errorf("%s: %w", op, unauthorizedError(msgBadCredentials))
		}

		s.metrics.Login(metrics.ResultError)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.Int64("user_id", user.ID),
		)
		s.metrics.Login(metrics.ResultUnauthorized)
		return nil, fmt.Errorf("%s: %w", op, unauthorizedError(msgBadCredentials))
	}

	pair, err := s.issueTokenPair(user.Login)
	if err != nil {
		s.metrics.Login(metrics.ResultError)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Login(metrics.ResultOK)
	lg.Info("login_succeeded", slog.Int64("user_id", user.ID))

	return pair, nil
}

// Refresh выпускает новую пару по действующему refresh-токену.
// Старый refresh-токен не отзывается и действует до своего истечения.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	if !s.tokens.Validate(refreshToken) {
		log.From(ctx).Warn("refresh_rejected", slog.String("token", redact.Token()))
		return nil, fmt.Errorf("%s: %w", op, unauthorizedError(msgTokenIncorrect))
	}

	login, err := s.tokens.ExtractLogin(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, unauthorizedError(msgTokenIncorrect))
	}

	pair, err := s.issueTokenPair(login)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// registrationConflicts возвращает сообщение о занятых логине и/или e-mail.
func (s *Service) registrationConflicts(ctx context.Context, login, email string) (string, error) {
	const op = "service.auth.registrationConflicts"

	var msg string

	_, err := s.storage.UserByLogin(ctx, login)
	switch {
	case err == nil:
		msg += msgLoginExists(login)
	case !errors.Is(err, storage.ErrNotFound):
		return "", fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.UserByEmail(ctx, email)
	switch {
	case err == nil:
		msg += msgEmailExists(email)
	case !errors.Is(err, storage.ErrNotFound):
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// issueTokenPair выпускает access+refresh для логина.
func (s *Service) issueTokenPair(login string) (*models.TokenPair, error) {
	const op = "service.auth.issueTokenPair"

	access, err := s.tokens.IssueAccess(login)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := s.tokens.IssueRefresh(login)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func (s *Service) hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	cost := s.cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
