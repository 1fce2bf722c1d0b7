package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pribylovaa/url-shortener/internal/config"
)

var (
	// ErrInvalidToken — токен некорректен по формату/подписи или истёк.
	// Просроченный и битый токены намеренно не различаются.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmptySubject — попытка выпустить токен без логина.
	ErrEmptySubject = errors.New("token subject is empty")

	// ErrEmptySecret — в конфигурации не задан секрет подписи.
	ErrEmptySecret = errors.New("jwt secret is empty")
)

const bearerPrefix = "Bearer "

// TokenManager выпускает и проверяет access/refresh JWT (HS256).
// Оба вида токенов несут единственный доменный claim — логин в sub —
// и различаются только сроком жизни. Состояния не хранит и безопасен
// для конкурентного использования.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenManager создаёт TokenManager из неизменяемой конфигурации.
// now == nil означает time.Now.
func NewTokenManager(cfg config.AuthConfig, now func() time.Time) (*TokenManager, error) {
	const op = "service.token.NewTokenManager"

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySecret)
	}

	if now == nil {
		now = time.Now
	}

	return &TokenManager{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        now,
	}, nil
}

// IssueAccess выпускает короткоживущий access-токен.
func (m *TokenManager) IssueAccess(login string) (string, error) {
	const op = "service.token.IssueAccess"

	token, err := m.issue(login, m.accessTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

// IssueRefresh выпускает долгоживущий refresh-токен.
func (m *TokenManager) IssueRefresh(login string) (string, error) {
	const op = "service.token.IssueRefresh"

	token, err := m.issue(login, m.refreshTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

func (m *TokenManager) issue(login string, ttl time.Duration) (string, error) {
	if login == "" {
		return "", ErrEmptySubject
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   login,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ExtractLogin проверяет подпись и срок токена и возвращает логин из sub.
func (m *TokenManager) ExtractLogin(tokenStr string) (string, error) {
	const op = "service.token.ExtractLogin"

	if tokenStr == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}

			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.Subject, nil
}

// Validate сообщает, валиден ли токен: подпись и срок в порядке.
// Никогда не возвращает ошибку и не паникует.
func (m *TokenManager) Validate(tokenStr string) bool {
	_, err := m.ExtractLogin(tokenStr)
	return err == nil
}

// TokenFromHeader извлекает токен из значения заголовка Authorization
// вида "Bearer <token>". ok == false, если префикса нет или токен пустой.
func TokenFromHeader(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
