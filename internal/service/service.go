// service содержит бизнес-логику url-shortener:
// регистрацию и аутентификацию пользователей, выпуск/проверку токенов,
// определение вызывающего пользователя и жизненный цикл коротких ссылок.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; вызывающий пользователь передаётся
//     явно через context.Context (см. internal/pkg/identity). Экземпляр
//     безопасен для конкурентного использования при потокобезопасном storage.Storage.
//   - Атомарность операций обеспечивает хранилище: уникальный индекс кода,
//     блокировка строки при учёте посещения, условия по владельцу в UPDATE/DELETE.
//   - Ошибки возвращаются как *Error с классом (ErrValidation, ErrConflict,
//     ErrUnauthorized, ErrNotFound) и маппятся транспортом в HTTP-статусы.
package service

import (
	"time"

	"github.com/pribylovaa/url-shortener/internal/config"
	"github.com/pribylovaa/url-shortener/internal/metrics"
	"github.com/pribylovaa/url-shortener/internal/shortcode"
	"github.com/pribylovaa/url-shortener/internal/storage"
)

// maxCodeAttempts — предел попыток подобрать свободный короткий код.
const maxCodeAttempts = 10

// Service описывает бизнес-логику url-shortener.
type Service struct {
	storage storage.Storage
	tokens  *TokenManager
	cfg     config.AuthConfig
	codes   shortcode.Generator
	metrics *metrics.Metrics // может быть nil
	now     func() time.Time
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, tokens *TokenManager, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		cfg:     cfg,
		codes:   shortcode.Random{},
		now:     time.Now,
	}
}

// SetCodeGenerator подменяет генератор коротких кодов.
func (s *Service) SetCodeGenerator(g shortcode.Generator) {
	s.codes = g
}

// SetMetrics подключает Prometheus-метрики (опционально).
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// SetClock подменяет источник текущего времени.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}
