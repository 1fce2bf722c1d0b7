package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/url-shortener/internal/models"
)

// ListURLs возвращает все ссылки вызывающего пользователя с признаком
// активности и суммой посещений.
func (s *Service) ListURLs(ctx context.Context) (*models.URLStats, error) {
	const op = "service.stats.ListURLs"

	stats, err := s.userStats(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// ListActiveURLs — как ListURLs, но только активные ссылки;
// сумма посещений считается по отфильтрованному набору.
func (s *Service) ListActiveURLs(ctx context.Context) (*models.URLStats, error) {
	const op = "service.stats.ListActiveURLs"

	stats, err := s.userStats(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// URLVisits возвращает число посещений ссылки вызывающего пользователя.
func (s *Service) URLVisits(ctx context.Context, code string) (int64, error) {
	const op = "service.stats.URLVisits"

	user, err := AuthenticatedUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	url, err := s.ownedURL(ctx, user, code)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return url.Visits, nil
}

func (s *Service) userStats(ctx context.Context, activeOnly bool) (*models.URLStats, error) {
	user, err := AuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	urls, err := s.storage.URLsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	stats := &models.URLStats{URLs: make([]models.URLStat, 0, len(urls))}

	for _, url := range urls {
		active := url.IsActive(now)
		if activeOnly && !active {
			continue
		}

		stats.URLs = append(stats.URLs, models.URLStat{URL: url, Active: active})
		stats.TotalVisits += url.Visits
	}

	return stats, nil
}
