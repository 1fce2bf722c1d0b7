package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/url-shortener/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/ссылка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (login/email/short_code).
	ErrAlreadyExists = errors.New("already exists")
	// ErrExpired — срок действия ссылки истёк.
	ErrExpired = errors.New("expired")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД и проставляет user.ID.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByLogin находит пользователя по логину (точное совпадение).
	UserByLogin(ctx context.Context, login string) (*models.User, error)
	// UserByEmail находит пользователя по email (точное совпадение).
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// URLStorage выполняет операции над короткими ссылками.
type URLStorage interface {
	// URLCodeExists проверяет, занят ли короткий код.
	URLCodeExists(ctx context.Context, code string) (bool, error)
	// SaveURL сохраняет новую ссылку и проставляет url.ID и url.CreatedAt.
	SaveURL(ctx context.Context, url *models.ShortURL) error
	// URLByCode находит ссылку по короткому коду.
	URLByCode(ctx context.Context, code string) (*models.ShortURL, error)
	// IncrementVisits атомарно увеличивает счётчик посещений активной ссылки
	// и возвращает её новое состояние.
	IncrementVisits(ctx context.Context, code string, now time.Time) (*models.ShortURL, error)
	// UpdateURL меняет код и (если expiresAt != nil) срок ссылки владельца.
	UpdateURL(ctx context.Context, id, userID int64, code string, expiresAt *time.Time) (*models.ShortURL, error)
	// DeleteURL удаляет ссылку владельца.
	DeleteURL(ctx context.Context, id, userID int64) error
	// URLsByUser возвращает все ссылки пользователя в порядке создания.
	URLsByUser(ctx context.Context, userID int64) ([]models.ShortURL, error)
	// CountURLs возвращает число активных и истёкших ссылок на момент now.
	CountURLs(ctx context.Context, now time.Time) (active, expired int64, err error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	URLStorage
	Close()
}
