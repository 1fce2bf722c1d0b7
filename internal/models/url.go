package models

import "time"

// ShortURL — соответствие короткого кода длинному URL.
//
// Описание:
//   - ShortCode уникален среди всех записей и меняется только при обновлении владельцем;
//   - Visits не убывает и увеличивается только успешным разрешением кода;
//   - ExpiresAt == nil означает бессрочную ссылку;
//   - UserID/OwnerLogin задаются при создании и не переназначаются.
type ShortURL struct {
	ID         int64
	ShortCode  string
	LongURL    string
	Visits     int64
	CreatedAt  time.Time
	ExpiresAt  *time.Time
	UserID     int64
	OwnerLogin string
}

// IsActive сообщает, активна ли ссылка на момент now.
// Состояние вычисляемое: ссылка без срока активна всегда,
// со сроком — пока ExpiresAt строго позже now.
func (u *ShortURL) IsActive(now time.Time) bool {
	return u.ExpiresAt == nil || u.ExpiresAt.After(now)
}

// URLStat — ссылка с вычисленным признаком активности.
type URLStat struct {
	URL    ShortURL
	Active bool
}

// URLStats — выборка ссылок владельца и сумма посещений по ней.
type URLStats struct {
	URLs        []URLStat
	TotalVisits int64
}
