package handlers

import (
	"time"

	"github.com/pribylovaa/url-shortener/internal/models"
)

type registerRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type createURLRequest struct {
	LongURL   string     `json:"longUrl"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type updateURLRequest struct {
	ShortURLCode string     `json:"shortUrlCode"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

// urlDTO — представление ссылки для владельца.
type urlDTO struct {
	ShortURLCode string     `json:"shortUrlCode"`
	LongURL      string     `json:"longUrl"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Author       string     `json:"author"`
}

type urlResponse struct {
	URL urlDTO `json:"url"`
}

// resolvedURL — анонимный ответ: только исходный адрес.
type resolvedURL struct {
	LongURL string `json:"longUrl"`
}

type resolveResponse struct {
	URL resolvedURL `json:"url"`
}

type urlStatDTO struct {
	urlDTO
	Visits   int64 `json:"visits"`
	IsActive bool  `json:"isActive"`
}

type statsResponse struct {
	TotalVisits int64        `json:"totalVisits"`
	URLs        []urlStatDTO `json:"urls"`
}

type visitsResponse struct {
	Visits int64 `json:"visits"`
}

func toURLDTO(u *models.ShortURL) urlDTO {
	return urlDTO{
		ShortURLCode: u.ShortCode,
		LongURL:      u.LongURL,
		CreatedAt:    u.CreatedAt,
		ExpiresAt:    u.ExpiresAt,
		Author:       u.OwnerLogin,
	}
}

func toStatsResponse(s *models.URLStats) statsResponse {
	out := statsResponse{
		TotalVisits: s.TotalVisits,
		URLs:        make([]urlStatDTO, 0, len(s.URLs)),
	}

	for i := range s.URLs {
		st := &s.URLs[i]
		out.URLs = append(out.URLs, urlStatDTO{
			urlDTO:   toURLDTO(&st.URL),
			Visits:   st.URL.Visits,
			IsActive: st.Active,
		})
	}

	return out
}
