package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/url-shortener/internal/models"
)

func ownedURLs() []models.ShortURL {
	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)

	return []models.ShortURL{
		{ID: 1, ShortCode: "aaaaaa", Visits: 3, UserID: 1},
		{ID: 2, ShortCode: "bbbbbb", Visits: 5, UserID: 1, ExpiresAt: &past},
		{ID: 3, ShortCode: "cccccc", Visits: 2, UserID: 1, ExpiresAt: &future},
	}
}

func TestListURLs(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	st.EXPECT().URLsByUser(gomock.Any(), int64(1)).Return(ownedURLs(), nil)

	stats, err := svc.ListURLs(asAlice())
	require.NoError(t, err)
	require.Equal(t, int64(10), stats.TotalVisits)
	require.Len(t, stats.URLs, 3)
	require.True(t, stats.URLs[0].Active)
	require.False(t, stats.URLs[1].Active)
	require.True(t, stats.URLs[2].Active)
}

func TestListActiveURLs(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	st.EXPECT().URLsByUser(gomock.Any(), int64(1)).Return(ownedURLs(), nil)

	stats, err := svc.ListActiveURLs(asAlice())
	require.NoError(t, err)
	require.Equal(t, int64(5), stats.TotalVisits)
	require.Len(t, stats.URLs, 2)
	require.Equal(t, "aaaaaa", stats.URLs[0].URL.ShortCode)
	require.Equal(t, "cccccc", stats.URLs[1].URL.ShortCode)
}

func TestListURLs_Empty(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	st.EXPECT().URLsByUser(gomock.Any(), int64(1)).Return([]models.ShortURL{}, nil)

	stats, err := svc.ListURLs(asAlice())
	require.NoError(t, err)
	require.Zero(t, stats.TotalVisits)
	require.NotNil(t, stats.URLs)
	require.Empty(t, stats.URLs)
}

func TestListURLs_Anonymous(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)

	_, err := svc.ListURLs(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestURLVisits(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	st.EXPECT().URLByCode(gomock.Any(), "aaaaaa").Return(&models.ShortURL{ID: 1, UserID: 1, Visits: 6}, nil)
	st.EXPECT().URLByCode(gomock.Any(), "bobs01").Return(&models.ShortURL{ID: 9, UserID: 2, Visits: 1}, nil)

	v, err := svc.URLVisits(asAlice(), "aaaaaa")
	require.NoError(t, err)
	require.Equal(t, int64(6), v)

	_, err = svc.URLVisits(asAlice(), "bobs01")
	require.ErrorIs(t, err, ErrNotFound)
}
