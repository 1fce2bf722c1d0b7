package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/url-shortener/internal/models"
	"github.com/pribylovaa/url-shortener/internal/pkg/identity"
	"github.com/pribylovaa/url-shortener/internal/storage"
)

// seqCodes выдаёт коды из списка по кругу.
type seqCodes struct {
	codes []string
	i     int
}

func (g *seqCodes) Generate() string {
	c := g.codes[g.i%len(g.codes)]
	g.i++
	return c
}

var alice = &models.User{ID: 1, Login: "alice1", Email: "a@x.com", Role: models.RoleUser}

func asAlice() context.Context {
	return identity.Into(context.Background(), alice)
}

func TestCreateURL_OK(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	svc.SetCodeGenerator(&seqCodes{codes: []string{"abc123"}})

	st.EXPECT().URLCodeExists(gomock.Any(), "abc123").Return(false, nil)
	st.EXPECT().SaveURL(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.ShortURL) error {
			require.Equal(t, int64(1), u.UserID)
			require.Zero(t, u.Visits)
			u.ID = 10
			u.CreatedAt = testNow
			return nil
		})

	url, err := svc.CreateURL(asAlice(), "https://example.com/a", nil)
	require.NoError(t, err)
	require.Equal(t, "abc123", url.ShortCode)
	require.Equal(t, "alice1", url.OwnerLogin)
	require.Nil(t, url.ExpiresAt)
}

func TestCreateURL_Anonymous(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)

	_, err := svc.CreateURL(context.Background(), "https://example.com", nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, msgUnauthorized, errMessage(t, err))
}

func TestCreateURL_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)

	_, err := svc.CreateURL(asAlice(), "ftp://example.com", nil)
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, msgURLIncorrect, errMessage(t, err))

	past := testNow.Add(-time.Minute)
	_, err = svc.CreateURL(asAlice(), "https://example.com", &past)
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, msgPastExpiration, errMessage(t, err))

	now := testNow
	_, err = svc.CreateURL(asAlice(), "https://example.com", &now)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateURL_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	svc.SetCodeGenerator(&seqCodes{codes: []string{"taken1", "race01", "free01"}})

	gomock.InOrder(
		st.EXPECT().URLCodeExists(gomock.Any(), "taken1").Return(true, nil),
		st.EXPECT().URLCodeExists(gomock.Any(), "race01").Return(false, nil),
		st.EXPECT().SaveURL(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().URLCodeExists(gomock.Any(), "free01").Return(false, nil),
		st.EXPECT().SaveURL(gomock.Any(), gomock.Any()).Return(nil),
	)

	url, err := svc.CreateURL(asAlice(), "https://example.com", nil)
	require.NoError(t, err)
	require.Equal(t, "free01", url.ShortCode)
}

func TestCreateURL_AttemptsExhausted(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	svc.SetCodeGenerator(&seqCodes{codes: []string{"dup001"}})

	st.EXPECT().URLCodeExists(gomock.Any(), "dup001").Return(true, nil).Times(maxCodeAttempts)

	_, err := svc.CreateURL(asAlice(), "https://example.com", nil)
	require.ErrorIs(t, err, ErrCodeSpaceExhausted)

	var se *Error
	require.False(t, errors.As(err, &se))
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)

	st.EXPECT().IncrementVisits(gomock.Any(), "abc123", testNow).
		Return(&models.ShortURL{ShortCode: "abc123", LongURL: "https://example.com", Visits: 1}, nil)
	st.EXPECT().IncrementVisits(gomock.Any(), "gone01", testNow).Return(nil, storage.ErrNotFound)
	st.EXPECT().IncrementVisits(gomock.Any(), "old001", testNow).Return(nil, storage.ErrExpired)

	url, err := svc.ResolveURL(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", url.LongURL)
	require.Equal(t, int64(1), url.Visits)

	_, err = svc.ResolveURL(context.Background(), "gone01")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, msgURLNotFound, errMessage(t, err))

	_, err = svc.ResolveURL(context.Background(), "old001")
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, msgURLExpired, errMessage(t, err))

	_, err = svc.ResolveURL(context.Background(), "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateURL_RotatesCode(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	svc.SetCodeGenerator(&seqCodes{codes: []string{"new001"}})
	exp := testNow.Add(24 * time.Hour)

	st.EXPECT().URLByCode(gomock.Any(), "old001").Return(&models.ShortURL{ID: 5, ShortCode: "old001", UserID: 1}, nil)
	st.EXPECT().URLCodeExists(gomock.Any(), "new001").Return(false, nil)
	st.EXPECT().UpdateURL(gomock.Any(), int64(5), int64(1), "new001", &exp).
		Return(&models.ShortURL{ID: 5, ShortCode: "new001", UserID: 1, ExpiresAt: &exp}, nil)

	url, err := svc.UpdateURL(asAlice(), "old001", &exp)
	require.NoError(t, err)
	require.Equal(t, "new001", url.ShortCode)
	require.Equal(t, exp, *url.ExpiresAt)
}

func TestUpdateURL_ForeignLooksMissing(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)

	st.EXPECT().URLByCode(gomock.Any(), "bobs01").Return(&models.ShortURL{ID: 9, UserID: 2}, nil)
	st.EXPECT().URLByCode(gomock.Any(), "none01").Return(nil, storage.ErrNotFound)

	_, errForeign := svc.UpdateURL(asAlice(), "bobs01", nil)
	_, errMissing := svc.UpdateURL(asAlice(), "none01", nil)

	require.ErrorIs(t, errForeign, ErrNotFound)
	require.ErrorIs(t, errMissing, ErrNotFound)
	require.Equal(t, errMessage(t, errMissing), errMessage(t, errForeign))
}

func TestUpdateURL_PastExpiration(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	past := testNow.Add(-time.Hour)

	st.EXPECT().URLByCode(gomock.Any(), "old001").Return(&models.ShortURL{ID: 5, UserID: 1}, nil)

	_, err := svc.UpdateURL(asAlice(), "old001", &past)
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, msgPastExpiration, errMessage(t, err))
}

func TestDeleteURL(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)

	st.EXPECT().URLByCode(gomock.Any(), "abc123").Return(&models.ShortURL{ID: 5, UserID: 1}, nil)
	st.EXPECT().DeleteURL(gomock.Any(), int64(5), int64(1)).Return(nil)
	st.EXPECT().URLByCode(gomock.Any(), "bobs01").Return(&models.ShortURL{ID: 9, UserID: 2}, nil)

	require.NoError(t, svc.DeleteURL(asAlice(), "abc123"))

	err := svc.DeleteURL(asAlice(), "bobs01")
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteURL(context.Background(), "abc123")
	require.ErrorIs(t, err, ErrUnauthorized)
}
