package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/url-shortener/internal/models"
)

func TestFrom_Anonymous(t *testing.T) {
	t.Parallel()

	u, ok := From(context.Background())
	require.False(t, ok)
	require.Nil(t, u)
}

func TestIntoAndFrom_RoundTrip(t *testing.T) {
	t.Parallel()

	want := &models.User{ID: 7, Login: "alice1"}
	ctx := Into(context.Background(), want)

	got, ok := From(ctx)
	require.True(t, ok)
	require.Same(t, want, got)
}

func TestFrom_NilUserIsAnonymous(t *testing.T) {
	t.Parallel()

	var nilUser *models.User
	_, ok := From(Into(context.Background(), nilUser))
	require.False(t, ok)
}

func TestInto_ShadowsParent(t *testing.T) {
	t.Parallel()

	parent := Into(context.Background(), &models.User{Login: "alice1"})
	child := Into(parent, &models.User{Login: "bob001"})

	p, _ := From(parent)
	c, _ := From(child)
	require.Equal(t, "alice1", p.Login)
	require.Equal(t, "bob001", c.Login)
}
