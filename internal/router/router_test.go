package router

import (
	"testing"

	"portfolio-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsAtHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.ViewHome, New().Current())
}

func TestNavigate_AnyViewReachableInOneStep(t *testing.T) {
	t.Parallel()

	for _, from := range model.Views() {
		for _, to := range model.Views() {
			r := New()
			require.NoError(t, r.Navigate(from))
			require.NoError(t, r.Navigate(to))
			assert.Equal(t, to, r.Current(), "from %s", from)
		}
	}
}

func TestNavigate_Idempotent(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Navigate(model.ViewAbout))
	first := r.Current()
	require.NoError(t, r.Navigate(model.ViewAbout))
	assert.Equal(t, first, r.Current())
}

func TestNavigate_UnknownViewKeepsState(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Navigate(model.ViewProjects))

	err := r.Navigate(model.View("settings"))
	require.ErrorIs(t, err, ErrUnknownView)
	assert.Equal(t, model.ViewProjects, r.Current())
}

func TestNextPrev_Cycle(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Equal(t, model.ViewDashboard, r.Next())
	assert.Equal(t, model.ViewHome, r.Prev())
	assert.Equal(t, model.ViewContact, r.Prev())
	assert.Equal(t, model.ViewHome, r.Next())
}
