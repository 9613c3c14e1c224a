package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dextrack/internal/adapter"
	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/profile"
	"github.com/mmcdole/dextrack/internal/store"
)

func TestProfileService(t *testing.T) {
	st, err := store.Open("")
	require.NoError(t, err)
	svc := NewProfileService(st, "local", adapter.NullLogger())

	p, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), p)

	p, err = svc.Update("Ash", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Name: "Ash", Title: profile.DefaultTitle}, p)

	p, err = svc.Update("", "Champion")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Name: "Ash", Title: "Champion"}, p)

	p, err = svc.Save(domain.Profile{})
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), p)
}
