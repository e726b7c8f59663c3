package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardVM struct {
	Steps   float64 `json:"steps"`
	Sleep   float64 `json:"sleep"`
	Percent int     `json:"percent"`
}

func TestCache_RoundTrip(t *testing.T) {
	cache, err := Open(t.TempDir())
	require.NoError(t, err)

	want := dashboardVM{Steps: 13162, Sleep: 7.2, Percent: 87}
	require.NoError(t, cache.Write("1503960366", "dashboard", want))

	var got dashboardVM
	hit, err := cache.Read("1503960366", "dashboard", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)
}

func TestCache_MissIsNotAnError(t *testing.T) {
	cache, err := Open(t.TempDir())
	require.NoError(t, err)

	var got dashboardVM
	hit, err := cache.Read("1503960366", "dashboard", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, got)
}

func TestCache_KeyedByProfileAndScreen(t *testing.T) {
	cache, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Write("1503960366", "dashboard", dashboardVM{Steps: 100}))
	require.NoError(t, cache.Write("1644430081", "dashboard", dashboardVM{Steps: 200}))
	require.NoError(t, cache.Write("1503960366", "progress", dashboardVM{Steps: 300}))

	var got dashboardVM
	hit, err := cache.Read("1503960366", "dashboard", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 100.0, got.Steps, "one profile's snapshot never leaks into another's")

	hit, err = cache.Read("1644430081", "dashboard", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 200.0, got.Steps)
}

func TestCache_WriteOverwrites(t *testing.T) {
	cache, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Write("p", "dashboard", dashboardVM{Steps: 1}))
	require.NoError(t, cache.Write("p", "dashboard", dashboardVM{Steps: 2}))

	var got dashboardVM
	hit, err := cache.Read("p", "dashboard", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 2.0, got.Steps)
}

func TestCache_CorruptSnapshotIsAMiss(t *testing.T) {
	dir := t.TempDir()
	cache, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "p-dashboard.json"), []byte("{not json"), 0o644))

	var got dashboardVM
	hit, err := cache.Read("p", "dashboard", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_NilCacheIsInert(t *testing.T) {
	var cache *Cache

	require.NoError(t, cache.Write("p", "dashboard", dashboardVM{}))
	hit, err := cache.Read("p", "dashboard", &dashboardVM{})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "default", sanitize("  "))
	assert.Equal(t, "a_b_c", sanitize("a/b c"))
	assert.Equal(t, "1503960366", sanitize("1503960366"))
}
