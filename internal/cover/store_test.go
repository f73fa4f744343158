package cover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("cover-types", []byte("payload")))
	got, err := s.Get("cover-types")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), got)
}

func TestFileStore_MissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get("ghost")
	require.Error(t, err)
}

func TestFileStore_KeyCannotEscapeDir(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("../outside/key", []byte("x")))
	got, err := s.Get("../outside/key")
	require.NoError(t, err)
	require.Equal(t, []byte("x"), got)
}

func TestCatalogPersistence_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	src := DefaultCatalog("sfrpg", nil)
	require.NoError(t, SaveCatalog(s, "catalog", src))

	loaded, err := LoadCatalog(s, "catalog", nil)
	require.NoError(t, err)
	require.Equal(t, src.Len(), loaded.Len())

	want, _ := src.Get(CoverImproved)
	got, ok := loaded.Get(CoverImproved)
	require.True(t, ok)
	require.Equal(t, want.PercentThreshold, got.PercentThreshold)
	require.NotNil(t, got.Priority)
	require.Equal(t, *want.Priority, *got.Priority)
}

func TestLoadCatalog_DropsInvalidEntries(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	payload := "- id: good\n  percent_threshold: 0.5\n- id: bad\n  percent_threshold: 3.0\n"
	require.NoError(t, s.Set("catalog", []byte(payload)))

	loaded, err := LoadCatalog(s, "catalog", nil)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	_, ok := loaded.Get("good")
	require.True(t, ok)
}
