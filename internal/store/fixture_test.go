package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lorevault/internal/store/storetest"
)

// newTestCatalog opens a catalog over a throwaway database file seeded
// with the shared fixture.
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	storetest.Apply(t, c.db)
	return c
}

// rebuiltTestCatalog additionally runs the projection rebuild.
func rebuiltTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := newTestCatalog(t)
	require.NoError(t, c.RebuildProjection(context.Background(), "pf"))
	return c
}
