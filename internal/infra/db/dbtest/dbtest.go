// Package dbtest opens migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/suggestbox/suggestbox/internal/infra/db"
)

// New returns a fresh database in t.TempDir with every migration applied.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	d, err := db.Open(db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "suggestbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(d) })

	require.NoError(t, db.Migrate(context.Background(), d, db.DriverSQLite))
	return d
}
