package store_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/statuspad-dev/statuspad/db"
)

// openTestDB opens an in-memory SQLite database through the pure Go
// driver. A single pooled connection keeps the in-memory schema alive for
// the whole test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)

	gdb, err := gorm.Open(gormsqlite.Dialector{Conn: conn}, &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() { _ = conn.Close() })

	return gdb
}
