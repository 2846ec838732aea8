package exercises

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/sqltutorial/sqltutorial/internal/db"
	"github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/stretchr/testify/require"
)

func openStudents(t *testing.T, path string) *db.DB {
	t.Helper()
	database, err := db.Open(context.Background(), db.Config{
		Logger: log.NewLogger(io.Discard, log.LevelError),
		Path:   path,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func writeFile(path string) error {
	return os.WriteFile(path, []byte("not a directory"), 0644)
}
