package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/sqltutorial/sqltutorial/internal/db"
	internallog "github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/styled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, dest any, args ...string) {
	t.Helper()
	parser, err := arg.NewParser(arg.Config{}, dest)
	require.NoError(t, err)
	require.NoError(t, parser.Parse(args))
}

func TestDefaults(t *testing.T) {
	t.Run("Exercises", func(t *testing.T) {
		cfg := Exercises{}
		parse(t, &cfg)
		assert.Equal(t, "students.db", cfg.DatabaseFile)
		assert.False(t, cfg.Interactive)
		assert.Equal(t, "sqlite3", cfg.Driver)
		assert.Equal(t, "plain", cfg.Output)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.False(t, cfg.WAL)
		assert.NoError(t, cfg.validate())
	})

	t.Run("Tutorial", func(t *testing.T) {
		cfg := Tutorial{}
		parse(t, &cfg)
		assert.Equal(t, "mydatabase.db", cfg.DatabaseFile)
		assert.False(t, cfg.Progress)
		assert.NoError(t, cfg.validate())
	})
}

func TestFlags(t *testing.T) {
	cfg := Exercises{}
	parse(t, &cfg,
		"--database-file", "/tmp/other.db",
		"--driver", "sqlite",
		"--output", "table",
		"--log-level", "debug",
		"--no-color",
		"--progress",
		"--wal",
		"--interactive",
	)

	assert.Equal(t, "/tmp/other.db", cfg.DatabaseFile)
	assert.True(t, cfg.Interactive)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Progress)
	assert.True(t, cfg.WAL)
	assert.Equal(t, db.DriverModernc, cfg.DatabaseDriver())
	assert.Equal(t, styled.OutputTable, cfg.OutputFormat())
	assert.Equal(t, internallog.LevelDebug, cfg.Level())
}

func TestEnv(t *testing.T) {
	t.Setenv("SQLTUTORIAL_TUTORIAL_DATABASE_FILE", "from-env.db")
	t.Setenv("SQLTUTORIAL_OUTPUT", "table")

	cfg := Tutorial{}
	parse(t, &cfg)
	assert.Equal(t, "from-env.db", cfg.DatabaseFile)
	assert.Equal(t, styled.OutputTable, cfg.OutputFormat())
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("MissingFileIsIgnored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("LoadsVariables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SQLTUTORIAL_TEST_DOTENV=loaded\n"), 0644))
		t.Setenv("SQLTUTORIAL_TEST_DOTENV", "")
		require.NoError(t, os.Unsetenv("SQLTUTORIAL_TEST_DOTENV"))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "loaded", os.Getenv("SQLTUTORIAL_TEST_DOTENV"))
	})

	t.Run("MalformedFileIsReported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("this is not a dotenv file\n"), 0644))

		err := loadDotEnv(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load "+path)
	})

	t.Run("ExistingVariableWins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SQLTUTORIAL_TEST_DOTENV=file\n"), 0644))
		t.Setenv("SQLTUTORIAL_TEST_DOTENV", "process")

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "process", os.Getenv("SQLTUTORIAL_TEST_DOTENV"))
	})
}

func TestApplyDotEnv(t *testing.T) {
	t.Run("MalformedFileOnlyWarns", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("this is not a dotenv file\n"), 0644))

		buf := &bytes.Buffer{}
		assert.NotPanics(t, func() { applyDotEnv(path, buf) })

		record := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "ignoring .env file", record["msg"])
		assert.Equal(t, path, record["path"])
		assert.Contains(t, record["error"], "failed to load")
	})

	t.Run("MissingFileIsSilent", func(t *testing.T) {
		buf := &bytes.Buffer{}
		applyDotEnv(filepath.Join(t.TempDir(), ".env"), buf)
		assert.Empty(t, buf.String())
	})

	t.Run("ValidFileIsSilent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SQLTUTORIAL_TEST_APPLY=1\n"), 0644))
		t.Setenv("SQLTUTORIAL_TEST_APPLY", "")
		require.NoError(t, os.Unsetenv("SQLTUTORIAL_TEST_APPLY"))

		buf := &bytes.Buffer{}
		applyDotEnv(path, buf)
		assert.Empty(t, buf.String())
		assert.Equal(t, "1", os.Getenv("SQLTUTORIAL_TEST_APPLY"))
	})
}

func Test_validateDriver(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
	}{
		{name: "valid - sqlite3", driver: "sqlite3", wantErr: false},
		{name: "valid - sqlite", driver: "sqlite", wantErr: false},
		{name: "invalid - empty string", driver: "", wantErr: true},
		{name: "invalid - unknown driver", driver: "postgres", wantErr: true},
		{name: "invalid - case sensitive", driver: "SQLITE3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDriver(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "valid values are: sqlite3, sqlite")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_validateOutput(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{name: "valid - plain", output: "plain", wantErr: false},
		{name: "valid - table", output: "table", wantErr: false},
		{name: "invalid - empty string", output: "", wantErr: true},
		{name: "invalid - unknown format", output: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOutput(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommonValidate(t *testing.T) {
	valid := Common{Driver: "sqlite3", Output: "plain", LogLevel: "warn"}
	assert.NoError(t, valid.validate())

	badLevel := valid
	badLevel.LogLevel = "loud"
	assert.Error(t, badLevel.validate())
	assert.Equal(t, internallog.LevelWarn, badLevel.Level())

	badDriver := valid
	badDriver.Driver = "duckdb"
	assert.Error(t, badDriver.validate())
	assert.Equal(t, db.DriverMattn, badDriver.DatabaseDriver())
}
