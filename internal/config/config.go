// Package config parses the command line and environment configuration of
// both programs.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
	"github.com/sqltutorial/sqltutorial/internal/db"
	internallog "github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/styled"
	"github.com/sqltutorial/sqltutorial/internal/version"
)

// Common holds the options shared by both programs.
type Common struct {
	Driver               string `arg:"--driver,env:SQLTUTORIAL_DRIVER" help:"SQLite driver (sqlite3, sqlite)" default:"sqlite3"`
	DisableOptimizations bool   `arg:"--disable-optimizations,env:SQLTUTORIAL_DISABLE_OPTIMIZATIONS" help:"Disable the synchronous and cache tuning of the database connection" default:"false"`
	WAL                  bool   `arg:"--wal,env:SQLTUTORIAL_WAL" help:"Switch the database file to WAL journal mode, which persists in the file" default:"false"`
	Output               string `arg:"--output,env:SQLTUTORIAL_OUTPUT" help:"Row output format (plain, table)" default:"plain"`
	LogLevel             string `arg:"--log-level,env:SQLTUTORIAL_LOG_LEVEL" help:"Minimum level of the logs written to stderr (debug, info, warn, error)" default:"warn"`
	NoColor              bool   `arg:"--no-color,env:SQLTUTORIAL_NO_COLOR" help:"Disable colored output" default:"false"`
	Progress             bool   `arg:"--progress,env:SQLTUTORIAL_PROGRESS" help:"Show a progress bar on stderr while seed rows are inserted" default:"false"`
}

// Exercises represents the configuration for the exercise runner.
type Exercises struct {
	Common
	DatabaseFile string `arg:"--database-file,env:SQLTUTORIAL_EXERCISES_DATABASE_FILE" help:"Database file with the Students table" default:"students.db"`
	Interactive  bool   `arg:"--interactive,env:SQLTUTORIAL_INTERACTIVE" help:"Open a prompt for your own queries after the exercises" default:"false"`
}

func (Exercises) Version() string {
	return fmt.Sprintf("%s\n", version.ExercisesVersion())
}

// Tutorial represents the configuration for the CRUD walkthrough.
type Tutorial struct {
	Common
	DatabaseFile string `arg:"--database-file,env:SQLTUTORIAL_TUTORIAL_DATABASE_FILE" help:"Database file with the users table" default:"mydatabase.db"`
}

func (Tutorial) Version() string {
	return fmt.Sprintf("%s\n", version.TutorialVersion())
}

// MustParseExercises parses and validates the exercise runner configuration
// from the command line arguments. It exits the program on error.
func MustParseExercises(args []string) Exercises {
	cfg := Exercises{}
	mustParse(args, &cfg, &cfg.Common)
	return cfg
}

// MustParseTutorial parses and validates the walkthrough configuration from
// the command line arguments. It exits the program on error.
func MustParseTutorial(args []string) Tutorial {
	cfg := Tutorial{}
	mustParse(args, &cfg, &cfg.Common)
	return cfg
}

func mustParse(args []string, dest any, common *Common) {
	applyDotEnv(".env", os.Stderr)

	parser, err := arg.NewParser(arg.Config{}, dest)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := common.validate(); err != nil {
		log.Fatal(err)
	}
}

// loadDotEnv loads path into the environment when it exists. Variables that
// are already set win over the file.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// applyDotEnv loads path like loadDotEnv. The file is optional, so a
// malformed one is reported as a warning on w and otherwise ignored.
func applyDotEnv(path string, w io.Writer) {
	if err := loadDotEnv(path); err != nil {
		logger := internallog.NewLogger(w, internallog.LevelWarn)
		logger.Warn("ignoring .env file", internallog.KV{
			"path":  path,
			"error": err.Error(),
		})
	}
}

func (c Common) validate() error {
	if err := validateDriver(c.Driver); err != nil {
		return err
	}
	if err := validateOutput(c.Output); err != nil {
		return err
	}
	if _, err := internallog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// DatabaseDriver returns the validated driver.
func (c Common) DatabaseDriver() db.Driver {
	if d := db.Drivers.Parse(c.Driver); d != nil {
		return *d
	}
	return db.DriverMattn
}

// OutputFormat returns the validated output format.
func (c Common) OutputFormat() styled.OutputFormat {
	if f := styled.OutputFormats.Parse(c.Output); f != nil {
		return *f
	}
	return styled.OutputPlain
}

// Level returns the validated log level.
func (c Common) Level() internallog.Level {
	level, err := internallog.ParseLevel(c.LogLevel)
	if err != nil {
		return internallog.LevelWarn
	}
	return level
}

// validateDriver validates if driver is a registered SQLite driver.
func validateDriver(driver string) error {
	if db.Drivers.Parse(driver) != nil {
		return nil
	}
	return fmt.Errorf(
		"invalid driver, valid values are: %s",
		strings.Join(db.Drivers.Values(), ", "),
	)
}

// validateOutput validates if output is a known output format.
func validateOutput(output string) error {
	if styled.OutputFormats.Parse(output) != nil {
		return nil
	}
	return fmt.Errorf(
		"invalid output format, valid values are: %s",
		strings.Join(styled.OutputFormats.Values(), ", "),
	)
}
