package db

import (
	"github.com/orsinium-labs/enum"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

// Driver is a database/sql driver name.
type Driver enum.Member[string]

var (
	// DriverMattn is github.com/mattn/go-sqlite3, the cgo engine.
	DriverMattn = Driver{Value: "sqlite3"}
	// DriverModernc is modernc.org/sqlite, the pure Go engine.
	DriverModernc = Driver{Value: "sqlite"}

	Drivers = enum.New(DriverMattn, DriverModernc)
)
