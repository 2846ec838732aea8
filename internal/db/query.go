package db

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/orsinium-labs/enum"
	"github.com/sqltutorial/sqltutorial/internal/log"
)

// Statement represents a statement to be executed.
type Statement struct {
	Query  string
	Params []any
}

// WriteResult represents the result of a write statement.
type WriteResult struct {
	LastInsertID int64
	RowsAffected int64
}

// ReadResult represents the result of a read statement.
type ReadResult struct {
	Columns []string
	Types   []string
	Values  [][]any
}

// Result represents the result of a statement run through Run.
type Result struct {
	Type        StatementType
	WriteResult WriteResult
	ReadResult  ReadResult
}

// StatementType represents the type of a given SQLite statement.
type StatementType enum.Member[string]

var (
	StatementTypeUnknown  = StatementType{Value: "unknown"}
	StatementTypeRead     = StatementType{Value: "read"}
	StatementTypeWrite    = StatementType{Value: "write"}
	StatementTypeBegin    = StatementType{Value: "begin"}
	StatementTypeCommit   = StatementType{Value: "commit"}
	StatementTypeRollback = StatementType{Value: "rollback"}
)

// readKeywords are the leading keywords treated as reads when the driver
// cannot report it.
var readKeywords = []string{"select", "with", "values", "explain", "pragma"}

// detectStatementType detects the type of statement between read, write,
// begin, commit, and rollback.
func (db *DB) detectStatementType(
	ctx context.Context, query string,
) (StatementType, error) {
	trimmed := strings.ToLower(strings.TrimSpace(query))

	switch {
	case strings.HasPrefix(trimmed, "begin"):
		return StatementTypeBegin, nil
	case strings.HasPrefix(trimmed, "commit"), strings.HasPrefix(trimmed, "end"):
		return StatementTypeCommit, nil
	case strings.HasPrefix(trimmed, "rollback"):
		return StatementTypeRollback, nil
	}

	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return StatementTypeUnknown, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Close()

	isReadOnly := false
	err = conn.Raw(func(driverConn any) error {
		sqliteConn, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			isReadOnly = hasReadKeyword(trimmed)
			return nil
		}

		drvStmt, err := sqliteConn.Prepare(query)
		if err != nil {
			return &QueryError{Query: query, Err: err}
		}
		defer drvStmt.Close()
		isReadOnly = drvStmt.(*sqlite3.SQLiteStmt).Readonly()
		return nil
	})
	if err != nil {
		return StatementTypeUnknown, fmt.Errorf("failed to prepare statement: %w", err)
	}

	if isReadOnly {
		return StatementTypeRead, nil
	}
	return StatementTypeWrite, nil
}

func hasReadKeyword(trimmed string) bool {
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return false
	}
	return slices.Contains(readKeywords, strings.TrimSuffix(fields[0], ";"))
}

// Run executes a statement of any type, choosing read or write execution
// from the statement itself.
func (db *DB) Run(ctx context.Context, stmt Statement) (Result, error) {
	typeOfStatement, err := db.detectStatementType(ctx, stmt.Query)
	if err != nil {
		return Result{}, fmt.Errorf("failed to detect statement type: %w", err)
	}

	switch typeOfStatement {
	case StatementTypeRead:
		read, err := db.Query(ctx, stmt)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: StatementTypeRead, ReadResult: read}, nil
	case StatementTypeWrite:
		write, err := db.Exec(ctx, stmt)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: StatementTypeWrite, WriteResult: write}, nil
	case StatementTypeBegin, StatementTypeCommit, StatementTypeRollback:
		if _, err := db.conn.ExecContext(ctx, stmt.Query, stmt.Params...); err != nil {
			return Result{}, &QueryError{Query: stmt.Query, Err: err}
		}
		db.countTransaction(typeOfStatement)
		return Result{Type: typeOfStatement}, nil
	}

	return Result{}, fmt.Errorf("unknown statement type: %s", typeOfStatement.Value)
}

func (db *DB) countTransaction(t StatementType) {
	switch t {
	case StatementTypeBegin:
		db.stats.Begins++
	case StatementTypeCommit:
		db.stats.Commits++
	case StatementTypeRollback:
		db.stats.Rollbacks++
	}
}

// Exec executes a write statement.
func (db *DB) Exec(ctx context.Context, stmt Statement) (WriteResult, error) {
	db.Logger.DebugNs(log.NsDatabase, "executing write", log.KV{"query": stmt.Query})

	result, err := db.conn.ExecContext(ctx, stmt.Query, stmt.Params...)
	if err != nil {
		return WriteResult{}, &QueryError{Query: stmt.Query, Err: err}
	}

	lastInsertId, err := result.LastInsertId()
	if err != nil {
		return WriteResult{}, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return WriteResult{}, fmt.Errorf("failed to get rows affected: %w", err)
	}

	db.stats.Writes++
	return WriteResult{
		LastInsertID: lastInsertId,
		RowsAffected: rowsAffected,
	}, nil
}

// ExecMany prepares query once and executes it for every set of params in
// rows inside a single transaction. The returned RowsAffected is the sum over
// all executions, so ignored inserts count as zero.
//
// If not nil, onRow is called after every successful execution.
func (db *DB) ExecMany(
	ctx context.Context, query string, rows [][]any, onRow func(),
) (WriteResult, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return WriteResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return WriteResult{}, &QueryError{Query: query, Err: err}
	}
	defer stmt.Close()

	total := WriteResult{}
	for _, params := range rows {
		result, err := stmt.ExecContext(ctx, params...)
		if err != nil {
			return WriteResult{}, &QueryError{Query: query, Err: err}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return WriteResult{}, fmt.Errorf("failed to get rows affected: %w", err)
		}
		lastInsertId, err := result.LastInsertId()
		if err != nil {
			return WriteResult{}, fmt.Errorf("failed to get last insert ID: %w", err)
		}

		total.RowsAffected += affected
		total.LastInsertID = lastInsertId
		db.stats.Writes++

		if onRow != nil {
			onRow()
		}
	}

	if err := tx.Commit(); err != nil {
		return WriteResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	db.Logger.DebugNs(log.NsDatabase, "batch committed", log.KV{
		"query":         query,
		"rows":          len(rows),
		"rows_affected": total.RowsAffected,
	})
	return total, nil
}

// Query executes a read statement and fetches all of its rows.
func (db *DB) Query(ctx context.Context, stmt Statement) (ReadResult, error) {
	db.Logger.DebugNs(log.NsDatabase, "executing read", log.KV{"query": stmt.Query})

	result, err := db.conn.QueryContext(ctx, stmt.Query, stmt.Params...)
	if err != nil {
		return ReadResult{}, &QueryError{Query: stmt.Query, Err: err}
	}
	defer result.Close()

	columns, err := result.Columns()
	if err != nil {
		return ReadResult{}, fmt.Errorf("failed to get columns: %w", err)
	}

	types, typesOk := []string{}, false
	values := [][]any{}
	for result.Next() {
		row := make([]any, len(columns))
		scans := make([]any, len(columns))
		for i := range scans {
			scans[i] = &row[i]
		}

		if err = result.Scan(scans...); err != nil {
			return ReadResult{}, fmt.Errorf("failed to scan row: %w", err)
		}

		if !typesOk {
			enhancedTypes, err := getColumnTypes(result, row)
			if err != nil {
				return ReadResult{}, fmt.Errorf("failed to get column types: %w", err)
			}
			types, typesOk = enhancedTypes, true
		}

		values = append(values, row)
	}
	if err := result.Err(); err != nil {
		return ReadResult{}, &QueryError{Query: stmt.Query, Err: err}
	}

	db.stats.Reads++
	return ReadResult{
		Columns: columns,
		Types:   types,
		Values:  values,
	}, nil
}

// getColumnTypes returns the column types for a read statement.
//
// It tries to get the column types from the result, but if it has empty
// types, it tries inferring them from the first row following the SQLite
// datatypes documentation https://www.sqlite.org/datatype3.html.
func getColumnTypes(result *sql.Rows, singleRow []any) ([]string, error) {
	types, err := result.ColumnTypes()
	if err != nil {
		return []string{}, fmt.Errorf("failed to get column types: %w", err)
	}

	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = strings.ToLower(t.DatabaseTypeName())
		if typeNames[i] != "" {
			continue
		}

		switch singleRow[i].(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			typeNames[i] = "integer"
		case float32, float64:
			typeNames[i] = "real"
		case bool:
			typeNames[i] = "boolean"
		case []byte:
			typeNames[i] = "blob"
		case string:
			typeNames[i] = "text"
		}
	}

	return typeNames, nil
}
