// Package database implements the name→table catalog and the dispatcher
// that executes a parsed plan.Statement against it.
//
// Shaped after server.CentauriDB: a single struct guarded by a
// sync.RWMutex, wrapping subsystem errors with fmt.Errorf("...: %w", ...).
// Here the subsystem is just an in-memory map — there is no file, buffer,
// log, or transaction manager to coordinate.
package database

import (
	"fmt"
	"sync"

	"centauri/internal/app/apperrors"
	"centauri/internal/app/plan"
	"centauri/internal/app/record"
	"centauri/internal/app/types"
)

// Database holds the named-table catalog. The mutex guards the catalog map
// and row appends; a table returned by PrintTable, and the tables a SELECT
// reads, are read after the lock is released, so statements are not
// isolated from a concurrent INSERT. The REPL drives it from one goroutine.
type Database struct {
	mu     sync.RWMutex
	tables map[string]*record.Table
}

// New returns an empty database.
func New() *Database {
	return &Database{tables: make(map[string]*record.Table)}
}

// Execute runs one statement against the catalog. The returned table is
// non-nil only for PrintTable and Select (and the SELECT leg implicit in
// CreateTableAs is not returned to the caller) — CREATE/DROP/INSERT
// produce no output, matching the REPL's print-or-silent contract.
//
// Mutations happen only as the last step of a successful statement: a
// failed CREATE/INSERT/CreateTableAs never touches the catalog, and a
// failed SELECT never touches anything at all.
func (db *Database) Execute(stmt plan.Statement) (*record.Table, error) {
	switch stmt.Kind {
	case plan.KindCreateTable:
		return nil, db.createTable(stmt.TableName, stmt.ColumnNames, stmt.ColumnTypes)
	case plan.KindCreateTableAs:
		return nil, db.createTableAs(stmt.TableName, stmt.Select)
	case plan.KindDropTable:
		return nil, db.dropTable(stmt.TableName)
	case plan.KindPrintTable:
		return db.printTable(stmt.TableName)
	case plan.KindInsertInto:
		return nil, db.insertInto(stmt.TableName, stmt.Values)
	case plan.KindSelect:
		return db.runSelect(stmt.Select)
	default:
		return nil, fmt.Errorf("unknown statement kind %v", stmt.Kind)
	}
}

func (db *Database) createTable(name string, columnNames, columnTypes []string) error {
	kinds := make([]types.Kind, len(columnTypes))
	for i, t := range columnTypes {
		k, err := kindFromTypeName(t)
		if err != nil {
			return err
		}
		kinds[i] = k
	}
	header, err := record.NewHeader(columnNames, kinds)
	if err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if _, exists := db.tables[name]; exists {
		return apperrors.NameErrf("table %q already exists", name)
	}
	db.tables[name] = record.NewTable(header)
	return nil
}

func (db *Database) createTableAs(name string, sel plan.Select) error {
	result, err := db.runSelect(sel)
	if err != nil {
		return fmt.Errorf("create table as select: %w", err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if _, exists := db.tables[name]; exists {
		return apperrors.NameErrf("table %q already exists", name)
	}
	db.tables[name] = result
	return nil
}

func (db *Database) dropTable(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, exists := db.tables[name]; !exists {
		return apperrors.NameErrf("table %q does not exist", name)
	}
	delete(db.tables, name)
	return nil
}

func (db *Database) printTable(name string) (*record.Table, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, exists := db.tables[name]
	if !exists {
		return nil, apperrors.NameErrf("table %q does not exist", name)
	}
	return t, nil
}

func (db *Database) insertInto(name string, values []string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	t, exists := db.tables[name]
	if !exists {
		return apperrors.NameErrf("table %q does not exist", name)
	}
	return t.InsertRow(values)
}

func kindFromTypeName(name string) (types.Kind, error) {
	switch name {
	case "int":
		return types.KindInt, nil
	case "float":
		return types.KindFloat, nil
	case "string":
		return types.KindString, nil
	default:
		return 0, apperrors.SyntaxErrf("unknown column type %q", name)
	}
}
