// Package plan defines the tagged tuple a parsed statement lowers into —
// the Plan the glossary names, consumed by the database dispatcher.
package plan

import "centauri/internal/app/lex"

// Kind tags which of the six statement shapes a Statement holds.
type Kind int

const (
	KindCreateTable Kind = iota
	KindCreateTableAs
	KindDropTable
	KindPrintTable
	KindInsertInto
	KindSelect
)

// Select describes the columns/tables/condition of a SELECT, shared
// verbatim by the standalone SELECT statement and by CREATE TABLE ... AS
// SELECT.
type Select struct {
	Columns   []string // empty means "*"
	Tables    []string
	Condition []lex.Token // postfix; empty means no WHERE
}

// Statement is the single sum type every parsed query lowers into. Exactly
// the fields relevant to Kind are populated.
type Statement struct {
	Kind Kind

	// CreateTable
	TableName   string
	ColumnNames []string
	ColumnTypes []string // "int" | "float" | "string"

	// CreateTableAs reuses Select plus TableName above.
	Select Select

	// InsertInto
	Values []string // raw literal lexemes, one per column
}

func NewCreateTable(tableName string, columnNames, columnTypes []string) Statement {
	return Statement{Kind: KindCreateTable, TableName: tableName, ColumnNames: columnNames, ColumnTypes: columnTypes}
}

func NewCreateTableAs(tableName string, sel Select) Statement {
	return Statement{Kind: KindCreateTableAs, TableName: tableName, Select: sel}
}

func NewDropTable(tableName string) Statement {
	return Statement{Kind: KindDropTable, TableName: tableName}
}

func NewPrintTable(tableName string) Statement {
	return Statement{Kind: KindPrintTable, TableName: tableName}
}

func NewInsertInto(tableName string, values []string) Statement {
	return Statement{Kind: KindInsertInto, TableName: tableName, Values: values}
}

func NewSelect(sel Select) Statement {
	return Statement{Kind: KindSelect, Select: sel}
}
