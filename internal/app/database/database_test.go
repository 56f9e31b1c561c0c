package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centauri/internal/app/parse"
	"centauri/internal/app/testdata"
)

func runScenario(t *testing.T, s testdata.Scenario) {
	t.Helper()
	db := New()

	var lastTable string
	var lastErr error
	for _, stmt := range s.Statements {
		parsed, err := parse.Parse(stmt)
		if err != nil {
			lastErr = err
			lastTable = ""
			continue
		}
		tbl, err := db.Execute(parsed)
		lastErr = err
		if tbl != nil {
			lastTable = tbl.String()
		} else {
			lastTable = ""
		}
	}

	if s.ExpectError != "" {
		require.Error(t, lastErr)
		assert.Contains(t, strings.ToLower(lastErr.Error()), strings.ToLower(s.ExpectError))
		return
	}

	require.NoError(t, lastErr)
	assert.Equal(t, strings.TrimRight(s.Expect, "\n"), lastTable)
}

func TestScenarios(t *testing.T) {
	scenarios, err := testdata.LoadFile("../testdata/fixtures/scenarios.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, s)
		})
	}
}

func TestDropTableThenPrintErrors(t *testing.T) {
	db := New()
	create, err := parse.Parse("create table t (c1 int)")
	require.NoError(t, err)
	_, err = db.Execute(create)
	require.NoError(t, err)

	drop, err := parse.Parse("drop t")
	require.NoError(t, err)
	_, err = db.Execute(drop)
	require.NoError(t, err)

	print, err := parse.Parse("print t")
	require.NoError(t, err)
	_, err = db.Execute(print)
	assert.Error(t, err)
}

func TestCreateTableAsSelectMaterializesResult(t *testing.T) {
	db := New()
	for _, stmt := range []string{
		"create table t1 (c1 int, c2 int)",
		"insert into t1 values 1,2",
		"insert into t1 values 3,4",
		"create table t2 as select c1 from t1",
		"print t2",
	} {
		parsed, err := parse.Parse(stmt)
		require.NoError(t, err)
		tbl, err := db.Execute(parsed)
		require.NoError(t, err)
		if tbl != nil {
			assert.Equal(t, "c1 int\n1\n3", tbl.String())
		}
	}
}

func TestCreateTableDuplicateNameErrors(t *testing.T) {
	db := New()
	stmt, err := parse.Parse("create table t (c1 int)")
	require.NoError(t, err)
	_, err = db.Execute(stmt)
	require.NoError(t, err)

	_, err = db.Execute(stmt)
	assert.Error(t, err)
}
