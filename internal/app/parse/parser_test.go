package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centauri/internal/app/plan"
)

func TestParseCreateTable(t *testing.T) {
	stmt, err := Parse("create table t (c1 int, c2 float)")
	require.NoError(t, err)
	assert.Equal(t, plan.KindCreateTable, stmt.Kind)
	assert.Equal(t, "t", stmt.TableName)
	assert.Equal(t, []string{"c1", "c2"}, stmt.ColumnNames)
	assert.Equal(t, []string{"int", "float"}, stmt.ColumnTypes)
}

func TestParseCreateTableRejectsDuplicateColumnNames(t *testing.T) {
	_, err := Parse("create table t (c1 int, c1 float)")
	assert.Error(t, err)
}

func TestParseDropTable(t *testing.T) {
	stmt, err := Parse("drop t")
	require.NoError(t, err)
	assert.Equal(t, plan.KindDropTable, stmt.Kind)
	assert.Equal(t, "t", stmt.TableName)
}

func TestParsePrintTable(t *testing.T) {
	stmt, err := Parse("print t")
	require.NoError(t, err)
	assert.Equal(t, plan.KindPrintTable, stmt.Kind)
	assert.Equal(t, "t", stmt.TableName)
}

func TestParseInsertInto(t *testing.T) {
	stmt, err := Parse("insert into t values 1,2,3.5")
	require.NoError(t, err)
	assert.Equal(t, plan.KindInsertInto, stmt.Kind)
	assert.Equal(t, "t", stmt.TableName)
	assert.Equal(t, []string{"1", "2", "3.5"}, stmt.Values)
}

func TestParseSelectStar(t *testing.T) {
	stmt, err := Parse("select * from t1, t2")
	require.NoError(t, err)
	assert.Equal(t, plan.KindSelect, stmt.Kind)
	assert.Empty(t, stmt.Select.Columns)
	assert.Equal(t, []string{"t1", "t2"}, stmt.Select.Tables)
}

func TestParseSelectWithWhere(t *testing.T) {
	stmt, err := Parse("select c1 from t where c1 > 1 and c1 < 4")
	require.NoError(t, err)
	lexemes := make([]string, len(stmt.Select.Condition))
	for i, tok := range stmt.Select.Condition {
		lexemes[i] = tok.Lexeme
	}
	assert.Equal(t, []string{"c1", "1", ">", "c1", "4", "<", "and"}, lexemes)
}

func TestParseCreateTableAsSelect(t *testing.T) {
	stmt, err := Parse("create table t2 as select c1 from t1")
	require.NoError(t, err)
	assert.Equal(t, plan.KindCreateTableAs, stmt.Kind)
	assert.Equal(t, "t2", stmt.TableName)
	assert.Equal(t, []string{"c1"}, stmt.Select.Columns)
}

func TestParseRejectsTrailingTokens(t *testing.T) {
	_, err := Parse("print t extra")
	assert.Error(t, err)
}

func TestParseRejectsPersistenceCommands(t *testing.T) {
	_, err := Parse("load t")
	assert.Error(t, err)
	_, err = Parse("store t")
	assert.Error(t, err)
}
