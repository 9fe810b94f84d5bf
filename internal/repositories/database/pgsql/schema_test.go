package pgsql

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The conversions DDL must agree with the persistence model: commission fields
// are pointers that stay nil until approval, so their columns must admit NULL,
// while the identity columns the model types as plain strings must not.
func TestConversionsSchemaMatchesModelNullability(t *testing.T) {
	ddl, err := os.ReadFile("../../../../migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	table := extractCreateTable(t, string(ddl), "conversions")

	nullableColumns := []string{"commission_rate", "commissionable_amount", "commission_amount"}
	for _, column := range nullableColumns {
		line := columnLine(t, table, column)
		assert.NotContains(t, line, "NOT NULL", "column %s must stay NULL until approval", column)
	}

	requiredColumns := []string{"lead_id", "rep_id", "revenue_amount", "currency", "status", "submitted_by", "version"}
	for _, column := range requiredColumns {
		line := columnLine(t, table, column)
		assert.Contains(t, line, "NOT NULL", "column %s is a plain field on the model", column)
	}

	assert.Contains(t, table, "conversions_approved_has_commission",
		"approved rows must carry computed commission fields")
}

// extractCreateTable returns the CREATE TABLE block for the named table.
func extractCreateTable(t *testing.T, ddl, table string) string {
	t.Helper()
	re := regexp.MustCompile(`(?s)CREATE TABLE ` + table + ` \(.*?\n\);`)
	block := re.FindString(ddl)
	require.NotEmpty(t, block, "CREATE TABLE %s not found in migration", table)
	return block
}

// columnLine returns the declaration line for a column within a table block.
func columnLine(t *testing.T, table, column string) string {
	t.Helper()
	for _, line := range strings.Split(table, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), column+" ") {
			return line
		}
	}
	t.Fatalf("column %s not found", column)
	return ""
}
