package tabular_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmln/partsmerge/pkg/tabular"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mini.csv",
		"mfr_pn,dk_pn,description\nSN74HC00N,296-1234-ND,NAND gate\nATMEGA328P,ATMEGA328P-PU-ND\n")

	table, err := tabular.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mfr_pn", "dk_pn", "description"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "NAND gate", table.Rows[0]["description"])
	assert.Equal(t, "", table.Rows[1]["description"], "short records pad with empty strings")
}

func TestReadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bom.csv", "\xEF\xBB\xBFa,b\n1,2\n")

	table, err := tabular.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Columns)
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "full.csv", "a,b,c,d\n1,2,3,4\n5,6,7,8\n9,10,11,12\n")

	info, err := tabular.Probe(path)
	require.NoError(t, err)
	assert.Equal(t, 4, info.Columns)
	assert.Equal(t, 3, info.Rows)
	assert.Greater(t, info.Size, int64(0))
}

func TestProbeMissingFile(t *testing.T) {
	_, err := tabular.Probe(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	columns := []string{"dk_pn", "qty_shipped", "series"}
	rows := []map[string]string{
		{"dk_pn": "A-ND", "qty_shipped": "25", "series": "HC", "ignored": "x"},
		{"dk_pn": "B-ND", "qty_shipped": "1"},
	}
	require.NoError(t, tabular.Write(path, columns, rows))

	table, err := tabular.Read(path)
	require.NoError(t, err)
	assert.Equal(t, columns, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "25", table.Rows[0]["qty_shipped"])
	assert.Equal(t, "", table.Rows[1]["series"], "missing cells written empty")
	assert.NotContains(t, table.Rows[0], "ignored")
}
