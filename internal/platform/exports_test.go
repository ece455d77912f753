package platform

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

func TestExportSalesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "sales.csv")

	stats := model.SalesStatistics{
		Daily: []model.SalesPoint{
			{Label: "2026-08-29", Orders: 12, Revenue: decimal.RequireFromString("340.50")},
			{Label: "2026-08-30", Orders: 8, Revenue: decimal.RequireFromString("190.00")},
		},
		Monthly: []model.SalesPoint{
			{Label: "2026-08", Orders: 240, Revenue: decimal.RequireFromString("6800.00")},
		},
	}

	rows, err := ExportSalesCSV(path, stats)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus three data rows")
	assert.Equal(t, []string{"period", "label", "orders", "revenue"}, records[0])
	assert.Equal(t, []string{"daily", "2026-08-29", "12", "340.50"}, records[1])
	assert.Equal(t, []string{"monthly", "2026-08", "240", "6800.00"}, records[3])
}

func TestExportSalesCSV_EmptyStatistics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")

	rows, err := ExportSalesCSV(path, model.SalesStatistics{})
	require.NoError(t, err)
	assert.Zero(t, rows)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "period,label,orders,revenue\n", string(data))
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, CreateDirectoryIfNotExists(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory
	require.NoError(t, CreateDirectoryIfNotExists(dir))
}
