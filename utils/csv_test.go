package utils

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactionCSVEmpty(t *testing.T) {
	out := BuildTransactionCSV("Source", nil)
	assert.Equal(t, "Icon,Source,Amount,Date\n", out)

	out = BuildTransactionCSV("Category", []CSVRow{})
	assert.Equal(t, "Icon,Category,Amount,Date\n", out)
}

func TestBuildTransactionCSVQuoting(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	out := BuildTransactionCSV("Category", []CSVRow{
		{Icon: `cash "money"`, Label: "Food, Drinks", Amount: 99.5, Date: date},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3) // header, row, trailing empty
	assert.Equal(t, "Icon,Category,Amount,Date", lines[0])
	assert.Equal(t, `"cash ""money""","Food, Drinks",99.5,"2024-05-01T00:00:00Z"`, lines[1])
	assert.Equal(t, "", lines[2])
}

func TestBuildTransactionCSVAmountFormatting(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	out := BuildTransactionCSV("Source", []CSVRow{
		{Icon: "a", Label: "b", Amount: 100, Date: date},
		{Icon: "a", Label: "b", Amount: 0.25, Date: date},
	})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], ",100,")
	assert.Contains(t, lines[2], ",0.25,")
}

func TestBuildTransactionCSVRoundTrip(t *testing.T) {
	rows := []CSVRow{
		{Icon: "💰", Label: "Salary", Amount: 1200.5, Date: time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)},
		{Icon: "🏠", Label: `Rent "March"`, Amount: 800, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Icon: "🍔", Label: "Food", Amount: 42.75, Date: time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC)},
	}

	out := BuildTransactionCSV("Source", rows)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)

	assert.Equal(t, []string{"Icon", "Source", "Amount", "Date"}, records[0])

	for i, row := range rows {
		record := records[i+1]
		assert.Equal(t, row.Icon, record[0])
		assert.Equal(t, row.Label, record[1])

		amount, err := strconv.ParseFloat(record[2], 64)
		require.NoError(t, err)
		assert.Equal(t, row.Amount, amount)

		date, err := time.Parse(time.RFC3339, record[3])
		require.NoError(t, err)
		assert.True(t, date.Equal(row.Date))
	}
}
