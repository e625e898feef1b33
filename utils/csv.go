package utils

import (
	"strconv"
	"strings"
	"time"
)

// CSVRow is one exportable transaction row. Label carries the income
// source or the expense category depending on the export.
type CSVRow struct {
	Icon   string
	Label  string
	Amount float64
	Date   time.Time
}

// BuildTransactionCSV renders rows into a CSV blob with a fixed header.
// Icon, label and date are double-quoted with embedded quotes doubled;
// amount is emitted unquoted as given. Dates are full RFC 3339
// timestamps in UTC for both exports. Every row, header included, ends
// with "\n". An empty row list yields the header line only.
func BuildTransactionCSV(labelHeader string, rows []CSVRow) string {
	var b strings.Builder
	b.WriteString("Icon,")
	b.WriteString(labelHeader)
	b.WriteString(",Amount,Date\n")

	for _, row := range rows {
		b.WriteString(quoteCSV(row.Icon))
		b.WriteByte(',')
		b.WriteString(quoteCSV(row.Label))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(row.Amount, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(quoteCSV(row.Date.UTC().Format(time.RFC3339)))
		b.WriteByte('\n')
	}

	return b.String()
}

// quoteCSV wraps v in double quotes, doubling any embedded quote
func quoteCSV(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
