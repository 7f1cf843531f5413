// Package sheets fetches and parses the Google Sheets CSV exports that feed
// the build.
package sheets

import "strings"

// Parse converts raw CSV text into rows of fields. It is deliberately
// permissive: there is no schema and no error path. Quoted fields may embed
// commas, newlines, and doubled quotes; carriage returns are discarded so
// CRLF and lone-CR input normalize to the same rows. Row 0 is the sheet
// header and is left in place for the caller to skip.
func Parse(raw string) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(raw) && raw[i+1] == '"' {
				// Doubled quote inside a quoted field is a literal quote.
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case c == '\n' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
			rows = append(rows, row)
			row = nil
		case c == '\r':
			// Dropped everywhere, even inside quotes.
		default:
			field.WriteByte(c)
		}
	}

	// Input without a trailing newline leaves a pending field or row.
	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}

	return rows
}
