// Package sheetcsv parses raw delimited text exported from spreadsheets into
// rows of string cells. Exports of hand-maintained sheets are messy: quoted
// fields with embedded commas and newlines, ragged row lengths, stray blank
// lines. The parser is a total function over any input string and never
// fails.
package sheetcsv

import (
	"strings"
)

// Parse scans the payload character by character and returns the ordered rows
// of cells. Cells are trimmed of surrounding whitespace, doubled quotes
// inside a quoted field collapse to a literal quote, carriage returns are
// discarded, and rows consisting solely of empty cells are dropped.
func Parse(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	endCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	endRow := func() {
		endCell()
		for _, c := range row {
			if c != "" {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			endCell()
		case ch == '\n' && !inQuotes:
			endRow()
		case ch == '\r':
			// dropped even inside quoted fields
		default:
			cell.WriteByte(ch)
		}
	}

	// Flush any trailing partial row at end of input.
	if cell.Len() > 0 || len(row) > 0 {
		endRow()
	}

	return rows
}

// Quote renders one cell per standard CSV convention: wrapped in quotes when
// it contains a delimiter, quote, or newline, with embedded quotes doubled.
func Quote(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
