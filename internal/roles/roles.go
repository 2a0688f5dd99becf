// Package roles infers which spreadsheet column plays which semantic role.
// Headers in casually maintained sheets are unreliable or absent, so
// resolution runs in three tiers: multilingual keyword matching against the
// header row, content sniffing of the first data row, and finally fixed
// positional defaults. Every role always resolves to some column index.
package roles

import (
	"regexp"
	"strings"
)

// Role names one semantic column meaning.
type Role string

const (
	Date     Role = "date"
	Time     Role = "time"
	Amount   Role = "amount"
	Note     Role = "note"
	Category Role = "category"
)

// ResolvedBy records which tier of the resolver assigned a column.
type ResolvedBy string

const (
	ByKeyword ResolvedBy = "keyword"
	BySniff   ResolvedBy = "sniff"
	ByDefault ResolvedBy = "default"
)

// Assignment binds a role to a column index together with the tier that
// resolved it.
type Assignment struct {
	Column     int
	ResolvedBy ResolvedBy
}

// Map assigns every role to a column index. The index may be out of range
// for short rows; missing cells read as empty.
type Map map[Role]Assignment

// order fixes the iteration order so inference is deterministic.
var order = []Role{Date, Time, Amount, Note, Category}

// keywords holds the Thai and English header terms per role. Matching is a
// case-insensitive substring test, first matching column wins.
var keywords = map[Role][]string{
	Date:     {"วันที่", "วัน", "date"},
	Time:     {"เวลา", "time"},
	Amount:   {"จำนวนเงิน", "ยอดเงิน", "ยอด", "ราคา", "เงิน", "amount", "total", "price", "sum"},
	Note:     {"หมายเหตุ", "รายละเอียด", "โน้ต", "note", "memo", "detail", "description"},
	Category: {"ประเภท", "หมวดหมู่", "หมวด", "ผู้รับ", "ร้านค้า", "category", "type", "receiver", "payee", "merchant"},
}

// defaults are the positional fallback columns for headerless sheets.
var defaults = map[Role]int{
	Category: 2,
	Amount:   3,
	Date:     4,
	Time:     5,
	Note:     6,
}

// dateShape requires a separator so a plain amount is never mistaken for a
// date.
var dateShape = regexp.MustCompile(`^\d{1,4}[/\-]\d{1,2}[/\-]\d{1,4}$`)

// amountShape matches numbers with optional sign, thousands separators, and
// decimals.
var amountShape = regexp.MustCompile(`^-?[0-9][0-9,]*(?:\.[0-9]+)?$`)

// Infer builds the role map for one source. It consumes the header row and,
// when keyword matching leaves date or amount unresolved, the first data
// row. Keyword resolutions are never overwritten by sniffing.
func Infer(header, firstData []string) Map {
	m := Map{}

	for _, role := range order {
		if col, ok := matchKeyword(header, keywords[role]); ok {
			m[role] = Assignment{Column: col, ResolvedBy: ByKeyword}
		}
	}

	if len(firstData) > 0 {
		if _, ok := m[Date]; !ok {
			for i, cell := range firstData {
				if dateShape.MatchString(strings.TrimSpace(cell)) {
					m[Date] = Assignment{Column: i, ResolvedBy: BySniff}
					break
				}
			}
		}
		if _, ok := m[Amount]; !ok {
			for i, cell := range firstData {
				if a, taken := m[Date]; taken && a.Column == i {
					continue
				}
				if amountShape.MatchString(strings.TrimSpace(cell)) {
					m[Amount] = Assignment{Column: i, ResolvedBy: BySniff}
					break
				}
			}
		}
	}

	for _, role := range order {
		if _, ok := m[role]; !ok {
			m[role] = Assignment{Column: defaults[role], ResolvedBy: ByDefault}
		}
	}

	return m
}

// Column returns the column index assigned to a role.
func (m Map) Column(role Role) int {
	return m[role].Column
}

// Cell reads the role's cell from a row, returning the empty string when the
// assigned column is out of range.
func (m Map) Cell(row []string, role Role) string {
	idx := m[role].Column
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func matchKeyword(header []string, terms []string) (int, bool) {
	for i, cell := range header {
		h := strings.ToLower(strings.TrimSpace(cell))
		if h == "" {
			continue
		}
		for _, term := range terms {
			if strings.Contains(h, term) {
				return i, true
			}
		}
	}
	return 0, false
}
