package services

import (
	"strconv"
	"strings"

	"kotseai-backend/models"
)

// The cost parser never fails: empty input, random prose, or a truncated
// table all yield {rows: [], grandTotal: 0}. Cost estimation is an
// enhancement; the schedule is the primary value, so this side degrades
// silently instead of failing the request.

// ParseCostReport extracts the primary cost table, an optional secondary
// details table, and the upstream-declared grand total from raw reply text,
// then left-joins the details into the primary rows.
func ParseCostReport(raw string) *models.CostReport {
	report := &models.CostReport{Rows: []models.CostRow{}}

	details := make(map[string]models.CostRowDetails)
	inDetails := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") || isSeparatorRow(line) {
			continue
		}

		cells := splitCells(line)
		if len(cells) == 0 {
			continue
		}

		first := normalizeCell(cells[0])
		switch {
		case strings.EqualFold(first, "grand total"):
			// Terminates the primary table; the declared total is trusted
			// verbatim, not recomputed from row sums.
			if len(cells) >= 6 {
				report.GrandTotal = parseMoney(cells[5])
			}
		case strings.EqualFold(first, "item"):
			inDetails = len(cells) >= 2 && strings.EqualFold(normalizeCell(cells[1]), "why needed")
		case inDetails:
			if key := joinKey(cells[0]); key != "" {
				// last-write-wins for duplicated item names
				details[key] = decodeDetailRow(cells)
			}
		default:
			if row, ok := decodeCostRow(cells); ok {
				report.Rows = append(report.Rows, row)
			}
		}
	}

	report.Rows = mergeCostDetails(report.Rows, details)
	return report
}

// decodeCostRow maps primary-table cells positionally into a CostRow.
// Column order changes upstream are a one-place edit here.
func decodeCostRow(cells []string) (models.CostRow, bool) {
	item := normalizeCell(cellAt(cells, 0))
	if item == "" {
		return models.CostRow{}, false
	}
	return models.CostRow{
		Item:          item,
		OEMInterval:   normalizeCell(cellAt(cells, 1)),
		DIYDifficulty: parseMoney(cellAt(cells, 2)),
		PartsPhp:      parseMoney(cellAt(cells, 3)),
		LaborPhp:      parseMoney(cellAt(cells, 4)),
		TotalPhp:      parseMoney(cellAt(cells, 5)),
	}, true
}

// decodeDetailRow maps details-table cells positionally. A cell equal to a
// not-applicable sentinel maps to absent, not to the literal string.
func decodeDetailRow(cells []string) models.CostRowDetails {
	return models.CostRowDetails{
		WhyNeeded:     optionalText(cellAt(cells, 1)),
		SpecialTools:  optionalList(cellAt(cells, 2)),
		OEMPartNumber: optionalText(cellAt(cells, 3)),
		Aftermarket:   optionalMoney(cellAt(cells, 4)),
		SurplusPrice:  optionalMoney(cellAt(cells, 5)),
		CostPerKm:     optionalFloat(cellAt(cells, 6)),
		VideoURL:      optionalText(cellAt(cells, 7)),
	}
}

// mergeCostDetails left-joins each primary row with its details entry.
// Matching is case-insensitive with collapsed whitespace; rows without a
// match pass through unchanged with all optional fields absent.
func mergeCostDetails(rows []models.CostRow, details map[string]models.CostRowDetails) []models.CostRow {
	if len(details) == 0 {
		return rows
	}
	for i := range rows {
		d, ok := details[joinKey(rows[i].Item)]
		if !ok {
			continue
		}
		rows[i].WhyNeeded = d.WhyNeeded
		rows[i].SpecialTools = d.SpecialTools
		rows[i].OEMPartNumber = d.OEMPartNumber
		rows[i].Aftermarket = d.Aftermarket
		rows[i].SurplusPrice = d.SurplusPrice
		rows[i].CostPerKm = d.CostPerKm
		rows[i].VideoURL = d.VideoURL
	}
	return rows
}

// splitCells drops the delimiters at both ends and trims every cell
func splitCells(line string) []string {
	trimmed := strings.Trim(line, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isSeparatorRow reports whether the row is a markdown divider like |---|---|
func isSeparatorRow(line string) bool {
	hasDash := false
	for _, r := range line {
		switch r {
		case '|', ' ', ':', '\t':
		case '-':
			hasDash = true
		default:
			return false
		}
	}
	return hasDash
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// normalizeCell strips markdown bold markers and surrounding space
func normalizeCell(cell string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(cell), "*"))
}

// joinKey normalizes an item name for detail-table matching
func joinKey(cell string) string {
	return strings.Join(strings.Fields(strings.ToLower(normalizeCell(cell))), " ")
}

// isAbsent reports whether the cell is a not-applicable sentinel
func isAbsent(cell string) bool {
	c := normalizeCell(cell)
	switch strings.ToLower(c) {
	case "", "n/a", "na", "none", "-", "—", "–":
		return true
	}
	return false
}

// parseMoney strips every non-digit rune and parses the remainder as an
// integer. Currency symbols, thousands separators, and unit suffixes are
// silently discarded; no digits at all yields 0.
func parseMoney(cell string) int {
	digits := strings.Builder{}
	for _, r := range cell {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

func optionalText(cell string) *string {
	if isAbsent(cell) {
		return nil
	}
	c := normalizeCell(cell)
	return &c
}

func optionalList(cell string) []string {
	if isAbsent(cell) {
		return nil
	}
	parts := strings.Split(normalizeCell(cell), ",")
	var tools []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tools = append(tools, t)
		}
	}
	return tools
}

func optionalMoney(cell string) *int {
	if isAbsent(cell) {
		return nil
	}
	n := parseMoney(cell)
	return &n
}

func optionalFloat(cell string) *float64 {
	if isAbsent(cell) {
		return nil
	}
	filtered := strings.Builder{}
	for _, r := range normalizeCell(cell) {
		if (r >= '0' && r <= '9') || r == '.' {
			filtered.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(filtered.String(), 64)
	if err != nil {
		return nil
	}
	return &f
}
