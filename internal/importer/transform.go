package importer

import (
	"strconv"
	"strings"
)

// Row is one transformed spreadsheet row. Pointer fields distinguish an
// absent cell (nil) from a present value; RowNumber is the 1-based position
// in the uploaded file, where row 1 is the header row.
type Row struct {
	RowNumber      int
	Title          *string
	Category       *string
	Status         *string
	PlayerName     *string
	TeamName       *string
	Year           *int
	Brand          *string
	SubBrand       *string
	Rookie         *bool
	Autograph      *bool
	NumberedTo     *int
	PatchCount     *int
	GradingCompany *string
	GradeValue     *float64
	Condition      *string
	MarketValue    *float64
	PriceListed    *float64
	DateListed     *string
	DateSold       *string
	EbayURL        *string
	Tags           *string
}

// TransformRows converts raw rows (keyed by original header text, missing
// cells defaulted to "") into typed rows, one per input row in order.
// Malformed values degrade to nil here; rejection is the validator's job.
func TransformRows(mapping map[string]Field, rawRows []map[string]string) []Row {
	rows := make([]Row, 0, len(rawRows))
	for i, raw := range rawRows {
		row := Row{RowNumber: i + 2} // +2 because row 1 is the header
		for header, field := range mapping {
			setField(&row, field, raw[header])
		}
		rows = append(rows, row)
	}
	return rows
}

// setField coerces one cell based on the canonical field, not the header.
// An empty cell is nil for every field type, booleans included.
func setField(row *Row, field Field, raw string) {
	if raw == "" {
		return
	}

	switch field {
	case FieldRookie:
		row.Rookie = boolPtr(raw)
	case FieldAutograph:
		row.Autograph = boolPtr(raw)
	case FieldYear:
		row.Year = intPtr(raw)
	case FieldNumberedTo:
		row.NumberedTo = intPtr(raw)
	case FieldPatchCount:
		row.PatchCount = intPtr(raw)
	case FieldMarketValue:
		row.MarketValue = floatPtr(raw)
	case FieldPriceListed:
		row.PriceListed = floatPtr(raw)
	case FieldGradeValue:
		row.GradeValue = floatPtr(raw)
	case FieldTitle:
		row.Title = stringPtr(raw)
	case FieldCategory:
		row.Category = stringPtr(raw)
	case FieldStatus:
		row.Status = stringPtr(raw)
	case FieldPlayerName:
		row.PlayerName = stringPtr(raw)
	case FieldTeamName:
		row.TeamName = stringPtr(raw)
	case FieldBrand:
		row.Brand = stringPtr(raw)
	case FieldSubBrand:
		row.SubBrand = stringPtr(raw)
	case FieldCondition:
		row.Condition = stringPtr(raw)
	case FieldDateListed:
		row.DateListed = stringPtr(raw)
	case FieldDateSold:
		row.DateSold = stringPtr(raw)
	case FieldEbayURL:
		row.EbayURL = stringPtr(raw)
	case FieldTags:
		row.Tags = stringPtr(raw)
	}
}

// parseBool accepts the conventional spreadsheet spellings of yes/no.
// Anything unrecognized is false rather than an error.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}

func boolPtr(raw string) *bool {
	b := parseBool(raw)
	return &b
}

func intPtr(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

func floatPtr(raw string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &f
}

func stringPtr(raw string) *string {
	s := strings.TrimSpace(raw)
	return &s
}
