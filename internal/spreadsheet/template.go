package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/stacdex/stacdex/internal/models"
)

// TemplateFilename is the suggested download name for the import template.
const TemplateFilename = "StacDex_Import_Template.xlsx"

// templateHeaders is the canonical header row offered to users. Every entry
// is a listed synonym of its field, so a template round-trips unchanged.
var templateHeaders = []any{
	"Title", "Category", "Status", "Player Name", "Team Name", "Year",
	"Brand", "Sub Brand", "Rookie", "Autograph", "Numbered To", "Patch Count",
	"Grading Company", "Grade Value", "Condition", "Market Value",
	"Price Listed", "Date Listed", "Date Sold", "eBay URL", "Tags",
}

var templateExample = []any{
	"2020 Panini Prizm Patrick Mahomes Silver", "Football", "Unlisted",
	"Patrick Mahomes", "Kansas City Chiefs", "2020", "Panini", "Prizm Silver",
	"No", "No", "", "", "PSA", "10", "Mint", "1500.00", "", "", "", "",
	"QB,Chiefs,Prizm",
}

// BuildTemplate generates the two-sheet import template: a "Card Data"
// sheet with the canonical headers plus one example row, and an
// "Instructions" sheet listing the currently valid lookup values.
func BuildTemplate(lookups models.LookupData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const dataSheet = "Card Data"
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, fmt.Errorf("rename data sheet: %w", err)
	}
	if err := f.SetSheetRow(dataSheet, "A1", &templateHeaders); err != nil {
		return nil, fmt.Errorf("write template headers: %w", err)
	}
	if err := f.SetSheetRow(dataSheet, "A2", &templateExample); err != nil {
		return nil, fmt.Errorf("write example row: %w", err)
	}

	const instructionsSheet = "Instructions"
	if _, err := f.NewSheet(instructionsSheet); err != nil {
		return nil, fmt.Errorf("create instructions sheet: %w", err)
	}
	for i, line := range instructionLines(lookups) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(instructionsSheet, cell, line); err != nil {
			return nil, fmt.Errorf("write instructions: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize template: %w", err)
	}
	return buf.Bytes(), nil
}

func instructionLines(lookups models.LookupData) []string {
	return []string{
		"BULK IMPORT INSTRUCTIONS",
		"",
		"REQUIRED FIELDS:",
		"- Title (card title/description)",
		"- Category (sport type)",
		"",
		"OPTIONAL FIELDS:",
		"All other fields are optional and can be left blank",
		"",
		"VALID VALUES:",
		"",
		"Categories:",
		joinNames(lookups.Categories),
		"",
		"Statuses:",
		joinNames(lookups.Statuses),
		`(Defaults to "Unlisted" if not provided)`,
		"",
		"Grading Companies:",
		joinNames(lookups.GradingCompanies),
		"",
		"Conditions:",
		joinNames(lookups.Conditions),
		"",
		"BOOLEAN FIELDS (Rookie, Autograph):",
		"Accepted values: Y, N, Yes, No, True, False, 1, 0",
		`Leave blank for "No"`,
		"",
		"DATE FORMATS:",
		"YYYY-MM-DD (e.g., 2024-01-15)",
		"",
		"TAGS:",
		"Comma-separated values (e.g., QB,Chiefs,Prizm)",
		"",
		"COLUMN NAMES:",
		"Column headers are flexible and case-insensitive",
		`Examples: "Player Name" = "Player" = "PLAYER" = "athlete"`,
		"Unknown columns will be ignored without error",
		"",
		"NOTES:",
		"- All cards are imported in a single transaction",
		"- If any row fails validation, the entire import is rejected",
		"- Fix all errors and re-upload the file",
		"- Images are not supported in bulk import (add individually later)",
	}
}

func joinNames(entries []models.LookupEntry) string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return strings.Join(names, ", ")
}
