package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stacdex/stacdex/internal/models"
)

// Year and grade bounds accepted by the validator.
const (
	MinYear  = 1900
	MaxYear  = 2025
	MinGrade = 0.0
	MaxGrade = 10.0
)

// ValidationError describes one rejected cell, addressed by file row number.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"error"`
}

// ValidateRows checks every row and collects every violation instead of
// stopping at the first, so a user can fix the whole file in one pass.
//
// Only title, category, year and grade reject the import. Status, grading
// company and condition are deliberately not checked: unrecognized values
// degrade to null at resolve time rather than failing the upload.
func ValidateRows(rows []Row, lookups models.LookupData) (bool, []ValidationError) {
	errs := []ValidationError{}

	categoryMap := lookupMap(lookups.Categories)
	categoryNames := make([]string, 0, len(lookups.Categories))
	for _, c := range lookups.Categories {
		categoryNames = append(categoryNames, c.Name)
	}

	for _, row := range rows {
		if row.Title == nil || strings.TrimSpace(*row.Title) == "" {
			errs = append(errs, ValidationError{
				Row:     row.RowNumber,
				Field:   "title",
				Message: "Title is required",
			})
		}

		if row.Category == nil || strings.TrimSpace(*row.Category) == "" {
			errs = append(errs, ValidationError{
				Row:     row.RowNumber,
				Field:   "category",
				Message: "Category is required",
			})
		} else if _, ok := categoryMap[strings.ToLower(*row.Category)]; !ok {
			errs = append(errs, ValidationError{
				Row:     row.RowNumber,
				Field:   "category",
				Message: fmt.Sprintf("Invalid category '%s'. Must be: %s", *row.Category, strings.Join(categoryNames, ", ")),
			})
		}

		if row.Year != nil && (*row.Year < MinYear || *row.Year > MaxYear) {
			errs = append(errs, ValidationError{
				Row:     row.RowNumber,
				Field:   "year",
				Message: fmt.Sprintf("Invalid year '%d'. Must be between %d and %d", *row.Year, MinYear, MaxYear),
			})
		}

		if row.GradeValue != nil && (*row.GradeValue < MinGrade || *row.GradeValue > MaxGrade) {
			errs = append(errs, ValidationError{
				Row:     row.RowNumber,
				Field:   "grade_value",
				Message: fmt.Sprintf("Invalid grade value '%s'. Must be between 0 and 10", strconv.FormatFloat(*row.GradeValue, 'f', -1, 64)),
			})
		}
	}

	return len(errs) == 0, errs
}
