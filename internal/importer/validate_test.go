package importer

import (
	"testing"

	"github.com/stacdex/stacdex/internal/models"
)

func strp(s string) *string   { return &s }
func intp(n int) *int         { return &n }
func fltp(f float64) *float64 { return &f }

func testLookups() models.LookupData {
	return models.LookupData{
		Categories: []models.LookupEntry{
			{ID: 1, Name: "Football"},
			{ID: 2, Name: "Baseball"},
		},
		Statuses: []models.LookupEntry{
			{ID: 7, Name: "Unlisted"},
			{ID: 8, Name: "Listed"},
		},
		GradingCompanies: []models.LookupEntry{{ID: 1, Name: "PSA"}},
		Conditions:       []models.LookupEntry{{ID: 1, Name: "Mint"}},
	}
}

func TestValidateRows_MissingTitle(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{RowNumber: 2, Title: strp("Card A"), Category: strp("Football")},
		{RowNumber: 3, Title: strp(""), Category: strp("Baseball")},
	}
	valid, errs := ValidateRows(rows, testLookups())
	if valid {
		t.Fatalf("expected invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	want := ValidationError{Row: 3, Field: "title", Message: "Title is required"}
	if errs[0] != want {
		t.Fatalf("error = %+v, want %+v", errs[0], want)
	}
}

func TestValidateRows_CategoryRequired(t *testing.T) {
	t.Parallel()

	rows := []Row{{RowNumber: 2, Title: strp("Card A"), Category: strp("")}}
	valid, errs := ValidateRows(rows, testLookups())
	if valid || len(errs) != 1 {
		t.Fatalf("valid=%v errs=%v, want one category error", valid, errs)
	}
	if errs[0].Field != "category" || errs[0].Message != "Category is required" {
		t.Fatalf("error = %+v", errs[0])
	}
}

func TestValidateRows_UnknownCategoryListsValidNames(t *testing.T) {
	t.Parallel()

	rows := []Row{{RowNumber: 2, Title: strp("Card A"), Category: strp("Cricket")}}
	valid, errs := ValidateRows(rows, testLookups())
	if valid || len(errs) != 1 {
		t.Fatalf("valid=%v errs=%v", valid, errs)
	}
	want := "Invalid category 'Cricket'. Must be: Football, Baseball"
	if errs[0].Message != want {
		t.Fatalf("message = %q, want %q", errs[0].Message, want)
	}
}

func TestValidateRows_CategoryCaseInsensitive(t *testing.T) {
	t.Parallel()

	rows := []Row{{RowNumber: 2, Title: strp("Card A"), Category: strp("fOOtBALL")}}
	if valid, errs := ValidateRows(rows, testLookups()); !valid {
		t.Fatalf("case-insensitive category match failed: %v", errs)
	}
}

func TestValidateRows_YearBounds(t *testing.T) {
	t.Parallel()

	base := func(year int) []Row {
		return []Row{{RowNumber: 2, Title: strp("Card A"), Category: strp("Football"), Year: intp(year)}}
	}

	if valid, errs := ValidateRows(base(1899), testLookups()); valid || len(errs) != 1 {
		t.Fatalf("year 1899: valid=%v errs=%v", valid, errs)
	} else if want := "Invalid year '1899'. Must be between 1900 and 2025"; errs[0].Message != want {
		t.Fatalf("message = %q, want %q", errs[0].Message, want)
	}
	if valid, _ := ValidateRows(base(1900), testLookups()); !valid {
		t.Fatalf("year 1900 must be accepted (inclusive bound)")
	}
	if valid, _ := ValidateRows(base(2025), testLookups()); !valid {
		t.Fatalf("year 2025 must be accepted (inclusive bound)")
	}
	if valid, _ := ValidateRows(base(2026), testLookups()); valid {
		t.Fatalf("year 2026 must be rejected")
	}
}

func TestValidateRows_GradeBounds(t *testing.T) {
	t.Parallel()

	base := func(grade float64) []Row {
		return []Row{{RowNumber: 2, Title: strp("Card A"), Category: strp("Football"), GradeValue: fltp(grade)}}
	}

	if valid, errs := ValidateRows(base(10.5), testLookups()); valid || len(errs) != 1 {
		t.Fatalf("grade 10.5: valid=%v errs=%v", valid, errs)
	} else if want := "Invalid grade value '10.5'. Must be between 0 and 10"; errs[0].Message != want {
		t.Fatalf("message = %q, want %q", errs[0].Message, want)
	}
	if valid, _ := ValidateRows(base(-0.5), testLookups()); valid {
		t.Fatalf("negative grade must be rejected")
	}
	if valid, _ := ValidateRows(base(0), testLookups()); !valid {
		t.Fatalf("grade 0 must be accepted")
	}
	if valid, _ := ValidateRows(base(10), testLookups()); !valid {
		t.Fatalf("grade 10 must be accepted")
	}
}

func TestValidateRows_OptionalEnumerationsNotValidated(t *testing.T) {
	t.Parallel()

	rows := []Row{{
		RowNumber:      2,
		Title:          strp("Card A"),
		Category:       strp("Football"),
		Status:         strp("Imaginary Status"),
		GradingCompany: strp("Unknown Co"),
		Condition:      strp("Shredded"),
	}}
	if valid, errs := ValidateRows(rows, testLookups()); !valid {
		t.Fatalf("optional enumerations must never fail validation: %v", errs)
	}
}

func TestValidateRows_CollectsAllErrorsPerRow(t *testing.T) {
	t.Parallel()

	rows := []Row{{
		RowNumber:  2,
		Title:      nil,
		Category:   strp("Cricket"),
		Year:       intp(1850),
		GradeValue: fltp(11),
	}}
	valid, errs := ValidateRows(rows, testLookups())
	if valid {
		t.Fatalf("expected invalid")
	}
	if len(errs) != 4 {
		t.Fatalf("got %d errors, want 4: %v", len(errs), errs)
	}
	// Checks run in a fixed order within a row.
	wantFields := []string{"title", "category", "year", "grade_value"}
	for i, f := range wantFields {
		if errs[i].Field != f {
			t.Fatalf("error %d field = %s, want %s", i, errs[i].Field, f)
		}
		if errs[i].Row != 2 {
			t.Fatalf("error %d row = %d, want 2", i, errs[i].Row)
		}
	}
}

func TestValidateRows_ErrorsFollowRowOrder(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{RowNumber: 2, Title: nil, Category: strp("Football")},
		{RowNumber: 3, Title: strp("Card B"), Category: nil},
		{RowNumber: 4, Title: nil, Category: nil},
	}
	_, errs := ValidateRows(rows, testLookups())
	wantRows := []int{2, 3, 4, 4}
	if len(errs) != len(wantRows) {
		t.Fatalf("got %d errors, want %d", len(errs), len(wantRows))
	}
	for i, want := range wantRows {
		if errs[i].Row != want {
			t.Fatalf("error %d addressed row %d, want %d", i, errs[i].Row, want)
		}
	}
}
