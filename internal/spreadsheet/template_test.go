package spreadsheet

import (
	"testing"

	"github.com/stacdex/stacdex/internal/models"
)

func TestBuildTemplate_RoundTrips(t *testing.T) {
	t.Parallel()

	lookups := models.LookupData{
		Categories: []models.LookupEntry{{ID: 1, Name: "Football"}},
		Statuses:   []models.LookupEntry{{ID: 1, Name: "Unlisted"}},
	}
	data, err := BuildTemplate(lookups)
	if err != nil {
		t.Fatalf("build template: %v", err)
	}

	// The generated template must itself be importable.
	sheet, err := Parse(data, MimeXLSX)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if len(sheet.Headers) != 21 {
		t.Fatalf("got %d headers, want 21", len(sheet.Headers))
	}
	if len(sheet.Rows) != 1 {
		t.Fatalf("got %d example rows, want 1", len(sheet.Rows))
	}
	if sheet.Rows[0]["Category"] != "Football" {
		t.Fatalf("example category = %q", sheet.Rows[0]["Category"])
	}
}
