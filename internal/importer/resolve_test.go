package importer

import (
	"testing"

	"github.com/stacdex/stacdex/internal/models"
)

func TestNewLookupMaps_DefaultStatus(t *testing.T) {
	t.Parallel()

	maps := NewLookupMaps(testLookups())
	if maps.DefaultStatusID() == nil || *maps.DefaultStatusID() != 7 {
		t.Fatalf("default status = %v, want 7", maps.DefaultStatusID())
	}

	noUnlisted := testLookups()
	noUnlisted.Statuses = []models.LookupEntry{{ID: 8, Name: "Listed"}}
	if maps := NewLookupMaps(noUnlisted); maps.DefaultStatusID() != nil {
		t.Fatalf("default status should be nil without an Unlisted entry")
	}
}

func TestNewLookupMaps_DuplicateNamesLastWins(t *testing.T) {
	t.Parallel()

	lookups := testLookups()
	lookups.Categories = []models.LookupEntry{
		{ID: 1, Name: "Football"},
		{ID: 9, Name: "FOOTBALL"},
	}
	maps := NewLookupMaps(lookups)
	id := resolveID(maps.categories, strp("football"))
	if id == nil || *id != 9 {
		t.Fatalf("duplicate normalized name should resolve to the later entry, got %v", id)
	}
}

func TestResolveItem_StatusFallback(t *testing.T) {
	t.Parallel()

	maps := NewLookupMaps(testLookups())

	// Absent status gets the default.
	item := ResolveItem(42, Row{Title: strp("Card A"), Category: strp("Football")}, maps)
	if item.StatusID == nil || *item.StatusID != 7 {
		t.Fatalf("nil status resolved to %v, want default 7", item.StatusID)
	}

	// Unmatched status text also gets the default.
	item = ResolveItem(42, Row{Title: strp("Card A"), Category: strp("Football"), Status: strp("Imaginary")}, maps)
	if item.StatusID == nil || *item.StatusID != 7 {
		t.Fatalf("unmatched status resolved to %v, want default 7", item.StatusID)
	}

	// Matched status resolves case-insensitively.
	item = ResolveItem(42, Row{Title: strp("Card A"), Category: strp("Football"), Status: strp("LISTED")}, maps)
	if item.StatusID == nil || *item.StatusID != 8 {
		t.Fatalf("status 'LISTED' resolved to %v, want 8", item.StatusID)
	}
}

func TestResolveItem_OptionalEnumerationsDegradeToNull(t *testing.T) {
	t.Parallel()

	maps := NewLookupMaps(testLookups())
	row := Row{
		Title:          strp("Card A"),
		Category:       strp("Football"),
		GradingCompany: strp("Unknown Co"),
		Condition:      strp("Shredded"),
	}
	item := ResolveItem(42, row, maps)
	if item.GradingCompanyID != nil {
		t.Fatalf("unmatched grading company = %v, want nil", *item.GradingCompanyID)
	}
	if item.ConditionID != nil {
		t.Fatalf("unmatched condition = %v, want nil", *item.ConditionID)
	}
	if item.CategoryID == nil || *item.CategoryID != 1 {
		t.Fatalf("category = %v, want 1", item.CategoryID)
	}
}

func TestResolveItem_Tags(t *testing.T) {
	t.Parallel()

	maps := NewLookupMaps(testLookups())

	item := ResolveItem(42, Row{Title: strp("Card A"), Tags: strp(" QB, Chiefs ,,Prizm ")}, maps)
	want := []string{"QB", "Chiefs", "Prizm"}
	if len(item.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", item.Tags, want)
	}
	for i := range want {
		if item.Tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", item.Tags, want)
		}
	}

	if item := ResolveItem(42, Row{Title: strp("Card A")}, maps); item.Tags != nil {
		t.Fatalf("absent tags = %v, want nil", item.Tags)
	}
	if item := ResolveItem(42, Row{Title: strp("Card A"), Tags: strp(" , ,")}, maps); item.Tags != nil {
		t.Fatalf("all-blank tags = %v, want nil", item.Tags)
	}
}

func TestResolveItem_Booleans(t *testing.T) {
	t.Parallel()

	maps := NewLookupMaps(testLookups())
	tr := true

	item := ResolveItem(42, Row{Title: strp("Card A"), Rookie: &tr}, maps)
	if !item.Rookie || item.Autograph {
		t.Fatalf("rookie=%v autograph=%v, want true/false", item.Rookie, item.Autograph)
	}
	// Nil booleans persist as false.
	item = ResolveItem(42, Row{Title: strp("Card A")}, maps)
	if item.Rookie || item.Autograph {
		t.Fatalf("nil booleans must persist as false")
	}
}

func TestResolveAll_PreservesOrderAndUser(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{RowNumber: 2, Title: strp("Card A"), Category: strp("Football")},
		{RowNumber: 3, Title: strp("Card B"), Category: strp("Baseball")},
	}
	items := ResolveAll(42, rows, testLookups())
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Title != "Card A" || items[1].Title != "Card B" {
		t.Fatalf("order not preserved: %s, %s", items[0].Title, items[1].Title)
	}
	for _, item := range items {
		if item.UserID != 42 {
			t.Fatalf("user id = %d, want 42", item.UserID)
		}
	}
	if *items[1].CategoryID != 2 {
		t.Fatalf("second item category = %d, want 2", *items[1].CategoryID)
	}
}
