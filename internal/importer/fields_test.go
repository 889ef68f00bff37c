package importer

import "testing"

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Player_Name ", "player name"},
		{"  TITLE", "title"},
		{"grading--company", "grading company"},
		{"date   listed", "date listed"},
		{"#'d to", "#'d to"},
		{"___", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeHeader(c.in); got != c.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeHeader_Idempotent(t *testing.T) {
	t.Parallel()

	headers := []string{"Player_Name ", "Card-Title", "  grade   value ", "#'d to", "eBay URL"}
	for _, h := range headers {
		once := NormalizeHeader(h)
		if twice := NormalizeHeader(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q != %q", h, twice, once)
		}
	}
}

func TestMapHeaders_EverySynonymMaps(t *testing.T) {
	t.Parallel()

	for field, variations := range AcceptedColumnNames() {
		for _, syn := range variations {
			mapping, ignored := MapHeaders([]string{syn})
			if len(ignored) != 0 {
				t.Fatalf("synonym %q of %s was ignored", syn, field)
			}
			if got := mapping[syn]; got != field {
				t.Fatalf("synonym %q mapped to %s, want %s", syn, got, field)
			}
		}
	}
}

func TestMapHeaders_UnknownIgnored(t *testing.T) {
	t.Parallel()

	mapping, ignored := MapHeaders([]string{"Title", "Shoe Size", "Category"})
	if len(mapping) != 2 {
		t.Fatalf("mapping size = %d, want 2", len(mapping))
	}
	if mapping["Title"] != FieldTitle || mapping["Category"] != FieldCategory {
		t.Fatalf("unexpected mapping: %v", mapping)
	}
	if len(ignored) != 1 || ignored[0] != "Shoe Size" {
		t.Fatalf("ignored = %v, want [Shoe Size]", ignored)
	}
	if _, ok := mapping["Shoe Size"]; ok {
		t.Fatalf("unknown header must not appear in mapping")
	}
}

func TestMapHeaders_CasePreservedKeys(t *testing.T) {
	t.Parallel()

	mapping, _ := MapHeaders([]string{"PLAYER"})
	if mapping["PLAYER"] != FieldPlayerName {
		t.Fatalf("mapping = %v, want PLAYER -> player_name", mapping)
	}
}

func TestMapHeaders_DuplicateFieldFirstWins(t *testing.T) {
	t.Parallel()

	// "Title" and "Card Name" both normalize into the title synonym list.
	mapping, ignored := MapHeaders([]string{"Title", "Card Name"})
	if mapping["Title"] != FieldTitle {
		t.Fatalf("first header lost the field: %v", mapping)
	}
	if _, ok := mapping["Card Name"]; ok {
		t.Fatalf("duplicate header claimed an already-assigned field")
	}
	if len(ignored) != 1 || ignored[0] != "Card Name" {
		t.Fatalf("ignored = %v, want [Card Name]", ignored)
	}
}

func TestMapHeaders_BlankHeaderSkipped(t *testing.T) {
	t.Parallel()

	mapping, ignored := MapHeaders([]string{"", "   ", "Title"})
	if len(mapping) != 1 || len(ignored) != 0 {
		t.Fatalf("mapping=%v ignored=%v, want only Title mapped", mapping, ignored)
	}
}
