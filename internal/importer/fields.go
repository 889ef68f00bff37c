package importer

import (
	"strings"
	"unicode"
)

// Field identifies one canonical item attribute a spreadsheet column can
// map to. The set is closed; adding a field means adding a synonym list.
type Field string

const (
	FieldTitle          Field = "title"
	FieldCategory       Field = "category"
	FieldStatus         Field = "status"
	FieldPlayerName     Field = "player_name"
	FieldTeamName       Field = "team_name"
	FieldYear           Field = "year"
	FieldBrand          Field = "brand"
	FieldSubBrand       Field = "sub_brand"
	FieldRookie         Field = "rookie"
	FieldAutograph      Field = "autograph"
	FieldNumberedTo     Field = "numbered_to"
	FieldPatchCount     Field = "patch_count"
	FieldGradingCompany Field = "grading_company"
	FieldGradeValue     Field = "grade_value"
	FieldCondition      Field = "condition"
	FieldMarketValue    Field = "market_value"
	FieldPriceListed    Field = "price_listed"
	FieldDateListed     Field = "date_listed"
	FieldDateSold       Field = "date_sold"
	FieldEbayURL        Field = "ebay_url"
	FieldTags           Field = "tags"
)

// fieldOrder fixes the iteration order for synonym matching so that mapping
// is deterministic.
var fieldOrder = []Field{
	FieldTitle,
	FieldCategory,
	FieldStatus,
	FieldPlayerName,
	FieldTeamName,
	FieldYear,
	FieldBrand,
	FieldSubBrand,
	FieldRookie,
	FieldAutograph,
	FieldNumberedTo,
	FieldPatchCount,
	FieldGradingCompany,
	FieldGradeValue,
	FieldCondition,
	FieldMarketValue,
	FieldPriceListed,
	FieldDateListed,
	FieldDateSold,
	FieldEbayURL,
	FieldTags,
}

// synonyms lists the accepted header variations per field. Entries are
// stored already normalized (see NormalizeHeader).
var synonyms = map[Field][]string{
	FieldTitle:          {"title", "card title", "name", "card name"},
	FieldCategory:       {"category", "sport", "sport category", "category name"},
	FieldStatus:         {"status", "listing status", "card status"},
	FieldPlayerName:     {"player", "player name", "playername", "athlete"},
	FieldTeamName:       {"team", "team name", "teamname"},
	FieldYear:           {"year", "card year", "yr", "season"},
	FieldBrand:          {"brand", "manufacturer", "make"},
	FieldSubBrand:       {"sub brand", "subbrand", "set", "subset"},
	FieldRookie:         {"rookie", "rc", "rookie card"},
	FieldAutograph:      {"autograph", "auto", "signed", "au", "signature"},
	FieldNumberedTo:     {"numbered to", "numbered", "#'d to", "/99", "serial"},
	FieldPatchCount:     {"patch count", "patches", "patch"},
	FieldGradingCompany: {"grading company", "grader", "grade co", "grade company"},
	FieldGradeValue:     {"grade value", "grade", "numeric grade"},
	FieldCondition:      {"condition", "card condition"},
	FieldMarketValue:    {"market value", "value", "worth", "price"},
	FieldPriceListed:    {"price listed", "list price", "asking price"},
	FieldDateListed:     {"date listed", "listed date", "list date"},
	FieldDateSold:       {"date sold", "sold date", "sale date"},
	FieldEbayURL:        {"ebay url", "ebay link", "url", "link"},
	FieldTags:           {"tags", "keywords", "labels"},
}

// NormalizeHeader lowercases a header, trims it, and collapses every run of
// underscores, hyphens, and whitespace into a single space.
func NormalizeHeader(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	parts := strings.FieldsFunc(header, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	return strings.Join(parts, " ")
}

// matchField returns the first field (in fieldOrder) whose synonym list
// contains the normalized header verbatim.
func matchField(normalized string) (Field, bool) {
	for _, f := range fieldOrder {
		for _, s := range synonyms[f] {
			if s == normalized {
				return f, true
			}
		}
	}
	return "", false
}

// MapHeaders maps raw spreadsheet headers to canonical fields. Headers that
// match no synonym are returned in the ignored list instead of failing the
// import. Each field is claimed at most once: when two headers resolve to
// the same field the first one in header order wins and the rest are
// ignored.
func MapHeaders(headers []string) (map[string]Field, []string) {
	mapping := make(map[string]Field, len(headers))
	claimed := make(map[Field]bool, len(headers))
	ignored := []string{}

	for _, header := range headers {
		normalized := NormalizeHeader(header)
		if normalized == "" {
			continue
		}
		field, ok := matchField(normalized)
		if !ok || claimed[field] {
			ignored = append(ignored, header)
			continue
		}
		mapping[header] = field
		claimed[field] = true
	}

	return mapping, ignored
}

// AcceptedColumnNames exposes the synonym table for documentation, keyed by
// field in matching order.
func AcceptedColumnNames() map[Field][]string {
	out := make(map[Field][]string, len(fieldOrder))
	for _, f := range fieldOrder {
		out[f] = append([]string(nil), synonyms[f]...)
	}
	return out
}
