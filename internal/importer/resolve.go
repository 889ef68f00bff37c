package importer

import (
	"strings"

	"github.com/lib/pq"

	"github.com/stacdex/stacdex/internal/models"
)

// defaultStatusName is assigned when a row carries no recognizable status.
const defaultStatusName = "unlisted"

// LookupMaps holds the case-insensitive name lookups derived from the
// reference tables. Built fresh per import so the maps never go stale.
type LookupMaps struct {
	categories       map[string]models.LookupEntry
	statuses         map[string]models.LookupEntry
	gradingCompanies map[string]models.LookupEntry
	conditions       map[string]models.LookupEntry
	defaultStatusID  *int64
}

// lookupMap keys entries by lowercased name. On duplicate normalized names
// the later entry wins.
func lookupMap(entries []models.LookupEntry) map[string]models.LookupEntry {
	m := make(map[string]models.LookupEntry, len(entries))
	for _, e := range entries {
		m[strings.ToLower(e.Name)] = e
	}
	return m
}

// NewLookupMaps derives the resolution maps and the default status from the
// fetched reference tables.
func NewLookupMaps(lookups models.LookupData) *LookupMaps {
	maps := &LookupMaps{
		categories:       lookupMap(lookups.Categories),
		statuses:         lookupMap(lookups.Statuses),
		gradingCompanies: lookupMap(lookups.GradingCompanies),
		conditions:       lookupMap(lookups.Conditions),
	}
	for _, s := range lookups.Statuses {
		if strings.ToLower(s.Name) == defaultStatusName {
			id := s.ID
			maps.defaultStatusID = &id
			break
		}
	}
	return maps
}

// DefaultStatusID returns the id of the fallback status, or nil if the
// status table has no such entry.
func (m *LookupMaps) DefaultStatusID() *int64 {
	return m.defaultStatusID
}

func resolveID(m map[string]models.LookupEntry, name *string) *int64 {
	if name == nil {
		return nil
	}
	e, ok := m[strings.ToLower(*name)]
	if !ok {
		return nil
	}
	id := e.ID
	return &id
}

// ResolveItem converts a validated row into an insertable item: text
// enumerations become foreign keys, the status falls back to the default
// when absent or unmatched, and the tags string becomes an array.
func ResolveItem(userID int64, row Row, maps *LookupMaps) *models.Item {
	item := &models.Item{
		UserID:      userID,
		CategoryID:  resolveID(maps.categories, row.Category),
		StatusID:    resolveID(maps.statuses, row.Status),
		DateListed:  row.DateListed,
		DateSold:    row.DateSold,
		EbayURL:     row.EbayURL,
		Tags:        splitTags(row.Tags),
		PriceListed: row.PriceListed,
		MarketValue: row.MarketValue,
		PlayerName:  row.PlayerName,
		TeamName:    row.TeamName,
		Year:        row.Year,
		Brand:       row.Brand,
		SubBrand:    row.SubBrand,
		PatchCount:  row.PatchCount,
		NumberedTo:  row.NumberedTo,
		GradeValue:  row.GradeValue,
	}

	if row.Title != nil {
		item.Title = *row.Title
	}
	if item.StatusID == nil {
		item.StatusID = maps.defaultStatusID
	}
	item.GradingCompanyID = resolveID(maps.gradingCompanies, row.GradingCompany)
	item.ConditionID = resolveID(maps.conditions, row.Condition)
	item.Rookie = row.Rookie != nil && *row.Rookie
	item.Autograph = row.Autograph != nil && *row.Autograph

	return item
}

// ResolveAll resolves every validated row, preserving input order.
func ResolveAll(userID int64, rows []Row, lookups models.LookupData) []*models.Item {
	maps := NewLookupMaps(lookups)
	items := make([]*models.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, ResolveItem(userID, row, maps))
	}
	return items
}

// splitTags turns a comma-separated tag string into trimmed, non-empty tag
// values, or nil when nothing remains.
func splitTags(raw *string) pq.StringArray {
	if raw == nil {
		return nil
	}
	var tags pq.StringArray
	for _, t := range strings.Split(*raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
