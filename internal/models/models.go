package models

import (
	"time"

	"github.com/lib/pq"
)

// LookupEntry is one row of a reference table (categories, status,
// grading_companies, conditions).
type LookupEntry struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// LookupData bundles the four reference tables fetched ahead of an import.
type LookupData struct {
	Categories       []LookupEntry
	Statuses         []LookupEntry
	GradingCompanies []LookupEntry
	Conditions       []LookupEntry
}

// Item is a card record as stored in the items table. Optional columns are
// pointers so that absent values insert as NULL.
type Item struct {
	ID               int64          `db:"id" json:"id"`
	UserID           int64          `db:"user_id" json:"userId"`
	Title            string         `db:"title" json:"title"`
	CategoryID       *int64         `db:"category_id" json:"categoryId"`
	StatusID         *int64         `db:"status_id" json:"statusId"`
	GradingCompanyID *int64         `db:"grading_company_id" json:"gradingCompanyId"`
	ConditionID      *int64         `db:"condition_id" json:"conditionId"`
	DateListed       *string        `db:"date_listed" json:"dateListed"`
	DateSold         *string        `db:"date_sold" json:"dateSold"`
	EbayURL          *string        `db:"ebay_url" json:"ebayUrl"`
	Tags             pq.StringArray `db:"tags" json:"tags"`
	ImageURL         *string        `db:"image_url" json:"imageUrl"`
	PriceListed      *float64       `db:"price_listed" json:"priceListed"`
	MarketValue      *float64       `db:"market_value" json:"marketValue"`
	PlayerName       *string        `db:"player_name" json:"playerName"`
	TeamName         *string        `db:"team_name" json:"teamName"`
	Year             *int           `db:"year" json:"year"`
	Rookie           bool           `db:"rookie" json:"rookie"`
	Brand            *string        `db:"brand" json:"brand"`
	SubBrand         *string        `db:"sub_brand" json:"subBrand"`
	PatchCount       *int           `db:"patch_count" json:"patchCount"`
	NumberedTo       *int           `db:"numbered_to" json:"numberedTo"`
	Autograph        bool           `db:"autograph" json:"autograph"`
	GradeValue       *float64       `db:"grade_value" json:"gradeValue"`
	DateCreated      time.Time      `db:"date_created" json:"dateCreated"`
}
