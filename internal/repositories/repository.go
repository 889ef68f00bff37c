package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/stacdex/stacdex/internal/apperrors"
	"github.com/stacdex/stacdex/internal/models"
	"github.com/stacdex/stacdex/internal/utils"
)

// Repository defines the storage operations the import pipeline depends on
type Repository interface {
	Close() error
	Ping(ctx context.Context) error
	GetAllCategories(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError)
	GetAllStatuses(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError)
	GetAllGradingCompanies(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError)
	GetAllConditions(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError)
	GetLookupData(ctx context.Context) (*models.LookupData, *apperrors.AppError)
	BulkCreateItems(ctx context.Context, items []*models.Item) ([]*models.Item, *apperrors.AppError)
}

// DBRepository represents all of the database operations for the application
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository returns a new DBRepository
func NewDBRepository(cfg *utils.Config) (*DBRepository, error) {
	db, err := sqlx.Connect("postgres", cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database with sqlx: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.DB.MaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DBRepository{db: db}, nil
}

// Close closes the database connection
func (r *DBRepository) Close() error {
	return r.db.Close()
}

// Ping verifies database connectivity
func (r *DBRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *DBRepository) selectLookup(ctx context.Context, query, table string) ([]models.LookupEntry, *apperrors.AppError) {
	var entries []models.LookupEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabase, fmt.Sprintf("failed to query %s", table))
	}
	return entries, nil
}

// GetAllCategories fetches the categories lookup table, ordered by name
func (r *DBRepository) GetAllCategories(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError) {
	return r.selectLookup(ctx, `SELECT id, name FROM categories ORDER BY name ASC;`, "categories")
}

// GetAllStatuses fetches the status lookup table, ordered by id
func (r *DBRepository) GetAllStatuses(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError) {
	return r.selectLookup(ctx, `SELECT id, name FROM status ORDER BY id ASC;`, "statuses")
}

// GetAllGradingCompanies fetches the grading companies lookup table, ordered by name
func (r *DBRepository) GetAllGradingCompanies(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError) {
	return r.selectLookup(ctx, `SELECT id, name FROM grading_companies ORDER BY name ASC;`, "grading companies")
}

// GetAllConditions fetches the conditions lookup table, ordered by id
func (r *DBRepository) GetAllConditions(ctx context.Context) ([]models.LookupEntry, *apperrors.AppError) {
	return r.selectLookup(ctx, `SELECT id, name FROM conditions ORDER BY id ASC;`, "conditions")
}

// GetLookupData fetches all four reference tables ahead of validation
func (r *DBRepository) GetLookupData(ctx context.Context) (*models.LookupData, *apperrors.AppError) {
	categories, aerr := r.GetAllCategories(ctx)
	if aerr != nil {
		return nil, aerr
	}
	statuses, aerr := r.GetAllStatuses(ctx)
	if aerr != nil {
		return nil, aerr
	}
	gradingCompanies, aerr := r.GetAllGradingCompanies(ctx)
	if aerr != nil {
		return nil, aerr
	}
	conditions, aerr := r.GetAllConditions(ctx)
	if aerr != nil {
		return nil, aerr
	}
	return &models.LookupData{
		Categories:       categories,
		Statuses:         statuses,
		GradingCompanies: gradingCompanies,
		Conditions:       conditions,
	}, nil
}

const insertItemQuery = `
	INSERT INTO items (
		user_id, title, category_id, status_id, grading_company_id, condition_id,
		date_listed, date_sold, ebay_url, tags, image_url,
		price_listed, market_value,
		player_name, team_name, year, rookie,
		brand, sub_brand, patch_count, numbered_to, autograph, grade_value
	)
	VALUES (
		$1,$2,$3,$4,$5,$6,
		$7,$8,$9,$10,$11,
		$12,$13,
		$14,$15,$16,$17,
		$18,$19,$20,$21,$22,$23
	)
	RETURNING id, date_created;
`

// BulkCreateItems persists every item in one transaction. Either every row
// is committed or, on the first insert error, the transaction is rolled
// back and nothing survives.
func (r *DBRepository) BulkCreateItems(ctx context.Context, items []*models.Item) ([]*models.Item, *apperrors.AppError) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabase, "failed to begin transaction")
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PreparexContext(ctx, insertItemQuery)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabase, "failed to prepare item insert")
	}
	defer stmt.Close()

	created := make([]*models.Item, 0, len(items))
	for i, item := range items {
		row := stmt.QueryRowxContext(ctx,
			item.UserID, item.Title, item.CategoryID, item.StatusID, item.GradingCompanyID, item.ConditionID,
			item.DateListed, item.DateSold, item.EbayURL, item.Tags, item.ImageURL,
			item.PriceListed, item.MarketValue,
			item.PlayerName, item.TeamName, item.Year, item.Rookie,
			item.Brand, item.SubBrand, item.PatchCount, item.NumberedTo, item.Autograph, item.GradeValue,
		)
		if err := row.Scan(&item.ID, &item.DateCreated); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return nil, apperrors.Wrap(err, apperrors.ErrDatabase,
					fmt.Sprintf("Failed to insert row %d. DB Error: %s (Detail: %s, Code: %s)", i+1, pqErr.Message, pqErr.Detail, pqErr.Code))
			}
			return nil, apperrors.Wrap(err, apperrors.ErrDatabase, fmt.Sprintf("failed to insert row %d", i+1))
		}
		created = append(created, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabase, "failed to commit bulk import")
	}
	committed = true
	return created, nil
}
