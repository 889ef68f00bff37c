package services

import (
	"context"

	"github.com/stacdex/stacdex/internal/apperrors"
	"github.com/stacdex/stacdex/internal/importer"
	"github.com/stacdex/stacdex/internal/models"
	"github.com/stacdex/stacdex/internal/repositories"
	"github.com/stacdex/stacdex/internal/spreadsheet"
)

// ImportResult is the outcome of one bulk import. It is all-or-nothing:
// either every row was committed (Success, Imported, Created populated) or
// validation rejected the file (Errors populated) and nothing was written.
// ColumnMapping and IgnoredColumns are surfaced in both cases so users can
// diagnose unmapped headers.
type ImportResult struct {
	Success        bool
	Imported       int
	Created        []*models.Item
	Errors         []importer.ValidationError
	ColumnMapping  map[string]importer.Field
	IgnoredColumns []string
}

// The Service interface defines the business logic for bulk card imports
type Service interface {
	ImportSpreadsheet(ctx context.Context, userID int64, file []byte, mimetype string) (*ImportResult, error)
	BuildTemplate(ctx context.Context) ([]byte, error)
	Ping(ctx context.Context) error
}

// The service struct uses the application Repository to implement the Service interface
type service struct {
	repo repositories.Repository
}

// NewService returns a new service
func NewService(repo repositories.Repository) Service {
	return &service{repo: repo}
}

// ImportSpreadsheet runs the full pipeline: decode the worksheet, map its
// headers, transform and validate the rows, then persist them in a single
// transaction. A parse failure or storage failure is returned as an error;
// a validation failure is a non-error result with Success=false.
func (s *service) ImportSpreadsheet(ctx context.Context, userID int64, file []byte, mimetype string) (*ImportResult, error) {
	sheet, err := spreadsheet.Parse(file, mimetype)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrSpreadsheet)
	}

	mapping, ignored := importer.MapHeaders(sheet.Headers)
	rows := importer.TransformRows(mapping, sheet.Rows)

	lookups, aerr := s.repo.GetLookupData(ctx)
	if aerr != nil {
		return nil, aerr
	}

	valid, errs := importer.ValidateRows(rows, *lookups)
	if !valid {
		return &ImportResult{
			Success:        false,
			Errors:         errs,
			ColumnMapping:  mapping,
			IgnoredColumns: ignored,
		}, nil
	}

	items := importer.ResolveAll(userID, rows, *lookups)
	created, aerr := s.repo.BulkCreateItems(ctx, items)
	if aerr != nil {
		return nil, apperrors.Wrap(aerr, apperrors.ErrImport)
	}

	return &ImportResult{
		Success:        true,
		Imported:       len(created),
		Created:        created,
		ColumnMapping:  mapping,
		IgnoredColumns: ignored,
	}, nil
}

// BuildTemplate generates the downloadable import template with the
// currently valid lookup values.
func (s *service) BuildTemplate(ctx context.Context) ([]byte, error) {
	lookups, aerr := s.repo.GetLookupData(ctx)
	if aerr != nil {
		return nil, aerr
	}
	return spreadsheet.BuildTemplate(*lookups)
}

// Ping reports storage connectivity for health checks
func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
