package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/stacdex/stacdex/internal/apperrors"
	"github.com/stacdex/stacdex/internal/logger"
	"github.com/stacdex/stacdex/internal/services"
	"github.com/stacdex/stacdex/internal/spreadsheet"
	"github.com/stacdex/stacdex/internal/utils"
)

// userIDHeader carries the acting user's identity, injected by the upstream
// gateway after authentication. Auth itself lives outside this service.
const userIDHeader = "X-User-ID"

// Server represents the server that will handle requests and responses
type Server struct {
	cfg    *utils.Config
	svc    services.Service
	logger *logger.Logger
	server *http.Server
}

// NewServer returns a new Server
func NewServer(cfg *utils.Config, svc services.Service, log *logger.Logger) *Server {
	mux := http.NewServeMux()
	srv := &Server{
		cfg:    cfg,
		svc:    svc,
		logger: log,
		server: &http.Server{
			Addr: ":" + cfg.App.Port,
		},
	}

	mux.HandleFunc("/bulk-upload", srv.handleBulkUpload)
	mux.HandleFunc("/bulk-upload/template", srv.handleTemplate)
	mux.HandleFunc("/healthz", srv.handleHealthCheck)

	var chain http.Handler = mux
	chain = srv.logRequest(chain)
	chain = srv.recoverPanic(chain)
	srv.server.Handler = chain

	return srv
}

// Run runs the server until the context is cancelled, then shuts down
// gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.server.Shutdown(context.Background())
	}
}

// userID extracts the gateway-injected user identity from the request
func userID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleBulkUpload accepts a spreadsheet upload and imports it as a single
// all-or-nothing batch
func (s *Server) handleBulkUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	uid, ok := userID(r)
	if !ok {
		s.respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Missing user identity"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes)
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxBytes); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Error parsing form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "No file uploaded"})
		return
	}
	defer file.Close()

	mimetype := header.Header.Get("Content-Type")
	if !spreadsheet.Allowed(mimetype) {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Invalid file type. Please upload .xlsx, .xls, or .csv file",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Error reading file"})
		return
	}

	importID := uuid.NewString()
	s.logger.Infof("import %s: user %d uploaded %q (%d bytes)", importID, uid, header.Filename, len(data))

	result, err := s.svc.ImportSpreadsheet(r.Context(), uid, data, mimetype)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrSpreadsheet) {
			s.logger.Warnf("import %s: parse failure: %v", importID, err)
			s.respondJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Failed to parse spreadsheet",
				Details: []string{err.(*apperrors.AppError).Detail()},
			})
			return
		}
		s.logger.Errorf("import %s: %v", importID, err)
		detail := err.Error()
		if aerr, ok := err.(*apperrors.AppError); ok {
			detail = aerr.Detail()
		}
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to import cards",
			Details: detail,
		})
		return
	}

	if !result.Success {
		s.logger.Infof("import %s: rejected with %d validation errors", importID, len(result.Errors))
		s.respondJSON(w, http.StatusBadRequest, validationFailureResponse{
			Error:          "Validation failed",
			Details:        result.Errors,
			ColumnMapping:  result.ColumnMapping,
			IgnoredColumns: result.IgnoredColumns,
		})
		return
	}

	plural := "s"
	if result.Imported == 1 {
		plural = ""
	}
	s.logger.Infof("import %s: committed %d rows", importID, result.Imported)
	s.respondJSON(w, http.StatusCreated, importResponse{
		Success:        true,
		Imported:       result.Imported,
		ColumnMapping:  result.ColumnMapping,
		IgnoredColumns: result.IgnoredColumns,
		Message:        fmt.Sprintf("Successfully imported %d card%s", result.Imported, plural),
	})
}

// handleTemplate serves the downloadable xlsx import template
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	data, err := s.svc.BuildTemplate(r.Context())
	if err != nil {
		s.logger.Errorf("template generation failed: %v", err)
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to generate template"})
		return
	}

	w.Header().Set("Content-Type", spreadsheet.MimeXLSX)
	w.Header().Set("Content-Disposition", "attachment; filename="+spreadsheet.TemplateFilename)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleHealthCheck reports server and database health
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Ping(r.Context()); err != nil {
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
