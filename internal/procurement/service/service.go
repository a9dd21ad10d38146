// Package service provides the procurement search and export orchestration.
package service

import (
	"context"
	"errors"
	"time"

	"secop_portal_backend/internal/procurement/client"
	"secop_portal_backend/internal/procurement/soql"
	"secop_portal_backend/internal/procurement/transport"
	"secop_portal_backend/platform/apperr"
	"secop_portal_backend/platform/config"
	"secop_portal_backend/platform/logger"
)

// browsePageSize is fixed for interactive browsing; only exports honor the
// caller-supplied limit.
const browsePageSize = 20

// Fetcher executes one compiled query against the dataset API.
type Fetcher interface {
	Fetch(ctx context.Context, q soql.Query) ([]transport.Record, error)
}

// Service orchestrates query compilation, fetching and projection.
type Service struct {
	fetcher            Fetcher
	log                *logger.Logger
	interactiveTimeout time.Duration
	exportTimeout      time.Duration
}

// New creates a new procurement service.
func New(fetcher Fetcher, cfg config.SocrataConfig, log *logger.Logger) *Service {
	return &Service{
		fetcher:            fetcher,
		log:                log,
		interactiveTimeout: cfg.GetInteractiveTimeout(),
		exportTimeout:      cfg.GetExportTimeout(),
	}
}

// Search serves interactive browsing. Without any filter criteria it
// returns an empty page without contacting the dataset API, and any fetch
// failure degrades to an empty page rather than an error. Export does not
// share this leniency; see FetchForExport.
func (s *Service) Search(ctx context.Context, req transport.SearchRequest) (transport.SearchResponse, error) {
	req.Normalize()

	resp := transport.SearchResponse{
		Data:     []transport.Notice{},
		Page:     req.Page,
		PageSize: browsePageSize,
	}

	query, ok := soql.Compile(filterOf(req), soql.SortKey(req.Orden), req.Page, browsePageSize, soql.ModeInteractive)
	if !ok {
		return resp, nil
	}
	resp.HasFilter = true

	ctx, cancel := context.WithTimeout(ctx, s.interactiveTimeout)
	defer cancel()

	records, err := s.fetchWithFallback(ctx, query)
	if err != nil {
		s.log.Warn("search degraded to empty result", "error", err, "page", req.Page)
		return resp, nil
	}

	resp.Data = projectAll(records)
	return resp, nil
}

// FetchForExport compiles and executes the query for a spreadsheet export.
// An empty filter still queries (unfiltered, ordered, paginated), and fetch
// failures surface as a typed upstream-unavailable error, never as an empty
// result.
func (s *Service) FetchForExport(ctx context.Context, req transport.SearchRequest) ([]transport.Notice, error) {
	req.Normalize()

	query, _ := soql.Compile(filterOf(req), soql.SortKey(req.Orden), req.Page, req.Limit, soql.ModeExport)

	ctx, cancel := context.WithTimeout(ctx, s.exportTimeout)
	defer cancel()

	records, err := s.fetchWithFallback(ctx, query)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "procurement dataset unavailable", err).WithOp("FetchForExport")
	}

	return projectAll(records), nil
}

// fetchWithFallback issues the compiled query and, when the remote rejects
// it outright (400/422), retries exactly once with the order expression
// omitted. The remote's $order grammar occasionally refuses expressions the
// compiler cannot vet statically; dropping the ordering salvages those
// queries. A second failure of any kind is final.
func (s *Service) fetchWithFallback(ctx context.Context, q soql.Query) ([]transport.Record, error) {
	records, err := s.fetcher.Fetch(ctx, q)
	if err == nil {
		return records, nil
	}

	var statusErr *client.StatusError
	if q.Order != "" && errors.As(err, &statusErr) && statusErr.Rejected() {
		s.log.Warn("query rejected, retrying without order", "status", statusErr.Status)
		return s.fetcher.Fetch(ctx, q.WithoutOrder())
	}

	return nil, err
}

func filterOf(req transport.SearchRequest) soql.Filter {
	return soql.Filter{
		Categories: req.Codigos,
		Statuses:   req.Estado,
		Keyword:    req.Texto,
	}
}

func projectAll(records []transport.Record) []transport.Notice {
	notices := make([]transport.Notice, 0, len(records))
	for _, record := range records {
		notices = append(notices, Project(record))
	}
	return notices
}
