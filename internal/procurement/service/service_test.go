package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"secop_portal_backend/internal/procurement/client"
	"secop_portal_backend/internal/procurement/soql"
	"secop_portal_backend/internal/procurement/transport"
	"secop_portal_backend/platform/apperr"
	"secop_portal_backend/platform/logger"
)

type stubConfig struct{}

func (stubConfig) GetDatasetURL() string                { return "http://example.test" }
func (stubConfig) GetAppToken() string                  { return "" }
func (stubConfig) GetInteractiveTimeout() time.Duration { return time.Second }
func (stubConfig) GetExportTimeout() time.Duration      { return time.Second }

// fakeFetcher records every compiled query and replays scripted responses.
type fakeFetcher struct {
	queries []soql.Query
	results [][]transport.Record
	errs    []error
}

func (f *fakeFetcher) Fetch(_ context.Context, q soql.Query) ([]transport.Record, error) {
	call := len(f.queries)
	f.queries = append(f.queries, q)

	var records []transport.Record
	if call < len(f.results) {
		records = f.results[call]
	}
	var err error
	if call < len(f.errs) {
		err = f.errs[call]
	}
	return records, err
}

func newTestService(f *fakeFetcher) *Service {
	return New(f, stubConfig{}, logger.New("test"))
}

func someRecords(t *testing.T) []transport.Record {
	t.Helper()
	return []transport.Record{{}}
}

func TestSearch_EmptyFilterNeverQueries(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(fetcher)

	resp, err := svc.Search(context.Background(), transport.SearchRequest{Orden: "recientes", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fetcher.queries) != 0 {
		t.Fatalf("expected no network call, got %d", len(fetcher.queries))
	}
	if resp.HasFilter {
		t.Fatal("expected hasFilter=false")
	}
	if len(resp.Data) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(resp.Data))
	}
}

func TestSearch_UsesFixedPageSize(t *testing.T) {
	fetcher := &fakeFetcher{results: [][]transport.Record{{}}}
	svc := newTestService(fetcher)

	if _, err := svc.Search(context.Background(), transport.SearchRequest{Estado: "Adjudicado", Page: 3, Limit: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := fetcher.queries[0]
	if q.Limit != 20 {
		t.Fatalf("limit = %d, want the fixed browse page size", q.Limit)
	}
	if q.Offset != 40 {
		t.Fatalf("offset = %d, want 40", q.Offset)
	}
}

func TestSearch_UpstreamFailureDegradesToEmpty(t *testing.T) {
	fetcher := &fakeFetcher{errs: []error{&client.StatusError{Status: 500}}}
	svc := newTestService(fetcher)

	resp, err := svc.Search(context.Background(), transport.SearchRequest{Estado: "Adjudicado"})
	if err != nil {
		t.Fatalf("interactive failure must not surface, got %v", err)
	}
	if !resp.HasFilter {
		t.Fatal("expected hasFilter=true")
	}
	if len(resp.Data) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(resp.Data))
	}
}

func TestFetchWithFallback_RejectionRetriesOnceWithoutOrder(t *testing.T) {
	fetcher := &fakeFetcher{
		errs:    []error{&client.StatusError{Status: 400}, nil},
		results: [][]transport.Record{nil, someRecords(t)},
	}
	svc := newTestService(fetcher)

	notices, err := svc.FetchForExport(context.Background(), transport.SearchRequest{Estado: "Adjudicado", Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(notices))
	}

	if len(fetcher.queries) != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", len(fetcher.queries))
	}
	first, second := fetcher.queries[0], fetcher.queries[1]
	if first.Order == "" {
		t.Fatal("first call should carry the order expression")
	}
	if second.Order != "" {
		t.Fatalf("retry should omit the order, got %q", second.Order)
	}
	if second.Where != first.Where || second.Limit != first.Limit || second.Offset != first.Offset {
		t.Fatal("retry must keep filter and pagination unchanged")
	}
}

func TestFetchWithFallback_SecondRejectionIsFinal(t *testing.T) {
	fetcher := &fakeFetcher{
		errs: []error{&client.StatusError{Status: 422}, &client.StatusError{Status: 422}},
	}
	svc := newTestService(fetcher)

	_, err := svc.FetchForExport(context.Background(), transport.SearchRequest{Estado: "Adjudicado"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(fetcher.queries) != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", len(fetcher.queries))
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected upstream-unavailable, got %v", err)
	}
}

func TestFetchWithFallback_NonRejectionDoesNotRetry(t *testing.T) {
	fetcher := &fakeFetcher{errs: []error{&client.StatusError{Status: 503}}}
	svc := newTestService(fetcher)

	_, err := svc.FetchForExport(context.Background(), transport.SearchRequest{Estado: "Adjudicado"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(fetcher.queries) != 1 {
		t.Fatalf("expected exactly 1 call, got %d", len(fetcher.queries))
	}
}

func TestFetchWithFallback_NetworkErrorDoesNotRetry(t *testing.T) {
	fetcher := &fakeFetcher{errs: []error{errors.New("connection refused")}}
	svc := newTestService(fetcher)

	_, err := svc.FetchForExport(context.Background(), transport.SearchRequest{Estado: "Adjudicado"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(fetcher.queries) != 1 {
		t.Fatalf("expected exactly 1 call, got %d", len(fetcher.queries))
	}
}

func TestFetchForExport_EmptyFilterStillQueries(t *testing.T) {
	fetcher := &fakeFetcher{results: [][]transport.Record{someRecords(t)}}
	svc := newTestService(fetcher)

	if _, err := svc.FetchForExport(context.Background(), transport.SearchRequest{Page: 1, Limit: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fetcher.queries) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fetcher.queries))
	}
	q := fetcher.queries[0]
	if q.HasWhere {
		t.Fatalf("expected unfiltered query, got where %q", q.Where)
	}
	if q.Limit != 100 {
		t.Fatalf("limit = %d, want 100", q.Limit)
	}
}

func TestFetchForExport_LimitOutOfRangeFallsBackToDefault(t *testing.T) {
	fetcher := &fakeFetcher{results: [][]transport.Record{{}}}
	svc := newTestService(fetcher)

	if _, err := svc.FetchForExport(context.Background(), transport.SearchRequest{Limit: 5000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fetcher.queries[0].Limit; got != 20 {
		t.Fatalf("limit = %d, want 20", got)
	}
}
