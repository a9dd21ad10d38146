package soql

import "testing"

func TestCompile_InteractiveWithoutFilterRefusesToQuery(t *testing.T) {
	if _, ok := Compile(Filter{}, SortRecent, 1, 20, ModeInteractive); ok {
		t.Fatal("expected do-not-query for an empty interactive filter")
	}
}

func TestCompile_ExportWithoutFilterStillQueries(t *testing.T) {
	q, ok := Compile(Filter{}, SortRecent, 1, 20, ModeExport)
	if !ok {
		t.Fatal("expected export to query without a filter")
	}
	if q.HasWhere {
		t.Fatalf("expected no where clause, got %q", q.Where)
	}
	if q.Order == "" {
		t.Fatal("expected an order expression")
	}
	if q.Limit != 20 || q.Offset != 0 {
		t.Fatalf("unexpected pagination: limit=%d offset=%d", q.Limit, q.Offset)
	}
}

func TestCompile_OffsetArithmetic(t *testing.T) {
	q, ok := Compile(Filter{Statuses: "x"}, SortRecent, 3, 20, ModeInteractive)
	if !ok {
		t.Fatal("expected a query")
	}
	if q.Offset != 40 {
		t.Fatalf("offset = %d, want 40", q.Offset)
	}
	if q.Limit != 20 {
		t.Fatalf("limit = %d, want 20", q.Limit)
	}
}

func TestCompile_ClampsPageAndPageSize(t *testing.T) {
	q, _ := Compile(Filter{Statuses: "x"}, SortRecent, 0, 0, ModeExport)
	if q.Limit != 1 || q.Offset != 0 {
		t.Fatalf("unexpected pagination: limit=%d offset=%d", q.Limit, q.Offset)
	}
}

func TestWithoutOrder_KeepsFilterAndPagination(t *testing.T) {
	q, _ := Compile(Filter{Statuses: "x"}, SortHighestValue, 2, 50, ModeExport)
	fallback := q.WithoutOrder()

	if fallback.Order != "" {
		t.Fatalf("order = %q, want omitted", fallback.Order)
	}
	if fallback.Where != q.Where || fallback.HasWhere != q.HasWhere {
		t.Fatal("fallback changed the filter expression")
	}
	if fallback.Limit != q.Limit || fallback.Offset != q.Offset {
		t.Fatal("fallback changed pagination")
	}
}
