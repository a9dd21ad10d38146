package soql

// Mode selects the assembler's policy when the filter is empty.
type Mode int

const (
	// ModeInteractive refuses to query without any filter criteria, so a
	// casual page load never pulls the unfiltered firehose.
	ModeInteractive Mode = iota
	// ModeExport queries even without a filter: exporting is an explicit
	// action where "everything on this page" is a valid request.
	ModeExport
)

// Query is a fully assembled dataset query, consumed only by the fetch
// client. Where, when HasWhere is set, is a syntactically closed boolean
// expression. An empty Order means the $order parameter is omitted.
type Query struct {
	Where    string
	HasWhere bool
	Order    string
	Limit    int
	Offset   int
}

// WithoutOrder returns a copy of the query with the order expression
// dropped, keeping filter and pagination unchanged. Used by the
// order-omission fallback after a remote rejection.
func (q Query) WithoutOrder() Query {
	q.Order = ""
	return q
}

// Compile assembles filter, ordering and pagination into one query.
// The second return is false only in interactive mode with no filter
// criteria at all, meaning the caller must not contact the remote service
// and should return an empty result set.
func Compile(f Filter, key SortKey, page, pageSize int, mode Mode) (Query, bool) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	where, hasWhere := f.Where()
	if !hasWhere && mode == ModeInteractive {
		return Query{}, false
	}

	return Query{
		Where:    where,
		HasWhere: hasWhere,
		Order:    ResolveOrder(key),
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}, true
}
