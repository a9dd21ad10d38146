package transport

// SearchRequest represents the query parameters accepted by the browse and
// export endpoints. All criteria are optional; malformed tokens are dropped
// during compilation rather than rejected here.
type SearchRequest struct {
	// Codigos is a comma-separated list of UNSPSC category codes.
	Codigos string
	// Estado is a comma-separated list of procedure statuses.
	Estado string
	// Texto is a free keyword phrase searched in the procedure description.
	Texto string
	// Orden is the symbolic sort key: recientes|antiguos|mayor_valor|menor_valor.
	Orden string
	Page  int
	// Limit is honored by the export endpoint only (1..1000).
	Limit int
}

// Normalize clamps pagination to the documented bounds. Unknown sort keys
// are left as-is: the order resolver maps them to the default ordering.
func (r *SearchRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 1000 {
		r.Limit = 20
	}
	if r.Orden == "" {
		r.Orden = "recientes"
	}
}

// Notice is the fixed 7-field projection of one dataset record, used both
// for the interactive listing and as a spreadsheet row.
type Notice struct {
	Code            string  `json:"code"`
	Status          string  `json:"status"`
	Entity          string  `json:"entity"`
	Department      string  `json:"department"`
	Description     string  `json:"description"`
	Value           float64 `json:"value"`
	PublicationDate string  `json:"publicationDate"`
}

// SearchResponse is the interactive browse payload.
type SearchResponse struct {
	Data     []Notice `json:"data"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
	// HasFilter distinguishes "no criteria supplied" from "no matches".
	HasFilter bool `json:"hasFilter"`
}
