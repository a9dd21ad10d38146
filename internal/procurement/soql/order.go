package soql

// SortKey is the symbolic sort order requested by the caller.
type SortKey string

const (
	SortRecent       SortKey = "recientes"
	SortOldest       SortKey = "antiguos"
	SortHighestValue SortKey = "mayor_valor"
	SortLowestValue  SortKey = "menor_valor"
)

// The value sorts list both price columns because either may be null for a
// given record; the second field is a deterministic tie-breaker, not a
// numeric coalesce. Records with a null primary column sort wherever the
// remote's null ordering puts them.
var orderExpressions = map[SortKey]string{
	SortRecent:       "fecha_de_publicacion_del DESC",
	SortOldest:       "fecha_de_publicacion_del ASC",
	SortHighestValue: "precio_base DESC, valor_estimado DESC",
	SortLowestValue:  "precio_base ASC, valor_estimado ASC",
}

// ResolveOrder maps the sort key to its $order expression. Unknown keys
// silently resolve to the most-recent-first ordering; this leniency is part
// of the contract, never an error.
func ResolveOrder(key SortKey) string {
	if expr, ok := orderExpressions[key]; ok {
		return expr
	}
	return orderExpressions[SortRecent]
}
