package soql

import "strings"

// Dataset column names (SECOP II procurement procedures, p6dx-8zbt).
const (
	fieldCategory    = "codigo_principal_de_categoria"
	fieldStatus      = "estado_del_procedimiento"
	fieldDescription = "descripci_n_del_procedimiento"
)

// categoryPrefix is mandatory on UNSPSC codes in the dataset; users type the
// bare code, so it is added when missing (case-sensitive literal check).
const categoryPrefix = "V1."

// Filter carries the raw user criteria for one query. Fields hold the
// query-string values untouched; tokenization happens at compile time.
type Filter struct {
	// Categories is a comma-separated list of UNSPSC codes.
	Categories string
	// Statuses is a comma-separated list of procedure statuses.
	Statuses string
	// Keyword is a free phrase; every term must appear in the description.
	Keyword string
}

// Where renders the boolean $where expression for the filter. The second
// return is false when no sub-clause produced output. Malformed or empty
// tokens are dropped silently; compilation never fails.
func (f Filter) Where() (string, bool) {
	var clauses []string

	if clause, ok := categoryClause(f.Categories); ok {
		clauses = append(clauses, clause)
	}
	if clause, ok := statusClause(f.Statuses); ok {
		clauses = append(clauses, clause)
	}
	if clause, ok := keywordClause(f.Keyword); ok {
		clauses = append(clauses, clause)
	}

	if len(clauses) == 0 {
		return "", false
	}
	return strings.Join(clauses, " AND "), true
}

func categoryClause(raw string) (string, bool) {
	tokens := splitCommaList(raw)
	if len(tokens) == 0 {
		return "", false
	}

	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !strings.HasPrefix(token, categoryPrefix) {
			token = categoryPrefix + token
		}
		quoted = append(quoted, "'"+EscapeLiteral(token)+"'")
	}
	return fieldCategory + " IN (" + strings.Join(quoted, ", ") + ")", true
}

func statusClause(raw string) (string, bool) {
	tokens := splitCommaList(raw)
	if len(tokens) == 0 {
		return "", false
	}

	// Case-insensitive match against the stored value.
	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		quoted = append(quoted, "'"+EscapeLiteral(strings.ToUpper(token))+"'")
	}
	return "UPPER(" + fieldStatus + ") IN (" + strings.Join(quoted, ", ") + ")", true
}

// keywordClause requires every term to appear somewhere in the description,
// in any order. This is deliberately not a full-phrase match.
func keywordClause(raw string) (string, bool) {
	terms := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(terms) == 0 {
		return "", false
	}

	likes := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToUpper(SanitizeLikeTerm(term))
		if term == "" {
			continue
		}
		likes = append(likes, "UPPER("+fieldDescription+") LIKE '%"+term+"%'")
	}
	if len(likes) == 0 {
		return "", false
	}
	return strings.Join(likes, " AND "), true
}

func splitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}
