package soql

import "testing"

func TestFilterWhere_CategoryNormalization(t *testing.T) {
	where, ok := Filter{Categories: "47131504"}.Where()
	if !ok {
		t.Fatal("expected a filter expression")
	}
	want := "codigo_principal_de_categoria IN ('V1.47131504')"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}

func TestFilterWhere_CategoryPrefixNotDoubled(t *testing.T) {
	where, _ := Filter{Categories: "V1.47131504"}.Where()
	want := "codigo_principal_de_categoria IN ('V1.47131504')"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}

func TestFilterWhere_CategoryDropsEmptyTokens(t *testing.T) {
	where, ok := Filter{Categories: "a,,b,   ,"}.Where()
	if !ok {
		t.Fatal("expected a filter expression")
	}
	want := "codigo_principal_de_categoria IN ('V1.a', 'V1.b')"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}

func TestFilterWhere_WhitespaceOnlyCategoriesIsNoFilter(t *testing.T) {
	if _, ok := (Filter{Categories: "   ,  , "}).Where(); ok {
		t.Fatal("expected no filter expression for whitespace-only tokens")
	}
}

func TestFilterWhere_StatusUppercasedAndEscaped(t *testing.T) {
	where, _ := Filter{Statuses: "Adjudicado, o'ferta"}.Where()
	want := "UPPER(estado_del_procedimiento) IN ('ADJUDICADO', 'O''FERTA')"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}

func TestFilterWhere_KeywordEveryTermMustAppear(t *testing.T) {
	where, _ := Filter{Keyword: "obra  publica,via"}.Where()
	want := "UPPER(descripci_n_del_procedimiento) LIKE '%OBRA%'" +
		" AND UPPER(descripci_n_del_procedimiento) LIKE '%PUBLICA%'" +
		" AND UPPER(descripci_n_del_procedimiento) LIKE '%VIA%'"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}

func TestFilterWhere_KeywordWildcardsNeutralized(t *testing.T) {
	where, _ := Filter{Keyword: "%obra_"}.Where()
	want := "UPPER(descripci_n_del_procedimiento) LIKE '%OBRA%'"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}

func TestFilterWhere_KeywordCollapsingToNothingIsNoFilter(t *testing.T) {
	if _, ok := (Filter{Keyword: "%%% ___"}).Where(); ok {
		t.Fatal("expected no filter when every term sanitizes away")
	}
}

func TestFilterWhere_ClauseOrderIsCategoryStatusKeyword(t *testing.T) {
	where, _ := Filter{Categories: "1", Statuses: "x", Keyword: "y"}.Where()
	want := "codigo_principal_de_categoria IN ('V1.1')" +
		" AND UPPER(estado_del_procedimiento) IN ('X')" +
		" AND UPPER(descripci_n_del_procedimiento) LIKE '%Y%'"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}

func TestFilterWhere_EmptyFilterHasNoExpression(t *testing.T) {
	if where, ok := (Filter{}).Where(); ok || where != "" {
		t.Fatalf("expected no expression, got %q (ok=%v)", where, ok)
	}
}

func TestFilterWhere_InjectionAttemptStaysQuoted(t *testing.T) {
	where, _ := Filter{Categories: "x') OR ('1'='1"}.Where()
	want := "codigo_principal_de_categoria IN ('V1.x'') OR (''1''=''1')"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
}
