package sparqlfmt

import (
	"strings"
	"testing"
)

func TestFormatBasicQuery(t *testing.T) {
	query := "prefix foaf: <http://xmlns.com/foaf/0.1/> select ?name where { ?p foaf:name ?name . } limit 10"

	got, err := Format(query)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	lines := strings.Split(got, "\n")
	want := []string{
		"PREFIX foaf: <http://xmlns.com/foaf/0.1/>",
		"SELECT ?name",
		"WHERE {",
		"  ?p foaf:name ?name .",
		"}",
		"LIMIT 10",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), got)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestFormatNestedGroups(t *testing.T) {
	query := "SELECT * WHERE { { ?a ?b ?c . } UNION { ?d ?e ?f . } }"

	got, err := Format(query)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(got, "  {\n    ?a ?b ?c .\n  }") {
		t.Errorf("nested group not indented:\n%s", got)
	}
	if !strings.Contains(got, "} UNION {") {
		t.Errorf("UNION should join the closing and opening braces:\n%s", got)
	}
}

func TestFormatPreservesLiterals(t *testing.T) {
	query := `SELECT ?x WHERE { ?x rdfs:label "Albert { Einstein }"@en . }`

	got, err := Format(query)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(got, `"Albert { Einstein }"@en`) {
		t.Errorf("literal was mangled:\n%s", got)
	}
}

func TestFormatErrors(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"empty", "   "},
		{"unclosed brace", "SELECT * WHERE {"},
		{"stray closing brace", "SELECT * WHERE { } }"},
		{"unterminated string", `SELECT * WHERE { ?x ?y "oops . }`},
		{"unterminated iri", "SELECT * WHERE { ?x <http://example.org ?y . }"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Format(tc.query); err == nil {
				t.Errorf("Format(%q) should fail", tc.query)
			}
		})
	}
}

func TestFormatDropsComments(t *testing.T) {
	query := "SELECT ?x # projection\nWHERE { ?x ?y ?z . }"

	got, err := Format(query)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(got, "projection") {
		t.Errorf("comment survived formatting:\n%s", got)
	}
}
