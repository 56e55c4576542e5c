// internal/sparqlfmt/sparqlfmt.go
// Package sparqlfmt pretty-prints SPARQL query text for display.
package sparqlfmt

import (
	"errors"
	"fmt"
	"strings"
)

const indentStep = "  "

// keywords are uppercased when they appear as standalone tokens.
var keywords = map[string]string{
	"prefix": "PREFIX", "base": "BASE", "select": "SELECT", "distinct": "DISTINCT",
	"reduced": "REDUCED", "construct": "CONSTRUCT", "describe": "DESCRIBE",
	"ask": "ASK", "where": "WHERE", "filter": "FILTER", "optional": "OPTIONAL",
	"union": "UNION", "minus": "MINUS", "graph": "GRAPH", "service": "SERVICE",
	"bind": "BIND", "values": "VALUES", "as": "AS", "order": "ORDER",
	"group": "GROUP", "by": "BY", "having": "HAVING", "limit": "LIMIT",
	"offset": "OFFSET", "asc": "ASC", "desc": "DESC", "in": "IN",
	"not": "NOT", "exists": "EXISTS",
}

// clauseStarters force a line break before the token at group-pattern level.
var clauseStarters = map[string]bool{
	"PREFIX": true, "SELECT": true, "CONSTRUCT": true, "DESCRIBE": true,
	"ASK": true, "WHERE": true, "ORDER": true, "GROUP": true, "HAVING": true,
	"LIMIT": true, "OFFSET": true, "VALUES": true, "FILTER": true,
	"OPTIONAL": true, "MINUS": true, "SERVICE": true, "BIND": true,
}

// Format reformats a SPARQL query with one clause per line and brace-driven
// indentation. It returns an error for empty input, unterminated strings or
// IRIs, and unbalanced braces; callers are expected to fall back to the
// original text in that case.
func Format(query string) (string, error) {
	tokens, err := tokenize(query)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", errors.New("empty query")
	}

	var (
		out   strings.Builder
		line  []string
		depth int
	)
	flush := func() {
		if len(line) == 0 {
			return
		}
		out.WriteString(strings.Repeat(indentStep, depth))
		out.WriteString(strings.Join(line, " "))
		out.WriteByte('\n')
		line = nil
	}

	for _, tok := range tokens {
		if up, ok := keywords[strings.ToLower(tok)]; ok {
			tok = up
		}
		switch tok {
		case "{":
			line = append(line, tok)
			flush()
			depth++
		case "}":
			flush()
			if depth == 0 {
				return "", errors.New("unbalanced braces: unexpected '}'")
			}
			depth--
			line = append(line, tok)
		case ".", ";":
			line = append(line, tok)
			flush()
		default:
			if clauseStarters[tok] && len(line) > 0 {
				flush()
			}
			line = append(line, tok)
		}
	}
	flush()

	if depth != 0 {
		return "", fmt.Errorf("unbalanced braces: %d unclosed '{'", depth)
	}
	return strings.TrimRight(out.String(), "\n"), nil
}

// tokenize splits a query into tokens, keeping IRIs and string literals
// intact and separating braces and standalone terminators.
func tokenize(query string) ([]string, error) {
	var tokens []string
	runes := []rune(query)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '<':
			end := i + 1
			for end < len(runes) && runes[end] != '>' {
				end++
			}
			if end == len(runes) {
				return nil, errors.New("unterminated IRI")
			}
			tokens = append(tokens, string(runes[i:end+1]))
			i = end + 1
		case c == '"' || c == '\'':
			quote := c
			end := i + 1
			for end < len(runes) {
				if runes[end] == '\\' {
					end += 2
					continue
				}
				if runes[end] == quote {
					break
				}
				end++
			}
			if end >= len(runes) {
				return nil, errors.New("unterminated string literal")
			}
			end++
			// Absorb a language tag or datatype suffix into the token.
			for end < len(runes) && !isBoundary(runes[end]) {
				end++
			}
			tokens = append(tokens, string(runes[i:end]))
			i = end
		case c == '{' || c == '}':
			tokens = append(tokens, string(c))
			i++
		case c == '#':
			// Comment runs to end of line and is dropped.
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		default:
			end := i
			for end < len(runes) && !isBoundary(runes[end]) {
				end++
			}
			word := string(runes[i:end])
			i = end
			// A trailing dot is a triple terminator, not part of the term,
			// unless the word is a plain number like 1.5.
			if len(word) > 1 && strings.HasSuffix(word, ".") && !isNumeric(word) {
				tokens = append(tokens, word[:len(word)-1], ".")
			} else {
				tokens = append(tokens, word)
			}
		}
	}
	return tokens, nil
}

func isBoundary(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '{', '}', '<', '"', '\'':
		return true
	}
	return false
}

func isNumeric(word string) bool {
	dot := false
	for _, c := range strings.TrimSuffix(word, ".") {
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !dot:
			dot = true
		case c == '-' || c == '+':
		default:
			return false
		}
	}
	return true
}
