package chat

import (
	"fmt"
	"strings"
	"unicode"
)

// Tables the assistant may read. Must match the schema advertised in the
// synthesis prompt; anything else is rejected even if it exists.
var allowedTables = map[string]bool{
	"rooms":             true,
	"hotel_branches":    true,
	"bookings":          true,
	"payments":          true,
	"users":             true,
	"promotions":        true,
	"room_maintenances": true,
}

var forbiddenKeywords = map[string]bool{
	"insert":   true,
	"update":   true,
	"delete":   true,
	"drop":     true,
	"alter":    true,
	"create":   true,
	"truncate": true,
	"grant":    true,
	"revoke":   true,
	"merge":    true,
	"exec":     true,
	"execute":  true,
	"call":     true,
	"copy":     true,
	"vacuum":   true,
	"into":     true,
	"lock":     true,
	"listen":   true,
	"notify":   true,
	"prepare":  true,
	"set":      true,
}

// Credential columns never leave the database through the assistant,
// even on tables the allow-list permits.
var forbiddenColumns = map[string]bool{
	"password_hash": true,
	"passwd":        true,
}

// ValidateSelect is the allow-list gate on model-generated SQL. The text
// backend's output is executed verbatim, so it is an untrusted-input
// boundary: one statement, SELECT only, known tables, no mutation
// keywords, no credential columns, no comments. A prefix check alone is
// not enough.
func ValidateSelect(query string) error {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")
	q = strings.TrimSpace(q)

	if q == "" {
		return fmt.Errorf("empty query")
	}
	if strings.Contains(q, ";") {
		return fmt.Errorf("multiple statements")
	}
	if strings.Contains(q, "--") || strings.Contains(q, "/*") {
		return fmt.Errorf("comments not allowed")
	}

	tokens := tokenize(stripStringLiterals(q))
	if len(tokens) == 0 || tokens[0] != "select" {
		return fmt.Errorf("not a select statement")
	}

	for i, tok := range tokens {
		if forbiddenKeywords[tok] {
			return fmt.Errorf("forbidden keyword %q", tok)
		}
		if forbiddenColumns[tok] {
			return fmt.Errorf("column %q not allowed", tok)
		}

		if tok != "from" && tok != "join" {
			continue
		}
		if i+1 >= len(tokens) {
			return fmt.Errorf("dangling %s", strings.ToUpper(tok))
		}
		if err := checkTableRefs(tokens, i+1); err != nil {
			return err
		}
	}

	return nil
}

// checkTableRefs vets the table references starting at tokens[i]: the
// first one, plus every further reference joined by commas, so an
// old-style comma join cannot smuggle a table past the gate. Each
// reference may carry an alias. Parenthesized subqueries are skipped
// here; their own FROM clauses are vetted by the caller's scan.
func checkTableRefs(tokens []string, i int) error {
	for {
		switch {
		case i >= len(tokens):
			return fmt.Errorf("dangling table reference")
		case tokens[i] == "(":
			i = skipParens(tokens, i)
		case !allowedTables[tokens[i]]:
			return fmt.Errorf("table %q not allowed", tokens[i])
		default:
			i++
		}

		if i < len(tokens) && tokens[i] == "as" {
			i++
		}
		if i < len(tokens) && isIdent(tokens[i]) {
			i++ // alias, or the keyword opening the next clause
		}

		if i >= len(tokens) || tokens[i] != "," {
			return nil
		}
		i++
	}
}

func skipParens(tokens []string, i int) int {
	depth := 0
	for ; i < len(tokens); i++ {
		switch tokens[i] {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return i
}

func isIdent(tok string) bool {
	return tok != "," && tok != "(" && tok != ")"
}

// stripStringLiterals blanks single-quoted literals so keywords inside
// them cannot trip the token checks.
func stripStringLiterals(q string) string {
	var b strings.Builder
	inLiteral := false

	for _, r := range q {
		if r == '\'' {
			inLiteral = !inLiteral
			b.WriteRune(' ')
			continue
		}
		if inLiteral {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// tokenize lowercases and splits on non-identifier runes, keeping
// commas and parentheses as their own tokens so table lists and
// subqueries stay visible to the checks.
func tokenize(q string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for _, r := range strings.ToLower(q) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			word.WriteRune(r)
		case r == ',' || r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		default:
			flush()
		}
	}
	flush()

	return tokens
}
