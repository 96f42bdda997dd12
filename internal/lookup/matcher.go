package lookup

import (
	"encoding/csv"
	"strings"
)

// Matcher decides whether a single dataset line matches a query.
type Matcher interface {
	Match(line, query string) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(line, query string) bool

// Match calls f(line, query).
func (f MatcherFunc) Match(line, query string) bool {
	return f(line, query)
}

// Substring matches when query appears anywhere in the line. Case-sensitive
// and unanchored: "bob@x.com" also matches "bob@x.com.evil.com", and the
// empty query matches every line.
var Substring Matcher = MatcherFunc(strings.Contains)

// ExactField parses each line as one CSV record and matches when a field
// equals the query. Column selects a zero-based field; a negative Column
// compares every field.
type ExactField struct {
	Column int
}

// Match reports whether line has a field equal to query. Lines that are not
// valid CSV never match.
func (m ExactField) Match(line, query string) bool {
	fields, ok := parseRecord(line)
	if !ok {
		return false
	}

	if m.Column >= 0 {
		return m.Column < len(fields) && fields[m.Column] == query
	}
	for _, f := range fields {
		if f == query {
			return true
		}
	}
	return false
}

func parseRecord(line string) ([]string, bool) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil, false
	}

	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	fields, err := r.Read()
	if err != nil {
		return nil, false
	}
	return fields, true
}
