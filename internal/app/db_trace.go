package app

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// Presence rows carry athlete names and photo urls; literals are masked before export.
	queryLiteralRegex = regexp.MustCompile(`'(?:[^']|'')*'`)
	queryTableRegex   = regexp.MustCompile(`(?i)\b(?:from|into|update|join)\s+(rachas|matches|match_presences|highlight_overrides)\b`)
)

// formatDBQueryForTrace renders a statement for span attributes, prefixed with the racha tables
// it touches, e.g. "[matches,match_presences] SELECT ...".
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = queryLiteralRegex.ReplaceAllString(normalized, "'?'")
	if tables := tracedTables(normalized); tables != "" {
		normalized = "[" + tables + "] " + normalized
	}

	return truncateTracedQuery(normalized)
}

func tracedTables(query string) string {
	var out []string
	for _, m := range queryTableRegex.FindAllStringSubmatch(query, -1) {
		name := strings.ToLower(m[1])
		if !containsString(out, name) {
			out = append(out, name)
		}
	}
	return strings.Join(out, ",")
}

func truncateTracedQuery(query string) string {
	if len(query) <= maxTracedQueryLength {
		return query
	}
	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
