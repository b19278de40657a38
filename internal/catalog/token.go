package catalog

import (
	"strconv"
	"strings"
)

// TokenKind distinguishes how a search token constrains the catalog.
type TokenKind int

const (
	// TokenText matches as a case-insensitive substring of any searchable field.
	TokenText TokenKind = iota
	// TokenYear matches products whose production year range contains the year.
	TokenYear
)

// Token is one whitespace-delimited unit of a search query.
type Token struct {
	Kind TokenKind
	Text string // set for TokenText
	Year int    // set for TokenYear
}

// Tokenize splits a raw query on whitespace runs and classifies each piece.
// A piece of exactly four decimal digits is a year token; everything else is
// a text token. The rule is literal: "0000" is a year token even though it
// names no real year, and "12345" is text. An empty or all-whitespace query
// yields no tokens.
func Tokenize(query string) []Token {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		if isYearToken(field) {
			year, _ := strconv.Atoi(field)
			tokens = append(tokens, Token{Kind: TokenYear, Year: year})
			continue
		}
		tokens = append(tokens, Token{Kind: TokenText, Text: field})
	}
	return tokens
}

// isYearToken reports whether s is exactly four decimal digits.
func isYearToken(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
