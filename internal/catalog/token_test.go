package catalog_test

import (
	"testing"

	"repuestos/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tokens := catalog.Tokenize("2015 corolla")
	assert.Equal(t, []catalog.Token{
		{Kind: catalog.TokenYear, Year: 2015},
		{Kind: catalog.TokenText, Text: "corolla"},
	}, tokens)
}

func TestTokenize_EmptyQuery(t *testing.T) {
	assert.Empty(t, catalog.Tokenize(""))
	assert.Empty(t, catalog.Tokenize("   \t  \n"))
}

func TestTokenize_WhitespaceRuns(t *testing.T) {
	tokens := catalog.Tokenize("  foco   delantero\t2018 ")
	assert.Equal(t, []catalog.Token{
		{Kind: catalog.TokenText, Text: "foco"},
		{Kind: catalog.TokenText, Text: "delantero"},
		{Kind: catalog.TokenYear, Year: 2018},
	}, tokens)
}

func TestTokenize_YearRule(t *testing.T) {
	// The year rule is literal: exactly four decimal digits. "0000" is a
	// year token with value 0; longer or mixed strings are text.
	cases := []struct {
		input string
		token catalog.Token
	}{
		{"0000", catalog.Token{Kind: catalog.TokenYear, Year: 0}},
		{"0999", catalog.Token{Kind: catalog.TokenYear, Year: 999}},
		{"9999", catalog.Token{Kind: catalog.TokenYear, Year: 9999}},
		{"201", catalog.Token{Kind: catalog.TokenText, Text: "201"}},
		{"12345", catalog.Token{Kind: catalog.TokenText, Text: "12345"}},
		{"20a5", catalog.Token{Kind: catalog.TokenText, Text: "20a5"}},
		{"-015", catalog.Token{Kind: catalog.TokenText, Text: "-015"}},
		{"corolla", catalog.Token{Kind: catalog.TokenText, Text: "corolla"}},
	}

	for _, tc := range cases {
		tokens := catalog.Tokenize(tc.input)
		assert.Len(t, tokens, 1, "input %q", tc.input)
		assert.Equal(t, tc.token, tokens[0], "input %q", tc.input)
	}
}
