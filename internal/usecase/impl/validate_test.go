package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  bool
	}{
		{"international", "+1234567890", true},
		{"local with leading zero", "0712345678", true},
		{"dashed", "555-123-4567", true},
		{"spaces and parens", "(555) 123 4567", true},
		{"too short", "12345", false},
		{"letters only", "call me", false},
		{"plus in the middle", "12345+67890", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validatePhone(tc.phone))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain", "info@mybusiness.com", true},
		{"subdomain", "owner@mail.shop.example.org", true},
		{"plus tag", "owner+bot@example.com", true},
		{"missing at", "info.mybusiness.com", false},
		{"missing tld", "info@mybusiness", false},
		{"single letter tld", "info@mybusiness.c", false},
		{"trailing text", "info@mybusiness.com extra", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validateEmail(tc.email))
		})
	}
}

func TestParseKeywords(t *testing.T) {
	keywords := parseKeywords("pizza, Restaurant, , a, Italian")
	assert.Equal(t, []string{"pizza", "restaurant", "italian"}, keywords)
}

func TestParseKeywords_TrimsAndLowercases(t *testing.T) {
	keywords := parseKeywords("  Hotel ,ACCOMMODATION,  lodging  ")
	assert.Equal(t, []string{"hotel", "accommodation", "lodging"}, keywords)
}

func TestParseKeywords_AllTokensDropped(t *testing.T) {
	assert.Empty(t, parseKeywords(" , a, b ,"))
	assert.Empty(t, parseKeywords(""))
}
