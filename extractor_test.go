package printforge_test

import (
	"testing"

	printforge "github.com/printforge/go-printforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTokenExtractor(t *testing.T) {
	extractor := printforge.DefaultTokenExtractor()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "message field",
			body:     `{"success":true,"message":"tok-1"}`,
			expected: "tok-1",
		},
		{
			name:     "data field",
			body:     `{"success":true,"data":"tok-2"}`,
			expected: "tok-2",
		},
		{
			name:     "token field",
			body:     `{"token":"tok-3"}`,
			expected: "tok-3",
		},
		{
			name:     "bare json string",
			body:     `"tok-4"`,
			expected: "tok-4",
		},
		{
			name:     "plain text body",
			body:     "tok-5",
			expected: "tok-5",
		},
		{
			name: "message wins over data and token",
			// Some backend versions populate several fields at once;
			// message must take precedence for compatibility.
			body:     `{"message":"A","data":"B","token":"C"}`,
			expected: "A",
		},
		{
			name:     "empty message falls through to data",
			body:     `{"message":"","data":"B"}`,
			expected: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := extractor.Extract([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestDefaultTokenExtractorFailures(t *testing.T) {
	extractor := printforge.DefaultTokenExtractor()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "message not a string", body: `{"message":{"nested":true}}`},
		{name: "json array", body: `[1,2,3]`},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := extractor.Extract([]byte(tt.body))
			assert.Empty(t, token)
			assert.True(t, printforge.IsUnexpectedFormatError(err))
		})
	}
}

func TestChainTokenExtractorOrder(t *testing.T) {
	// A reordered chain honors its own precedence; the order is a
	// constructor argument, not a constant.
	extractor := printforge.NewChainTokenExtractor(
		printforge.FieldTokenExtractor("token"),
		printforge.FieldTokenExtractor("message"),
	)

	token, err := extractor.Extract([]byte(`{"message":"A","token":"C"}`))
	require.NoError(t, err)
	assert.Equal(t, "C", token)
}

func TestChainTokenExtractorFiltersNil(t *testing.T) {
	extractor := printforge.NewChainTokenExtractor(nil, printforge.FieldTokenExtractor("token"))

	token, err := extractor.Extract([]byte(`{"token":"C"}`))
	require.NoError(t, err)
	assert.Equal(t, "C", token)
}
