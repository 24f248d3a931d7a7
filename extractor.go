package printforge

import (
	"encoding/json"
	"strings"
)

// TokenExtractor pulls a bearer token out of an authentication response
// body without tying callers to one backend envelope shape.
type TokenExtractor interface {
	Extract(body []byte) (string, error)
}

// TokenExtractorFunc adapts a function into a TokenExtractor.
type TokenExtractorFunc func(body []byte) (string, error)

// Extract satisfies the TokenExtractor interface.
func (f TokenExtractorFunc) Extract(body []byte) (string, error) {
	if f == nil {
		return "", ErrUnexpectedFormat
	}
	return f(body)
}

// FieldTokenExtractor reads the token from a named top-level string field
// of a JSON object body.
func FieldTokenExtractor(field string) TokenExtractor {
	return TokenExtractorFunc(func(body []byte) (string, error) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return "", ErrUnexpectedFormat
		}

		raw, ok := envelope[field]
		if !ok {
			return "", ErrUnexpectedFormat
		}

		var token string
		if err := json.Unmarshal(raw, &token); err != nil || token == "" {
			return "", ErrUnexpectedFormat
		}

		return token, nil
	})
}

// RawTokenExtractor accepts a body that is the token itself, either as a
// JSON string or as plain text.
var RawTokenExtractor TokenExtractor = TokenExtractorFunc(func(body []byte) (string, error) {
	var token string
	if err := json.Unmarshal(body, &token); err == nil && token != "" {
		return token, nil
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return "", ErrUnexpectedFormat
	}

	return trimmed, nil
})

// ChainTokenExtractor tries extractors in order and returns the first
// non-empty token. Order is significant: some backend versions populate
// several envelope fields at once and the first configured strategy must
// win.
type ChainTokenExtractor struct {
	extractors []TokenExtractor
}

// NewChainTokenExtractor filters nil extractors and returns a composite
// extractor.
func NewChainTokenExtractor(extractors ...TokenExtractor) *ChainTokenExtractor {
	filtered := make([]TokenExtractor, 0, len(extractors))
	for _, e := range extractors {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	return &ChainTokenExtractor{extractors: filtered}
}

// Extract satisfies the TokenExtractor interface.
func (c *ChainTokenExtractor) Extract(body []byte) (string, error) {
	for _, e := range c.extractors {
		token, err := e.Extract(body)
		if err == nil {
			return token, nil
		}
	}
	return "", ErrUnexpectedFormat
}

// DefaultTokenExtractor matches the backend contract as deployed today: the
// token arrives in "message", older versions use "data" or "token", and the
// oldest return the bare string.
func DefaultTokenExtractor() *ChainTokenExtractor {
	return NewChainTokenExtractor(
		FieldTokenExtractor("message"),
		FieldTokenExtractor("data"),
		FieldTokenExtractor("token"),
		RawTokenExtractor,
	)
}
