package printforge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var segmentDecoder = jwt.NewParser()

// DecodeToken parses the payload segment of a compact token into Claims.
// The segment is URL-safe base64 over JSON. No signature or expiry check
// happens here: the backend owns token validation, the client only reads
// advisory claims, so a token with just header and payload still decodes.
//
// Returns ErrNoToken for an empty token and ErrTokenMalformed when the
// token has fewer than two segments or the payload is not valid JSON.
func DecodeToken(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, ErrTokenMalformed
	}

	payload, err := segmentDecoder.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	claims := new(Claims)
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	return claims, nil
}
