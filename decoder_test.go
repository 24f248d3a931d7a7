package printforge_test

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	printforge "github.com/printforge/go-printforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

func payloadToken(payload string) string {
	return "header." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".signature"
}

func TestDecodeToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"id":        float64(42),
		"role":      "client",
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
	})

	claims, err := printforge.DecodeToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID())
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "Ada Lovelace", claims.DisplayName())
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.True(t, claims.IsActive())
}

func TestDecodeTokenTwoSegments(t *testing.T) {
	// A token carrying only header and payload still decodes; the client
	// never checks the signature anyway.
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"admin"}`))

	claims, err := printforge.DecodeToken("header." + payload)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestDecodeTokenFailures(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "single segment", token: "not-a-token"},
		{name: "bad base64 payload", token: "header.!!!.signature"},
		{name: "payload not json", token: payloadToken("plain text")},
		{name: "payload json scalar", token: payloadToken(`"just a string"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := printforge.DecodeToken(tt.token)
			assert.Nil(t, claims)
			assert.True(t, printforge.IsTokenMalformedError(err))
		})
	}
}

func TestDecodeTokenEmpty(t *testing.T) {
	claims, err := printforge.DecodeToken("")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, printforge.ErrNoToken)
}

func TestDecodeThenDeriveClientRole(t *testing.T) {
	tests := []struct {
		role     string
		isClient bool
	}{
		{role: "client", isClient: true},
		{role: "CLIENT", isClient: true},
		{role: "Client", isClient: true},
		{role: "admin", isClient: false},
		{role: "employee", isClient: false},
		{role: "analyst", isClient: false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			token := signedToken(t, jwt.MapClaims{"role": tt.role})

			claims, err := printforge.DecodeToken(token)
			require.NoError(t, err)

			session := printforge.DeriveSession(claims)
			assert.True(t, session.IsAuthenticated)
			assert.Equal(t, tt.isClient, session.IsClient)
		})
	}
}
