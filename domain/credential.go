package domain

import (
	"encoding/base64"
	"strings"
)

// EncodeCredentialID converts a raw credential identifier into the URL-safe,
// unpadded token stored on the voter record.
func EncodeCredentialID(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCredentialID reverses EncodeCredentialID. Padded tokens are accepted
// too, so records written by other frontends of this scheme still decode.
func DecodeCredentialID(token string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
}
