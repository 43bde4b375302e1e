// signature/keys.go
package signature

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"strings"
)

// materializeKey converts a base64 X.509 SubjectPublicKeyInfo
// encoding into an RSA public key. Any decode or parse failure yields
// (nil, false) so the caller can skip the key and continue with the
// rest of the pool.
func materializeKey(raw string) (*rsa.PublicKey, bool) {
	keyBytes, err := decodeBase64(raw)
	if err != nil {
		return nil, false
	}

	parsed, err := x509.ParsePKIXPublicKey(keyBytes)
	if err != nil {
		return nil, false
	}

	rsaKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, false
	}
	return rsaKey, true
}

// decodeBase64 decodes key or signature text, tolerating surrounding
// whitespace as published by the registry.
func decodeBase64(text string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimSpace(text))
}
