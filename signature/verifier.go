// signature/verifier.go
package signature

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"sync"

	"github.com/campushub/campus-api/model"
)

// Algorithm selects the hash-then-verify scheme for chat signatures.
type Algorithm string

const (
	SHA1WithRSA   Algorithm = "SHA1WithRSA"
	SHA256WithRSA Algorithm = "SHA256WithRSA"
)

// Verifier checks chat message signatures against a pool of known
// public keys. The pool is materialized from the raw key set on first
// use and reused for the verifier's lifetime; raw keys that fail to
// materialize are dropped from the pool rather than failing the whole
// verifier.
//
// Once built the pool is immutable, so Validate is safe for
// concurrent use.
type Verifier struct {
	algorithm Algorithm

	mu      sync.Mutex
	rawKeys []model.ChatPublicKey
	pool    []*rsa.PublicKey
	built   bool
}

// NewVerifier creates a verifier for the given raw public keys. An
// empty algorithm selects SHA1WithRSA, the scheme the chat registry
// signs with.
func NewVerifier(keys []model.ChatPublicKey, algorithm Algorithm) *Verifier {
	if algorithm == "" {
		algorithm = SHA1WithRSA
	}
	return &Verifier{algorithm: algorithm, rawKeys: keys}
}

// Validate reports whether the message signature was produced by any
// key in the pool. Keys are tried in input order and the first match
// wins; an empty pool or no match yields false. Per-key failures of
// any kind count as "this key does not verify" and are never
// surfaced.
func (v *Verifier) Validate(message model.ChatMessage) bool {
	for _, key := range v.keyPool() {
		if v.verifySignature(message.Text, message.Signature, key) {
			return true
		}
	}
	return false
}

// Reset replaces the raw key set and discards the materialized pool,
// so the next Validate rebuilds it.
func (v *Verifier) Reset(keys []model.ChatPublicKey) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rawKeys = keys
	v.pool = nil
	v.built = false
}

// keyPool returns the materialized keys, building them exactly once
// per raw key set.
func (v *Verifier) keyPool() []*rsa.PublicKey {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.built {
		v.pool = make([]*rsa.PublicKey, 0, len(v.rawKeys))
		for _, raw := range v.rawKeys {
			if key, ok := materializeKey(raw.Key); ok {
				v.pool = append(v.pool, key)
			}
		}
		v.built = true
	}
	return v.pool
}

// verifySignature checks one candidate key. A malformed signature, a
// hash mismatch, or the wrong key all mean the same thing to the
// caller: not this key.
func (v *Verifier) verifySignature(text, signature string, key *rsa.PublicKey) bool {
	sigBytes, err := decodeBase64(signature)
	if err != nil {
		return false
	}

	var hash crypto.Hash
	var digest []byte
	switch v.algorithm {
	case SHA256WithRSA:
		hash = crypto.SHA256
		sum := sha256.Sum256([]byte(text))
		digest = sum[:]
	case SHA1WithRSA:
		hash = crypto.SHA1
		sum := sha1.Sum([]byte(text))
		digest = sum[:]
	default:
		return false
	}

	return rsa.VerifyPKCS1v15(key, hash, digest, sigBytes) == nil
}
