// Package auth gates admin access to the shell. Today the only strategy
// is a single shared secret; the Verifier interface is the seam for
// anything stronger later.
package auth

import "crypto/subtle"

// Verifier decides whether a supplied credential grants admin access.
type Verifier interface {
	Verify(credential string) bool
}

// SecretVerifier matches one shared secret.
type SecretVerifier struct {
	secret string
}

// NewSecretVerifier returns a verifier for the given secret.
func NewSecretVerifier(secret string) SecretVerifier {
	return SecretVerifier{secret: secret}
}

// Verify reports whether credential equals the configured secret. The
// compare is constant-time.
func (v SecretVerifier) Verify(credential string) bool {
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(credential)) == 1
}
