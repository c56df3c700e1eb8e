// Package auth implements the shared admin credential check: a single
// bearer value of shape "email:secret" compared against two configured
// values. There is no hashing, lockout, or expiry; this is a deliberately
// small static gate for a one-admin system.
package auth

import "strings"

// Credentials holds the configured admin email/secret pair.
type Credentials struct {
	Email  string
	Secret string
}

// Configured reports whether both credential parts are set. Unset
// credentials fail every authorization attempt.
func (c Credentials) Configured() bool {
	return c.Email != "" && c.Secret != ""
}

// Authorize checks an Authorization header value of the form
// "Bearer <email>:<secret>" against the configured pair. Both parts must
// match exactly.
func (c Credentials) Authorize(header string) bool {
	if !c.Configured() {
		return false
	}
	value, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	email, secret, ok := strings.Cut(value, ":")
	if !ok {
		return false
	}
	return email == c.Email && secret == c.Secret
}
