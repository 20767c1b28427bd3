// Package auth gates privileged shell actions behind a capability interface
// so the core never embeds the credential.
package auth

// Gate authorizes privileged actions such as clearing the feedback ledger.
type Gate interface {
	Authorize(secret string) bool
}

// PasswordGate is a plain equality check against a configured password. Not a
// security mechanism; it mirrors the admin prompt of a single-terminal POS.
type PasswordGate struct {
	password string
}

// NewPasswordGate creates a gate for the configured admin password.
func NewPasswordGate(password string) *PasswordGate {
	return &PasswordGate{password: password}
}

// Authorize reports whether secret matches the configured password.
func (g *PasswordGate) Authorize(secret string) bool {
	return g.password != "" && secret == g.password
}
