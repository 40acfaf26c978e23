package auth

import "github.com/Krushna4142/FitOS-dashboard/internal"

// Provider issues and verifies session tokens. There is no credential
// check behind it: any non-empty username/password pair is a valid login,
// so the token only carries identity, not proof of anything.
type Provider interface {
	Issue(user *internal.User) (string, error)
	Verify(token string) (*internal.User, error)
}
