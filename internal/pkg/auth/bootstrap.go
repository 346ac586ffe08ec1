package auth

import (
	"github.com/videobelajar/backend/internal/config"
)

// BootstrapIdentity is an identity resolved from the built-in allow-list.
type BootstrapIdentity struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// BootstrapProvider authenticates against a small injected allow-list of
// operator/demo accounts, bypassing the store. An empty list disables it, which
// is the expected production configuration.
type BootstrapProvider struct {
	accounts []config.BootstrapAccount
}

// NewBootstrapProvider creates a BootstrapProvider from configured accounts.
func NewBootstrapProvider(accounts []config.BootstrapAccount) *BootstrapProvider {
	return &BootstrapProvider{accounts: accounts}
}

// Enabled reports whether any bootstrap accounts are configured.
func (p *BootstrapProvider) Enabled() bool {
	return len(p.accounts) > 0
}

// Authenticate checks the credentials against the allow-list. Bootstrap
// identities without a configured ID get a negative one so they can never
// collide with a store row.
func (p *BootstrapProvider) Authenticate(email, password string) (*BootstrapIdentity, bool) {
	for i, acc := range p.accounts {
		if acc.Email != email {
			continue
		}
		if ParseStoredPassword(acc.Password).Verify(password) {
			id := acc.ID
			if id == 0 {
				id = -int64(i + 1)
			}
			role := acc.Role
			if role == "" {
				role = "user"
			}
			return &BootstrapIdentity{
				ID:    id,
				Name:  acc.Name,
				Email: acc.Email,
				Role:  role,
			}, true
		}
	}
	return nil, false
}

// Lookup resolves a bootstrap identity by its (possibly synthetic) ID,
// mirroring the assignment logic in Authenticate.
func (p *BootstrapProvider) Lookup(id int64) (*BootstrapIdentity, bool) {
	for i, acc := range p.accounts {
		accID := acc.ID
		if accID == 0 {
			accID = -int64(i + 1)
		}
		if accID != id {
			continue
		}
		role := acc.Role
		if role == "" {
			role = "user"
		}
		return &BootstrapIdentity{
			ID:    accID,
			Name:  acc.Name,
			Email: acc.Email,
			Role:  role,
		}, true
	}
	return nil, false
}
