package ports

import (
	"context"

	"github.com/bnema/mana-kadai/internal/domain"
)

// Authenticator completes a fresh federated login and returns the service session.
type Authenticator interface {
	Authenticate(ctx context.Context) (domain.SessionCredential, error)
}

type ListingSource interface {
	FetchListing(ctx context.Context, cred domain.SessionCredential) (string, error)
}
