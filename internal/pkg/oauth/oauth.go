// Package oauth verifies social-login access tokens against the provider's
// user-info endpoint. The app never runs the redirect flow itself: clients
// obtain the provider token and trade it in here.
package oauth

import (
	"context"
	"errors"
)

var ErrTokenRejected = errors.New("provider rejected the access token")

// Identity is what a provider tells us about the token's owner.
type Identity struct {
	Provider       string
	ProviderUserID string
	Email          string
}

// Verifier turns a provider access token into a verified identity.
type Verifier interface {
	Verify(ctx context.Context, accessToken string) (*Identity, error)
}
