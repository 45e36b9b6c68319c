package models

// Federated identity providers.
const (
	ProviderGoogle = "https://accounts.google.com"
)

// FederatedCredential links a user to an account at an external identity
// provider. The (Provider, ProviderUserID) pair is unique.
type FederatedCredential struct {
	ID             int64
	UserID         int64
	Provider       string
	ProviderUserID string
}

// FederatedProfile is the identity asserted by a provider after a
// successful authorization code exchange.
type FederatedProfile struct {
	Provider       string
	ProviderUserID string
	Email          string
	EmailVerified  bool
}

// FederatedRedirect starts a federated sign-in. Nonce is kept in the session
// and URL is the provider consent page.
type FederatedRedirect struct {
	URL   string
	Nonce string
}
