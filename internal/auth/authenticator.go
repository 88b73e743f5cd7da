package auth

import "context"

// Authenticator resolves a bearer token (already stripped of the
// "Bearer " scheme) to a Principal. Implementations are read-only: no
// session state is mutated while validating.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}
