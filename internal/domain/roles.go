package domain

// Role identifiers stored on user rows and required by route policies.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)
