package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the authenticated caller as carried in the bearer token.
// Accounts and session issuance live outside this service.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
