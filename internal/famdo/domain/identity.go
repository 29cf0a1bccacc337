package domain

// Identity is the authenticated user as the server reported it at login or
// registration. It is immutable for the lifetime of the session: replaced
// wholesale on login, destroyed on logout.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool { return i.ID == "" }
