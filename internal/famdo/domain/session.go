package domain

// Session pairs the bearer credential with the identity it represents.
// The token is opaque apart from its unencrypted expiry claim, which the
// client peeks at only to avoid sending a token it already knows is stale.
type Session struct {
	Identity Identity
	Token    string
}
