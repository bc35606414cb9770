package auth

// SessionIdentity is the authenticated principal threaded through operation
// calls. The zero value is the anonymous visitor; there is no partial state
// between anonymous and authenticated.
type SessionIdentity struct {
	Username string
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = SessionIdentity{}

// Authenticated reports whether the identity belongs to a logged-in user.
func (id SessionIdentity) Authenticated() bool {
	return id.Username != ""
}
