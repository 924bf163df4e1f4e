// Package account defines login session models.
package account

// User is the authenticated shop customer.
type User struct {
	ID   int
	Name string
	Role string
}

// Session is the outcome of a login call.
// A session without a user is a rejected login carrying the server message.
type Session struct {
	Message string
	User    *User
}

// Authenticated reports whether the login produced a user.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// UserID returns the authenticated user's id.
func (s Session) UserID() (int, bool) {
	if s.User == nil {
		return 0, false
	}
	return s.User.ID, true
}
