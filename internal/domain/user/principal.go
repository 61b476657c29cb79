package user

// Principal is the authenticated identity attached to a request after token
// introspection. Accounts live in a separate service, so this is all the API
// ever sees of a user.
type Principal struct {
	UserID   string
	Username string
	Email    string
}
