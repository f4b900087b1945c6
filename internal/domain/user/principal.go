package user

// Principal is the identity behind a verified session token.
// Every principal is treated as an admin of the scoreboard.
type Principal struct {
	UserID string
	Email  string
}
