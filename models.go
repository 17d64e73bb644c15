package main

type User struct {
	ID           int
	Username     string
	PasswordHash string
}

type Listing struct {
	ID          int
	Title       string
	Description string
	OwnerID     int
}

// Session is the authenticated identity decoded from the session cookie
// for a single request. It is never persisted server-side.
type Session struct {
	UserID   int
	Username string
}
