// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the authenticated identity as the backend reports it. The field
// names mirror the backend's user schema so the JSON round-trips unchanged.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Token is the credential issued by POST /auth/token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Credential carries what the user typed into the login form. It is
// transient: used for a single authentication request and never stored.
type Credential struct {
	// Identifier is the login name; depending on the backend this is a
	// username or an email address.
	Identifier string
	Secret     string
}
