// Package user holds the authentication-facing models shared by the client
// and the development server.
package user

// User is the authenticated profile as returned by GET /auth/profile.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Tokens is the bearer credential pair issued on login and refresh. Both are
// opaque strings to the client.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
