// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the minimal identity record: who someone is, independent of how
// they authenticate. Credential material lives on Account.
type User struct {
	ID        int64     // Unique numeric identifier.
	Username  string    // Unique display/login name.
	CreatedAt time.Time // Timestamp of when this user was created.
}

// Session represents one logged-in browser session, stored server-side.
// The opaque Token is the only value that crosses to the client (in a cookie).
type Session struct {
	ID      string    // Unique session identifier.
	Token   string    // Opaque session token presented by the client.
	UserID  int64     // The user this session belongs to.
	Expires time.Time // When this session stops being honored.
}

// VerificationToken is a reserved record shape for future email-verification
// and password-reset flows. No in-scope operation reads or writes it; the
// (Identifier, Token) pair is the composite key.
type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}
