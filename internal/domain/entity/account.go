package entity

// AccountKind discriminates how an Account authenticates its user.
type AccountKind string

const (
	// AccountKindEmail is the email + password-hash credential method.
	AccountKindEmail AccountKind = "email"

	// AccountKindOAuth is reserved. No code path populates or reads it;
	// its provider/token payload is added only when OAuth is implemented.
	AccountKindOAuth AccountKind = "oauth"
)

// Account is one credential method belonging to a User. A user may own
// several accounts, though only the email kind is exercised today.
// For the email kind both Email and PasswordHash must be present.
type Account struct {
	ID           int64
	UserID       int64
	Kind         AccountKind
	Email        string // Lookup key for the email kind.
	PasswordHash string // bcrypt hash; never crosses the usecase boundary.
}
