package domain

import "time"

// User is an account row. LastLoginAt and LastLoginIP are nil until the
// first successful login.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	Role         string
	LastLoginAt  *time.Time
	LastLoginIP  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccessToken is the stored side of an issued bearer token. SecretHash is the
// SHA-256 digest of the random secret; the plaintext is handed to the caller
// exactly once and is not recoverable from this record.
type AccessToken struct {
	ID         string
	UserID     string
	SecretHash string
	Revoked    bool
	CreatedAt  time.Time
}

// LoginEvent is one append-only row in the authentication audit trail.
// UserID is nil when the attempt failed before an identity was resolved
// (unknown email).
type LoginEvent struct {
	ID         string
	UserID     *string
	IPAddress  string
	UserAgent  string
	LoginAt    *time.Time
	LogoutAt   *time.Time
	TokenID    string
	Successful bool
	DeviceInfo string
	Location   string
}

// RequestMeta carries the transport-level attributes recorded on audit rows.
type RequestMeta struct {
	IPAddress  string
	UserAgent  string
	DeviceInfo string
	Location   string
}
