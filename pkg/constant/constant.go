package constant

const (
	TokenType = "Bearer"

	DefaultUserRole = "user"
	AdminRole       = "admin"

	TempPasswordLength = 12
	TokenSecretBytes   = 32
)

// Messages returned in the response envelope. The login failure message is
// shared between unknown-email and wrong-password so callers cannot probe
// which emails exist.
const (
	MsgInvalidCredentials       = "Invalid credentials"
	MsgAccountDisabled          = "Account is disabled"
	MsgCurrentPasswordIncorrect = "Current password is incorrect"
)
