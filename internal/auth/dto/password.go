package dto

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ResetPasswordInput struct {
	Email string `json:"email"`
}

type ResetPasswordOutput struct {
	TemporaryPassword string `json:"temporary_password"`
}
