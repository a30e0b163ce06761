package dto

type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	IPAddress  string `json:"-"`
	UserAgent  string `json:"-"`
	DeviceInfo string `json:"-"`
}

type LoginOutput struct {
	User      UserOutput `json:"user"`
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
}

type TokenOutput struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}
