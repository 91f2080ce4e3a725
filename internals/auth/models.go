package auth

type AuthRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token     string `json:"token"`
	UserID    int    `json:"user_id"`
	TeamID    string `json:"team_id,omitempty"`
	IsNewUser bool   `json:"is_new_user"`
}
