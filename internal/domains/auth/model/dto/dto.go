package dto

import "playcourt/infras/jwt"

// IssueTokenRequest carries the identity claim a token is issued for.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (r *TokenResponse) FromToken(token *jwt.Token) {
	r.Token = token.Token
}
