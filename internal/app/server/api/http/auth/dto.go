package auth

import "medtracker/internal/domain/user"

type loginInput struct {
	Body user.Credentials
}

type refreshInput struct {
	Body refreshRequest
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokensOutput struct {
	Body tokensBody
}

type tokensBody struct {
	Data user.Tokens `json:"data"`
}

type logoutInput struct{}

type logoutOutput struct {
	Body statusBody
}

type statusBody struct {
	Data string `json:"data"`
}

type profileInput struct{}

type profileOutput struct {
	Body profileBody
}

type profileBody struct {
	Data user.User `json:"data"`
}
