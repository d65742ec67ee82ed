package dto

import "github.com/hongminglow/megasena-be/internal/auth"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthUserResponse struct {
	User auth.Identity `json:"user"`
}
