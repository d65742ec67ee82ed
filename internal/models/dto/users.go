package dto

import "github.com/hongminglow/megasena-be/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

type UserResponse struct {
	User models.User `json:"user"`
}

type UsersResponse struct {
	Users []models.User `json:"users"`
}

type SaveNumbersRequest struct {
	Numbers []string `json:"numbers"`
}

type SavedNumbersResponse struct {
	SavedNumbers *models.SavedNumbers `json:"savedNumbers"`
}
