package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token"`
	Name    string `json:"name"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	ProfileImageURL *string `json:"profile_image_url"`
	Settings        *string `json:"settings"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	ProfileImageURL string    `json:"profile_image_url"`
	IsGoogleUser    bool      `json:"is_google_user"`
}
