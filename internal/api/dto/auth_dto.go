package dto

import "time"

type RegisterRequest struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	FirebaseUID string `json:"firebase_uid"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	FirebaseToken string `json:"firebase_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// UserDTO 表示用戶資訊
type UserDTO struct {
	ID              int64     `json:"id"`
	FirebaseUID     string    `json:"firebase_uid"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	ProfileImageURL *string   `json:"profile_image_url"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoginResponse token 為登入時帶入的 id token
type LoginResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
