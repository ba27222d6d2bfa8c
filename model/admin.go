package model

import "time"

type AdminSession struct {
	ID        string
	Subject   string
	ExpiresAt time.Time
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ImageUploadResponse struct {
	URL string `json:"url"`
}
