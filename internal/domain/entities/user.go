package entities

import "time"

type AdminUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	AuthorRole   string    `json:"author_role"`
	AvatarLabel  string    `json:"avatar_label"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type User struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Location     string     `json:"location"`
	ProfilePhoto string     `json:"profile_photo"`
	IsVerified   bool       `json:"is_verified"`

	VerificationCode        string     `json:"-"`
	VerificationCodeExpires *time.Time `json:"-"`
	ResetCode               string     `json:"-"`
	ResetCodeExpires        *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
