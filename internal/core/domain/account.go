package domain

import "time"

// Account models an authenticated actor in the system. Email and phone
// number are unique; the role is assigned at registration and never changes.
type Account struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:30"`
	LastName     string    `json:"last_name" gorm:"size:30"`
	Email        string    `json:"email" gorm:"size:254;uniqueIndex;not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:12;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"`
	Role         Role      `json:"role" gorm:"size:20;not null;default:tenant"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
