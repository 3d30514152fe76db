package models

// User is an account on the platform. PasswordHash is stored already hashed.
// Role is free text here and is not tied to the Role enumeration.
type User struct {
	ID           uint   `gorm:"primaryKey;index" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"` // "student" or "teacher"
}

func (User) TableName() string {
	return "users"
}
