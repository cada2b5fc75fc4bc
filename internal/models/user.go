package models

import "time"

type UserType string

const (
	UserTypeUser  UserType = "user"
	UserTypeOwner UserType = "owner"
)

// User maps to user_tbl. UserPassword always holds a bcrypt hash, never
// plaintext. ResetToken and ResetTokenExpires are both nil or both set;
// they are written and cleared together.
type User struct {
	UserID            uint       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	FirstName         string     `gorm:"column:first_name;not null" json:"first_name"`
	LastName          string     `gorm:"column:last_name;not null" json:"last_name"`
	Email             string     `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PhoneNumber       string     `gorm:"column:phone_number" json:"phone_number"`
	CompanyName       string     `gorm:"column:company_name" json:"company_name"`
	UserPassword      string     `gorm:"column:user_password;not null" json:"-"`
	UserType          UserType   `gorm:"column:user_type;type:varchar(20);default:'user'" json:"user_type"`
	ResetToken        *string    `gorm:"column:reset_token" json:"-"`
	ResetTokenExpires *time.Time `gorm:"column:reset_token_expires" json:"-"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "user_tbl"
}

// ValidUserType reports whether t is a role this system knows.
func ValidUserType(t UserType) bool {
	return t == UserTypeUser || t == UserTypeOwner
}
