package models

// User represents a registered user. The password column stores a bcrypt
// hash, never the plain-text password.
type User struct {
	Base
	Username     string        `gorm:"uniqueIndex;not null" json:"username"`
	Password     string        `gorm:"not null" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Budget       *Budget       `gorm:"foreignKey:UserID" json:"budget,omitempty"`
}
