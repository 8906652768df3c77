package domain

// User is a staff login. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Login    string `gorm:"column:login;size:50;uniqueIndex;not null"`
	Password string `gorm:"column:password;size:255;not null"`
}

func (User) TableName() string { return "usuario" }
