package models

// User is a registered account. The password column holds a bcrypt hash and
// is never serialised. Email uniqueness is enforced by the index; the
// comparison is case-sensitive (no normalisation on write).
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Address  string `gorm:"size:200" json:"address"`
	Email    string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password string `gorm:"size:200;not null" json:"-"`
}
