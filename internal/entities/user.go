package entities

import "gorm.io/gorm"

// User is an application account. Password holds a bcrypt hash once the
// record has gone through the user service; it is accepted on input but
// never serialized back out.
type User struct {
	ID             string        `gorm:"primaryKey;size:36" json:"id"`
	UserName       string        `gorm:"index;size:100" json:"userName"`
	UserAge        int           `json:"userAge"`
	UserEmail      string        `gorm:"index;size:255" json:"userEmail"`
	Password       string        `gorm:"size:255" json:"password,omitempty"`
	GameProgressID *string       `gorm:"uniqueIndex;size:36" json:"gameProgressId,omitempty"`
	GameProgress   *GameProgress `gorm:"foreignKey:GameProgressID;constraint:OnDelete:SET NULL" json:"-"`
}

func (u *User) GetID() string   { return u.ID }
func (u *User) SetID(id string) { u.ID = id }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

// Redacted returns a copy safe to send to clients.
func (u User) Redacted() User {
	u.Password = ""
	return u
}
