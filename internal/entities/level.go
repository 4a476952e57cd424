package entities

import "gorm.io/gorm"

// Level groups words into a progression step. IsBlocked marks levels a
// learner has not unlocked yet.
type Level struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	Number        int    `json:"number"`
	Name          string `gorm:"size:255" json:"name"`
	RequiredScore int    `json:"requiredScore"`
	IsBlocked     bool   `json:"isBlocked"`
	Words         []Word `gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE" json:"words,omitempty"`
}

func (l *Level) GetID() string   { return l.ID }
func (l *Level) SetID(id string) { l.ID = id }

func (l *Level) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}
