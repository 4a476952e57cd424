package entities

import "gorm.io/gorm"

// Pronunciation is a recorded reading of a word.
type Pronunciation struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	AudioURL string  `gorm:"size:2048" json:"audioUrl"`
	Accent   string  `gorm:"size:50" json:"accent"`
	WordID   *string `gorm:"index;size:36" json:"wordId,omitempty"`
}

func (p *Pronunciation) GetID() string   { return p.ID }
func (p *Pronunciation) SetID(id string) { p.ID = id }

func (p *Pronunciation) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
