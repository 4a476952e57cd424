package entities

import "gorm.io/gorm"

type Word struct {
	ID               string  `gorm:"primaryKey;size:36" json:"id"`
	WordName         string  `gorm:"index;size:255" json:"wordName"`
	Definition       string  `gorm:"type:text" json:"definition"`
	PhoneticSpelling string  `gorm:"size:255" json:"phoneticSpelling"`
	Sentence         string  `gorm:"type:text" json:"sentence"`
	IsActive         bool    `json:"isActive"`
	LevelID          *string `gorm:"index;size:36" json:"levelId,omitempty"`

	Categories     []Category      `gorm:"many2many:word_category;joinForeignKey:WordFK;joinReferences:CategoryFK;constraint:OnDelete:CASCADE" json:"-"`
	Pronunciations []Pronunciation `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE" json:"pronunciations,omitempty"`
	StageWords     []StageWord     `gorm:"foreignKey:WordID;constraint:OnDelete:CASCADE" json:"stageWords,omitempty"`
}

func (w *Word) GetID() string   { return w.ID }
func (w *Word) SetID(id string) { w.ID = id }

func (w *Word) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}
