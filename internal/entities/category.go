package entities

import "gorm.io/gorm"

type Category struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	CategoryName    string `gorm:"index;size:255" json:"categoryName"`
	SubCategoryName string `gorm:"index;size:255" json:"subCategoryName"`
	Words           []Word `gorm:"many2many:word_category;joinForeignKey:CategoryFK;joinReferences:WordFK;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Category) GetID() string   { return c.ID }
func (c *Category) SetID(id string) { c.ID = id }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
