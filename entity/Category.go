package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name string `gorm:"size:100;not null" json:"name"`

	Products []Product `json:"-"`
}
