package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Public    bool       `gorm:"not null" json:"public"`
	AuthorID  string     `gorm:"type:uuid;not null;index" json:"author_id"`
	Author    *UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (a *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
