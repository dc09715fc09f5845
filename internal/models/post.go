// Package models contains the persisted blog entities and the application error kinds.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a blog entry. Comments is populated only when a single post is fetched.
type Post struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:text;not null"`
	Content      string    `gorm:"type:text;not null"`
	CreationDate time.Time `gorm:"not null"`
	Comments     []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for Post.
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate assigns an identity when the caller did not supply one.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Comment is a reader response attached to exactly one Post.
type Comment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Content      string    `gorm:"type:text;not null"`
	Author       string    `gorm:"type:text;not null"`
	CreationDate time.Time `gorm:"not null"`
	Post         *Post     `gorm:"foreignKey:PostID;-:migration"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate assigns an identity when the caller did not supply one.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// GetID returns the entity identity; the generic repository keys on it.
func (p *Post) GetID() uuid.UUID { return p.ID }

// GetID returns the entity identity; the generic repository keys on it.
func (c *Comment) GetID() uuid.UUID { return c.ID }
