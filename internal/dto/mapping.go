package dto

import (
	"blogapi/internal/models"
)

// PostFromCreate builds a new entity; identity is assigned on insert.
func PostFromCreate(in PostCreate) *models.Post {
	return &models.Post{
		Title:        in.Title,
		Content:      in.Content,
		CreationDate: in.CreationDate.Time,
	}
}

// PostFromDTO builds the replacement entity for an update. Comments are not
// carried.
func PostFromDTO(in Post) *models.Post {
	return &models.Post{
		ID:           in.ID,
		Title:        in.Title,
		Content:      in.Content,
		CreationDate: in.CreationDate.Time,
	}
}

func NewPost(p *models.Post) *Post {
	if p == nil {
		return nil
	}
	out := &Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		CreationDate: NewTimestamp(p.CreationDate),
	}
	if len(p.Comments) > 0 {
		out.Comments = NewComments(p.Comments)
	}
	return out
}

// NewPosts maps a list. The result is never nil.
func NewPosts(posts []models.Post) []Post {
	out := make([]Post, 0, len(posts))
	for i := range posts {
		out = append(out, *NewPost(&posts[i]))
	}
	return out
}

func CommentFromCreate(in CommentCreate) *models.Comment {
	return &models.Comment{
		PostID:       in.PostID,
		Content:      in.Content,
		Author:       in.Author,
		CreationDate: in.CreationDate.Time,
	}
}

func CommentFromDTO(in Comment) *models.Comment {
	return &models.Comment{
		ID:           in.ID,
		PostID:       in.PostID,
		Content:      in.Content,
		Author:       in.Author,
		CreationDate: in.CreationDate.Time,
	}
}

func NewComment(c *models.Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:           c.ID,
		PostID:       c.PostID,
		Content:      c.Content,
		Author:       c.Author,
		CreationDate: NewTimestamp(c.CreationDate),
	}
}

// NewComments maps a list. A nil input, meaning no owning post, stays nil.
func NewComments(comments []models.Comment) []Comment {
	if comments == nil {
		return nil
	}
	out := make([]Comment, 0, len(comments))
	for i := range comments {
		out = append(out, *NewComment(&comments[i]))
	}
	return out
}
