package models

import (
	"slices"
	"time"
)

// Comment belongs to exactly one Post and is never edited on its own.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a blog entry. Comments are kept in append order.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"authorId"`
	AuthorType  Role      `json:"authorType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// Clone returns a deep copy so callers cannot reach into store state.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	c.Tags = slices.Clone(p.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	c.Comments = slices.Clone(p.Comments)
	if c.Comments == nil {
		c.Comments = []Comment{}
	}
	return &c
}

// PostInput is what a caller submits to create a post.
type PostInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// PostPatch is merged over an existing Post; nil fields are kept.
type PostPatch struct {
	Title       *string  `json:"title,omitempty"`
	Content     *string  `json:"content,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Apply merges p into post. Identity, authorship, timestamps, likes and
// comments are left alone.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Description != nil {
		post.Description = *p.Description
	}
	if p.Tags != nil {
		post.Tags = UniqueTags(p.Tags)
	}
}

// CommentInput is what a caller submits to comment on a post. An empty
// Author is replaced with the acting identity's name.
type CommentInput struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// UniqueTags drops repeated tags, keeping the first occurrence, so tags
// behave as an ordered set.
func UniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
