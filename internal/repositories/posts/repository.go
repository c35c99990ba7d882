// Package posts stores blog posts and the comments they own.
package posts

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/edublog/internal/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	// List returns the posts matching query, newest first. An empty query
	// matches every post.
	List(ctx context.Context, query string) ([]models.Post, error)
	Update(ctx context.Context, id string, patch models.PostPatch, now time.Time) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID string, comment *models.Comment) (*models.Comment, error)
}

// Matches reports whether query is a case-insensitive substring of the
// post's title, content, description or any tag.
func Matches(p *models.Post, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
