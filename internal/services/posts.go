package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/edublog/internal/latency"
	"github.com/dmitrijs2005/edublog/internal/models"
)

// ListPosts returns the posts whose title, content, description or tags
// contain query (case-insensitive), newest first. "" returns every post.
func (a *API) ListPosts(ctx context.Context, query string) ([]models.Post, error) {
	var result []models.Post
	err := a.run(ctx, latency.OpListPosts, func(ctx context.Context) error {
		var err error
		result, err = a.repos.Posts().List(ctx, query)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return result, nil
}

func (a *API) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post *models.Post
	err := a.run(ctx, latency.OpGetPost, func(ctx context.Context) error {
		var err error
		post, err = a.repos.Posts().Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return post, nil
}

// CreatePost is open to teachers and students. The post starts with no
// likes, no comments and createdAt == updatedAt.
func (a *API) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	var created *models.Post
	err := a.run(ctx, latency.OpCreatePost, func(ctx context.Context) error {
		author, err := a.sessions.Require(ctx)
		if err != nil {
			return err
		}
		now := a.now()
		created, err = a.repos.Posts().Create(ctx, &models.Post{
			Title:       in.Title,
			Content:     in.Content,
			Description: in.Description,
			Tags:        in.Tags,
			Author:      author.Name,
			AuthorID:    author.ID,
			AuthorType:  author.Role,
			CreatedAt:   now,
			UpdatedAt:   now,
			Likes:       0,
			Comments:    []models.Comment{},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// UpdatePost merges patch over the post. Teachers may edit any post,
// whoever wrote it.
func (a *API) UpdatePost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	var updated *models.Post
	err := a.run(ctx, latency.OpUpdatePost, func(ctx context.Context) error {
		if _, err := a.sessions.RequireRole(ctx, models.RoleTeacher); err != nil {
			return err
		}
		var err error
		updated, err = a.repos.Posts().Update(ctx, id, patch, a.now())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	return updated, nil
}

func (a *API) DeletePost(ctx context.Context, id string) error {
	err := a.run(ctx, latency.OpDeletePost, func(ctx context.Context) error {
		if _, err := a.sessions.RequireRole(ctx, models.RoleTeacher); err != nil {
			return err
		}
		return a.repos.Posts().Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

// AddComment appends a comment to the post. Any logged-in identity may
// comment on any post; the role is not checked.
func (a *API) AddComment(ctx context.Context, postID string, in models.CommentInput) (*models.Comment, error) {
	var created *models.Comment
	err := a.run(ctx, latency.OpAddComment, func(ctx context.Context) error {
		who, err := a.sessions.Require(ctx)
		if err != nil {
			return err
		}
		author := in.Author
		if author == "" {
			author = who.Name
		}
		created, err = a.repos.Posts().AddComment(ctx, postID, &models.Comment{
			Author:    author,
			Content:   in.Content,
			CreatedAt: a.now(),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("add comment to %s: %w", postID, err)
	}
	return created, nil
}
