package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/edublog/internal/models"
)

const dateLayout = "2006-01-02 15:04"

// List prints posts newest first, filtered by query when given.
func (a *App) List(ctx context.Context, query string) error {
	posts, err := a.api.ListPosts(ctx, query)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts")
		return nil
	}
	for _, p := range posts {
		fmt.Fprintf(a.out, "[%s] %s by %s, %s (%d likes, %d comments)\n",
			p.ID, p.Title, p.Author, p.CreatedAt.Format(dateLayout), p.Likes, len(p.Comments))
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	p, err := a.api.GetPost(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n", p.Title)
	fmt.Fprintf(a.out, "by %s (%s), %s\n", p.Author, p.AuthorType, p.CreatedAt.Format(dateLayout))
	if !p.UpdatedAt.Equal(p.CreatedAt) {
		fmt.Fprintf(a.out, "updated %s\n", p.UpdatedAt.Format(dateLayout))
	}
	if p.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", p.Description)
	}
	fmt.Fprintf(a.out, "\n%s\n\n", p.Content)
	if len(p.Tags) > 0 {
		fmt.Fprintf(a.out, "tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(a.out, "%d likes\n", p.Likes)

	fmt.Fprintf(a.out, "\nComments (%d)\n", len(p.Comments))
	for _, c := range p.Comments {
		fmt.Fprintf(a.out, "  %s, %s: %s\n", c.Author, c.CreatedAt.Format(dateLayout), c.Content)
	}
	return nil
}

// Post prompts for a new post and publishes it under the current identity.
func (a *App) Post(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return err
	}

	if err := validatePost(title, content); err != nil {
		return err
	}

	p, err := a.api.CreatePost(ctx, models.PostInput{
		Title:       title,
		Content:     content,
		Description: description,
		Tags:        splitTags(tags),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Published post %s\n", p.ID)
	return nil
}

// Edit prompts for each field of post id, keeping the current value on an
// empty answer, and prints a preview of the content change.
func (a *App) Edit(ctx context.Context, id string) error {
	p, err := a.api.GetPost(ctx, id)
	if err != nil {
		return err
	}

	var patch models.PostPatch

	title, changed, err := getOptionalText(a.reader, "Title", p.Title, a.out)
	if err != nil {
		return err
	}
	if changed {
		patch.Title = &title
	}

	description, changed, err := getOptionalText(a.reader, "Description", p.Description, a.out)
	if err != nil {
		return err
	}
	if changed {
		patch.Description = &description
	}

	content, err := getMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		patch.Content = &content
	} else {
		content = p.Content
	}

	tags, changed, err := getOptionalText(a.reader, "Tags", strings.Join(p.Tags, ", "), a.out)
	if err != nil {
		return err
	}
	if changed {
		patch.Tags = splitTags(tags)
	}

	if err := validatePost(title, content); err != nil {
		return err
	}

	updated, err := a.api.UpdatePost(ctx, id, patch)
	if err != nil {
		return err
	}

	if updated.Content != p.Content {
		fmt.Fprintln(a.out, renderDiff(p.Content, updated.Content))
	}
	fmt.Fprintf(a.out, "Updated post %s\n", updated.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.api.DeletePost(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted post %s\n", id)
	return nil
}

// Comment adds a comment to post id. An empty author name is filled in
// with the current identity's name by the API.
func (a *App) Comment(ctx context.Context, id string) error {
	author, err := getSimpleText(a.reader, "Your name (empty to use your account name)", a.out)
	if err != nil {
		return err
	}
	content, err := getSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return validationError("Comment must not be empty")
	}

	c, err := a.api.AddComment(ctx, id, models.CommentInput{Author: author, Content: content})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Comment %s added\n", c.ID)
	return nil
}
