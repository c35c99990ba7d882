// Package repomanager bundles the EduBlog repositories into one explicitly
// constructed store and serializes the steps that use them.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/edublog/internal/repositories/identities"
	"github.com/dmitrijs2005/edublog/internal/repositories/posts"
)

type RepositoryManager interface {
	Identities() identities.Repository
	Posts() posts.Repository
	// Atomic runs fn as one uninterruptible step: no other Atomic step can
	// observe state between fn's reads and writes.
	Atomic(ctx context.Context, fn func(ctx context.Context) error) error
}
