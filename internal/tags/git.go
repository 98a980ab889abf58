package tags

import (
	"context"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/relaykit/cli/internal/errors"
)

// GitRepository enumerates tags from a local git checkout via go-git.
type GitRepository struct {
	path string
}

// NewGitRepository creates a Repository backed by the checkout at path.
// The path must contain a .git directory (or be a bare repository).
func NewGitRepository(path string) *GitRepository {
	return &GitRepository{path: path}
}

// ListTags returns every tag name in the repository, sorted alphabetically.
// Both lightweight and annotated tags are included.
func (g *GitRepository) ListTags(ctx context.Context) ([]string, error) {
	repo, err := git.PlainOpen(g.path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrTagEnumeration, err, "opening repository "+g.path)
	}

	refs, err := repo.References()
	if err != nil {
		return nil, errors.Wrap(errors.ErrTagEnumeration, err, "reading references")
	}

	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ref.Name().IsTag() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrTagEnumeration, err, "iterating references")
	}

	sort.Strings(names)
	return names, nil
}
