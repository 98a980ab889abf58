package tags

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/relaykit/cli/internal/errors"
)

// initTestRepo creates a git repository with one commit and the given tags.
func initTestRepo(t *testing.T, tagNames ...string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("release test\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "relay-test",
			Email: "relay@test.invalid",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	for i, name := range tagNames {
		if i%2 == 0 {
			// lightweight
			_, err = repo.CreateTag(name, hash, nil)
		} else {
			// annotated
			_, err = repo.CreateTag(name, hash, &git.CreateTagOptions{
				Tagger: &object.Signature{
					Name:  "relay-test",
					Email: "relay@test.invalid",
					When:  time.Now(),
				},
				Message: "release " + name,
			})
		}
		require.NoError(t, err)
	}

	return dir
}

func TestGitRepositoryListTags(t *testing.T) {
	t.Run("returns all tags sorted", func(t *testing.T) {
		dir := initTestRepo(t, "v1.0.0", "v0.9.0", "nightly", "v1.1.0-rc.1")

		repo := NewGitRepository(dir)
		got, err := repo.ListTags(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"nightly", "v0.9.0", "v1.0.0", "v1.1.0-rc.1"}, got)
	})

	t.Run("empty repository yields no tags", func(t *testing.T) {
		dir := initTestRepo(t)

		repo := NewGitRepository(dir)
		got, err := repo.ListTags(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing repository is a fatal enumeration error", func(t *testing.T) {
		repo := NewGitRepository(filepath.Join(t.TempDir(), "nowhere"))
		_, err := repo.ListTags(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, rerrors.ErrTagEnumeration)
	})

	t.Run("ignores branches", func(t *testing.T) {
		dir := initTestRepo(t, "v2.0.0")

		// HEAD branch exists alongside the tag; only the tag is listed.
		repo := NewGitRepository(dir)
		got, err := repo.ListTags(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"v2.0.0"}, got)

		raw, err := git.PlainOpen(dir)
		require.NoError(t, err)
		head, err := raw.Head()
		require.NoError(t, err)
		assert.True(t, head.Name().IsBranch())
		assert.False(t, head.Name().IsTag())
	})
}
