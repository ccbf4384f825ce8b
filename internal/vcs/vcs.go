// Package vcs initializes a git repository in a freshly generated project.
package vcs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/extinit/extinit/internal/output"
)

// DefaultMessage is the message of the initial commit.
const DefaultMessage = "Initial commit from extinit"

// Initializer creates a repository with a single initial commit.
type Initializer struct {
	// Author signs the initial commit. When nil the identity comes from
	// the user's git configuration.
	Author *object.Signature

	// Message overrides DefaultMessage.
	Message string
}

// New returns an Initializer that uses the configured git identity.
func New() *Initializer {
	return &Initializer{}
}

// TryInit initializes a repository at path, stages every file not ignored
// by .gitignore and commits. It reports false without touching anything
// when path is already inside a repository. On any failure after init the
// .git directory is removed and false is returned.
func (i *Initializer) TryInit(path string) bool {
	log := output.StepLogger("git")

	if _, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true}); err == nil {
		log.Debug("already inside a repository", "path", path)
		return false
	} else if !errors.Is(err, git.ErrRepositoryNotExists) {
		log.Debug("cannot inspect path", "path", path, "err", err)
		return false
	}

	repo, err := git.PlainInit(path, false)
	if err != nil {
		log.Debug("init failed", "err", err)
		return false
	}

	if err := i.commitAll(repo); err != nil {
		log.Debug("initial commit failed, removing repository", "err", err)
		if rmErr := os.RemoveAll(filepath.Join(path, git.GitDirName)); rmErr != nil {
			log.Debug("cleanup failed", "err", rmErr)
		}
		return false
	}

	return true
}

func (i *Initializer) commitAll(repo *git.Repository) error {
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return fmt.Errorf("reading .gitignore: %w", err)
	}
	wt.Excludes = append(wt.Excludes, patterns...)

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	opts := &git.CommitOptions{}
	if i.Author != nil {
		author := *i.Author
		if author.When.IsZero() {
			author.When = time.Now()
		}
		opts.Author = &author
	}

	msg := i.Message
	if msg == "" {
		msg = DefaultMessage
	}

	if _, err := wt.Commit(msg, opts); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}
