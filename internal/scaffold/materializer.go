package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	oerrors "github.com/extinit/extinit/internal/errors"
	"github.com/extinit/extinit/internal/manifest"
	"github.com/extinit/extinit/internal/output"
	"github.com/extinit/extinit/internal/templates"
)

// Installer installs development dependencies into a project directory.
type Installer interface {
	Install(ctx context.Context, dir string, deps []string) error
	Command(deps []string) string
}

// Repository initializes version control for a project directory.
type Repository interface {
	TryInit(path string) bool
}

// Result reports what Materialize produced.
type Result struct {
	// Dir is the absolute project directory.
	Dir string

	// Files are the written paths relative to Dir, slash-separated and sorted.
	Files []string

	// InstallCommand is the package manager command line, empty when skipped.
	InstallCommand string

	// GitInitialized reports whether a repository was created.
	GitInitialized bool
}

// Materializer performs the filesystem effects of project generation.
type Materializer struct {
	FS        afero.Fs
	Templates fs.FS
	Installer Installer
	Repo      Repository
}

// run holds the state of one Materialize call.
type run struct {
	m       *Materializer
	dir     string
	created string // outermost directory this run created
	written []string
}

// Materialize writes the project in a fixed order: directory,
// package.json, tsconfig.json, dependency install, template layers,
// public/manifest.json, README.md, git repository. A failure before the
// install removes everything this call created. A failed install aborts
// and leaves the partial project in place.
func (m *Materializer) Materialize(ctx context.Context, plan Plan) (*Result, error) {
	log := output.StepLogger("scaffold")
	cfg := plan.Config
	r := &run{m: m, dir: cfg.TargetDir}

	log.Debug("creating project directory", "dir", r.dir)
	if err := r.createDir(); err != nil {
		return nil, err
	}

	if err := r.writeJSON("package.json", plan.Package); err != nil {
		return nil, r.rollback(err)
	}

	if cfg.IsTypeScript() {
		if err := r.writeJSON("tsconfig.json", manifest.TSConfig()); err != nil {
			return nil, r.rollback(err)
		}
	}

	result := &Result{Dir: r.dir}

	if cfg.SkipInstall {
		log.Debug("skipping dependency install")
	} else {
		result.InstallCommand = m.Installer.Command(plan.DevDependencies)
		output.Info("installing packages, this might take a couple of minutes", "command", result.InstallCommand)
		if err := m.Installer.Install(ctx, r.dir, plan.DevDependencies); err != nil {
			return nil, err
		}
	}

	sources, err := templates.ListSelectionFiles(m.Templates, plan.Selection)
	if err != nil {
		return nil, err
	}
	log.Debug("copying templates", "layers", len(plan.Selection.Layers), "files", len(sources))
	if err := r.copyTemplates(sources); err != nil {
		return nil, err
	}

	if err := r.writeJSON("public/manifest.json", plan.Manifest); err != nil {
		return nil, err
	}

	readme, err := templates.RenderReadme(m.Templates, plan.Readme)
	if err != nil {
		return nil, err
	}
	if err := r.write("README.md", readme); err != nil {
		return nil, err
	}

	if cfg.SkipGit {
		log.Debug("skipping git init")
	} else {
		_ = output.RunWithSpinner(ctx, func() error {
			result.GitInitialized = m.Repo.TryInit(r.dir)
			return nil
		}, output.WithTitle("Initializing git repository"))
		log.Debug("git init finished", "initialized", result.GitInitialized)
	}

	sort.Strings(r.written)
	result.Files = r.written

	return result, nil
}

// createDir creates the project directory, reusing an existing empty one.
func (r *run) createDir() error {
	info, err := r.m.FS.Stat(r.dir)
	switch {
	case err == nil && !info.IsDir():
		return oerrors.NewDirectoryExistsError(r.dir)
	case err == nil:
		empty, err := afero.IsEmpty(r.m.FS, r.dir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", r.dir, err)
		}
		if !empty {
			return oerrors.NewDirectoryExistsError(r.dir)
		}
		return nil
	}

	top, err := outermostMissing(r.m.FS, r.dir)
	if err != nil {
		return err
	}
	if err := r.m.FS.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", r.dir, err)
	}
	r.created = top
	return nil
}

// outermostMissing returns the highest ancestor of dir, dir included, that
// does not exist yet.
func outermostMissing(fsys afero.Fs, dir string) (string, error) {
	missing := dir
	for {
		parent := filepath.Dir(missing)
		if parent == missing {
			return missing, nil
		}
		_, err := fsys.Stat(parent)
		if err == nil {
			return missing, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", parent, err)
		}
		missing = parent
	}
}

// rollback removes what this run wrote and returns err. Parent directories
// created on the way to the project directory go too.
func (r *run) rollback(err error) error {
	if r.created != "" {
		_ = r.m.FS.RemoveAll(r.created)
		return err
	}
	for _, rel := range r.written {
		_ = r.m.FS.Remove(r.abs(rel))
	}
	return err
}

func (r *run) abs(rel string) string {
	return filepath.Join(r.dir, filepath.FromSlash(rel))
}

func (r *run) write(rel string, data []byte) error {
	target := r.abs(rel)
	if err := r.m.FS.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := afero.WriteFile(r.m.FS, target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	r.written = append(r.written, rel)
	return nil
}

func (r *run) writeJSON(rel string, v any) error {
	data, err := manifest.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", rel, err)
	}
	return r.write(rel, data)
}

// copyTemplates copies resolved template files, target to source, in
// target order. Files this run already wrote are not replaced.
func (r *run) copyTemplates(sources map[string]string) error {
	targets := make([]string, 0, len(sources))
	for target := range sources {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		exists, err := afero.Exists(r.m.FS, r.abs(target))
		if err != nil {
			return fmt.Errorf("checking %s: %w", target, err)
		}
		if exists {
			continue
		}

		data, err := fs.ReadFile(r.m.Templates, sources[target])
		if err != nil {
			return fmt.Errorf("reading template %s: %w", sources[target], err)
		}
		if err := r.write(target, data); err != nil {
			return err
		}
	}

	return nil
}
