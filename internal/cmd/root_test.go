package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extinit/extinit/internal/cmdtypes"
	oerrors "github.com/extinit/extinit/internal/errors"
	"github.com/extinit/extinit/internal/options"
	"github.com/extinit/extinit/internal/output"
	"github.com/extinit/extinit/internal/scaffold"
	"github.com/extinit/extinit/internal/templates"
	"github.com/extinit/extinit/internal/testutil"
)

type fakeInstaller struct {
	calls int
	deps  []string
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, _ string, deps []string) error {
	f.calls++
	f.deps = deps
	return f.err
}

func (f *fakeInstaller) Command(deps []string) string {
	return "fake install " + strings.Join(deps, " ")
}

type fakeRepo struct {
	calls int
}

func (r *fakeRepo) TryInit(string) bool {
	r.calls++
	return true
}

// useFakes swaps the materializer for one with a fake installer and repo.
func useFakes(t *testing.T) (*fakeInstaller, *fakeRepo) {
	t.Helper()

	inst := &fakeInstaller{}
	repo := &fakeRepo{}

	prev := materializerFor
	materializerFor = func(options.ProjectConfiguration) *scaffold.Materializer {
		return &scaffold.Materializer{
			FS:        afero.NewOsFs(),
			Templates: templates.FS(),
			Installer: inst,
			Repo:      repo,
		}
	}
	t.Cleanup(func() { materializerFor = prev })

	return inst, repo
}

// execute runs the root command and returns stdout and stderr. The config
// file defaults to a path that does not exist.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("EXTINIT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	var stdout, stderr bytes.Buffer
	prev := output.SetOutput(&stdout)
	t.Cleanup(func() { output.SetOutput(prev) })

	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func requireExitError(t *testing.T, err error, sentinel error) {
	t.Helper()

	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T", err)
	assert.Equal(t, cmdtypes.ExitGeneralError, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.True(t, errors.Is(err, sentinel), "expected %v in %v", sentinel, err)
}

func TestRoot_MissingArgument(t *testing.T) {
	inst, _ := useFakes(t)

	stdout, stderr, err := execute(t)
	requireExitError(t, err, oerrors.ErrMissingArgument)

	assert.Contains(t, stderr, "please specify the project directory")
	assert.Contains(t, stderr, "extinit my-extension")
	assert.Contains(t, stdout+stderr, "Usage:")
	assert.Equal(t, 0, inst.calls)
}

func TestRoot_TooManyArguments(t *testing.T) {
	useFakes(t)

	_, _, err := execute(t, "one", "two")
	require.Error(t, err)
}

func TestRoot_CreatesPopupProject(t *testing.T) {
	inst, repo := useFakes(t)
	dir := filepath.Join(t.TempDir(), "my-ext")

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		".gitignore",
		".prettierrc",
		"README.md",
		"config/paths.js",
		"config/webpack.common.js",
		"config/webpack.config.js",
		"pack.js",
		"package.json",
		"public/icons/icon_128.png",
		"public/icons/icon_16.png",
		"public/icons/icon_32.png",
		"public/icons/icon_48.png",
		"public/manifest.json",
		"public/popup.html",
		"src/background.js",
		"src/contentScript.js",
		"src/popup.css",
		"src/popup.js",
	}, testutil.ProjectFiles(t, dir))
	assert.NoFileExists(t, filepath.Join(dir, "tsconfig.json"))

	manifest := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
	assert.EqualValues(t, 3, manifest["manifest_version"])
	assert.Equal(t, "My Ext", manifest["name"])
	assert.Contains(t, manifest, "action")

	pkg := testutil.ReadJSON(t, filepath.Join(dir, "package.json"))
	assert.Equal(t, "my-ext", pkg["name"])
	assert.Equal(t, "My Chrome Extension", pkg["description"])

	assert.Equal(t, 1, inst.calls)
	assert.Contains(t, inst.deps, "webpack@^5.0.0")
	assert.Equal(t, 1, repo.calls)

	assert.Contains(t, stdout, "Success! Created my-ext at "+dir)
	assert.Contains(t, stdout, "npm run watch")
	assert.Contains(t, stdout, "npm run pack")
	assert.Contains(t, stdout, "Happy hacking!")
}

func TestRoot_LooseFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		check func(t *testing.T, dir string)
	}{
		{
			name:  "bare override page is newtab",
			flags: []string{"--override-page"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.Equal(t, map[string]any{"newtab": "index.html"}, m["chrome_url_overrides"])
				assert.FileExists(t, filepath.Join(dir, "public", "index.html"))
			},
		},
		{
			name:  "named override page",
			flags: []string{"--override-page=history"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.Equal(t, map[string]any{"history": "index.html"}, m["chrome_url_overrides"])
			},
		},
		{
			name:  "bare language is javascript",
			flags: []string{"--language"},
			check: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "src", "popup.js"))
				assert.NoFileExists(t, filepath.Join(dir, "tsconfig.json"))
			},
		},
		{
			name:  "typescript",
			flags: []string{"--language=typescript"},
			check: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "src", "popup.ts"))
				assert.FileExists(t, filepath.Join(dir, "tsconfig.json"))
			},
		},
		{
			name:  "bare manifest version is 3",
			flags: []string{"--manifest-version"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.EqualValues(t, 3, m["manifest_version"])
			},
		},
		{
			name:  "manifest version 2 is cross-browser",
			flags: []string{"--manifest-version=2"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.EqualValues(t, 2, m["manifest_version"])
				assert.Contains(t, m, "browser_action")

				pkg := testutil.ReadJSON(t, filepath.Join(dir, "package.json"))
				scripts := pkg["scripts"].(map[string]any)
				assert.Contains(t, scripts["build"], "CROSS_BROWSER=true")
				assert.NotContains(t, scripts, "pack")
			},
		},
		{
			name:  "manifest version 2 without polyfill",
			flags: []string{"--manifest-version=mv2", "--no-cross-browser"},
			check: func(t *testing.T, dir string) {
				pkg := testutil.ReadJSON(t, filepath.Join(dir, "package.json"))
				scripts := pkg["scripts"].(map[string]any)
				assert.Contains(t, scripts["build"], "CROSS_BROWSER=false")
			},
		},
		{
			name:  "devtools",
			flags: []string{"--devtools"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.Equal(t, "devtools.html", m["devtools_page"])
				assert.FileExists(t, filepath.Join(dir, "src", "panel.js"))
			},
		},
		{
			name:  "side panel",
			flags: []string{"--side-panel"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.Contains(t, m, "side_panel")
				assert.NotContains(t, m, "action")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFakes(t)
			dir := filepath.Join(t.TempDir(), "ext")

			// Bare loose flags must not swallow the positional argument.
			args := append(append([]string{}, tt.flags...), dir)
			_, _, err := execute(t, args...)
			require.NoError(t, err)

			tt.check(t, dir)
		})
	}
}

func TestRoot_LooseFlagValueAsNextArgument(t *testing.T) {
	const dirArg = "{dir}"

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, dir string)
	}{
		{
			name: "override page after the directory",
			args: []string{dirArg, "--override-page", "bookmarks"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.Equal(t, map[string]any{"bookmarks": "index.html"}, m["chrome_url_overrides"])
			},
		},
		{
			name: "override page before the directory",
			args: []string{"--override-page", "bookmarks", dirArg},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.Equal(t, map[string]any{"bookmarks": "index.html"}, m["chrome_url_overrides"])
			},
		},
		{
			name: "language",
			args: []string{"--language", "typescript", dirArg},
			check: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "tsconfig.json"))
			},
		},
		{
			name: "manifest version",
			args: []string{dirArg, "--manifest-version", "2"},
			check: func(t *testing.T, dir string) {
				m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
				assert.EqualValues(t, 2, m["manifest_version"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFakes(t)
			dir := filepath.Join(t.TempDir(), "ext")

			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				if a == dirArg {
					a = dir
				}
				args[i] = a
			}

			_, _, err := execute(t, args...)
			require.NoError(t, err)
			tt.check(t, dir)
		})
	}

	t.Run("unknown value is an invalid option", func(t *testing.T) {
		inst, _ := useFakes(t)
		dir := filepath.Join(t.TempDir(), "ext")

		_, stderr, err := execute(t, dir, "--override-page", "downloads")
		requireExitError(t, err, oerrors.ErrInvalidOption)
		assert.Contains(t, stderr, "Accepted values: newtab, bookmarks, history")
		assert.NoDirExists(t, dir)
		assert.Equal(t, 0, inst.calls)
	})

	t.Run("extra argument without a bare flag", func(t *testing.T) {
		useFakes(t)
		dir := filepath.Join(t.TempDir(), "ext")

		_, _, err := execute(t, dir, "extra", "--devtools")
		require.Error(t, err)
		assert.NoDirExists(t, dir)
	})
}

func TestRoot_ProjectNamedLikeSubcommand(t *testing.T) {
	useFakes(t)
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "./config")
	require.NoError(t, err)

	pkg := testutil.ReadJSON(t, filepath.Join("config", "package.json"))
	assert.Equal(t, "config", pkg["name"])
}

func TestRoot_OptionConflicts(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  string
	}{
		{"override page with devtools", []string{"--override-page", "--devtools"}, "cannot be used together"},
		{"side panel on mv2", []string{"--side-panel", "--manifest-version=2"}, "requires manifest version 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, _ := useFakes(t)
			dir := filepath.Join(t.TempDir(), "ext")

			_, stderr, err := execute(t, append(tt.flags, dir)...)
			requireExitError(t, err, oerrors.ErrOptionConflict)
			assert.Contains(t, stderr, tt.want)

			assert.NoDirExists(t, dir)
			assert.Equal(t, 0, inst.calls)
		})
	}
}

func TestRoot_InvalidOptionValue(t *testing.T) {
	useFakes(t)
	dir := filepath.Join(t.TempDir(), "ext")

	_, stderr, err := execute(t, "--package-manager", "bun", dir)
	requireExitError(t, err, oerrors.ErrInvalidOption)
	assert.Contains(t, stderr, "Accepted values: npm, yarn, pnpm")
	assert.NoDirExists(t, dir)
}

func TestRoot_InvalidName(t *testing.T) {
	useFakes(t)
	dir := filepath.Join(t.TempDir(), "My_Ext")

	_, stderr, err := execute(t, dir)
	requireExitError(t, err, oerrors.ErrNameInvalid)

	assert.Contains(t, stderr, `Cannot create a project named "My_Ext"`)
	assert.Contains(t, stderr, "name can no longer contain capital letters")
	assert.NoDirExists(t, dir)
}

func TestRoot_ExistingDirectory(t *testing.T) {
	inst, _ := useFakes(t)
	dir := filepath.Join(t.TempDir(), "ext")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("mine"), 0o644))

	_, _, err := execute(t, dir)
	requireExitError(t, err, oerrors.ErrDirectoryExists)

	data, readErr := os.ReadFile(filepath.Join(dir, "keep.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "mine", string(data))
	assert.NoFileExists(t, filepath.Join(dir, "package.json"))
	assert.Equal(t, 0, inst.calls)
}

func TestRoot_InstallFailure(t *testing.T) {
	inst, repo := useFakes(t)
	inst.err = fmt.Errorf("%w: exit status 1", oerrors.ErrDependencyInstall)
	dir := filepath.Join(t.TempDir(), "ext")

	_, _, err := execute(t, dir)
	requireExitError(t, err, oerrors.ErrDependencyInstall)

	assert.FileExists(t, filepath.Join(dir, "package.json"))
	assert.NoFileExists(t, filepath.Join(dir, "public", "manifest.json"))
	assert.Equal(t, 0, repo.calls)
}

func TestRoot_SkipFlags(t *testing.T) {
	inst, repo := useFakes(t)
	dir := filepath.Join(t.TempDir(), "ext")

	stdout, _, err := execute(t, dir, "--skip-install", "--skip-git", "--package-manager", "pnpm")
	require.NoError(t, err)

	assert.Equal(t, 0, inst.calls)
	assert.Equal(t, 0, repo.calls)
	assert.Contains(t, stdout, "pnpm install")
	assert.Contains(t, stdout, "pnpm run watch")
}

func TestRoot_Description(t *testing.T) {
	useFakes(t)
	dir := filepath.Join(t.TempDir(), "ext")

	_, _, err := execute(t, dir, "--description", "Tames your tabs")
	require.NoError(t, err)

	pkg := testutil.ReadJSON(t, filepath.Join(dir, "package.json"))
	assert.Equal(t, "Tames your tabs", pkg["description"])

	m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
	assert.Equal(t, "Tames your tabs", m["description"])
}

func TestRoot_ConfigFileDefaults(t *testing.T) {
	inst, repo := useFakes(t)
	dir := filepath.Join(t.TempDir(), "ext")

	configFile := testutil.WriteFile(t, t.TempDir(), "config.yaml", `language: typescript
manifestVersion: "2"
packageManager: yarn
skipGit: true
`)

	stdout, _, err := execute(t, "--config", configFile, dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "tsconfig.json"))
	m := testutil.ReadJSON(t, filepath.Join(dir, "public", "manifest.json"))
	assert.EqualValues(t, 2, m["manifest_version"])
	assert.Contains(t, stdout, "yarn run watch")
	assert.Equal(t, 1, inst.calls)
	assert.Equal(t, 0, repo.calls)
}

func TestRoot_FlagsBeatEnvironmentAndConfig(t *testing.T) {
	configFile := testutil.WriteFile(t, t.TempDir(), "config.yaml", "packageManager: yarn\nlanguage: typescript\n")

	t.Run("environment beats config", func(t *testing.T) {
		useFakes(t)
		t.Setenv("EXTINIT_PACKAGE_MANAGER", "pnpm")
		dir := filepath.Join(t.TempDir(), "ext")

		stdout, _, err := execute(t, "--config", configFile, dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "pnpm run watch")
	})

	t.Run("flag beats environment", func(t *testing.T) {
		useFakes(t)
		t.Setenv("EXTINIT_PACKAGE_MANAGER", "pnpm")
		dir := filepath.Join(t.TempDir(), "ext")

		stdout, _, err := execute(t, "--config", configFile, "--package-manager", "npm", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "npm run watch")
	})

	t.Run("bare language flag beats configured language", func(t *testing.T) {
		useFakes(t)
		dir := filepath.Join(t.TempDir(), "ext")

		_, _, err := execute(t, "--config", configFile, "--language", dir)
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "tsconfig.json"))
	})
}

func TestRoot_VersionFlag(t *testing.T) {
	useFakes(t)

	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "extinit version "))
}

func TestRoot_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "config")

	for _, flag := range []string{"override-page", "language", "manifest-version"} {
		assert.Equal(t, options.BareValue, root.Flags().Lookup(flag).NoOptDefVal, flag)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("timestamps"))

	assert.Contains(t, root.Long, "--side-panel")
	assert.Contains(t, root.Long, "(default)")
	assert.Contains(t, root.Long, "./config")
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "extinit version")
	assert.Contains(t, stdout, "Go:")
}

func TestConfigPathCmd_UsesConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elsewhere.yaml")

	stdout, _, err := execute(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}
