package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	oerrors "github.com/extinit/extinit/internal/errors"
	"github.com/extinit/extinit/internal/naming"
	"github.com/extinit/extinit/internal/output"
	"github.com/extinit/extinit/internal/scaffold"
	"github.com/extinit/extinit/internal/templates"
)

// PrintError writes a user-facing error to w. Name errors list every
// violated rule, errors before warnings.
func PrintError(w io.Writer, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) && errors.Is(err, oerrors.ErrNameInvalid) {
		name := detail.Context["Name"]
		r := naming.Validate(name)
		fmt.Fprintf(w, "Cannot create a project named %s because of npm naming restrictions:\n\n%s\n\nPlease choose a different project name.\n",
			output.StyleNoun.Render(strconv.Quote(name)),
			output.FormatRuleList(r.Errors, r.Warnings),
		)
		return
	}
	fmt.Fprintln(w, err.Error())
}

// PrintSummary prints the created files and the next steps.
func PrintSummary(plan scaffold.Plan, result *scaffold.Result) {
	cfg := plan.Config

	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Success! Created %s at %s",
		output.StyleNoun.Render(cfg.Name), output.StyleNoun.Render(result.Dir))))
	variant := templates.Describe(cfg.Variant())
	output.Println(output.StyleDim.Render(fmt.Sprintf("  %s template, %s, manifest v%d: %s",
		variant.Variant, cfg.Language, cfg.Generation.ManifestVersion(), variant.Description)))
	output.Println("")

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f] = describeFile(f)
	}
	output.Print(output.RenderFileTree(filepath.Base(result.Dir), files))
	output.Println("")

	run := plan.Readme.RunCommand
	output.Println(output.StyleSummary.Render("Inside that directory, you can run several commands:"))
	output.Println("")
	output.Println(output.FormatCommand(run("watch"), "Listens for changes and rebuilds the extension automatically."))
	output.Println("")
	output.Println(output.FormatCommand(run("build"), "Bundles the app into static files for production."))
	if plan.Readme.HasPack {
		output.Println("")
		output.Println(output.FormatCommand(run("pack"), "Zips the build folder into the release folder."))
	}
	output.Println("")

	output.Println(output.StyleSummary.Render("We suggest that you begin by typing:"))
	output.Println("")
	output.Println("  " + output.StyleCommand.Render("cd "+cdPath(result.Dir)))
	if cfg.SkipInstall {
		output.Println("  " + output.StyleCommand.Render(string(cfg.PackageManager)+" install"))
	}
	output.Println("  " + output.StyleCommand.Render(run("watch")))
	output.Println("")
	output.Println("Happy hacking!")
}

// cdPath returns dir relative to the working directory when it lies below
// it, and dir itself otherwise.
func cdPath(dir string) string {
	wd, err := os.Getwd()
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(wd, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return dir
	}
	return rel
}

// describeFile returns the file tree annotation for a generated path.
func describeFile(rel string) string {
	switch rel {
	case "package.json":
		return "Package metadata and scripts"
	case "tsconfig.json":
		return "TypeScript compiler options"
	case "public/manifest.json":
		return "Extension manifest"
	case "README.md":
		return "Getting started"
	case "pack.js":
		return "Zips the build into release/"
	case "config/webpack.config.js":
		return "Build configuration"
	}
	return ""
}
