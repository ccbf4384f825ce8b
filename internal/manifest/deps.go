package manifest

import "github.com/extinit/extinit/internal/options"

// baseDevDependencies are installed into every project.
var baseDevDependencies = []string{
	"webpack@^5.0.0",
	"webpack-cli@^4.0.0",
	"webpack-merge@^5.0.0",
	"copy-webpack-plugin@^10.0.0",
	"size-plugin@^2.0.1",
	"mini-css-extract-plugin@^2.0.0",
	"css-loader@^6.0.0",
	"file-loader@^6.0.0",
	"prettier@^2.0.0",
	"adm-zip@^0.5.0",
}

var typeScriptDevDependencies = []string{
	"typescript@^5.0.0",
	"ts-loader@^9.0.0",
	"@types/chrome@^0.0.260",
}

const polyfillDependency = "webextension-polyfill@^0.10.0"

// DevDependencies returns the package specifiers to install for cfg.
func DevDependencies(cfg options.ProjectConfiguration) []string {
	deps := make([]string, 0, len(baseDevDependencies)+len(typeScriptDevDependencies)+1)
	deps = append(deps, baseDevDependencies...)

	if cfg.IsTypeScript() {
		deps = append(deps, typeScriptDevDependencies...)
	}

	if cfg.CrossBrowser {
		deps = append(deps, polyfillDependency)
	}

	return deps
}

// CompilerOptions is the compilerOptions block of tsconfig.json.
type CompilerOptions struct {
	Target                           string   `json:"target"`
	Module                           string   `json:"module"`
	ModuleResolution                 string   `json:"moduleResolution"`
	Lib                              []string `json:"lib"`
	Strict                           bool     `json:"strict"`
	ESModuleInterop                  bool     `json:"esModuleInterop"`
	SkipLibCheck                     bool     `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool     `json:"forceConsistentCasingInFileNames"`
	RootDir                          string   `json:"rootDir"`
	OutDir                           string   `json:"outDir"`
}

// TSConfigFile is tsconfig.json.
type TSConfigFile struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// TSConfig returns the fixed TypeScript configuration.
func TSConfig() TSConfigFile {
	return TSConfigFile{
		CompilerOptions: CompilerOptions{
			Target:                           "es6",
			Module:                           "es6",
			ModuleResolution:                 "node",
			Lib:                              []string{"dom", "es2017"},
			Strict:                           true,
			ESModuleInterop:                  true,
			SkipLibCheck:                     true,
			ForceConsistentCasingInFileNames: true,
			RootDir:                          "src",
			OutDir:                           "build/js",
		},
		Include: []string{"src/**/*.ts"},
		Exclude: []string{"node_modules", "build"},
	}
}
