// Package naming validates project names against npm package naming rules
// and derives human-facing display names.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLength is the longest name npm accepts for new packages.
const MaxLength = 214

// scopedPackagePattern splits "@scope/name" into its two parts.
var scopedPackagePattern = regexp.MustCompile(`^(?:@([^/]+?)[/])?([^/]+?)$`)

// blacklist holds names npm refuses outright.
var blacklist = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// builtinModules are Node core module names; npm warns about them.
var builtinModules = map[string]bool{
	"assert": true, "async_hooks": true, "buffer": true, "child_process": true,
	"cluster": true, "console": true, "constants": true, "crypto": true,
	"dgram": true, "diagnostics_channel": true, "dns": true, "domain": true,
	"events": true, "fs": true, "http": true, "http2": true, "https": true,
	"inspector": true, "module": true, "net": true, "os": true, "path": true,
	"perf_hooks": true, "process": true, "punycode": true, "querystring": true,
	"readline": true, "repl": true, "stream": true, "string_decoder": true,
	"sys": true, "timers": true, "tls": true, "trace_events": true, "tty": true,
	"url": true, "util": true, "v8": true, "vm": true, "wasi": true,
	"worker_threads": true, "zlib": true,
}

// Result lists every violated rule. Errors make a name invalid for any
// package; warnings make it invalid for new packages only.
type Result struct {
	Errors   []string
	Warnings []string
}

// ValidForNewPackages reports whether the name may be used for a new package.
func (r Result) ValidForNewPackages() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Validate checks name against npm package naming rules.
func Validate(name string) Result {
	var r Result

	if name == "" {
		r.Errors = append(r.Errors, "name length must be greater than zero")
		return r
	}

	if strings.HasPrefix(name, ".") {
		r.Errors = append(r.Errors, "name cannot start with a period")
	}

	if strings.HasPrefix(name, "_") {
		r.Errors = append(r.Errors, "name cannot start with an underscore")
	}

	if strings.TrimSpace(name) != name {
		r.Errors = append(r.Errors, "name cannot contain leading or trailing spaces")
	}

	lower := strings.ToLower(name)
	if blacklist[lower] {
		r.Errors = append(r.Errors, fmt.Sprintf("%s is a blacklisted name", lower))
	}

	if builtinModules[lower] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s is a core module name", lower))
	}

	if utf8.RuneCountInString(name) > MaxLength {
		r.Warnings = append(r.Warnings, fmt.Sprintf("name can no longer contain more than %d characters", MaxLength))
	}

	if lower != name {
		r.Warnings = append(r.Warnings, "name can no longer contain capital letters")
	}

	if strings.ContainsAny(lastSegment(name), "~'!()*") {
		r.Warnings = append(r.Warnings, `name can no longer contain special characters ("~'!()*")`)
	}

	if !urlSafe(name) {
		m := scopedPackagePattern.FindStringSubmatch(name)
		if m == nil || m[1] == "" || !urlSafe(m[1]) || !urlSafe(m[2]) {
			r.Errors = append(r.Errors, "name can only contain URL-friendly characters")
		}
	}

	return r
}

// lastSegment returns the part after the scope, or the whole name.
func lastSegment(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// urlSafe reports whether encodeURIComponent would leave s untouched.
func urlSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}

// DisplayName derives a human-readable title from a package name:
// hyphens become spaces, the result is lowercased, then every
// space-separated word is capitalized. "my-cool-extension" becomes
// "My Cool Extension".
func DisplayName(name string) string {
	words := strings.Split(strings.ToLower(strings.ReplaceAll(name, "-", " ")), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
