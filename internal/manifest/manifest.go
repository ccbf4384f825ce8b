// Package manifest builds the extension manifest, the package descriptor and
// the TypeScript configuration of a generated project.
package manifest

import (
	"github.com/extinit/extinit/internal/options"
)

// Version is the initial version of every generated project.
const Version = "0.1.0"

// PolyfillScript is the WebExtension polyfill copied into cross-browser builds.
const PolyfillScript = "browser-polyfill.min.js"

// Icons maps pixel sizes to icon paths.
type Icons struct {
	Size16  string `json:"16"`
	Size32  string `json:"32"`
	Size48  string `json:"48"`
	Size128 string `json:"128"`
}

// Action is the toolbar button (action in v3, browser_action in v2).
type Action struct {
	DefaultTitle string `json:"default_title"`
	DefaultPopup string `json:"default_popup"`
}

// Background declares the background script or service worker.
type Background struct {
	ServiceWorker string   `json:"service_worker,omitempty"`
	Scripts       []string `json:"scripts,omitempty"`
	Persistent    *bool    `json:"persistent,omitempty"`
}

// SidePanel declares the side panel page.
type SidePanel struct {
	DefaultPath string `json:"default_path"`
}

// ContentScript declares scripts injected into matching pages.
type ContentScript struct {
	Matches []string `json:"matches"`
	RunAt   string   `json:"run_at"`
	JS      []string `json:"js"`
}

// Manifest is public/manifest.json. Field order is the emitted key order.
type Manifest struct {
	ManifestVersion    int               `json:"manifest_version"`
	Name               string            `json:"name"`
	Version            string            `json:"version"`
	Description        string            `json:"description"`
	Icons              Icons             `json:"icons"`
	Action             *Action           `json:"action,omitempty"`
	BrowserAction      *Action           `json:"browser_action,omitempty"`
	Background         Background        `json:"background"`
	ChromeURLOverrides map[string]string `json:"chrome_url_overrides,omitempty"`
	DevtoolsPage       string            `json:"devtools_page,omitempty"`
	SidePanel          *SidePanel        `json:"side_panel,omitempty"`
	Permissions        []string          `json:"permissions,omitempty"`
	ContentScripts     []ContentScript   `json:"content_scripts,omitempty"`
}

// BuildManifest synthesizes the manifest for cfg. The generation fixes the
// manifest shape; the variant adds exactly one feature branch.
func BuildManifest(cfg options.ProjectConfiguration, displayName string) Manifest {
	m := Manifest{
		ManifestVersion: cfg.Generation.ManifestVersion(),
		Name:            displayName,
		Version:         Version,
		Description:     cfg.Description,
		Icons: Icons{
			Size16:  "icons/icon_16.png",
			Size32:  "icons/icon_32.png",
			Size48:  "icons/icon_48.png",
			Size128: "icons/icon_128.png",
		},
	}

	if cfg.Generation == options.GenerationMV2 {
		m.Background = Background{
			Scripts:    []string{"background.js"},
			Persistent: boolPtr(false),
		}
	} else {
		m.Background = Background{ServiceWorker: "background.js"}
	}

	switch cfg.Variant() {
	case options.VariantOverridePage:
		m.ChromeURLOverrides = map[string]string{string(cfg.OverridePage): "index.html"}
	case options.VariantDevtools:
		m.DevtoolsPage = "devtools.html"
	case options.VariantSidePanel:
		m.SidePanel = &SidePanel{DefaultPath: "sidepanel.html"}
		m.Permissions = []string{"sidePanel", "tabs"}
	default:
		action := &Action{DefaultTitle: displayName, DefaultPopup: "popup.html"}
		if cfg.Generation == options.GenerationMV2 {
			m.BrowserAction = action
		} else {
			m.Action = action
		}
		m.Permissions = []string{"storage"}
		m.ContentScripts = []ContentScript{{
			Matches: []string{"<all_urls>"},
			RunAt:   "document_idle",
			JS:      []string{"contentScript.js"},
		}}
	}

	if cfg.CrossBrowser {
		addPolyfill(&m)
	}

	return m
}

// addPolyfill prepends the polyfill to every script list.
func addPolyfill(m *Manifest) {
	if len(m.Background.Scripts) > 0 {
		m.Background.Scripts = append([]string{PolyfillScript}, m.Background.Scripts...)
	}
	for i := range m.ContentScripts {
		m.ContentScripts[i].JS = append([]string{PolyfillScript}, m.ContentScripts[i].JS...)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
