package templates

import "github.com/extinit/extinit/internal/options"

// VariantInfo describes a template variant for help and summary output.
type VariantInfo struct {
	Variant     options.Variant
	Flag        string
	Description string
}

// variants is the registry of template variants, in precedence order.
var variants = []VariantInfo{
	{
		Variant:     options.VariantOverridePage,
		Flag:        "--override-page",
		Description: "Replaces a browser page (newtab, bookmarks or history)",
	},
	{
		Variant:     options.VariantDevtools,
		Flag:        "--devtools",
		Description: "Adds a panel to the browser developer tools",
	},
	{
		Variant:     options.VariantSidePanel,
		Flag:        "--side-panel",
		Description: "Shows a side panel listing open tabs (manifest v3 only)",
	},
	{
		Variant:     options.VariantPopup,
		Description: "Toolbar popup with a content script (default)",
	},
}

// Variants returns every template variant in precedence order.
func Variants() []VariantInfo {
	out := make([]VariantInfo, len(variants))
	copy(out, variants)
	return out
}

// Describe returns the registry entry for a variant.
func Describe(v options.Variant) VariantInfo {
	for _, info := range variants {
		if info.Variant == v {
			return info
		}
	}
	return VariantInfo{Variant: v}
}
