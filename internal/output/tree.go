package output

import (
	"cmp"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentPipe = "│   "
	indentGap  = "    "

	// noteColumn is the column file annotations are aligned to.
	noteColumn = 34
)

// treeEntry is a file or directory in a rendered project tree.
type treeEntry struct {
	name    string
	note    string
	entries map[string]*treeEntry // nil for files
}

func (e *treeEntry) isDir() bool { return e.entries != nil }

func (e *treeEntry) dir(name string) *treeEntry {
	child, ok := e.entries[name]
	if !ok {
		child = &treeEntry{name: name, entries: map[string]*treeEntry{}}
		e.entries[name] = child
	}
	return child
}

// sorted returns the children with directories first, each group by name.
func (e *treeEntry) sorted() []*treeEntry {
	list := make([]*treeEntry, 0, len(e.entries))
	for _, child := range e.entries {
		list = append(list, child)
	}
	slices.SortFunc(list, func(a, b *treeEntry) int {
		if a.isDir() != b.isDir() {
			if a.isDir() {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.name, b.name)
	})
	return list
}

// RenderFileTree draws the files of a generated project below root.
// Keys of files are relative paths, values an optional annotation printed
// dimmed in a column to the right.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeEntry{name: root, entries: map[string]*treeEntry{}}
	for rel, note := range files {
		dir, file := path.Split(filepath.ToSlash(rel))
		parent := top
		for _, part := range strings.Split(strings.TrimSuffix(dir, "/"), "/") {
			if part != "" {
				parent = parent.dir(part)
			}
		}
		parent.entries[file] = &treeEntry{name: file, note: note}
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(root + "/"))
	sb.WriteString("\n")
	writeEntries(&sb, top, "")
	return sb.String()
}

func writeEntries(sb *strings.Builder, parent *treeEntry, indent string) {
	children := parent.sorted()
	for i, child := range children {
		branch, next := branchMid, indent+indentPipe
		if i == len(children)-1 {
			branch, next = branchEnd, indent+indentGap
		}

		line := indent + branch + child.name
		if child.isDir() {
			line += "/"
		}
		if child.note != "" {
			pad := max(noteColumn-len([]rune(line)), 2)
			line += strings.Repeat(" ", pad) + StyleDim.Render(child.note)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		if child.isDir() {
			writeEntries(sb, child, next)
		}
	}
}
