package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed tree
var treeFS embed.FS

// FS returns the embedded template filesystem rooted at the tree directory.
func FS() fs.FS {
	sub, err := fs.Sub(treeFS, "tree")
	if err != nil {
		panic(fmt.Sprintf("embedded template tree: %v", err))
	}
	return sub
}

// ListLayerFiles returns every file a layer provides, in lexical order.
// A layer whose directory does not exist provides no files.
func ListLayerFiles(fsys fs.FS, layer Layer) ([]LayerFile, error) {
	if _, err := fs.Stat(fsys, layer.Dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading layer %s: %w", layer.Dir, err)
	}

	var files []LayerFile

	err := fs.WalkDir(fsys, layer.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, layer.Dir+"/")
		files = append(files, LayerFile{
			Source: p,
			Target: layer.Target(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing layer %s: %w", layer.Dir, err)
	}

	return files, nil
}

// ListSelectionFiles resolves every target path of a selection, applying
// the first-writer-wins rule. Keys are target paths, values are sources.
func ListSelectionFiles(fsys fs.FS, sel Selection) (map[string]string, error) {
	out := make(map[string]string)
	for _, layer := range sel.Layers {
		files, err := ListLayerFiles(fsys, layer)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if _, taken := out[f.Target]; !taken {
				out[f.Target] = f.Source
			}
		}
	}
	return out, nil
}
