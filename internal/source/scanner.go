package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDir discovers scenario files. A .jsonl path is returned as-is; a
// directory is walked for every *.jsonl beneath it, in lexical order.
func ScanDir(path string) ([]DiscoveredFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !info.IsDir() {
		if filepath.Ext(path) != ".jsonl" {
			return nil, fmt.Errorf("%s: not a .jsonl file", path)
		}
		return []DiscoveredFile{discovered(path)}, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) != ".jsonl" {
			return nil
		}
		files = append(files, discovered(p))
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func discovered(path string) DiscoveredFile {
	return DiscoveredFile{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(path), ".jsonl"),
	}
}
