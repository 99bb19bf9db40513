// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var starlarkExts = []string{".star"}

type File struct {
	src     Source
	relPath string
}

// NewFiles enumerates sources for paths: "-" is standard input, http(s)
// URLs are fetched, directories contribute the Starlark files they contain
// (recursively, sorted by path), and any other path is read as is.
func NewFiles(paths []string) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewHTTPSource(path))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %s", path, err)
			}

			if !fileInfo.IsDir() {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
				continue
			}

			var selectedPaths []string

			err = filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
				if err != nil || fi.IsDir() {
					return err
				}
				if matchesExt(walkedPath, starlarkExts) {
					selectedPaths = append(selectedPaths, walkedPath)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("Listing files '%s': %s", path, err)
			}

			sort.Strings(selectedPaths)

			for _, selectedPath := range selectedPaths {
				fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func matchesExt(path string, exts []string) bool {
	filename := filepath.Base(path)
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
