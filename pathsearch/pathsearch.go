// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathsearch implements the colon-separated search path
// spec.md §6.3 describes for locating PDF set directories: an ordered
// list of directories, normally seeded from an environment variable,
// searched in order for a named subdirectory.
package pathsearch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gopdf/pdferr"
)

// List is an ordered search path. Prepend and Append do not add a
// directory that is already present; FromString and Replace keep the
// entries they are given as is, duplicates included.
type List struct {
	dirs []string
}

// FromEnv builds a List from a colon-separated environment variable.
// An unset or empty variable yields an empty List (not an error).
func FromEnv(name string) *List {
	return FromString(os.Getenv(name))
}

// FromString builds a List from a colon-separated string.
func FromString(s string) *List {
	l := &List{}
	for _, p := range strings.Split(s, string(os.PathListSeparator)) {
		if p != "" {
			l.dirs = append(l.dirs, p)
		}
	}
	return l
}

// Prepend adds dir to the front of the search order, if not already
// present.
func (o *List) Prepend(dir string) {
	if o.contains(dir) {
		return
	}
	o.dirs = append([]string{dir}, o.dirs...)
}

// Append adds dir to the back of the search order, if not already
// present.
func (o *List) Append(dir string) {
	if o.contains(dir) {
		return
	}
	o.dirs = append(o.dirs, dir)
}

// Replace sets the search order to exactly dirs.
func (o *List) Replace(dirs []string) { o.dirs = append([]string{}, dirs...) }

// Dirs returns the current search order.
func (o *List) Dirs() []string { return append([]string{}, o.dirs...) }

func (o *List) contains(dir string) bool {
	for _, d := range o.dirs {
		if d == dir {
			return true
		}
	}
	return false
}

// Lookup searches, in order, for a subdirectory named name under each
// path entry, returning the first one that exists.
func (o *List) Lookup(name string) (string, error) {
	for _, d := range o.dirs {
		candidate := filepath.Join(d, name)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, nil
		}
	}
	return "", pdferr.New(pdferr.FileNotFound, "pathsearch: %q not found in any of %v", name, o.dirs)
}
