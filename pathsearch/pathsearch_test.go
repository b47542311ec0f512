// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathsearch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_lookup01_findsFirstMatch(tst *testing.T) {
	chk.PrintTitle("pathsearch01: lookup finds the first matching directory")
	base := tst.TempDir()
	a := filepath.Join(base, "a")
	b := filepath.Join(base, "b")
	if err := os.MkdirAll(filepath.Join(b, "NNPDF31_nnlo_as_0118"), 0755); err != nil {
		tst.Fatalf("MkdirAll: %v", err)
	}
	if err := os.MkdirAll(a, 0755); err != nil {
		tst.Fatalf("MkdirAll: %v", err)
	}

	l := FromString(a + string(os.PathListSeparator) + b)
	got, err := l.Lookup("NNPDF31_nnlo_as_0118")
	if err != nil {
		tst.Fatalf("Lookup: %v", err)
	}
	want := filepath.Join(b, "NNPDF31_nnlo_as_0118")
	if got != want {
		tst.Fatalf("got %q want %q", got, want)
	}
}

func Test_lookup02_missingIsError(tst *testing.T) {
	chk.PrintTitle("pathsearch02: missing set returns FileNotFound")
	l := FromString(tst.TempDir())
	if _, err := l.Lookup("does-not-exist"); err == nil {
		tst.Fatalf("expected an error")
	}
}

func Test_prependDedup01(tst *testing.T) {
	chk.PrintTitle("pathsearch03: prepend of a new directory goes to the front; of an existing one is a no-op")
	l := FromString("/a:/b")
	l.Prepend("/c")
	if len(l.Dirs()) != 3 || l.Dirs()[0] != "/c" {
		tst.Fatalf("expected /c at the front, got %v", l.Dirs())
	}
	l.Prepend("/b")
	if len(l.Dirs()) != 3 {
		tst.Fatalf("expected no duplicate entry, got %v", l.Dirs())
	}
}
