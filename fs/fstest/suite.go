// Package fstest provides a conformance test suite for validating fs.Filesystem
// backends against the contract file handles depend on.
//
// Backends differ in how they treat permissions or missing parent directories
// on create; the suite only checks behavior a handle observes: open flag
// semantics, single-level directory creation, removal and whole-file reads.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func() fs.Filesystem {
//	        return mybackend.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/keepcoding-tech/libkc-system/fs"
)

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each test.
func TestSuite(t *testing.T, newFS func() fs.Filesystem) {
	TestSuiteWithSkip(t, newFS, nil)
}

// TestSuiteWithSkip runs conformance tests with optional test skipping.
// The skipTests parameter is a slice of group names to skip (e.g., "ManageFS").
func TestSuiteWithSkip(t *testing.T, newFS func() fs.Filesystem, skipTests []string) {
	shouldSkip := func(testName string) bool {
		for _, skip := range skipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	groups := []struct {
		name string
		run  func(*testing.T, fs.Filesystem)
	}{
		{name: "ReadFS", run: TestReadFS},
		{name: "WriteFS", run: TestWriteFS},
		{name: "OpenFileFlags", run: TestOpenFileFlags},
		{name: "ManageFS", run: TestManageFS},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			g.run(t, newFS())
		})
	}
}
