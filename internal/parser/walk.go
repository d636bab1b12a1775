package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/phpcompatible/enumup/internal/ignore"
	gitignore "github.com/sabhiram/go-gitignore"
)

// DefaultExtensions are the source extensions scanned when none are configured.
var DefaultExtensions = []string{".php"}

// WalkOptions controls file enumeration.
type WalkOptions struct {
	Extensions  []string // matched case-insensitively; DefaultExtensions when empty
	IgnoreRules []string // .gitignore-style rules layered over the default excludes
	GitIgnore   bool     // also honor <root>/.gitignore
}

// WalkResult is the ordered list of candidate files under a root.
type WalkResult struct {
	RootPath string
	Files    []string // root-joined paths, sorted by relative path
	Issues   []Issue
}

// Walk recursively enumerates candidate source files below root.
func Walk(root string, opts WalkOptions) (*WalkResult, error) {
	ignoreMatcher := ignore.NewMatcher(opts.IgnoreRules)

	var gitMatcher *gitignore.GitIgnore
	if opts.GitIgnore {
		lines, err := readGitIgnore(root)
		if err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			gitMatcher = gitignore.CompileIgnoreLines(lines...)
		}
	}

	exts := make(map[string]bool)
	for _, ext := range opts.Extensions {
		exts[strings.ToLower(ext)] = true
	}
	if len(exts) == 0 {
		for _, ext := range DefaultExtensions {
			exts[ext] = true
		}
	}

	result := &WalkResult{
		RootPath: root,
		Files:    make([]string, 0),
		Issues:   make([]Issue, 0),
	}
	relPaths := make(map[string]string)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		relPath := path
		if rel, relErr := filepath.Rel(root, path); relErr == nil {
			relPath = rel
		}

		if err != nil {
			result.Issues = append(result.Issues, Issue{
				File:     relPath,
				Severity: "warning",
				Message:  fmt.Sprintf("walk error: %v", err),
			})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if relPath == "." {
			return nil
		}

		// Skip directories and ignored paths
		if ignoreMatcher.ShouldIgnore(relPath, info.IsDir()) || (gitMatcher != nil && gitMatcher.MatchesPath(relPath)) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		result.Files = append(result.Files, path)
		relPaths[path] = filepath.ToSlash(relPath)
		return nil
	})

	sort.Slice(result.Files, func(i, j int) bool {
		return relPaths[result.Files[i]] < relPaths[result.Files[j]]
	})
	sort.Slice(result.Issues, func(i, j int) bool {
		if result.Issues[i].File == result.Issues[j].File {
			return result.Issues[i].Message < result.Issues[j].Message
		}
		return result.Issues[i].File < result.Issues[j].File
	})

	return result, err
}

func readGitIgnore(root string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}
	return strings.Split(string(data), "\n"), nil
}
