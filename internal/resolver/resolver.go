package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
)

// Module is a resolved Go module on disk.
type Module struct {
	Root string // directory containing go.mod
	Path string // module path declared in go.mod
}

// Resolve takes a local directory (module root or any directory inside or
// above a module) and returns the module to analyze.
func Resolve(input string, logger *slog.Logger) (Module, error) {
	if input == "" {
		input = "."
	}

	absPath, err := filepath.Abs(input)
	if err != nil {
		return Module{}, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return Module{}, fmt.Errorf("stat %s: %w", absPath, err)
	}

	if !info.IsDir() {
		return Module{}, fmt.Errorf("%s is not a directory", absPath)
	}

	// Nearest go.mod upward, else the shallowest one below.
	modRoot, err := findModuleRoot(absPath)
	if err != nil {
		modRoot, err = findModuleRootInTree(absPath)
		if err != nil {
			return Module{}, err
		}
	}

	modPath, err := readModulePath(modRoot)
	if err != nil {
		return Module{}, err
	}

	logger.Info("resolved local directory", "input", input, "module_root", modRoot, "module_path", modPath)
	return Module{Root: modRoot, Path: modPath}, nil
}

func readModulePath(dir string) (string, error) {
	goMod := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(goMod)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", goMod, err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("%s has no module directive", goMod)
	}
	return path, nil
}

func findModuleRoot(dir string) (string, error) {
	current := dir
	for {
		goMod := filepath.Join(current, "go.mod")
		if _, err := os.Stat(goMod); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
}

// findModuleRootInTree walks root breadth-first and returns the directory of
// the shallowest go.mod. Ties at the same depth go to the alphabetically
// first directory. Hidden directories, vendor, node_modules and testdata are
// skipped.
func findModuleRootInTree(root string) (string, error) {
	level := []string{root}
	for len(level) > 0 {
		sort.Strings(level)
		var next []string
		for _, dir := range level {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				return dir, nil
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if !e.IsDir() || strings.HasPrefix(e.Name(), ".") || skipDirs[e.Name()] {
					continue
				}
				next = append(next, filepath.Join(dir, e.Name()))
			}
		}
		level = next
	}
	return "", fmt.Errorf("no go.mod found in %s or its subdirectories", root)
}
