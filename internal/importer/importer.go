// Package importer reads batches of catalog operations from files so a
// session can be replayed from the command line.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/libro-dev/libro/internal/catalog"
	"github.com/libro-dev/libro/internal/model"
)

// Parser converts a batch file into catalog operations.
type Parser interface {
	Parse(r io.Reader) ([]catalog.Operation, error)
	Format() string
}

// Resolver maps a display name such as "Caja" to an account.
type Resolver interface {
	Lookup(name string) (model.AccountID, error)
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a batch file found by Scan.
type FileInfo struct {
	Name   string
	Path   string
	Format string
	Size   int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForPath picks a parser by file extension. "-" (stdin) reads CSV.
func (r *Registry) ForPath(path string) (Parser, error) {
	format := FormatOf(path)
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("no parser for %q (format %q)", path, format)
	}
	return p, nil
}

// FormatOf returns the batch format implied by a path's extension.
func FormatOf(path string) string {
	if path == "-" {
		return "csv"
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return "yaml"
	default:
		return strings.TrimPrefix(ext, ".")
	}
}

// DefaultRegistry returns a registry with the CSV and YAML parsers.
func DefaultRegistry(accounts Resolver) *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{Accounts: accounts})
	r.Register(&YAMLParser{Accounts: accounts})
	return r
}

// Scan returns the batch files directly inside dir that some parser in r
// understands, sorted by name.
func (r *Registry) Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading batch dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		format := FormatOf(e.Name())
		if r.Get(format) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name:   e.Name(),
			Path:   filepath.Join(dir, e.Name()),
			Format: format,
			Size:   info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// resolveAccount maps an optional account name. Empty selects the catalog default.
func resolveAccount(accounts Resolver, name string) (model.AccountID, error) {
	if strings.TrimSpace(name) == "" {
		return 0, nil
	}
	return accounts.Lookup(name)
}
