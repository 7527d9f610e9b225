// SPDX-License-Identifier: MIT

package pathwinder

import (
	"log/slog"

	"github.com/pathwinder/core/config"
	"github.com/pathwinder/core/director"
	"github.com/pathwinder/core/fsquery"
	"github.com/pathwinder/core/registry"
	"github.com/pathwinder/core/resolve"
)

// Options configures the registry and director a System builds.
type Options struct {
	Resolver   *resolve.Resolver
	FileSystem fsquery.Querier
	Logger     *slog.Logger
}

func (o Options) registryOptions() []registry.Option {
	var opts []registry.Option
	if o.Resolver != nil {
		opts = append(opts, registry.WithResolver(o.Resolver))
	}

	if o.FileSystem != nil {
		opts = append(opts, registry.WithFileSystemQuerier(o.FileSystem))
	}

	return opts
}

func (o Options) directorOptions() []director.Option {
	var opts []director.Option
	if o.FileSystem != nil {
		opts = append(opts, director.WithFileSystemQuerier(o.FileSystem))
	}

	if o.Logger != nil {
		opts = append(opts, director.WithLogger(o.Logger))
	}

	return opts
}

// System bundles a finalized registry with the Director built from it.
// It is immutable once constructed and safe for concurrent use.
type System struct {
	finalized *registry.FinalizedRegistry
	director  *director.Director
}

// New builds a System from an already-parsed configuration document.
func New(doc *config.Document, opts Options) (*System, error) {
	reg := registry.New(opts.registryOptions()...)

	if err := doc.Apply(reg); err != nil {
		return nil, err
	}

	finalized, err := reg.Finalize()
	if err != nil {
		return nil, err
	}

	return &System{
		finalized: finalized,
		director:  director.New(finalized, opts.directorOptions()...),
	}, nil
}

// Load reads a configuration document from path and builds a System
// from it: load a document from disk, then build the long-lived object
// consumers actually query.
func Load(path string, opts Options) (*System, error) {
	doc, err := config.LoadDocumentFile(path)
	if err != nil {
		return nil, err
	}

	return New(doc, opts)
}

// LoadAll reads and merges configuration documents from every path in
// order, then builds a single System from the merged result. This lets
// an application split its rules across several files (for example, a
// base file shipped with the application plus a user override file)
// while still producing one registry generation.
func LoadAll(paths []string, opts Options) (*System, error) {
	docs := make([]*config.Document, 0, len(paths))

	for _, path := range paths {
		doc, err := config.LoadDocumentFile(path)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	merged, err := config.MergeDocuments(docs...)
	if err != nil {
		return nil, err
	}

	return New(merged, opts)
}

// Director returns the System's Director.
func (s *System) Director() *director.Director { return s.director }

// GenerationID returns the underlying registry's generation identifier.
func (s *System) GenerationID() string { return s.finalized.GenerationID() }
