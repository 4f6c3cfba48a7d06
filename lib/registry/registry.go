// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/jump/lib/binding"
	"github.com/bureau-foundation/jump/lib/config"
	"github.com/bureau-foundation/jump/lib/project"
	"github.com/bureau-foundation/jump/lib/template"
	"github.com/bureau-foundation/jump/lib/version"
)

// Namespaces visible to configuration expressions.
const (
	AvailabilityNamespace = "AvailabilityEnum"
	CommandsNamespace     = "commands"
)

// Handles maps callback names, as written after "commands." in the
// configuration, to their implementations.
type Handles map[string]project.CallbackFunc

// Symbols returns the closed symbol table for binding: the three
// availability constants and one handle per registered callback.
func Symbols(handles Handles) binding.Symbols {
	commands := make(map[string]any, len(handles))
	for name, function := range handles {
		commands[name] = project.Handle{Name: CommandsNamespace + "." + name, Func: function}
	}
	return binding.Symbols{Namespaces: map[string]map[string]any{
		AvailabilityNamespace: {
			project.Optional.String():   project.Optional,
			project.Required.String():   project.Required,
			project.Prohibited.String(): project.Prohibited,
		},
		CommandsNamespace: commands,
	}}
}

// Build runs the loading pipeline over tree. source is recorded on the
// registry for diagnostics. A nil logger discards debug output.
func Build(source string, tree config.Tree, handles Handles, logger *slog.Logger) (*project.Registry, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	resolved, err := template.Resolve(tree)
	if err != nil {
		var inheritance *template.InheritanceError
		if errors.As(err, &inheritance) {
			return nil, &project.ConfigError{Project: inheritance.Entry, Field: template.BaseKey, Err: err}
		}
		return nil, err
	}

	bound, err := binding.Bind(resolved, Symbols(handles))
	if err != nil {
		var bindErr *binding.Error
		if errors.As(err, &bindErr) {
			return nil, &project.ConfigError{Project: bindErr.Project(), Err: err}
		}
		return nil, err
	}

	names := make([]string, 0, len(bound))
	for name := range bound {
		names = append(names, name)
	}
	slices.Sort(names)

	projects := make([]*project.Project, 0, len(names))
	for _, name := range names {
		decoded, err := project.Decode(name, bound[name])
		if err != nil {
			return nil, err
		}
		scanVersions(decoded)
		logger.Debug("project loaded",
			"project", name,
			"paths", decoded.Paths,
			"versions", decoded.Versions.Len(),
			"actions", len(decoded.Actions),
		)
		projects = append(projects, decoded)
	}

	registry, err := project.NewRegistry(source, projects...)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	logger.Debug("registry built", "source", source, "projects", registry.Len())
	return registry, nil
}

// Load reads the configuration file at path and builds the registry
// from it.
func Load(path string, handles Handles, logger *slog.Logger) (*project.Registry, error) {
	tree, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(path, tree, handles, logger)
}

// scanVersions fills a project's version table from its directories.
// Versions listed explicitly in the configuration override scanned
// directories of the same name.
func scanVersions(p *project.Project) {
	if p.Options.Version == project.Prohibited || len(p.Paths) == 0 {
		return
	}
	scanned := version.Scan(p.Paths...)
	scanned.Merge(p.Versions)
	p.Versions = scanned
}
