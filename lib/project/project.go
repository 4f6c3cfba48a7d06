// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"fmt"
	"slices"

	"github.com/bureau-foundation/jump/lib/version"
)

// Project is one decoded, read-only configuration entry.
type Project struct {
	Name    string
	Options Options

	// Paths are the configured root directories (or a single file) in
	// declaration order.
	Paths []string

	// BaseVersion is the template short-form versions expand into,
	// e.g. "3.2.{number}".
	BaseVersion string

	Versions version.Table
	Actions  map[string]ActionValue

	// Vars are free-form string values available to URL templates and
	// callbacks.
	Vars map[string]string

	JenkinsURL string
	SVNDevURL  string
}

// ActionNames returns the action names, sorted.
func (p *Project) ActionNames() []string {
	names := make([]string, 0, len(p.Actions))
	for name := range p.Actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Root returns the first configured path.
func (p *Project) Root() (string, error) {
	if len(p.Paths) == 0 {
		return "", &ConfigError{Project: p.Name, Field: "path", Err: ErrNoPath}
	}
	return p.Paths[0], nil
}

// Registry is the set of projects loaded from one configuration. It is
// built once and never modified.
type Registry struct {
	projects map[string]*Project
	names    []string

	// Source is the configuration file the registry was loaded from.
	Source string
}

// NewRegistry indexes projects by name. Names must be unique.
func NewRegistry(source string, projects ...*Project) (*Registry, error) {
	registry := &Registry{
		projects: make(map[string]*Project, len(projects)),
		Source:   source,
	}
	for _, project := range projects {
		if _, exists := registry.projects[project.Name]; exists {
			return nil, fmt.Errorf("duplicate project name %q", project.Name)
		}
		registry.projects[project.Name] = project
		registry.names = append(registry.names, project.Name)
	}
	slices.Sort(registry.names)
	return registry, nil
}

// Names returns the project names, sorted.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Project returns the project with exactly this canonical name.
func (r *Registry) Project(name string) (*Project, bool) {
	project, exists := r.projects[name]
	return project, exists
}

// Len returns the number of projects.
func (r *Registry) Len() int {
	return len(r.names)
}
