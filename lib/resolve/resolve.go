// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"errors"
	"slices"
	"strings"

	"github.com/bureau-foundation/jump/lib/alias"
	"github.com/bureau-foundation/jump/lib/project"
	"github.com/bureau-foundation/jump/lib/version"
)

// ActionSeparator joins several actions in one token: "s+e".
const ActionSeparator = "+"

// ErrNoName is returned by [Commands] for an empty token list.
var ErrNoName = errors.New("no project name given")

// Name resolves a project alias against the registry.
func Name(registry *project.Registry, token string) (*project.Project, error) {
	name, err := alias.Resolve(alias.KindName, token, registry.Names())
	if err != nil {
		return nil, err
	}
	resolved, _ := registry.Project(name)
	return resolved, nil
}

// Actions resolves a possibly "+"-joined action token into canonical
// action names, in the order written. Each piece is resolved on its
// own.
func Actions(p *project.Project, token string) ([]string, error) {
	names := p.ActionNames()
	pieces := strings.Split(token, ActionSeparator)
	actions := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		action, err := alias.Resolve(alias.KindAction, piece, names)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// Version resolves a single version token for p.
func Version(p *project.Project, token string) (string, error) {
	name, err := version.Resolve(p.Versions, p.BaseVersion, token)
	return name, configError(p, err)
}

// VersionExpression expands a version expression for p into canonical
// version names.
func VersionExpression(p *project.Project, expression string) ([]string, error) {
	names, err := version.Expand(p.Versions, p.BaseVersion, expression)
	return names, configError(p, err)
}

// configError reports a short form used without a base version as a
// configuration problem of the project rather than a bad token.
func configError(p *project.Project, err error) error {
	if errors.Is(err, version.ErrNoBaseVersion) {
		return &project.ConfigError{Project: p.Name, Field: "base_version", Err: err}
	}
	return err
}

// Commands parses tokens into the commands they denote. Project,
// version and action tokens are case-folded; arguments are kept as
// typed.
func Commands(registry *project.Registry, tokens []string) ([]project.Command, error) {
	if len(tokens) == 0 {
		return nil, ErrNoName
	}
	rest := slices.Clone(tokens)
	pop := func() string {
		token := rest[0]
		rest = rest[1:]
		return strings.ToLower(token)
	}

	p, err := Name(registry, pop())
	if err != nil {
		return nil, err
	}
	options := p.Options
	mayVersion := options.Version != project.Prohibited
	mayAction := options.Action != project.Prohibited

	var versions, actions []string
	if (mayVersion || mayAction) && len(rest) > 0 {
		raw := rest[0]
		token := pop()
		switch {
		case mayVersion && version.LooksLike(token):
			if versions, err = VersionExpression(p, token); err != nil {
				return nil, err
			}
		case mayAction:
			if actions, err = Actions(p, token); err != nil {
				return nil, err
			}
		default:
			// Neither a usable version nor an action: give it back as
			// an argument so availability checking can report it.
			rest = append([]string{raw}, rest...)
		}
	}

	if mayAction && len(actions) == 0 && len(rest) > 0 {
		if actions, err = Actions(p, pop()); err != nil {
			return nil, err
		}
	}

	if len(versions) == 0 && options.Version == project.Optional && options.DefaultVersion != "" {
		name, err := Version(p, options.DefaultVersion)
		if err != nil {
			return nil, err
		}
		versions = []string{name}
	}

	if len(versions) == 0 {
		versions = []string{""}
	}
	if len(actions) == 0 {
		actions = []string{""}
	}

	commands := make([]project.Command, 0, len(versions)*len(actions))
	for _, v := range versions {
		for _, action := range actions {
			commands = append(commands, project.Command{
				Name:    p.Name,
				Version: v,
				Action:  action,
				Args:    slices.Clone(rest),
			})
		}
	}
	return commands, nil
}
