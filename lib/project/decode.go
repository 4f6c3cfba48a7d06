// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bureau-foundation/jump/lib/config"
	"github.com/bureau-foundation/jump/lib/version"
)

// Configuration keys of a project entry.
const (
	keyOptions        = "options"
	keyPath           = "path"
	keyBaseVersion    = "base_version"
	keyVersions       = "versions"
	keyActions        = "actions"
	keyVars           = "vars"
	keyJenkinsURL     = "jenkins_url"
	keySVNDevURL      = "svn_dev_url"
	keyDefaultVersion = "default_version"
)

// legacyActionKeys are accepted in place of "actions" and
// options.action by older configuration files.
const (
	legacyActionsKey = "whats"
	legacyActionKey  = "what"
)

// Decode builds a [Project] from one merged and bound configuration
// entry. Version directories are not scanned here; Versions holds only
// the entries listed under "versions" in the configuration.
func Decode(name string, node map[string]any) (*Project, error) {
	project := &Project{
		Name:    name,
		Actions: make(map[string]ActionValue),
		Vars:    make(map[string]string),
	}
	fail := func(field string, err error) (*Project, error) {
		return nil, &ConfigError{Project: name, Field: field, Err: err}
	}

	var err error
	if project.Options, err = decodeOptions(node[keyOptions]); err != nil {
		return fail(keyOptions, err)
	}
	if project.Paths, err = decodePaths(node[keyPath]); err != nil {
		return fail(keyPath, err)
	}
	if project.BaseVersion, err = optionalString(node[keyBaseVersion]); err != nil {
		return fail(keyBaseVersion, err)
	}
	if project.JenkinsURL, err = optionalString(node[keyJenkinsURL]); err != nil {
		return fail(keyJenkinsURL, err)
	}
	if project.SVNDevURL, err = optionalString(node[keySVNDevURL]); err != nil {
		return fail(keySVNDevURL, err)
	}

	if raw, exists := node[keyVersions]; exists {
		if project.Versions, err = decodeVersions(raw); err != nil {
			return fail(keyVersions, err)
		}
	}

	if raw, exists := node[keyVars]; exists {
		vars, ok := raw.(map[string]any)
		if !ok {
			return fail(keyVars, fmt.Errorf("must be an object, got %T", raw))
		}
		for key, value := range vars {
			project.Vars[key] = fmt.Sprint(value)
		}
	}

	actionsKey := keyActions
	if _, exists := node[keyActions]; !exists {
		if _, legacy := node[legacyActionsKey]; legacy {
			actionsKey = legacyActionsKey
		}
	}
	if raw, exists := node[actionsKey]; exists {
		actions, ok := raw.(map[string]any)
		if !ok {
			return fail(actionsKey, fmt.Errorf("must be an object, got %T", raw))
		}
		for actionName, value := range actions {
			decoded, err := DecodeAction(value)
			if err != nil {
				return fail(actionsKey+"."+actionName, err)
			}
			project.Actions[actionName] = decoded
		}
	}

	return project, nil
}

// DecodeAction converts one raw action value into its [ActionValue]
// shape:
//
//   - string: [FileReference]
//   - [Handle]: [Callback] without a description
//   - object: [ActionTable], "__default__" naming the default entry
//   - [description, string]: [ShellTemplate]
//   - [description, Handle]: [Callback]
func DecodeAction(raw any) (ActionValue, error) {
	switch value := raw.(type) {
	case string:
		return FileReference{Path: value}, nil

	case Handle:
		return Callback{Handle: value}, nil

	case map[string]any:
		table := ActionTable{Entries: make(map[string]ActionValue, len(value))}
		for key, child := range value {
			if key == DefaultKeyName {
				defaultKey, ok := child.(string)
				if !ok {
					return nil, fmt.Errorf("%s must be a string, got %T", DefaultKeyName, child)
				}
				table.DefaultKey = defaultKey
				continue
			}
			decoded, err := DecodeAction(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			table.Entries[key] = decoded
		}
		if len(table.Entries) == 0 {
			return nil, errors.New("action table has no entries")
		}
		if table.DefaultKey != "" {
			if _, exists := table.Entries[table.DefaultKey]; !exists {
				return nil, fmt.Errorf("%s %q names no entry (have %v)", DefaultKeyName, table.DefaultKey, table.Keys())
			}
		}
		return table, nil

	case []any:
		if len(value) != 2 {
			return nil, fmt.Errorf("a list action must be [description, command], got %d elements", len(value))
		}
		description, ok := value[0].(string)
		if !ok {
			return nil, fmt.Errorf("description must be a string, got %T", value[0])
		}
		switch second := value[1].(type) {
		case string:
			return ShellTemplate{Description: description, Template: second}, nil
		case Handle:
			return Callback{Description: description, Handle: second}, nil
		default:
			return nil, fmt.Errorf("command must be a string or a callback, got %T", value[1])
		}

	default:
		return nil, fmt.Errorf("unsupported action value of type %T", raw)
	}
}

func decodeOptions(raw any) (Options, error) {
	var options Options
	if raw == nil {
		return options, nil
	}
	node, ok := raw.(map[string]any)
	if !ok {
		return options, fmt.Errorf("must be an object, got %T", raw)
	}

	actionKey := string(FieldAction)
	if _, exists := node[actionKey]; !exists {
		if _, legacy := node[legacyActionKey]; legacy {
			actionKey = legacyActionKey
		}
	}
	targets := []struct {
		key    string
		target *Availability
	}{
		{string(FieldVersion), &options.Version},
		{actionKey, &options.Action},
		{string(FieldArgs), &options.Args},
	}
	for _, field := range targets {
		value, exists := node[field.key]
		if !exists {
			continue
		}
		availability, err := availabilityOf(value)
		if err != nil {
			return options, fmt.Errorf("%s: %w", field.key, err)
		}
		*field.target = availability
	}

	defaultVersion, err := optionalString(node[keyDefaultVersion])
	if err != nil {
		return options, fmt.Errorf("%s: %w", keyDefaultVersion, err)
	}
	options.DefaultVersion = defaultVersion
	return options, nil
}

func availabilityOf(value any) (Availability, error) {
	switch typed := value.(type) {
	case Availability:
		return typed, nil
	case string:
		return ParseAvailability(typed)
	default:
		return 0, fmt.Errorf("expected an availability, got %T", value)
	}
}

func decodePaths(raw any) ([]string, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if value == "" {
			return nil, errors.New("must not be empty")
		}
		return []string{config.ExpandPath(value)}, nil
	case []any:
		if len(value) == 0 {
			return nil, errors.New("path list is empty")
		}
		paths := make([]string, 0, len(value))
		for i, element := range value {
			path, ok := element.(string)
			if !ok || path == "" {
				return nil, fmt.Errorf("element %d must be a non-empty string, got %T", i, element)
			}
			paths = append(paths, config.ExpandPath(path))
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("must be a string or a list of strings, got %T", raw)
	}
}

func decodeVersions(raw any) (version.Table, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return version.Table{}, fmt.Errorf("must be an object, got %T", raw)
	}
	names := make([]string, 0, len(node))
	for name := range node {
		names = append(names, name)
	}
	slices.Sort(names)

	var table version.Table
	for _, name := range names {
		path, ok := node[name].(string)
		if !ok {
			return version.Table{}, fmt.Errorf("%s: path must be a string, got %T", name, node[name])
		}
		table.Set(name, config.ExpandPath(path))
	}
	return table, nil
}

func optionalString(raw any) (string, error) {
	switch value := raw.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	default:
		return "", fmt.Errorf("must be a string, got %T", raw)
	}
}
