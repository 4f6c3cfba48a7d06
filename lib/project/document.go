// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package project

// Document renders the project as plain data (maps, lists, strings) in
// the shape of its configuration entry, for dumping. Callbacks render
// as their symbol name; availabilities as their names.
func (p *Project) Document() map[string]any {
	options := map[string]any{
		string(FieldVersion): p.Options.Version.String(),
		string(FieldAction):  p.Options.Action.String(),
		string(FieldArgs):    p.Options.Args.String(),
	}
	if p.Options.DefaultVersion != "" {
		options[keyDefaultVersion] = p.Options.DefaultVersion
	}

	document := map[string]any{
		keyOptions: options,
	}

	switch len(p.Paths) {
	case 0:
	case 1:
		document[keyPath] = p.Paths[0]
	default:
		paths := make([]any, len(p.Paths))
		for i, path := range p.Paths {
			paths[i] = path
		}
		document[keyPath] = paths
	}

	if p.Versions.Len() > 0 {
		versions := make(map[string]any, p.Versions.Len())
		for _, entry := range p.Versions.Entries() {
			versions[entry.Name] = entry.Path
		}
		document[keyVersions] = versions
	}
	if len(p.Actions) > 0 {
		actions := make(map[string]any, len(p.Actions))
		for name, value := range p.Actions {
			actions[name] = EncodeAction(value)
		}
		document[keyActions] = actions
	}
	if len(p.Vars) > 0 {
		vars := make(map[string]any, len(p.Vars))
		for key, value := range p.Vars {
			vars[key] = value
		}
		document[keyVars] = vars
	}

	for key, value := range map[string]string{
		keyBaseVersion: p.BaseVersion,
		keyJenkinsURL:  p.JenkinsURL,
		keySVNDevURL:   p.SVNDevURL,
	} {
		if value != "" {
			document[key] = value
		}
	}
	return document
}

// EncodeAction is the inverse of [DecodeAction], with callbacks
// rendered as their symbol names.
func EncodeAction(value ActionValue) any {
	switch typed := value.(type) {
	case FileReference:
		return typed.Path
	case ActionTable:
		table := make(map[string]any, len(typed.Entries)+1)
		if typed.DefaultKey != "" {
			table[DefaultKeyName] = typed.DefaultKey
		}
		for key, entry := range typed.Entries {
			table[key] = EncodeAction(entry)
		}
		return table
	case ShellTemplate:
		return []any{typed.Description, typed.Template}
	case Callback:
		if typed.Description == "" {
			return typed.Handle.Name
		}
		return []any{typed.Description, typed.Handle.Name}
	default:
		return nil
	}
}

// Document renders every project of the registry, keyed by name.
func (r *Registry) Document() map[string]any {
	document := make(map[string]any, len(r.names))
	for _, name := range r.names {
		document[name] = r.projects[name].Document()
	}
	return document
}
