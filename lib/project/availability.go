// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"fmt"
	"strings"
)

// Availability says whether a command field may, must, or must not be
// supplied. The zero value is [Optional].
type Availability int

const (
	Optional Availability = iota
	Required
	Prohibited
)

func (a Availability) String() string {
	switch a {
	case Optional:
		return "OPTIONAL"
	case Required:
		return "REQUIRED"
	case Prohibited:
		return "PROHIBITED"
	default:
		return fmt.Sprintf("Availability(%d)", int(a))
	}
}

// ParseAvailability accepts the names printed by String, in any case.
func ParseAvailability(text string) (Availability, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "OPTIONAL":
		return Optional, nil
	case "REQUIRED":
		return Required, nil
	case "PROHIBITED":
		return Prohibited, nil
	default:
		return 0, fmt.Errorf("unknown availability %q (want OPTIONAL, REQUIRED, or PROHIBITED)", text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Availability) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Availability) UnmarshalText(text []byte) error {
	parsed, err := ParseAvailability(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Field names one of the three availability-controlled command fields.
type Field string

const (
	FieldVersion Field = "version"
	FieldAction  Field = "action"
	FieldArgs    Field = "args"
)

// Fields lists the command fields in validation order.
var Fields = []Field{FieldVersion, FieldAction, FieldArgs}

// Options holds a project's availability rules.
type Options struct {
	Version Availability
	Action  Availability
	Args    Availability

	// DefaultVersion is used when Version is Optional and the command
	// names no version. Empty means "use the project root".
	DefaultVersion string
}

// Of returns the availability of field.
func (o Options) Of(field Field) Availability {
	switch field {
	case FieldVersion:
		return o.Version
	case FieldAction:
		return o.Action
	case FieldArgs:
		return o.Args
	default:
		return Optional
	}
}

// AllProhibited reports whether the project accepts nothing after its
// name. Such a project always launches its path directly.
func (o Options) AllProhibited() bool {
	return o.Version == Prohibited && o.Action == Prohibited && o.Args == Prohibited
}
