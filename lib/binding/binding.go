// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/bureau-foundation/jump/lib/config"
	"github.com/bureau-foundation/jump/lib/template"
)

// SelfRoot is the variable through which expressions read the tree.
const SelfRoot = "self"

var pattern = regexp.MustCompile(`(?s)^\$\{(.+)\}$`)

// ErrCycle is wrapped by the [*Error] for a leaf that depends on itself.
var ErrCycle = errors.New("expression depends on its own value")

// Symbols is the closed symbol table for expressions. Each namespace
// becomes an object variable whose attributes are its members.
type Symbols struct {
	Namespaces map[string]map[string]any
}

// Error reports a leaf whose expression could not be evaluated.
type Error struct {
	// Location is the dotted path of the leaf, e.g. "tx.actions.update.1".
	Location string

	// Expression is the text between "${" and "}".
	Expression string

	// Leaf is the original leaf value.
	Leaf string

	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("binding %s: expression %q (leaf %q): %v", e.Location, e.Expression, e.Leaf, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Project returns the top-level entry the failing leaf belongs to.
func (e *Error) Project() string {
	project, _, _ := strings.Cut(e.Location, ".")
	return project
}

// Expression returns the body of a bindable string and whether s is
// one. The outer "${" must be closed by the final "}", so a path such
// as "${ROOT}/${SUB}" is left for environment expansion.
func Expression(s string) (string, bool) {
	match := pattern.FindStringSubmatch(s)
	if match == nil || !balanced(match[1]) {
		return "", false
	}
	return match[1], true
}

// balanced reports whether no "}" in body closes more braces than
// body opened before it.
func balanced(body string) bool {
	depth := 0
	for _, r := range body {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return true
}

// Bind returns a copy of tree with every bindable leaf replaced by its
// value. The input is not modified. Entries are bound in name order so
// that errors are reported deterministically.
func Bind(tree config.Tree, symbols Symbols) (config.Tree, error) {
	b := &binder{
		root:     make(map[string]any, len(tree)),
		symbols:  symbols,
		state:    make(map[string]leafState),
		function: functions(),
	}
	for name, entry := range tree {
		b.root[name] = template.Merge(nil, entry)
	}

	names := make([]string, 0, len(b.root))
	for name := range b.root {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := b.walk([]string{name}, b.root[name], false); err != nil {
			return nil, err
		}
	}

	bound := make(config.Tree, len(b.root))
	for name, entry := range b.root {
		bound[name] = entry.(map[string]any)
	}
	return bound, nil
}

type leafState int

const (
	pending leafState = iota
	inProgress
	done
)

type binder struct {
	root     map[string]any
	symbols  Symbols
	state    map[string]leafState
	function map[string]function.Function
}

// walk binds every bindable leaf under node, which lives at path. With
// skipBusy set, leaves currently being evaluated are left raw instead
// of reported as cycles: a self reference to an enclosing object does
// not depend on every leaf inside it.
func (b *binder) walk(path []string, node any, skipBusy bool) error {
	switch typed := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			childPath := append(slices.Clone(path), key)
			if text, ok := typed[key].(string); ok {
				if _, bindable := Expression(text); bindable {
					if err := b.bindLeaf(childPath, skipBusy); err != nil {
						return err
					}
				}
				continue
			}
			if err := b.walk(childPath, typed[key], skipBusy); err != nil {
				return err
			}
		}
	case []any:
		if len(typed) == 2 {
			if text, ok := typed[1].(string); ok {
				if _, bindable := Expression(text); bindable {
					return b.bindLeaf(append(slices.Clone(path), "1"), skipBusy)
				}
			}
		}
		for i, element := range typed {
			if err := b.walk(append(slices.Clone(path), strconv.Itoa(i)), element, skipBusy); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *binder) bindLeaf(path []string, skipBusy bool) error {
	key := strings.Join(path, "\x00")
	switch b.state[key] {
	case done:
		return nil
	case inProgress:
		if skipBusy {
			return nil
		}
		leaf, _ := b.lookup(path)
		body, _ := Expression(fmt.Sprint(leaf))
		return &Error{Location: strings.Join(path, "."), Expression: body, Leaf: fmt.Sprint(leaf), Err: ErrCycle}
	}

	b.state[key] = inProgress
	leaf, _ := b.lookup(path)
	text := leaf.(string)
	body, _ := Expression(text)

	value, err := b.evaluate(body)
	if err != nil {
		return &Error{Location: strings.Join(path, "."), Expression: body, Leaf: text, Err: err}
	}
	b.store(path, value)
	b.state[key] = done
	return nil
}

func (b *binder) evaluate(body string) (any, error) {
	expression, diagnostics := hclsyntax.ParseExpression([]byte(body), "expression", hcl.InitialPos)
	if diagnostics.HasErrors() {
		return nil, diagnostics
	}

	for _, traversal := range expression.Variables() {
		if traversal.RootName() != SelfRoot {
			continue
		}
		if err := b.prepareSelf(traversal); err != nil {
			return nil, err
		}
	}

	value, diagnostics := expression.Value(b.evalContext())
	if diagnostics.HasErrors() {
		return nil, diagnostics
	}
	return fromCty(value)
}

// prepareSelf binds whatever a self traversal can reach, so that the
// view handed to the evaluator holds values rather than raw
// expressions.
func (b *binder) prepareSelf(traversal hcl.Traversal) error {
	var path []string
	var node any = b.root
	for _, step := range traversal[1:] {
		key, ok := stepKey(step)
		if !ok {
			break
		}
		child, exists := childOf(node, key)
		if !exists {
			return nil
		}
		path = append(path, key)
		node = child
	}

	if text, ok := node.(string); ok {
		if _, bindable := Expression(text); bindable && b.bindablePosition(path) {
			return b.bindLeaf(path, false)
		}
		return nil
	}
	if len(path) == 0 {
		return b.walk(nil, node, true)
	}
	return b.walk(path, node, true)
}

// bindablePosition reports whether a string at path is a leaf the
// binder owns: a map value, or the second element of a pair.
func (b *binder) bindablePosition(path []string) bool {
	parent, _ := b.lookup(path[:len(path)-1])
	switch typed := parent.(type) {
	case map[string]any:
		return true
	case []any:
		return len(typed) == 2 && path[len(path)-1] == "1"
	default:
		return false
	}
}

func stepKey(step hcl.Traverser) (string, bool) {
	switch typed := step.(type) {
	case hcl.TraverseAttr:
		return typed.Name, true
	case hcl.TraverseIndex:
		if !typed.Key.IsKnown() || typed.Key.IsNull() {
			return "", false
		}
		switch {
		case typed.Key.Type() == cty.String:
			return typed.Key.AsString(), true
		case typed.Key.Type() == cty.Number:
			index, _ := typed.Key.AsBigFloat().Int64()
			return strconv.FormatInt(index, 10), true
		}
	}
	return "", false
}

func childOf(node any, key string) (any, bool) {
	switch typed := node.(type) {
	case map[string]any:
		child, exists := typed[key]
		return child, exists
	case []any:
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= len(typed) {
			return nil, false
		}
		return typed[index], true
	default:
		return nil, false
	}
}

func (b *binder) lookup(path []string) (any, bool) {
	var node any = b.root
	for _, key := range path {
		child, exists := childOf(node, key)
		if !exists {
			return nil, false
		}
		node = child
	}
	return node, true
}

func (b *binder) store(path []string, value any) {
	parent, _ := b.lookup(path[:len(path)-1])
	key := path[len(path)-1]
	switch typed := parent.(type) {
	case map[string]any:
		typed[key] = value
	case []any:
		index, _ := strconv.Atoi(key)
		typed[index] = value
	}
}

func (b *binder) evalContext() *hcl.EvalContext {
	variables := make(map[string]cty.Value, len(b.symbols.Namespaces)+1)
	for namespace, members := range b.symbols.Namespaces {
		attributes := make(map[string]cty.Value, len(members))
		for name, value := range members {
			attributes[name] = symbolVal(value)
		}
		variables[namespace] = objectVal(attributes)
	}
	variables[SelfRoot] = toCty(b.root)
	return &hcl.EvalContext{Variables: variables, Functions: b.function}
}

func functions() map[string]function.Function {
	return map[string]function.Function{
		"format":     stdlib.FormatFunc,
		"join":       stdlib.JoinFunc,
		"lower":      stdlib.LowerFunc,
		"upper":      stdlib.UpperFunc,
		"replace":    stdlib.ReplaceFunc,
		"trimsuffix": stdlib.TrimSuffixFunc,
	}
}
