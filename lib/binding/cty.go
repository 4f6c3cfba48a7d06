// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// symbol carries an opaque Go value (a callback handle, an enum
// constant) through HCL evaluation unchanged.
type symbol struct {
	value any
}

var symbolType = cty.Capsule("symbol", reflect.TypeOf(symbol{}))

func symbolVal(value any) cty.Value {
	return cty.CapsuleVal(symbolType, &symbol{value: value})
}

func objectVal(attributes map[string]cty.Value) cty.Value {
	if len(attributes) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attributes)
}

// toCty converts a configuration value for use as an expression
// variable. Values that are not plain data become symbols.
func toCty(value any) cty.Value {
	switch typed := value.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case string:
		return cty.StringVal(typed)
	case bool:
		return cty.BoolVal(typed)
	case float64:
		return cty.NumberFloatVal(typed)
	case int:
		return cty.NumberIntVal(int64(typed))
	case int64:
		return cty.NumberIntVal(typed)
	case map[string]any:
		attributes := make(map[string]cty.Value, len(typed))
		for key, child := range typed {
			attributes[key] = toCty(child)
		}
		return objectVal(attributes)
	case []any:
		if len(typed) == 0 {
			return cty.EmptyTupleVal
		}
		elements := make([]cty.Value, len(typed))
		for i, child := range typed {
			elements[i] = toCty(child)
		}
		return cty.TupleVal(elements)
	default:
		return symbolVal(value)
	}
}

// fromCty converts an evaluation result back to a configuration value.
func fromCty(value cty.Value) (any, error) {
	if !value.IsKnown() {
		return nil, errors.New("expression result is not known")
	}
	if value.IsNull() {
		return nil, errors.New("expression evaluated to null")
	}

	valueType := value.Type()
	switch {
	case valueType.Equals(symbolType):
		return value.EncapsulatedValue().(*symbol).value, nil
	case valueType == cty.String:
		return value.AsString(), nil
	case valueType == cty.Bool:
		return value.True(), nil
	case valueType == cty.Number:
		number, _ := value.AsBigFloat().Float64()
		return number, nil
	case valueType.IsObjectType() || valueType.IsMapType():
		result := make(map[string]any)
		for iterator := value.ElementIterator(); iterator.Next(); {
			key, element := iterator.Element()
			converted, err := fromCty(element)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			result[key.AsString()] = converted
		}
		return result, nil
	case valueType.IsTupleType() || valueType.IsListType():
		result := make([]any, 0, value.LengthInt())
		for iterator := value.ElementIterator(); iterator.Next(); {
			_, element := iterator.Element()
			converted, err := fromCty(element)
			if err != nil {
				return nil, err
			}
			result = append(result, converted)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unsupported result type %s", valueType.FriendlyName())
	}
}
