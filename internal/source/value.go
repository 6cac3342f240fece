// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"encoding/json"
	"reflect"
	"strings"
)

// ValueKind tags the result of [Coerce].
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String implements fmt.Stringer.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is a best-effort typed configuration value.
//
// Data holds the Go representation: bool, float64 (or the original numeric
// type for already-typed input), string, []any, map[string]any or nil.
type Value struct {
	Kind ValueKind
	Data any
}

// Coerce converts a raw value into a typed [Value].
//
// Strings have every single quote replaced with a double quote and are then
// parsed as a JSON literal, so "true" becomes a boolean, "42" a number and
// "{'a':1}" an object. When parsing fails the substituted string is kept,
// lower-cased. Non-string input is returned unchanged. Coerce never fails.
func Coerce(raw any) Value {
	s, ok := raw.(string)
	if !ok {
		return classify(raw)
	}

	s = strings.ReplaceAll(s, "'", "\"")

	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return Value{Kind: KindString, Data: strings.ToLower(s)}
	}

	return classify(parsed)
}

func classify(v any) Value {
	switch v.(type) {
	case nil:
		return Value{Kind: KindNull}
	case bool:
		return Value{Kind: KindBool, Data: v}
	case string:
		return Value{Kind: KindString, Data: v}
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return Value{Kind: KindNumber, Data: v}
	case []any:
		return Value{Kind: KindArray, Data: v}
	case map[string]any:
		return Value{Kind: KindObject, Data: v}
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return Value{Kind: KindArray, Data: v}
	case reflect.Map, reflect.Struct:
		return Value{Kind: KindObject, Data: v}
	default:
		return Value{Kind: KindString, Data: v}
	}
}
