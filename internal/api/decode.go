package api

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrUnrecognizedShape reports that a collection payload matched none of
// the known backend shapes. Callers decide whether to degrade to an empty
// collection or surface the problem.
var ErrUnrecognizedShape = errors.New("unrecognized collection shape")

// DecodeItems normalizes the collection shapes observed across backend
// endpoints into a plain slice. Shapes are tried in a fixed priority
// order:
//
//  1. a bare array
//  2. {"data": [...]}
//  3. {"data": {"items": [...]}}
//  4. {"items": [...]}
//
// An empty or null payload decodes to an empty collection. Anything else
// yields ErrUnrecognizedShape.
func DecodeItems[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		return decodeArray[T](trimmed)
	}
	if trimmed[0] != '{' {
		return nil, ErrUnrecognizedShape
	}

	var outer struct {
		Data  json.RawMessage `json:"data"`
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &outer); err != nil {
		return nil, ErrUnrecognizedShape
	}

	if data := bytes.TrimSpace(outer.Data); len(data) > 0 {
		if data[0] == '[' {
			return decodeArray[T](data)
		}
		if data[0] == '{' {
			var inner struct {
				Items json.RawMessage `json:"items"`
			}
			if err := json.Unmarshal(data, &inner); err == nil {
				if items := bytes.TrimSpace(inner.Items); len(items) > 0 && items[0] == '[' {
					return decodeArray[T](items)
				}
			}
		}
	}

	if items := bytes.TrimSpace(outer.Items); len(items) > 0 && items[0] == '[' {
		return decodeArray[T](items)
	}

	return nil, ErrUnrecognizedShape
}

func decodeArray[T any](raw []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrUnrecognizedShape
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
