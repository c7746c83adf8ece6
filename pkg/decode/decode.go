// Package decode converts loosely typed JSON values, as produced by decoding
// into map[string]any, into concrete structs.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject indicates a field holds a JSON value other than an object.
var ErrNotObject = errors.New("decode: expected object")

// FromMap re-encodes data and decodes it into T. Fields of data that do not
// fit T's field types produce a *json.UnmarshalTypeError; the remaining
// fields are still populated.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// Field decodes the object stored under key into T. ok is false when the key
// is absent, null, or not an object; the last case also returns ErrNotObject.
func Field[T any](data map[string]any, key string) (result T, ok bool, err error) {
	raw, present := data[key]
	if !present || raw == nil {
		return result, false, nil
	}

	obj, isObj := raw.(map[string]any)
	if !isObj {
		return result, false, fmt.Errorf("%w: %s holds %T", ErrNotObject, key, raw)
	}

	result, err = FromMap[T](obj)
	return result, true, err
}
