// Package patch applies caller-supplied field changes to a stored resource,
// one field at a time, after checking each field against a fixed table of
// required capabilities.
//
// A batch is not atomic: when a field is denied or its value is rejected,
// processing stops and the fields written before it stay written.
package patch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/suggestbox/suggestbox/internal/pkg/permission"
)

// Change is one requested field update, in the order the caller sent it.
type Change struct {
	Field string
	Value any
}

// Rule describes how a patchable field is authorized and written.
type Rule struct {
	// Column receives the normalized value.
	Column   string
	Requires permission.Permission
	// Normalize converts the raw value before it is written. Optional.
	Normalize func(v any) (any, error)
	// Also returns extra columns written together with Column, given the
	// normalized value. Optional.
	Also func(v any) map[string]any
}

// Table maps a public field name to its rule. Fields absent from the table
// are skipped without error.
type Table map[string]Rule

// WriteFunc persists one field (plus its side-effect columns).
type WriteFunc func(ctx context.Context, columns map[string]any) error

// DeniedError stops a batch when the holder lacks a field's capability.
type DeniedError struct {
	Field string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("You don't have permission to modify field %s", e.Field)
}

// ValueError stops a batch when a field's value cannot be normalized.
type ValueError struct {
	Field string
	Err   error
}

func (e *ValueError) Error() string { return e.Err.Error() }
func (e *ValueError) Unwrap() error { return e.Err }

var ErrNotObject = errors.New("patch body must be a JSON object")

// Apply walks changes in order and writes every permitted field through write.
// It returns the fields that were written, including when it stops early.
func Apply(ctx context.Context, table Table, holder permission.Permission, changes []Change, write WriteFunc) ([]string, error) {
	applied := make([]string, 0, len(changes))
	for _, ch := range changes {
		rule, ok := table[ch.Field]
		if !ok {
			continue
		}
		if !permission.Has(holder, rule.Requires) {
			return applied, &DeniedError{Field: ch.Field}
		}

		v := ch.Value
		if rule.Normalize != nil {
			nv, err := rule.Normalize(v)
			if err != nil {
				return applied, &ValueError{Field: ch.Field, Err: err}
			}
			v = nv
		}

		cols := map[string]any{rule.Column: v}
		if rule.Also != nil {
			for k, extra := range rule.Also(v) {
				cols[k] = extra
			}
		}
		if err := write(ctx, cols); err != nil {
			return applied, err
		}
		applied = append(applied, ch.Field)
	}
	return applied, nil
}

// DecodeChanges reads a JSON object and returns its members in document order.
// Numbers are kept as json.Number.
func DecodeChanges(r io.Reader) ([]Change, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	var changes []Change
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		field, ok := tok.(string)
		if !ok {
			return nil, ErrNotObject
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		changes = append(changes, Change{Field: field, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return changes, nil
}
