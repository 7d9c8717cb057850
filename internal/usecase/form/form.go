package form

import (
	"errors"
	"fmt"
)

// Problem is one validation failure, keyed by wire field name.
type Problem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type state int

const (
	stateEditing state = iota
	stateSubmitting
	stateSubmitted
)

var (
	ErrSubmitInFlight   = errors.New("form: submit already in flight")
	ErrAlreadySubmitted = errors.New("form: already submitted")
)

// Form is one in-progress submission: a flat record mutated field-by-field.
// Not safe for concurrent use; each form belongs to a single submission.
type Form struct {
	schema *Schema
	values map[string]string
	lists  map[string][]string
	st     state
}

// New returns an empty form for the schema.
func New(s *Schema) *Form {
	f := &Form{
		schema: s,
		values: make(map[string]string),
		lists:  make(map[string][]string),
	}
	for _, fd := range s.Fields {
		if fd.List {
			f.lists[fd.Name] = nil
		} else {
			f.values[fd.Name] = ""
		}
	}
	return f
}

// SetField replaces a scalar field's value and applies the schema's
// derivation rules atomically with the change. Unknown or list field names
// are a programming error and panic.
func (f *Form) SetField(name, value string) {
	fd := f.schema.FieldNamed(name)
	if fd == nil {
		panic("form: unknown field " + name)
	}
	if fd.List {
		panic("form: SetField on list field " + name)
	}
	f.values[name] = value

	if dep, ok := f.schema.ResetOnChange[name]; ok {
		f.clear(dep)
	}
	for _, cc := range f.schema.ClearWhen {
		if cc.Trigger == name && cc.Value == value {
			f.clear(cc.Target)
		}
	}
}

// ToggleMultiSelect removes the token if present, otherwise appends it.
// Remaining tokens keep their order; new tokens append at the end.
func (f *Form) ToggleMultiSelect(name, token string) {
	fd := f.schema.FieldNamed(name)
	if fd == nil || !fd.List {
		panic("form: ToggleMultiSelect on non-list field " + name)
	}
	cur := f.lists[name]
	for i, v := range cur {
		if v == token {
			f.lists[name] = append(cur[:i:i], cur[i+1:]...)
			return
		}
	}
	f.lists[name] = append(cur, token)
}

func (f *Form) clear(name string) {
	fd := f.schema.FieldNamed(name)
	if fd == nil {
		panic("form: unknown derivation target " + name)
	}
	if fd.List {
		f.lists[name] = nil
	} else {
		f.values[name] = ""
	}
}

// Get returns a scalar field's current value.
func (f *Form) Get(name string) string {
	fd := f.schema.FieldNamed(name)
	if fd == nil || fd.List {
		panic("form: Get on unknown or list field " + name)
	}
	return f.values[name]
}

// GetList returns a copy of a multi-select field's tokens.
func (f *Form) GetList(name string) []string {
	fd := f.schema.FieldNamed(name)
	if fd == nil || !fd.List {
		panic("form: GetList on non-list field " + name)
	}
	return append([]string(nil), f.lists[name]...)
}

// Apply sets every provided value in schema field order, so dependent fields
// (crew after branch) survive the derivation rules when both arrive in one
// payload.
func (f *Form) Apply(values map[string]string, lists map[string][]string) {
	for _, fd := range f.schema.Fields {
		if fd.List {
			if toks, ok := lists[fd.Name]; ok {
				f.lists[fd.Name] = nil
				for _, tok := range toks {
					f.ToggleMultiSelect(fd.Name, tok)
				}
			}
			continue
		}
		if v, ok := values[fd.Name]; ok {
			f.SetField(fd.Name, v)
		}
	}
}

// Validate checks required fields, enum membership and the conditional
// emptiness invariants. A nil result means the form may be submitted.
func (f *Form) Validate() []Problem {
	var out []Problem
	for _, fd := range f.schema.Fields {
		if fd.List {
			if fd.Required && len(f.lists[fd.Name]) == 0 {
				out = append(out, Problem{Field: fd.Name, Message: "is required"})
			}
			for _, tok := range f.lists[fd.Name] {
				if !fd.allowsOption(tok) {
					out = append(out, Problem{Field: fd.Name, Message: fmt.Sprintf("invalid option %q", tok)})
				}
			}
			continue
		}
		v := f.values[fd.Name]
		if fd.Required && v == "" {
			out = append(out, Problem{Field: fd.Name, Message: "is required"})
			continue
		}
		if v != "" && !fd.allowsToken(v) {
			out = append(out, Problem{Field: fd.Name, Message: fmt.Sprintf("invalid value %q", v)})
		}
	}
	// The derivation rules keep these empty during interactive editing, but
	// a submitted payload can arrive in any shape, so re-check at validation.
	for _, cc := range f.schema.ClearWhen {
		if f.values[cc.Trigger] != cc.Value {
			continue
		}
		target := f.schema.FieldNamed(cc.Target)
		if target.List {
			if len(f.lists[cc.Target]) > 0 {
				out = append(out, Problem{Field: cc.Target, Message: fmt.Sprintf("must be empty when %s is %q", cc.Trigger, cc.Value)})
			}
		} else if f.values[cc.Target] != "" {
			out = append(out, Problem{Field: cc.Target, Message: fmt.Sprintf("must be empty when %s is %q", cc.Trigger, cc.Value)})
		}
	}
	return out
}

// BeginSubmit moves the form into the submitting state. It fails while a
// submit is in flight (double-click guard) or after a successful submit
// (records are insert-once, never upsert).
func (f *Form) BeginSubmit() error {
	switch f.st {
	case stateSubmitting:
		return ErrSubmitInFlight
	case stateSubmitted:
		return ErrAlreadySubmitted
	}
	f.st = stateSubmitting
	return nil
}

// FailSubmit returns the form to editing with all values preserved so the
// user can retry without re-entry.
func (f *Form) FailSubmit() { f.st = stateEditing }

// CompleteSubmit marks the form submitted; it is immutable from the caller's
// point of view afterwards.
func (f *Form) CompleteSubmit() { f.st = stateSubmitted }

// Submitting reports whether a submit is in flight.
func (f *Form) Submitting() bool { return f.st == stateSubmitting }
