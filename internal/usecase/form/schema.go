// Package form implements the shared conditional form-state engine behind
// the crew-inspection and gate-check checklists: a flat field->value record,
// cross-field derivation rules applied on change, and required-field
// validation at submit time.
package form

// Field describes one form input.
type Field struct {
	Name     string
	Required bool
	// Enum lists the legal tokens for single-choice fields; nil means free
	// text (or a date carried as text).
	Enum []string
	// List marks a multi-select token list; Options are its legal tokens.
	List    bool
	Options []string
}

// ConditionalClear empties Target whenever Trigger is set to Value.
type ConditionalClear struct {
	Trigger string
	Value   string
	Target  string
}

// Schema is the static shape of one checklist: its fields, which dependent
// selector resets on a parent change, and which fields are cleared by a
// sibling's answer.
type Schema struct {
	Fields []Field
	// ResetOnChange maps a trigger field to the dependent field cleared on
	// any change of the trigger (branch -> crew).
	ResetOnChange map[string]string
	ClearWhen     []ConditionalClear

	byName map[string]*Field
}

// NewSchema indexes the field list. Duplicate field names are a programming
// error and panic.
func NewSchema(fields []Field, resetOnChange map[string]string, clearWhen []ConditionalClear) *Schema {
	s := &Schema{
		Fields:        fields,
		ResetOnChange: resetOnChange,
		ClearWhen:     clearWhen,
		byName:        make(map[string]*Field, len(fields)),
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if _, dup := s.byName[f.Name]; dup {
			panic("form: duplicate field " + f.Name)
		}
		s.byName[f.Name] = f
	}
	return s
}

// FieldNamed returns the field definition, or nil for an unknown name.
func (s *Schema) FieldNamed(name string) *Field {
	return s.byName[name]
}

func (f *Field) allowsToken(v string) bool {
	if len(f.Enum) == 0 {
		return true
	}
	for _, tok := range f.Enum {
		if tok == v {
			return true
		}
	}
	return false
}

func (f *Field) allowsOption(v string) bool {
	if len(f.Options) == 0 {
		return true
	}
	for _, tok := range f.Options {
		if tok == v {
			return true
		}
	}
	return false
}
