// Package forms implements input validation for the gallery's entry forms.
// A Form tracks the validity of each of its fields and derives the enabled
// state of its submit control from them: the control is enabled exactly when
// every field is valid. Error texts and state classes are kept on the fields
// themselves so a renderer can mirror them onto its widgets.
package forms

import (
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"
)

// Config carries the state-class names shared by every form in a session.
// It is immutable after construction.
type Config struct {
	// InputErrorClass marks an input whose current value is invalid.
	InputErrorClass string
	// ErrorClass makes a field's error slot visible.
	ErrorClass string
	// InactiveButtonClass marks a disabled submit control.
	InactiveButtonClass string
}

// Field is one form input plus its validity and error state.
type Field struct {
	// Name identifies the field inside its form.
	Name string
	// Value is the current input value.
	Value string

	// Required rejects an empty value.
	Required bool
	// MinLength and MaxLength bound the value's length in runes.
	// A zero bound is not enforced.
	MinLength int
	MaxLength int
	// URL requires the value to parse as an absolute URL.
	URL bool
	// Pattern, when set, must match the value. The expression is used
	// as compiled; anchor it when the whole value must match.
	Pattern *regexp.Regexp
	// CustomMessage replaces the engine message for pattern
	// mismatches only. All other failures always use the engine
	// message.
	CustomMessage string

	errorText    string
	inputClasses map[string]struct{}
	errorClasses map[string]struct{}
}

// ErrorText returns the text currently shown in the field's error slot.
func (fld *Field) ErrorText() string {
	return fld.errorText
}

// HasInputClass reports whether the given state class is set on the input.
func (fld *Field) HasInputClass(name string) bool {
	_, ok := fld.inputClasses[name]
	return ok
}

// HasErrorClass reports whether the given state class is set on the error slot.
func (fld *Field) HasErrorClass(name string) bool {
	_, ok := fld.errorClasses[name]
	return ok
}

// validity mirrors the browser's ValidityState for the constraint kinds the
// gallery forms use.
type validity struct {
	valid           bool
	patternMismatch bool
	message         string
}

func (fld *Field) checkValidity() validity {
	n := utf8.RuneCountInString(fld.Value)

	if fld.Value == "" {
		if fld.Required {
			return validity{message: "Please fill out this field."}
		}
		return validity{valid: true}
	}
	if fld.MinLength > 0 && n < fld.MinLength {
		return validity{message: fmt.Sprintf(
			"Please lengthen this text to %d characters or more (you are currently using %d characters).",
			fld.MinLength, n)}
	}
	if fld.MaxLength > 0 && n > fld.MaxLength {
		return validity{message: fmt.Sprintf(
			"Please shorten this text to %d characters or less (you are currently using %d characters).",
			fld.MaxLength, n)}
	}
	if fld.URL {
		u, err := url.Parse(fld.Value)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return validity{message: "Please enter a URL."}
		}
	}
	if fld.Pattern != nil && !fld.Pattern.MatchString(fld.Value) {
		return validity{patternMismatch: true, message: "Please match the requested format."}
	}
	return validity{valid: true}
}

// SubmitControl is the button whose enabled state is derived from the
// validity of every field in its form.
type SubmitControl struct {
	// Label is the control's current text.
	Label string
	// Disabled reports whether the control is inactive.
	Disabled bool

	classes map[string]struct{}
}

// HasClass reports whether the given state class is set on the control.
func (s *SubmitControl) HasClass(name string) bool {
	_, ok := s.classes[name]
	return ok
}

// Form is an ordered collection of fields plus one submit control.
type Form struct {
	// Name identifies the form ("edit-profile", "new-place", ...).
	Name string
	// Fields holds the form's inputs in display order.
	Fields []*Field
	// Submit is the form's submit control.
	Submit *SubmitControl

	cfg Config
}

// Enable binds validation to every given form: it stores the shared config,
// evaluates the initial submit state, and prepares per-field error state.
// A form without a submit control or with duplicate field names is a caller
// configuration error reported immediately.
func Enable(cfg Config, list ...*Form) error {
	for _, f := range list {
		if f.Submit == nil {
			return fmt.Errorf("form %q: no submit control", f.Name)
		}
		seen := make(map[string]struct{}, len(f.Fields))
		for _, fld := range f.Fields {
			if fld.Name == "" {
				return fmt.Errorf("form %q: field with empty name", f.Name)
			}
			if _, dup := seen[fld.Name]; dup {
				return fmt.Errorf("form %q: duplicate field %q", f.Name, fld.Name)
			}
			seen[fld.Name] = struct{}{}
			if fld.inputClasses == nil {
				fld.inputClasses = make(map[string]struct{})
			}
			if fld.errorClasses == nil {
				fld.errorClasses = make(map[string]struct{})
			}
		}
		if f.Submit.classes == nil {
			f.Submit.classes = make(map[string]struct{})
		}
		f.cfg = cfg
		f.SetSubmitState()
	}
	return nil
}

// Field returns the field with the given name, or nil.
func (f *Form) Field(name string) *Field {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld
		}
	}
	return nil
}

// Input records a new value for the named field, re-checks that field's
// validity, and refreshes the submit state. Unknown names are ignored.
func (f *Form) Input(name, value string) {
	fld := f.Field(name)
	if fld == nil {
		return
	}
	fld.Value = value
	f.CheckFieldValidity(fld)
	f.SetSubmitState()
}

// CheckFieldValidity evaluates the field's constraints and updates its error
// state. A pattern mismatch prefers the field's custom message when one is
// set; every other failure shows the engine message. A valid field has its
// error display cleared.
func (f *Form) CheckFieldValidity(fld *Field) {
	v := fld.checkValidity()
	if v.valid {
		f.hideFieldError(fld)
		return
	}
	msg := v.message
	if v.patternMismatch && fld.CustomMessage != "" {
		msg = fld.CustomMessage
	}
	f.showFieldError(fld, msg)
}

func (f *Form) showFieldError(fld *Field, msg string) {
	if fld.inputClasses == nil {
		fld.inputClasses = make(map[string]struct{})
	}
	if fld.errorClasses == nil {
		fld.errorClasses = make(map[string]struct{})
	}
	fld.errorText = msg
	fld.inputClasses[f.cfg.InputErrorClass] = struct{}{}
	fld.errorClasses[f.cfg.ErrorClass] = struct{}{}
}

func (f *Form) hideFieldError(fld *Field) {
	fld.errorText = ""
	delete(fld.inputClasses, f.cfg.InputErrorClass)
	delete(fld.errorClasses, f.cfg.ErrorClass)
}

// Valid reports whether every field in the form is currently valid.
func (f *Form) Valid() bool {
	for _, fld := range f.Fields {
		if !fld.checkValidity().valid {
			return false
		}
	}
	return true
}

// SetSubmitState enables the submit control when every field is valid and
// disables it otherwise.
func (f *Form) SetSubmitState() {
	if f.Submit.classes == nil {
		f.Submit.classes = make(map[string]struct{})
	}
	if f.Valid() {
		f.Submit.Disabled = false
		delete(f.Submit.classes, f.cfg.InactiveButtonClass)
	} else {
		f.Submit.Disabled = true
		f.Submit.classes[f.cfg.InactiveButtonClass] = struct{}{}
	}
}

// ClearValidation erases every field's error display and forces the submit
// control to disabled, without touching field values. Used whenever a form
// is freshly opened or closed, so stale errors from a prior session never
// leak into the next one.
func (f *Form) ClearValidation() {
	for _, fld := range f.Fields {
		f.hideFieldError(fld)
	}
	if f.Submit.classes == nil {
		f.Submit.classes = make(map[string]struct{})
	}
	f.Submit.Disabled = true
	f.Submit.classes[f.cfg.InactiveButtonClass] = struct{}{}
}

// ResetValues clears every field's value and error display and refreshes the
// submit state, the equivalent of a native form reset.
func (f *Form) ResetValues() {
	for _, fld := range f.Fields {
		fld.Value = ""
		f.hideFieldError(fld)
	}
	f.SetSubmitState()
}
