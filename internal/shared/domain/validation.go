package domain

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationReport maps a field name to its ordered violation messages.
// Fields without violations are absent.
type ValidationReport map[string][]string

// Add appends a message for field.
func (r ValidationReport) Add(field, message string) {
	r[field] = append(r[field], message)
}

// Merge appends every message of other into r.
func (r ValidationReport) Merge(other ValidationReport) {
	for field, messages := range other {
		for _, m := range messages {
			r.Add(field, m)
		}
	}
}

// HasErrors reports whether any field has a violation.
func (r ValidationReport) HasErrors() bool {
	return len(r) > 0
}

// Fields returns the invalid field names in sorted order.
func (r ValidationReport) Fields() []string {
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Validator checks an entity snapshot and exposes the report of the last run.
type Validator[T any] interface {
	Validate(entity T) bool
	Errors() ValidationReport
}

// Validate runs v against entity and returns an *EntityValidationError
// carrying the full report when any field is invalid.
func Validate[T any](v Validator[T], entity T) error {
	if v.Validate(entity) {
		return nil
	}
	return NewEntityValidationError(v.Errors())
}

// MessageFunc renders a violation message for a field and rule parameter.
type MessageFunc func(field, param string) string

var defaultMessages = map[string]MessageFunc{
	"required": func(field, _ string) string {
		return field + " should not be empty"
	},
	"max": func(field, param string) string {
		return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, param)
	},
	"min": func(field, param string) string {
		return fmt.Sprintf("%s must be longer than or equal to %s characters", field, param)
	},
	"boolean": func(field, _ string) string {
		return field + " must be a boolean value"
	},
	"uuid4": func(field, _ string) string {
		return field + " must be a UUID"
	},
	"oneof": func(field, param string) string {
		return fmt.Sprintf("%s must be one of the following values: %s", field, strings.ReplaceAll(param, " ", ", "))
	},
}

// FieldValidator validates an entity by projecting it onto a rules struct whose
// `validate` tags declare the rule set of each field. Every rule of every
// field is evaluated so the report is complete for the attempt.
type FieldValidator[T any] struct {
	project  func(T) any
	engine   *validator.Validate
	messages map[string]MessageFunc
	errors   ValidationReport
}

// NewFieldValidator creates a validator that checks the rules struct returned
// by project. Field names in the report come from the `json` tag.
func NewFieldValidator[T any](project func(T) any) *FieldValidator[T] {
	messages := make(map[string]MessageFunc, len(defaultMessages))
	for tag, fn := range defaultMessages {
		messages[tag] = fn
	}
	return &FieldValidator[T]{
		project:  project,
		engine:   validator.New(validator.WithRequiredStructEnabled()),
		messages: messages,
		errors:   ValidationReport{},
	}
}

// RegisterRule plugs a new rule kind into the validator.
func (v *FieldValidator[T]) RegisterRule(tag string, fn validator.Func, message MessageFunc) error {
	if err := v.engine.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register rule %q: %w", tag, err)
	}
	v.messages[tag] = message
	return nil
}

// Errors returns the report of the last Validate call.
func (v *FieldValidator[T]) Errors() ValidationReport {
	return v.errors
}

// Validate checks entity and records a fresh report.
func (v *FieldValidator[T]) Validate(entity T) bool {
	v.errors = ValidationReport{}

	rules := reflect.Indirect(reflect.ValueOf(v.project(entity)))
	if rules.Kind() != reflect.Struct {
		return true
	}

	rulesType := rules.Type()
	for i := 0; i < rulesType.NumField(); i++ {
		field := rulesType.Field(i)
		tag := field.Tag.Get("validate")
		if !field.IsExported() || tag == "" || tag == "-" {
			continue
		}
		v.checkField(fieldName(field), rules.Field(i), tag)
	}

	return !v.errors.HasErrors()
}

func (v *FieldValidator[T]) checkField(name string, value reflect.Value, tag string) {
	rules := strings.Split(tag, ",")
	if slices.Contains(rules, "omitempty") && value.IsZero() {
		return
	}

	for _, rule := range rules {
		if rule == "" || rule == "omitempty" {
			continue
		}
		err := v.engine.Var(value.Interface(), rule)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			v.errors.Add(name, err.Error())
			continue
		}
		for _, fe := range fieldErrs {
			v.errors.Add(name, v.message(name, fe))
		}
	}
}

func (v *FieldValidator[T]) message(field string, fe validator.FieldError) string {
	if fn, ok := v.messages[fe.Tag()]; ok {
		return fn(field, fe.Param())
	}
	return fmt.Sprintf("%s failed on the %q rule", field, fe.Tag())
}

func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
