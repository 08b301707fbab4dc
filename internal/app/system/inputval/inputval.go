// internal/app/system/inputval/inputval.go
//
// Package inputval runs declarative, struct-tag based validation over decoded
// request input and turns every violation into a human-readable message.
//
// Input structs use pointer fields so that an absent field can be told apart
// from a present one:
//
//	type eventInput struct {
//	    TitleES *string `schema:"title_es" validate:"required,max=256"`
//	    Price   *string `schema:"price" validate:"omitnil,decimal"`
//	    Name    *string `schema:"name" validate:"omitnil,required,max=128"` // "sometimes"
//	}
//
// Attribute names in messages come from the `label` tag, or from the schema
// key with underscores replaced by spaces.
package inputval

import (
	"errors"
	"fmt"
	"math"
	"path"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects every violation found for one request.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// Add records a violation found outside struct validation (files, lookups).
func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Merge appends the violations of other.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
}

// Messages returns the messages in rule order.
func (r *Result) Messages() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}

// First returns the first message, or "".
func (r *Result) First() string {
	if !r.HasErrors() {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r *Result) All() string {
	return strings.Join(r.Messages(), "; ")
}

// Date layouts accepted by the "date" rule.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006/01/02",
}

// ParseDate parses s with the layouts accepted by the "date" rule.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not a date: %q", s)
}

// ParseDecimal parses a finite number.
func ParseDecimal(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("not a finite number")
	}
	return f, nil
}

// ParseInteger parses a base-10 integer.
func ParseInteger(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseBool accepts true/false, 1/0 and the other strconv spellings.
func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(attributeName)
		mustRegister(v, "decimal", func(fl validator.FieldLevel) bool {
			_, err := ParseDecimal(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "integer", func(fl validator.FieldLevel) bool {
			_, err := ParseInteger(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "bool", func(fl validator.FieldLevel) bool {
			_, err := ParseBool(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "date", func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "relpath", func(fl validator.FieldLevel) bool {
			return IsCleanRelativePath(fl.Field().String())
		})
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("inputval: register %q: %v", tag, err))
	}
}

// attributeName is the name used in messages: the label tag, else the
// schema key with underscores as spaces.
func attributeName(f reflect.StructField) string {
	if l := f.Tag.Get("label"); l != "" {
		return l
	}
	key := strings.SplitN(f.Tag.Get("schema"), ",", 2)[0]
	if key == "" || key == "-" {
		key = f.Name
	}
	return strings.ReplaceAll(key, "_", " ")
}

// IsCleanRelativePath reports whether p is a relative slash path with no
// parent references.
func IsCleanRelativePath(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return false
	}
	if path.Clean(p) != p {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." || seg == "." {
			return false
		}
	}
	return true
}

// IsValidEmail checks a single address with the same rule the structs use.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return instance().Var(s, "email") == nil
}

// Validate runs the struct's rules and returns every violation. A nil
// argument or a struct without violations yields an empty Result.
func Validate(s any) *Result {
	res := &Result{}
	if s == nil {
		return res
	}
	err := instance().Struct(s)
	if err == nil {
		return res
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Add("", err.Error())
		return res
	}
	for _, fe := range verrs {
		res.Add(fe.Field(), message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	attr := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", attr, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", attr)
	case "decimal":
		return fmt.Sprintf("The %s field must be a number.", attr)
	case "integer":
		return fmt.Sprintf("The %s field must be an integer.", attr)
	case "bool":
		return fmt.Sprintf("The %s field must be true or false.", attr)
	case "date":
		return fmt.Sprintf("The %s field must be a valid date.", attr)
	case "relpath":
		return fmt.Sprintf("The %s field must be a relative storage path.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}
