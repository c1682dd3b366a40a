// Package validation validates input structs against their declarative
// `validate` struct tags and turns violations into ordered, human readable
// field errors.
//
// Besides the stock go-playground/validator rules the following tags are
// registered:
//   - email: permissive address check (something@something.tld)
//   - phone: 7 to 15 digits, optionally prefixed with "+" or "00"; spaces,
//     dashes, dots and parentheses are ignored
//   - slug:  lower-case letters and digits separated by single hyphens
//   - weburl: absolute http or https URL
//   - date:  calendar date, "2006-01-02" or RFC 3339
//   - after=<Field>: date strictly after the date held by the sibling field
//
// Field names in errors come from the `json` tag. A `label` tag overrides the
// human readable name used in messages.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+|00)?\d{7,15}$`)
	slugRe  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// FieldError describes a single violated rule.
type FieldError struct {
	// Field is the json name of the offending field.
	Field string `json:"field"`
	// Rule is the validation tag that failed, e.g. "required".
	Rule string `json:"rule"`
	// Message is a human readable description.
	Message string `json:"message"`
}

// Errors is the ordered list of violations of a single validation run. The
// order follows struct field order, so First is deterministic.
type Errors []FieldError

// Error returns the message of the first violation.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	return e[0].Message
}

// First returns the first violation.
func (e Errors) First() FieldError {
	if len(e) == 0 {
		return FieldError{}
	}

	return e[0]
}

// Field returns the first violation for the given json field name.
func (e Errors) Field(name string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe, true
		}
	}

	return FieldError{}, false
}

var (
	instance *validator.Validate //nolint: gochecknoglobals
	once     sync.Once           //nolint: gochecknoglobals
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}

			return name
		})

		// overriding the builtin email rule keeps the check as permissive as the
		// public forms are.
		_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
			return IsWebURL(fl.Field().String())
		})
		_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())

			return err == nil
		})
		_ = v.RegisterValidation("after", func(fl validator.FieldLevel) bool {
			other, _, _, ok := fl.GetStructFieldOKAdvanced2(fl.Parent(), fl.Param())
			if !ok {
				return false
			}
			end, err := ParseDate(fl.Field().String())
			if err != nil {
				return false
			}
			start, err := ParseDate(other.String())
			if err != nil {
				// the sibling reports its own format error
				return true
			}

			return end.After(start)
		})

		instance = v
	})

	return instance
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsPhone reports whether s is a phone number with 7 to 15 digits, tolerating
// separators and a leading "+" or "00".
func IsPhone(s string) bool {
	return phoneRe.MatchString(phoneSeparators.Replace(strings.TrimSpace(s)))
}

// IsWebURL reports whether s is an absolute http(s) URL with a host.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ParseDate parses a calendar date in "2006-01-02" form, falling back to
// RFC 3339 timestamps. The result is in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse date %q: %w", s, err)
	}

	return t.UTC(), nil
}

// Validate checks v (a struct or pointer to struct) against its tags. It
// returns nil or an Errors value.
func Validate(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("could not validate input: %w", err)
	}

	labels := labelsOf(v)
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe, labels),
		})
	}

	return out
}

// labelsOf maps json field names to `label` tags of the top-level struct.
func labelsOf(v any) map[string]string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	labels := make(map[string]string, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		label := f.Tag.Get("label")
		if label == "" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" {
			name = f.Name
		}
		labels[name] = label
	}

	return labels
}

func message(fe validator.FieldError, labels map[string]string) string {
	label, ok := labels[fe.Field()]
	if !ok {
		label = humanize(fe.Field())
	}

	switch fe.Tag() {
	case "required", "required_without":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "phone":
		return label + " must be a valid phone number"
	case "slug":
		return label + " may only contain lower-case letters, digits and hyphens"
	case "weburl", "url":
		return label + " must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "date":
		return label + " must be a valid date"
	case "gtfield", "after":
		other, ok := labels[lowerFirst(fe.Param())]
		if !ok {
			other = humanize(fe.Param())
		}

		return fmt.Sprintf("%s must be after %s", label, strings.ToLower(other))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "len":
		return fmt.Sprintf("%s must be %s characters long", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// humanize turns "startDate" or "StartDate" into "Start date".
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))

			continue
		}
		if i == 0 && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
	}

	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
