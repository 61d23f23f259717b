package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern, checked by the CLI before it prompts for a password
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		// report form field names instead of Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// FieldErrors maps form field names to human-readable messages
type FieldErrors map[string]string

// Error implements error interface
func (f FieldErrors) Error() string {
	msgs := make([]string, 0, len(f))
	for _, m := range f {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// Unwrap marks field errors as validation failures
func (f FieldErrors) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// Struct trims every string field of the form in place and validates it.
// It returns nil or a FieldErrors value.
func Struct(form interface{}) error {
	TrimStrings(form)

	err := instance().Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewBadRequestError(err.Error())
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = formatValidationError(fe)
		}
	}
	return fields
}

// TrimStrings trims surrounding whitespace from every settable string field
// of the struct pointed to by v. Password fields are left alone.
func TrimStrings(v interface{}) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return
	}
	val = val.Elem()
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() != reflect.String || !field.CanSet() {
			continue
		}
		if strings.Contains(strings.ToLower(typ.Field(i).Name), "password") {
			continue
		}
		field.SetString(strings.TrimSpace(field.String()))
	}
}

// IsEmail reports whether s looks like an email address
func IsEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := humanize(e.Field())
	unit := ""
	if e.Kind() == reflect.String {
		unit = " characters"
	}
	switch e.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param() + unit
	case "max":
		return field + " must be at most " + e.Param() + unit
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// humanize turns "graduationYear" into "Graduation year"
func humanize(name string) string {
	if name == "" {
		return name
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
