package qrstyle

import (
	"fmt"
	"strings"
)

// Validation codes reported per field.
const (
	CodeRequired    = "Required"
	CodeOutOfRange  = "OutOfRange"
	CodeInvalidEnum = "InvalidEnum"
)

type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Code)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// FieldMap returns the errors as a field -> code map for JSON responses.
func (e *ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Code
	}
	return m
}

var (
	levels = map[string]bool{"L": true, "M": true, "Q": true, "H": true}

	dotTypes = map[string]bool{
		"rounded": true, "dots": true, "classy": true,
		"classy-rounded": true, "square": true, "extra-rounded": true,
	}
	cornerSquareTypes = map[string]bool{
		"default": true, "dot": true, "square": true, "extra-rounded": true,
	}
	cornerDotTypes = map[string]bool{
		"default": true, "dot": true, "square": true,
	}
)

// Validate applies every field rule independently and reports all failures
// at once. Color values are accepted as opaque strings on purpose.
func (f RawFields) Validate() []FieldError {
	var errs []FieldError

	if f.Content == "" {
		errs = append(errs, FieldError{"value", CodeRequired})
	}
	if f.Size < MinSize || f.Size > MaxSize {
		errs = append(errs, FieldError{"size", CodeOutOfRange})
	}
	if !levels[f.Level] {
		errs = append(errs, FieldError{"level", CodeInvalidEnum})
	}
	if !dotTypes[f.DotsType] {
		errs = append(errs, FieldError{"dotsType", CodeInvalidEnum})
	}
	if !cornerSquareTypes[f.CornersSquareType] {
		errs = append(errs, FieldError{"cornersSquareType", CodeInvalidEnum})
	}
	if !cornerDotTypes[f.CornersDotType] {
		errs = append(errs, FieldError{"cornersDotType", CodeInvalidEnum})
	}
	return errs
}

// Derive builds the canonical StyleOptions from the current form state.
// It is pure: the same fields and logo always produce the same result.
// Unset element colors resolve to the foreground color, and the logo
// overlay is present iff logo is non-empty.
func Derive(f RawFields, logo string) (StyleOptions, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return StyleOptions{}, &ValidationError{Fields: errs}
	}

	opts := StyleOptions{
		Content:         f.Content,
		Size:            f.Size,
		Level:           Level(f.Level),
		BackgroundColor: f.BgColor,
		ForegroundColor: f.FgColor,
		IncludeMargin:   f.IncludeMargin,
		DotStyle: DotStyle{
			Type:  DotType(f.DotsType),
			Color: fallback(f.DotsColor, f.FgColor),
		},
		CornerSquareStyle: CornerSquareStyle{
			Type:  CornerSquareType(f.CornersSquareType),
			Color: fallback(f.CornersSquareColor, f.FgColor),
		},
		CornerDotStyle: CornerDotStyle{
			Type:  CornerDotType(f.CornersDotType),
			Color: fallback(f.CornersDotColor, f.FgColor),
		},
	}

	if logo != "" {
		opts.LogoOverlay = &LogoOverlay{
			Image:    logo,
			Width:    LogoWidth,
			Height:   LogoHeight,
			Excavate: true,
		}
	}
	return opts, nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
