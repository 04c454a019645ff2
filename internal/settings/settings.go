package settings

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"restaurant-backoffice/internal/utils"
)

var (
	ErrUnknownSection = errors.New("unknown settings section")
	ErrUnknownField   = errors.New("unknown settings field")
	ErrInvalidValue   = errors.New("invalid settings value")
)

type Kind string

const (
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Field maps one form key to one backend column.
type Field struct {
	Form string `json:"form"`
	Wire string `json:"wire"`
	Kind Kind   `json:"kind"`
}

type Section struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`

	byForm map[string]Field
}

var sections = map[string]*Section{}

func init() {
	register("outlet-settings", outletSettingsFields)
	register("bill-preview-settings", billPreviewSettingsFields)
	register("kot-print-settings", kotPrintSettingsFields)
	register("bill-print-settings", billPrintSettingsFields)
	register("online-order-settings", onlineOrderSettingsFields)
}

func register(name string, fields []Field) {
	s := &Section{Name: name, Fields: fields, byForm: make(map[string]Field, len(fields))}
	for _, f := range fields {
		s.byForm[f.Form] = f
	}
	sections[name] = s
}

func Lookup(name string) (*Section, error) {
	s, ok := sections[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return s, nil
}

func Names() []string {
	out := make([]string, 0, len(sections))
	for name := range sections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Decode turns a backend record into the form view. Columns outside the
// table are dropped and missing ones get the kind's zero value.
func (s *Section) Decode(record map[string]any) map[string]any {
	form := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		raw := record[f.Wire]
		switch f.Kind {
		case KindBool:
			form[f.Form] = truthy(raw)
		case KindInt:
			if n, ok := utils.Int64FromAny(raw); ok {
				form[f.Form] = n
			} else {
				form[f.Form] = nil
			}
		default:
			form[f.Form] = utils.StringFromAny(raw)
		}
	}
	return form
}

// Encode turns a form view into the backend payload. Booleans go out as 1/0
// and empty integers as null, matching the backend columns.
func (s *Section) Encode(form map[string]any) (map[string]any, error) {
	payload := make(map[string]any, len(form))
	for key, value := range form {
		f, ok := s.byForm[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, s.Name, key)
		}
		wire, err := encodeValue(f, value)
		if err != nil {
			return nil, err
		}
		payload[f.Wire] = wire
	}
	return payload, nil
}

// Merge applies form changes over the current form view, the optimistic
// update the settings screens perform before saving.
func (s *Section) Merge(current, changes map[string]any) (map[string]any, error) {
	merged := make(map[string]any, len(s.Fields))
	for k, v := range current {
		if _, ok := s.byForm[k]; ok {
			merged[k] = v
		}
	}
	for k, v := range changes {
		if _, ok := s.byForm[k]; !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, s.Name, k)
		}
		merged[k] = v
	}
	return merged, nil
}

func encodeValue(f Field, value any) (any, error) {
	switch f.Kind {
	case KindBool:
		switch v := value.(type) {
		case nil:
			return 0, nil
		case bool:
			if v {
				return 1, nil
			}
			return 0, nil
		default:
			if !utils.IsNumeric(v) {
				return nil, fmt.Errorf("%w: %s expects a boolean", ErrInvalidValue, f.Form)
			}
			if truthy(v) {
				return 1, nil
			}
			return 0, nil
		}
	case KindInt:
		if value == nil {
			return nil, nil
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return nil, nil
		}
		n, ok := utils.Int64FromAny(value)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a number", ErrInvalidValue, f.Form)
		}
		return n, nil
	default:
		switch value.(type) {
		case nil:
			return "", nil
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: %s expects text", ErrInvalidValue, f.Form)
		}
		return utils.StringFromAny(value), nil
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		return s == "1" || s == "true"
	default:
		if !utils.IsNumeric(v) {
			return false
		}
		return !utils.DecimalFromAny(v).IsZero()
	}
}
