package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Validator checks a parsed document against the structural schema.
// A nil node is the empty document and always passes.
type Validator interface {
	Validate(root *yaml.Node) (*Document, error)
}

// ValidationError carries the hierarchical violation report.
type ValidationError struct {
	Report *Report
}

func (e *ValidationError) Error() string {
	return "configuration document failed validation"
}

// Report is a tree of violations keyed by field name, mirroring the
// document's structure. Leaf messages live in _errors arrays.
type Report struct {
	errors []string
	fields map[string]*Report
	order  []string
}

func NewReport() *Report {
	return &Report{fields: make(map[string]*Report)}
}

// Add records a violation message under the given field path. An empty
// path attaches the message to the root.
func (r *Report) Add(path []string, msg string) {
	node := r
	for _, name := range path {
		child, ok := node.fields[name]
		if !ok {
			child = NewReport()
			node.fields[name] = child
			node.order = append(node.order, name)
		}
		node = child
	}
	node.errors = append(node.errors, msg)
}

// Empty reports whether the subtree holds no messages at all.
func (r *Report) Empty() bool {
	if len(r.errors) > 0 {
		return false
	}
	for _, child := range r.fields {
		if !child.Empty() {
			return false
		}
	}
	return true
}

// MarshalJSON renders the report with _errors leaves, pruning any branch
// that carries no messages. Field order follows insertion order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	if len(r.errors) > 0 {
		msgs, err := json.Marshal(r.errors)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`"_errors":`)
		buf.Write(msgs)
		first = false
	}

	for _, name := range r.order {
		child := r.fields[name]
		if child.Empty() {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		sub, err := child.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(sub)
		first = false
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SchemaValidator implements Validator with go-playground/validator rules
// declared on the schema types.
type SchemaValidator struct {
	check *validator.Validate
}

func NewSchemaValidator() *SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names as they appear in the YAML document.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return &SchemaValidator{check: v}
}

func (s *SchemaValidator) Validate(root *yaml.Node) (*Document, error) {
	doc := &Document{}

	if root != nil {
		if err := root.Decode(doc); err != nil {
			report := NewReport()
			for _, msg := range decodeMessages(err) {
				report.Add(nil, msg)
			}
			return nil, &ValidationError{Report: report}
		}
	}

	if err := s.check.Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("failed to validate document: %w", err)
		}
		report := NewReport()
		for _, fe := range fieldErrs {
			report.Add(fieldPath(fe.Namespace()), violationMessage(fe))
		}
		return nil, &ValidationError{Report: report}
	}

	return doc, nil
}

// decodeMessages flattens a yaml decode error into individual messages.
func decodeMessages(err error) []string {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return typeErr.Errors
	}
	return []string{err.Error()}
}

// fieldPath converts a validator namespace like
// "Document.services.groups[0].items[2].url" into report path segments,
// expanding indexes into their own tree level.
func fieldPath(namespace string) []string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 {
		parts = parts[1:] // drop the root struct name
	}

	path := make([]string, 0, len(parts))
	for _, part := range parts {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				path = append(path, part)
				break
			}
			closing := strings.IndexByte(part, ']')
			if closing < open {
				path = append(path, part)
				break
			}
			if open > 0 {
				path = append(path, part[:open])
			}
			path = append(path, part[open+1:closing])
			part = part[closing+1:]
			if part == "" {
				break
			}
		}
	}
	return path
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
