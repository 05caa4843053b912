package schemas

import "strings"

// Field error codes.
const (
	CodeMissing   = "missing"
	CodeWrongType = "wrong_type"
	CodeInvalid   = "invalid"
	CodeUnknown   = "unknown"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found while decoding a
// payload, so callers can report all problems at once.
type ValidationError struct {
	Shape  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Shape)
	b.WriteString(": ")
	for i, fe := range e.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

// collector accumulates field errors during a single decode pass.
type collector struct {
	shape  string
	fields []FieldError
}

func (c *collector) add(field, code, message string) {
	c.fields = append(c.fields, FieldError{Field: field, Code: code, Message: message})
}

func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Shape: c.shape, Fields: c.fields}
}
