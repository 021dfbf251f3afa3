package utilities

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type member struct {
	Key   string
	Value any
}

// orderedObject encodes as a JSON object with members in slice order.
type orderedObject []member

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(m.Key)
		if err != nil {
			return nil, err
		}
		val, err := marshalNoEscape(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape is json.Marshal without HTML escaping, so placeholders
// like <alpha-value> survive verbatim.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodeJSON writes v as indented JSON without HTML escaping.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MarshalJSON encodes the stylesheet as {selector: {property: value}},
// keeping rule and declaration order.
func (s Stylesheet) MarshalJSON() ([]byte, error) {
	obj := make(orderedObject, 0, len(s))
	for _, r := range s {
		decls := make(orderedObject, 0, len(r.Declarations))
		for _, d := range r.Declarations {
			decls = append(decls, member{Key: d.Property, Value: d.Value})
		}
		obj = append(obj, member{Key: r.Selector, Value: decls})
	}
	return obj.MarshalJSON()
}

// WriteCSS renders the stylesheet as CSS text.
func WriteCSS(w io.Writer, s Stylesheet) error {
	bw := bufio.NewWriter(w)
	for i, r := range s {
		if i > 0 {
			bw.WriteString("\n")
		}
		writeRule(bw, r)
	}
	return bw.Flush()
}

// CSS returns a single rule as CSS text.
func (r Rule) CSS() string {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	writeRule(bw, r)
	_ = bw.Flush()
	return sb.String()
}

func writeRule(w *bufio.Writer, r Rule) {
	w.WriteString(EscapeSelector(r.Selector))
	w.WriteString(" {\n")
	for _, d := range r.Declarations {
		w.WriteString("  ")
		w.WriteString(d.Property)
		w.WriteString(": ")
		w.WriteString(d.Value)
		w.WriteString(";\n")
	}
	w.WriteString("}\n")
}

// EscapeSelector escapes characters of a class selector that are not valid
// in a CSS identifier. The leading '.' is kept as is.
func EscapeSelector(selector string) string {
	name, isClass := strings.CutPrefix(selector, ".")
	var sb strings.Builder
	if isClass {
		sb.WriteByte('.')
	}
	for i, r := range name {
		switch {
		case r == '-' || r == '_' || r >= 0x80:
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			// an identifier cannot start with a digit
			if i == 0 {
				sb.WriteString(`\3`)
				sb.WriteRune(r)
				sb.WriteByte(' ')
				continue
			}
		case r < 0x20 || r == 0x7f:
			// control characters need a hex escape
			fmt.Fprintf(&sb, "\\%x ", r)
			continue
		default:
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
