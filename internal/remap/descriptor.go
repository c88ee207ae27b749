package remap

import (
	"errors"
	"strings"

	"ofremap/internal/common"
)

var errMalformed = errors.New("malformed descriptor")

// remapper applies a Mapper to names, descriptors, signatures and constants.
type remapper struct {
	m Mapper
}

// Type maps an internal name or, when it starts with '[', an array descriptor.
func (r remapper) Type(name string) string {
	if name == "" {
		return name
	}

	if name[0] == '[' {
		return r.Desc(name)
	}

	return r.m.MapType(name)
}

// Types maps a list of internal names.
func (r remapper) Types(names []string) []string {
	return common.MapSlice(names, r.Type)
}

// Desc maps a field descriptor, or a method descriptor when desc starts with '('.
// Malformed input is returned unchanged.
func (r remapper) Desc(desc string) string {
	if desc == "" {
		return desc
	}

	if desc[0] == '(' {
		return r.MethodDesc(desc)
	}

	var b strings.Builder

	rest, err := r.fieldType(desc, &b)
	if err != nil || rest != "" {
		return desc
	}

	return b.String()
}

// MethodDesc maps a method descriptor. Malformed input is returned unchanged.
func (r remapper) MethodDesc(desc string) string {
	if desc == "" || desc[0] != '(' {
		return desc
	}

	var b strings.Builder

	b.WriteByte('(')

	rest := desc[1:]
	for rest != "" && rest[0] != ')' {
		var err error

		rest, err = r.fieldType(rest, &b)
		if err != nil {
			return desc
		}
	}

	if rest == "" {
		return desc
	}

	b.WriteByte(')')
	rest = rest[1:]

	if rest == "V" {
		b.WriteByte('V')
		return b.String()
	}

	rest, err := r.fieldType(rest, &b)
	if err != nil || rest != "" {
		return desc
	}

	return b.String()
}

// fieldType maps the leading field type of s into b and returns the remainder.
func (r remapper) fieldType(s string, b *strings.Builder) (string, error) {
	dims := 0
	for dims < len(s) && s[dims] == '[' {
		dims++
	}

	if dims == len(s) {
		return s, errMalformed
	}

	b.WriteString(s[:dims])
	s = s[dims:]

	switch s[0] {
	case 'Z', 'C', 'B', 'S', 'I', 'F', 'J', 'D':
		b.WriteByte(s[0])
		return s[1:], nil

	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 2 {
			return s, errMalformed
		}

		b.WriteByte('L')
		b.WriteString(r.m.MapType(s[1:end]))
		b.WriteByte(';')

		return s[end+1:], nil

	default:
		return s, errMalformed
	}
}
