package naming

import (
	"fmt"
	"reflect"
	"strings"

	"ofremap/internal/common"
)

// Domain distinguishes the namespaces a symbolic name lives in.
type Domain int

const (
	DomainClass Domain = iota
	DomainMethod
	DomainField
)

// String returns the lower-case domain name.
func (d Domain) String() string {
	switch d {
	case DomainClass:
		return "class"
	case DomainMethod:
		return "method"
	case DomainField:
		return "field"
	default:
		return common.UnknownStr
	}
}

// ParseDomain parses a domain name as produced by String.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(s) {
	case "class":
		return DomainClass, nil
	case "method":
		return DomainMethod, nil
	case "field":
		return DomainField, nil
	default:
		return 0, fmt.Errorf("unknown naming domain %q", s)
	}
}

// Resolver renames a symbol within a domain. Implementations must be pure and
// return name unchanged when no rename is known.
type Resolver interface {
	Resolve(domain Domain, name string) string
}

// IsNil reports whether r is nil or an interface holding a nil pointer,
// map or function.
func IsNil(r Resolver) bool {
	if r == nil {
		return true
	}

	switch v := reflect.ValueOf(r); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Func adapts a plain function to Resolver.
type Func func(domain Domain, name string) string

// Resolve calls f.
func (f Func) Resolve(domain Domain, name string) string {
	return f(domain, name)
}
