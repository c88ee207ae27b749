package naming

import (
	"errors"

	"ofremap/internal/remap"
)

// ErrNoResolver is returned when an Adapter is built without a Resolver.
var ErrNoResolver = errors.New("no name resolver")

var _ remap.Mapper = (*Adapter)(nil)

// Adapter exposes a Resolver as a remap.Mapper. Owners and descriptors are
// ignored: member names are resolved by domain and name alone.
type Adapter struct {
	r Resolver
}

// NewAdapter wraps r. A nil r, typed or not, fails with ErrNoResolver.
func NewAdapter(r Resolver) (*Adapter, error) {
	if IsNil(r) {
		return nil, ErrNoResolver
	}

	return &Adapter{r: r}, nil
}

func (a *Adapter) MapType(internalName string) string {
	return a.r.Resolve(DomainClass, internalName)
}

func (a *Adapter) MapMethodName(_, name, _ string) string {
	return a.r.Resolve(DomainMethod, name)
}

// MapInvokeDynamicMethodName resolves call site names as methods: a lambda
// call site is named after the functional interface method it implements.
func (a *Adapter) MapInvokeDynamicMethodName(name, _ string) string {
	return a.r.Resolve(DomainMethod, name)
}

func (a *Adapter) MapFieldName(_, name, _ string) string {
	return a.r.Resolve(DomainField, name)
}

// MapRecordComponentName resolves record components as fields so that they
// stay in step with their backing fields.
func (a *Adapter) MapRecordComponentName(_, name, _ string) string {
	return a.r.Resolve(DomainField, name)
}

// MapAnnotationAttributeName resolves annotation elements as methods.
func (a *Adapter) MapAnnotationAttributeName(_, name string) string {
	return a.r.Resolve(DomainMethod, name)
}
