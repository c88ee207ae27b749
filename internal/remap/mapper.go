package remap

// Mapper renames symbolic references. Implementations must be pure and
// return the input name when no rename applies.
type Mapper interface {
	// MapType maps an internal class name (never an array descriptor).
	MapType(internalName string) string
	// MapMethodName maps a method name declared in or referenced on owner.
	MapMethodName(owner, name, desc string) string
	// MapInvokeDynamicMethodName maps the name of an invokedynamic call site
	// or dynamic constant.
	MapInvokeDynamicMethodName(name, desc string) string
	// MapFieldName maps a field name declared in or referenced on owner.
	MapFieldName(owner, name, desc string) string
	// MapRecordComponentName maps a record component name.
	MapRecordComponentName(owner, name, desc string) string
	// MapAnnotationAttributeName maps an element name of the annotation type desc.
	MapAnnotationAttributeName(desc, name string) string
}

// Identity is a Mapper that renames nothing.
type Identity struct{}

func (Identity) MapType(internalName string) string { return internalName }
func (Identity) MapMethodName(_, name, _ string) string { return name }
func (Identity) MapInvokeDynamicMethodName(name, _ string) string { return name }
func (Identity) MapFieldName(_, name, _ string) string { return name }
func (Identity) MapRecordComponentName(_, name, _ string) string { return name }
func (Identity) MapAnnotationAttributeName(_, name string) string { return name }
