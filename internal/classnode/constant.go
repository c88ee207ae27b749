package classnode

// ConstKind discriminates Constant.
type ConstKind string

const (
	ConstInt     ConstKind = "int"
	ConstLong    ConstKind = "long"
	ConstFloat   ConstKind = "float"
	ConstDouble  ConstKind = "double"
	ConstString  ConstKind = "string"
	ConstType    ConstKind = "type"
	ConstHandle  ConstKind = "handle"
	ConstDynamic ConstKind = "dynamic"
)

// Constant is a loadable constant: an ldc operand, a bootstrap argument or a
// field's ConstantValue.
type Constant struct {
	Kind    ConstKind        `yaml:"kind"`
	Int     int64            `yaml:"int,omitempty"`
	Float   float64          `yaml:"float,omitempty"`
	String  string           `yaml:"string,omitempty"`
	Type    string           `yaml:"type,omitempty"` // field or method descriptor
	Handle  *Handle          `yaml:"handle,omitempty"`
	Dynamic *ConstantDynamic `yaml:"dynamic,omitempty"`
}

// Handle is a method handle constant.
type Handle struct {
	Tag       int    `yaml:"tag"`
	Owner     string `yaml:"owner"`
	Name      string `yaml:"name"`
	Desc      string `yaml:"desc"`
	Interface bool   `yaml:"interface,omitempty"`
}

// IsField reports whether the handle refers to a field rather than a method.
func (h Handle) IsField() bool {
	return h.Tag >= HGetField && h.Tag <= HPutStatic
}

// ConstantDynamic is a CONSTANT_Dynamic entry.
type ConstantDynamic struct {
	Name      string     `yaml:"name"`
	Desc      string     `yaml:"desc"`
	Bootstrap Handle     `yaml:"bootstrap"`
	Args      []Constant `yaml:"args,omitempty"`
}

// StringConst returns a string constant.
func StringConst(s string) *Constant {
	return &Constant{Kind: ConstString, String: s}
}

// TypeConst returns a class or method type constant for the given descriptor.
func TypeConst(desc string) *Constant {
	return &Constant{Kind: ConstType, Type: desc}
}

// HandleConst returns a method handle constant.
func HandleConst(h Handle) *Constant {
	return &Constant{Kind: ConstHandle, Handle: &h}
}
