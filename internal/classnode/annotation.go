package classnode

// Annotation is a runtime (in)visible annotation.
type Annotation struct {
	Desc    string         `yaml:"desc"`
	Visible bool           `yaml:"visible,omitempty"`
	Values  []ElementValue `yaml:"values,omitempty"`
}

// TypeAnnotation is an annotation on a type use.
type TypeAnnotation struct {
	TypeRef    int        `yaml:"type_ref"`
	TypePath   string     `yaml:"type_path,omitempty"`
	Annotation Annotation `yaml:",inline"`
}

// ValueKind discriminates ElementValue.
type ValueKind string

const (
	ValueConst      ValueKind = "const"
	ValueClass      ValueKind = "class"
	ValueEnum       ValueKind = "enum"
	ValueAnnotation ValueKind = "annotation"
	ValueArray      ValueKind = "array"
)

// ElementValue is one annotation element. Name is empty for array members
// and annotation defaults.
type ElementValue struct {
	Name       string         `yaml:"name,omitempty"`
	Kind       ValueKind      `yaml:"kind"`
	Const      *Constant      `yaml:"const,omitempty"`
	Class      string         `yaml:"class,omitempty"` // descriptor
	Enum       *EnumValue     `yaml:"enum,omitempty"`
	Annotation *Annotation    `yaml:"annotation,omitempty"`
	Array      []ElementValue `yaml:"array,omitempty"`
}

// EnumValue is an enum constant reference inside an annotation.
type EnumValue struct {
	Desc  string `yaml:"desc"`
	Value string `yaml:"value"`
}
