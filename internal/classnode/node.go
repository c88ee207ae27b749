package classnode

// ClassNode is the structural form of one class.
type ClassNode struct {
	Version    int      `yaml:"version,omitempty"`
	Access     int      `yaml:"access,omitempty"`
	Name       string   `yaml:"name"`
	Signature  string   `yaml:"signature,omitempty"`
	SuperName  string   `yaml:"super,omitempty"`
	Interfaces []string `yaml:"interfaces,omitempty"`
	SourceFile string   `yaml:"source_file,omitempty"`

	OuterClass          *OuterClass  `yaml:"outer_class,omitempty"`
	NestHost            string       `yaml:"nest_host,omitempty"`
	NestMembers         []string     `yaml:"nest_members,omitempty"`
	PermittedSubclasses []string     `yaml:"permitted_subclasses,omitempty"`
	InnerClasses        []InnerClass `yaml:"inner_classes,omitempty"`

	Annotations     []Annotation     `yaml:"annotations,omitempty"`
	TypeAnnotations []TypeAnnotation `yaml:"type_annotations,omitempty"`

	RecordComponents []RecordComponent `yaml:"record_components,omitempty"`
	Fields           []FieldNode       `yaml:"fields,omitempty"`
	Methods          []MethodNode      `yaml:"methods,omitempty"`
}

// OuterClass is the EnclosingMethod attribute of a local or anonymous class.
type OuterClass struct {
	Owner      string `yaml:"owner"`
	Method     string `yaml:"method,omitempty"`
	MethodDesc string `yaml:"method_desc,omitempty"`
}

// InnerClass is one entry of the InnerClasses attribute.
type InnerClass struct {
	Name      string `yaml:"name"`
	OuterName string `yaml:"outer_name,omitempty"`
	InnerName string `yaml:"inner_name,omitempty"`
	Access    int    `yaml:"access,omitempty"`
}

// RecordComponent describes one component of a record class.
type RecordComponent struct {
	Name            string           `yaml:"name"`
	Desc            string           `yaml:"desc"`
	Signature       string           `yaml:"signature,omitempty"`
	Annotations     []Annotation     `yaml:"annotations,omitempty"`
	TypeAnnotations []TypeAnnotation `yaml:"type_annotations,omitempty"`
}

// FieldNode describes one field declaration.
type FieldNode struct {
	Access          int              `yaml:"access,omitempty"`
	Name            string           `yaml:"name"`
	Desc            string           `yaml:"desc"`
	Signature       string           `yaml:"signature,omitempty"`
	Value           *Constant        `yaml:"value,omitempty"`
	Annotations     []Annotation     `yaml:"annotations,omitempty"`
	TypeAnnotations []TypeAnnotation `yaml:"type_annotations,omitempty"`
}

// MethodNode describes one method declaration and its code.
type MethodNode struct {
	Access     int         `yaml:"access,omitempty"`
	Name       string      `yaml:"name"`
	Desc       string      `yaml:"desc"`
	Signature  string      `yaml:"signature,omitempty"`
	Exceptions []string    `yaml:"exceptions,omitempty"`
	Parameters []Parameter `yaml:"parameters,omitempty"`

	Annotations          []Annotation     `yaml:"annotations,omitempty"`
	TypeAnnotations      []TypeAnnotation `yaml:"type_annotations,omitempty"`
	ParameterAnnotations [][]Annotation   `yaml:"parameter_annotations,omitempty"`
	AnnotationDefault    *ElementValue    `yaml:"annotation_default,omitempty"`

	Instructions   []Insn          `yaml:"instructions,omitempty"`
	TryCatchBlocks []TryCatchBlock `yaml:"try_catch_blocks,omitempty"`
	LocalVariables []LocalVariable `yaml:"local_variables,omitempty"`
	MaxStack       int             `yaml:"max_stack,omitempty"`
	MaxLocals      int             `yaml:"max_locals,omitempty"`
}

// Parameter is one entry of the MethodParameters attribute.
type Parameter struct {
	Name   string `yaml:"name,omitempty"`
	Access int    `yaml:"access,omitempty"`
}

// TryCatchBlock is one exception table entry. Start, End and Handler are label ids.
type TryCatchBlock struct {
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Handler int    `yaml:"handler"`
	Type    string `yaml:"type,omitempty"` // empty for finally blocks
}

// LocalVariable is one LocalVariableTable entry. Start and End are label ids.
type LocalVariable struct {
	Name      string `yaml:"name"`
	Desc      string `yaml:"desc"`
	Signature string `yaml:"signature,omitempty"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	Index     int    `yaml:"index"`
}
