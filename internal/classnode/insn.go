package classnode

// InsnKind discriminates Insn, grouping opcodes by operand shape.
type InsnKind string

const (
	InsnPlain          InsnKind = "insn"
	InsnInt            InsnKind = "int"
	InsnVar            InsnKind = "var"
	InsnType           InsnKind = "type"
	InsnField          InsnKind = "field"
	InsnMethod         InsnKind = "method"
	InsnInvokeDynamic  InsnKind = "indy"
	InsnJump           InsnKind = "jump"
	InsnLabel          InsnKind = "label"
	InsnLdc            InsnKind = "ldc"
	InsnIinc           InsnKind = "iinc"
	InsnTableSwitch    InsnKind = "tableswitch"
	InsnLookupSwitch   InsnKind = "lookupswitch"
	InsnMultiANewArray InsnKind = "multianewarray"
	InsnFrame          InsnKind = "frame"
	InsnLine           InsnKind = "line"
)

// Insn is one instruction (or pseudo-instruction such as a label, a line
// number or a stack map frame). Only the fields relevant to Kind are set.
//
// Symbolic operands by kind:
//   - InsnType: Desc holds an internal name or an array descriptor
//   - InsnField: Owner, Name, Desc (field descriptor)
//   - InsnMethod: Owner, Name, Desc (method descriptor), Interface
//   - InsnInvokeDynamic: Name, Desc, Bootstrap, BootstrapArgs
//   - InsnLdc: Const
//   - InsnMultiANewArray: Desc (array descriptor), Operand (dimensions)
//   - InsnFrame: Frame
type Insn struct {
	Kind   InsnKind `yaml:"kind"`
	Opcode int      `yaml:"opcode,omitempty"`

	Owner     string `yaml:"owner,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Desc      string `yaml:"desc,omitempty"`
	Interface bool   `yaml:"interface,omitempty"`

	// Operand is the int operand, the local variable index or the array dimensions.
	Operand   int `yaml:"operand,omitempty"`
	Increment int `yaml:"increment,omitempty"`

	// Label is the jump target, the label id, or the line's start label.
	Label   int   `yaml:"label,omitempty"`
	Line    int   `yaml:"line,omitempty"`
	Min     int   `yaml:"min,omitempty"`
	Max     int   `yaml:"max,omitempty"`
	Default int   `yaml:"default,omitempty"`
	Keys    []int `yaml:"keys,omitempty"`
	Labels  []int `yaml:"labels,omitempty"`

	Const         *Constant  `yaml:"const,omitempty"`
	Bootstrap     *Handle    `yaml:"bootstrap,omitempty"`
	BootstrapArgs []Constant `yaml:"bootstrap_args,omitempty"`
	Frame         *Frame     `yaml:"frame,omitempty"`
}

// Frame is a stack map frame.
type Frame struct {
	Type   int         `yaml:"type"`
	Locals []FrameItem `yaml:"locals,omitempty"`
	Stack  []FrameItem `yaml:"stack,omitempty"`
}

// FrameItemKind discriminates FrameItem.
type FrameItemKind string

const (
	FrameTop               FrameItemKind = "top"
	FrameInteger           FrameItemKind = "int"
	FrameFloat             FrameItemKind = "float"
	FrameDouble            FrameItemKind = "double"
	FrameLong              FrameItemKind = "long"
	FrameNull              FrameItemKind = "null"
	FrameUninitializedThis FrameItemKind = "uninitialized_this"
	FrameObject            FrameItemKind = "object"
	FrameUninitialized     FrameItemKind = "uninitialized"
)

// FrameItem is one verification type in a frame. Type is set for objects
// (internal name or array descriptor); Label for uninitialized values.
type FrameItem struct {
	Kind  FrameItemKind `yaml:"kind"`
	Type  string        `yaml:"type,omitempty"`
	Label int           `yaml:"label,omitempty"`
}

// FieldInsn returns a field access instruction.
func FieldInsn(opcode int, owner, name, desc string) Insn {
	return Insn{Kind: InsnField, Opcode: opcode, Owner: owner, Name: name, Desc: desc}
}

// MethodInsn returns a method invocation instruction.
func MethodInsn(opcode int, owner, name, desc string) Insn {
	return Insn{
		Kind:      InsnMethod,
		Opcode:    opcode,
		Owner:     owner,
		Name:      name,
		Desc:      desc,
		Interface: opcode == InvokeInterface,
	}
}

// TypeInsn returns a NEW, ANEWARRAY, CHECKCAST or INSTANCEOF instruction.
func TypeInsn(opcode int, typ string) Insn {
	return Insn{Kind: InsnType, Opcode: opcode, Desc: typ}
}

// LdcInsn returns an ldc instruction for c.
func LdcInsn(c *Constant) Insn {
	return Insn{Kind: InsnLdc, Opcode: Ldc, Const: c}
}
