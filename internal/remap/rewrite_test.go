package remap

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofremap/internal/classnode"
)

// names parameterizes buildClass so that the same shape can be built in the
// source naming scheme and in the expected target scheme.
type names struct {
	Old, Api, Ann, Elem string
	InnerSimple         string
	Method, Tick, Attr  string
	Field, EnumConst    string
}

var (
	srcNames = names{
		Old:         "a/Old",
		Api:         "a/Api",
		Ann:         "a/Ann",
		Elem:        "a/Elem",
		InnerSimple: "Inner",
		Method:      "baz",
		Tick:        "func_1_a",
		Attr:        "mode",
		Field:       "foo",
		EnumConst:   "field_2_b",
	}
	dstNames = names{
		Old:         "b/New",
		Api:         "b/Api",
		Ann:         "b/Ann2",
		Elem:        "b/Elem2",
		InnerSimple: "Renamed",
		Method:      "qux",
		Tick:        "tick",
		Attr:        "style",
		Field:       "bar",
		EnumConst:   "world",
	}
)

const metafactoryDesc = "(Ljava/lang/invoke/MethodHandles$Lookup;Ljava/lang/String;Ljava/lang/invoke/MethodType;" +
	"Ljava/lang/invoke/MethodType;Ljava/lang/invoke/MethodHandle;Ljava/lang/invoke/MethodType;)Ljava/lang/invoke/CallSite;"

// buildClass returns a class body touching every kind of symbolic reference.
// Names that must never be mapped (locals, parameters, strings) are literals.
func buildClass(n names) *classnode.ClassNode {
	old := "L" + n.Old + ";"
	arr := "[" + old
	inner := n.Old + "$" + n.InnerSimple
	ann := "L" + n.Ann + ";"
	elem := "L" + n.Elem + ";"
	bazDesc := "(" + old + "I)" + old

	return &classnode.ClassNode{
		Version:    52,
		Access:     0x21,
		Name:       n.Old,
		Signature:  "Ljava/lang/Object;Ljava/lang/Comparable<" + old + ">;",
		SuperName:  "java/lang/Object",
		Interfaces: []string{"java/lang/Comparable", n.Api},
		SourceFile: "Old.java",
		OuterClass: &classnode.OuterClass{
			Owner:      n.Api,
			Method:     n.Method,
			MethodDesc: "(" + old + ")V",
		},
		NestHost:            n.Api,
		NestMembers:         []string{inner},
		PermittedSubclasses: []string{inner},
		InnerClasses: []classnode.InnerClass{
			{Name: inner, OuterName: n.Old, InnerName: n.InnerSimple, Access: 9},
		},
		Annotations: []classnode.Annotation{{
			Desc:    ann,
			Visible: true,
			Values: []classnode.ElementValue{
				{Name: n.Method, Kind: classnode.ValueClass, Class: old},
				{Name: n.Attr, Kind: classnode.ValueEnum, Enum: &classnode.EnumValue{Desc: elem, Value: n.Field}},
				{Name: "list", Kind: classnode.ValueArray, Array: []classnode.ElementValue{
					{Kind: classnode.ValueConst, Const: classnode.StringConst("foo")},
					{Kind: classnode.ValueAnnotation, Annotation: &classnode.Annotation{Desc: ann}},
				}},
			},
		}},
		RecordComponents: []classnode.RecordComponent{
			{Name: n.Field, Desc: old, Signature: "Ljava/util/List<" + old + ">;"},
		},
		Fields: []classnode.FieldNode{
			{
				Access:    2,
				Name:      n.Field,
				Desc:      arr,
				Signature: arr,
				TypeAnnotations: []classnode.TypeAnnotation{
					{TypeRef: 0x13000000, Annotation: classnode.Annotation{Desc: ann}},
				},
			},
			{Access: 0x18, Name: "CONST", Desc: "Ljava/lang/String;", Value: classnode.StringConst("foo")},
		},
		Methods: []classnode.MethodNode{
			{
				Access:               1,
				Name:                 n.Method,
				Desc:                 bazDesc,
				Signature:            "<T:" + old + ">(TT;)L" + n.Old + "<TT;>." + n.InnerSimple + ";",
				Exceptions:           []string{n.Old},
				Parameters:           []classnode.Parameter{{Name: "foo"}},
				ParameterAnnotations: [][]classnode.Annotation{{{Desc: ann}}, nil},
				Instructions: []classnode.Insn{
					{Kind: classnode.InsnLabel, Label: 1},
					classnode.FieldInsn(classnode.GetField, n.Old, n.Field, arr),
					classnode.FieldInsn(classnode.GetStatic, "java/lang/System", "out", "Ljava/io/PrintStream;"),
					classnode.MethodInsn(classnode.InvokeVirtual, n.Old, n.Method, bazDesc),
					classnode.MethodInsn(classnode.InvokeInterface, n.Api, n.Tick, "()V"),
					classnode.TypeInsn(classnode.New, n.Old),
					classnode.TypeInsn(classnode.ANewArray, arr),
					classnode.TypeInsn(classnode.CheckCast, "java/lang/String"),
					classnode.LdcInsn(classnode.TypeConst(old)),
					classnode.LdcInsn(classnode.TypeConst("(" + old + ")V")),
					classnode.LdcInsn(classnode.HandleConst(classnode.Handle{
						Tag: classnode.HGetField, Owner: n.Old, Name: n.Field, Desc: arr,
					})),
					classnode.LdcInsn(&classnode.Constant{
						Kind: classnode.ConstDynamic,
						Dynamic: &classnode.ConstantDynamic{
							Name: n.Method,
							Desc: old,
							Bootstrap: classnode.Handle{
								Tag: classnode.HInvokeStatic, Owner: n.Old, Name: n.Method, Desc: bazDesc,
							},
							Args: []classnode.Constant{*classnode.TypeConst(old)},
						},
					}),
					{
						Kind:   classnode.InsnInvokeDynamic,
						Opcode: classnode.InvokeDynamic,
						Name:   n.Method,
						Desc:   "(" + old + ")L" + n.Api + ";",
						Bootstrap: &classnode.Handle{
							Tag:   classnode.HInvokeStatic,
							Owner: "java/lang/invoke/LambdaMetafactory",
							Name:  "metafactory",
							Desc:  metafactoryDesc,
						},
						BootstrapArgs: []classnode.Constant{
							*classnode.TypeConst("()V"),
							*classnode.HandleConst(classnode.Handle{
								Tag: classnode.HInvokeStatic, Owner: n.Old, Name: n.Tick, Desc: "()V",
							}),
							*classnode.TypeConst("()V"),
						},
					},
					{Kind: classnode.InsnMultiANewArray, Opcode: classnode.MultiANewArray, Desc: "[" + arr, Operand: 2},
					{Kind: classnode.InsnFrame, Frame: &classnode.Frame{
						Locals: []classnode.FrameItem{
							{Kind: classnode.FrameObject, Type: n.Old},
							{Kind: classnode.FrameInteger},
						},
						Stack: []classnode.FrameItem{{Kind: classnode.FrameObject, Type: arr}},
					}},
					{Kind: classnode.InsnTableSwitch, Min: 0, Max: 1, Default: 3, Labels: []int{1, 2}},
					{Kind: classnode.InsnPlain, Opcode: 176},
				},
				TryCatchBlocks: []classnode.TryCatchBlock{
					{Start: 1, End: 2, Handler: 3, Type: n.Old},
					{Start: 1, End: 2, Handler: 4},
				},
				LocalVariables: []classnode.LocalVariable{
					{Name: "foo", Desc: old, Signature: "Ljava/util/List<" + old + ">;", Start: 1, End: 2, Index: 1},
				},
				MaxStack:  3,
				MaxLocals: 2,
			},
			{
				Name: "value",
				Desc: "()" + elem,
				AnnotationDefault: &classnode.ElementValue{
					Kind: classnode.ValueEnum,
					Enum: &classnode.EnumValue{Desc: elem, Value: n.EnumConst},
				},
			},
		},
	}
}

func TestRewrite_VisitsEveryReference(t *testing.T) {
	got := Rewrite(buildClass(srcNames), testMapper())
	want := buildClass(dstNames)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Logf("rewritten body:\n%s", spew.Sdump(got))
		t.Fatalf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrite_DoesNotModifyInput(t *testing.T) {
	in := buildClass(srcNames)
	out := Rewrite(in, testMapper())

	assert.Empty(t, cmp.Diff(buildClass(srcNames), in))

	// the output shares no mutable state with the input
	out.Methods[0].Instructions[0].Label = 99
	out.Methods[0].Instructions[15].Labels[0] = 99
	out.Fields[0].TypeAnnotations[0].Annotation.Desc = "LX;"
	out.Methods[0].Instructions[8].Const.Type = "LX;"
	assert.Empty(t, cmp.Diff(buildClass(srcNames), in))
}

func TestRewrite_Idempotent(t *testing.T) {
	once := Rewrite(buildClass(srcNames), testMapper())
	twice := Rewrite(once, testMapper())

	assert.Empty(t, cmp.Diff(once, twice))
}

func TestRewrite_Identity(t *testing.T) {
	in := buildClass(srcNames)
	assert.Empty(t, cmp.Diff(in, Rewrite(in, Identity{})))
}

func TestRewrite_Nil(t *testing.T) {
	assert.Nil(t, Rewrite(nil, testMapper()))
}

func TestRewrite_FieldAndMethodSites(t *testing.T) {
	m := tableMapper{
		fields:  map[string]string{"foo": "bar"},
		methods: map[string]string{"baz": "qux"},
	}

	in := &classnode.ClassNode{
		Name: "x/Host",
		Fields: []classnode.FieldNode{
			{Name: "foo", Desc: "Lx/Unrelated;"},
		},
		Methods: []classnode.MethodNode{{
			Name: "baz",
			Desc: "()V",
			Instructions: []classnode.Insn{
				classnode.FieldInsn(classnode.GetField, "x/Host", "foo", "Lx/Unrelated;"),
				classnode.FieldInsn(classnode.PutField, "x/Host", "foo", "Lx/Unrelated;"),
				classnode.MethodInsn(classnode.InvokeVirtual, "x/Host", "baz", "()V"),
				classnode.TypeInsn(classnode.New, "x/Unrelated"),
			},
		}},
	}

	out := Rewrite(in, m)
	require.NotNil(t, out)

	assert.Equal(t, "bar", out.Fields[0].Name)
	assert.Equal(t, "qux", out.Methods[0].Name)

	for _, insn := range out.Methods[0].Instructions {
		switch insn.Kind {
		case classnode.InsnField:
			assert.Equal(t, "bar", insn.Name)
			assert.Equal(t, "Lx/Unrelated;", insn.Desc)
		case classnode.InsnMethod:
			assert.Equal(t, "qux", insn.Name)
		case classnode.InsnType:
			assert.Equal(t, "x/Unrelated", insn.Desc)
		}
	}

	assert.Equal(t, "x/Host", out.Name, "unmapped class names pass through")
}
