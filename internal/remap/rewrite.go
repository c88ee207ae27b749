package remap

import (
	"slices"
	"strings"
	"unicode"

	"ofremap/internal/classnode"
	"ofremap/internal/common"
)

// Rewrite returns a new class body with every symbolic reference in in
// mapped through m. in is not modified. A nil body yields nil.
func Rewrite(in *classnode.ClassNode, m Mapper) *classnode.ClassNode {
	if in == nil {
		return nil
	}

	r := remapper{m: m}
	owner := in.Name

	out := &classnode.ClassNode{
		Version:             in.Version,
		Access:              in.Access,
		Name:                r.Type(in.Name),
		Signature:           r.Signature(in.Signature, false),
		SuperName:           r.Type(in.SuperName),
		Interfaces:          r.Types(in.Interfaces),
		SourceFile:          in.SourceFile,
		NestHost:            r.Type(in.NestHost),
		NestMembers:         r.Types(in.NestMembers),
		PermittedSubclasses: r.Types(in.PermittedSubclasses),
		Annotations:         r.Annotations(in.Annotations),
		TypeAnnotations:     r.TypeAnnotations(in.TypeAnnotations),
	}

	if in.OuterClass != nil {
		oc := in.OuterClass
		out.OuterClass = &classnode.OuterClass{
			Owner:      r.Type(oc.Owner),
			MethodDesc: r.MethodDesc(oc.MethodDesc),
		}

		if oc.Method != "" {
			out.OuterClass.Method = r.m.MapMethodName(oc.Owner, oc.Method, oc.MethodDesc)
		}
	}

	out.InnerClasses = common.MapSlice(in.InnerClasses, r.innerClass)

	out.RecordComponents = common.MapSlice(in.RecordComponents, func(rc classnode.RecordComponent) classnode.RecordComponent {
		return classnode.RecordComponent{
			Name:            r.m.MapRecordComponentName(owner, rc.Name, rc.Desc),
			Desc:            r.Desc(rc.Desc),
			Signature:       r.Signature(rc.Signature, true),
			Annotations:     r.Annotations(rc.Annotations),
			TypeAnnotations: r.TypeAnnotations(rc.TypeAnnotations),
		}
	})

	out.Fields = common.MapSlice(in.Fields, func(f classnode.FieldNode) classnode.FieldNode {
		return r.field(owner, f)
	})

	out.Methods = common.MapSlice(in.Methods, func(mn classnode.MethodNode) classnode.MethodNode {
		return r.method(owner, mn)
	})

	return out
}

// innerClass maps an InnerClasses entry. The simple inner name is re-derived
// from the mapped binary name when the mapping changed it.
func (r remapper) innerClass(ic classnode.InnerClass) classnode.InnerClass {
	out := classnode.InnerClass{
		Name:      r.Type(ic.Name),
		OuterName: r.Type(ic.OuterName),
		Access:    ic.Access,
	}

	if ic.InnerName != "" {
		out.InnerName = innerSimpleName(ic.Name, out.Name, ic.InnerName)
	}

	return out
}

func innerSimpleName(name, remapped, innerName string) string {
	if remapped == name {
		return innerName
	}

	origSplit := strings.LastIndexByte(name, '/')
	newSplit := strings.LastIndexByte(remapped, '/')

	if origSplit != -1 && newSplit != -1 && name[origSplit:] == remapped[newSplit:] {
		return innerName
	}

	idx := strings.LastIndexByte(remapped, '$')
	if idx == -1 {
		return innerName
	}

	// anonymous and local classes carry a numeric prefix after '$'
	simple := strings.TrimLeftFunc(remapped[idx+1:], unicode.IsDigit)
	if simple == "" {
		return innerName
	}

	return simple
}

func (r remapper) field(owner string, f classnode.FieldNode) classnode.FieldNode {
	return classnode.FieldNode{
		Access:          f.Access,
		Name:            r.m.MapFieldName(owner, f.Name, f.Desc),
		Desc:            r.Desc(f.Desc),
		Signature:       r.Signature(f.Signature, true),
		Value:           r.ConstantPtr(f.Value),
		Annotations:     r.Annotations(f.Annotations),
		TypeAnnotations: r.TypeAnnotations(f.TypeAnnotations),
	}
}

func (r remapper) method(owner string, mn classnode.MethodNode) classnode.MethodNode {
	out := classnode.MethodNode{
		Access:               mn.Access,
		Name:                 r.m.MapMethodName(owner, mn.Name, mn.Desc),
		Desc:                 r.MethodDesc(mn.Desc),
		Signature:            r.Signature(mn.Signature, false),
		Exceptions:           r.Types(mn.Exceptions),
		Parameters:           slices.Clone(mn.Parameters),
		Annotations:          r.Annotations(mn.Annotations),
		TypeAnnotations:      r.TypeAnnotations(mn.TypeAnnotations),
		ParameterAnnotations: common.MapSlice(mn.ParameterAnnotations, r.Annotations),
		Instructions:         common.MapSlice(mn.Instructions, r.insn),
		MaxStack:             mn.MaxStack,
		MaxLocals:            mn.MaxLocals,
	}

	if mn.AnnotationDefault != nil {
		v := r.elementValue("", *mn.AnnotationDefault)
		out.AnnotationDefault = &v
	}

	out.TryCatchBlocks = common.MapSlice(mn.TryCatchBlocks, func(tcb classnode.TryCatchBlock) classnode.TryCatchBlock {
		tcb.Type = r.Type(tcb.Type)
		return tcb
	})

	out.LocalVariables = common.MapSlice(mn.LocalVariables, func(lv classnode.LocalVariable) classnode.LocalVariable {
		lv.Desc = r.Desc(lv.Desc)
		lv.Signature = r.Signature(lv.Signature, true)

		return lv
	})

	return out
}
