package remap

import (
	"slices"

	"ofremap/internal/classnode"
	"ofremap/internal/common"
)

// insn returns a mapped copy of one instruction.
func (r remapper) insn(in classnode.Insn) classnode.Insn {
	out := in
	out.Keys = slices.Clone(in.Keys)
	out.Labels = slices.Clone(in.Labels)

	switch in.Kind {
	case classnode.InsnType:
		out.Desc = r.Type(in.Desc)

	case classnode.InsnField:
		out.Owner = r.Type(in.Owner)
		out.Name = r.m.MapFieldName(in.Owner, in.Name, in.Desc)
		out.Desc = r.Desc(in.Desc)

	case classnode.InsnMethod:
		out.Owner = r.Type(in.Owner)
		out.Name = r.m.MapMethodName(in.Owner, in.Name, in.Desc)
		out.Desc = r.MethodDesc(in.Desc)

	case classnode.InsnInvokeDynamic:
		out.Name = r.m.MapInvokeDynamicMethodName(in.Name, in.Desc)
		out.Desc = r.MethodDesc(in.Desc)
		out.BootstrapArgs = r.Constants(in.BootstrapArgs)

		if in.Bootstrap != nil {
			h := r.Handle(*in.Bootstrap)
			out.Bootstrap = &h
		}

	case classnode.InsnLdc:
		out.Const = r.ConstantPtr(in.Const)

	case classnode.InsnMultiANewArray:
		out.Desc = r.Desc(in.Desc)

	case classnode.InsnFrame:
		if in.Frame != nil {
			out.Frame = &classnode.Frame{
				Type:   in.Frame.Type,
				Locals: common.MapSlice(in.Frame.Locals, r.frameItem),
				Stack:  common.MapSlice(in.Frame.Stack, r.frameItem),
			}
		}
	}

	return out
}

func (r remapper) frameItem(it classnode.FrameItem) classnode.FrameItem {
	if it.Kind == classnode.FrameObject {
		it.Type = r.Type(it.Type)
	}

	return it
}
