package remap

import (
	"ofremap/internal/classnode"
	"ofremap/internal/common"
)

// Handle maps a method handle's owner, name and descriptor.
func (r remapper) Handle(h classnode.Handle) classnode.Handle {
	out := h
	out.Owner = r.Type(h.Owner)

	if h.IsField() {
		out.Name = r.m.MapFieldName(h.Owner, h.Name, h.Desc)
		out.Desc = r.Desc(h.Desc)
	} else {
		out.Name = r.m.MapMethodName(h.Owner, h.Name, h.Desc)
		out.Desc = r.MethodDesc(h.Desc)
	}

	return out
}

// Constant returns a mapped copy of c. Numeric and string constants are copied as is.
func (r remapper) Constant(c classnode.Constant) classnode.Constant {
	out := c

	switch c.Kind {
	case classnode.ConstType:
		out.Type = r.Desc(c.Type)

	case classnode.ConstHandle:
		if c.Handle != nil {
			h := r.Handle(*c.Handle)
			out.Handle = &h
		}

	case classnode.ConstDynamic:
		if c.Dynamic != nil {
			d := classnode.ConstantDynamic{
				Name:      r.m.MapInvokeDynamicMethodName(c.Dynamic.Name, c.Dynamic.Desc),
				Desc:      r.Desc(c.Dynamic.Desc),
				Bootstrap: r.Handle(c.Dynamic.Bootstrap),
				Args:      r.Constants(c.Dynamic.Args),
			}
			out.Dynamic = &d
		}
	}

	return out
}

// ConstantPtr maps an optional constant.
func (r remapper) ConstantPtr(c *classnode.Constant) *classnode.Constant {
	if c == nil {
		return nil
	}

	out := r.Constant(*c)

	return &out
}

// Constants maps a list of constants.
func (r remapper) Constants(cs []classnode.Constant) []classnode.Constant {
	return common.MapSlice(cs, r.Constant)
}
