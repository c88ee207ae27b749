package remap

import (
	"ofremap/internal/classnode"
	"ofremap/internal/common"
)

func (r remapper) Annotations(as []classnode.Annotation) []classnode.Annotation {
	return common.MapSlice(as, r.Annotation)
}

func (r remapper) Annotation(a classnode.Annotation) classnode.Annotation {
	return classnode.Annotation{
		Desc:    r.Desc(a.Desc),
		Visible: a.Visible,
		Values:  r.elementValues(a.Desc, a.Values),
	}
}

func (r remapper) TypeAnnotations(as []classnode.TypeAnnotation) []classnode.TypeAnnotation {
	return common.MapSlice(as, func(a classnode.TypeAnnotation) classnode.TypeAnnotation {
		return classnode.TypeAnnotation{
			TypeRef:    a.TypeRef,
			TypePath:   a.TypePath,
			Annotation: r.Annotation(a.Annotation),
		}
	})
}

// elementValues maps the elements of an annotation of type annotationDesc.
func (r remapper) elementValues(annotationDesc string, vs []classnode.ElementValue) []classnode.ElementValue {
	return common.MapSlice(vs, func(v classnode.ElementValue) classnode.ElementValue {
		return r.elementValue(annotationDesc, v)
	})
}

func (r remapper) elementValue(annotationDesc string, v classnode.ElementValue) classnode.ElementValue {
	out := classnode.ElementValue{
		Kind:  v.Kind,
		Const: r.ConstantPtr(v.Const),
	}

	if v.Name != "" {
		out.Name = r.m.MapAnnotationAttributeName(annotationDesc, v.Name)
	}

	switch v.Kind {
	case classnode.ValueClass:
		out.Class = r.Desc(v.Class)

	case classnode.ValueEnum:
		if v.Enum != nil {
			// enum constants are static fields of the enum type
			owner := internalName(v.Enum.Desc)
			out.Enum = &classnode.EnumValue{
				Desc:  r.Desc(v.Enum.Desc),
				Value: r.m.MapFieldName(owner, v.Enum.Value, v.Enum.Desc),
			}
		}

	case classnode.ValueAnnotation:
		if v.Annotation != nil {
			a := r.Annotation(*v.Annotation)
			out.Annotation = &a
		}

	case classnode.ValueArray:
		// array members are named by their enclosing element
		out.Array = r.elementValues(annotationDesc, v.Array)
	}

	return out
}

// internalName returns the internal name of an object descriptor "Lx/Y;",
// or desc itself for anything else.
func internalName(desc string) string {
	if len(desc) > 2 && desc[0] == 'L' && desc[len(desc)-1] == ';' {
		return desc[1 : len(desc)-1]
	}

	return desc
}
