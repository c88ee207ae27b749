// Package gate decides whether the remap transformation may run on a class
// now or must wait for a prerequisite transformation.
//
// The decision is pulled from the class's audit trail on every vote; the
// gate keeps no state between calls and tolerates being asked repeatedly.
package gate

import (
	"ofremap/internal/audit"
	"ofremap/internal/common"
	"ofremap/internal/target"
)

// Vote is the gate's answer to the host scheduler.
type Vote int

const (
	// Proceed lets the transformation run now.
	Proceed Vote = iota
	// Defer asks the scheduler to offer the class again later.
	Defer
)

// String returns "proceed" or "defer".
func (v Vote) String() string {
	switch v {
	case Proceed:
		return "proceed"
	case Defer:
		return "defer"
	default:
		return common.UnknownStr
	}
}

// Prerequisite identifies the transformation that must run first: an
// activity of Type whose first context element equals Tag.
type Prerequisite struct {
	Type audit.ActivityType
	Tag  string
}

// Satisfied reports whether a is evidence of the prerequisite having run.
// Only the first context slot is compared.
func (p Prerequisite) Satisfied(a audit.Activity) bool {
	return a.Type == p.Type && a.FirstContext() == p.Tag
}

// Gate orders the remap after the prerequisite for explicitly pinned classes.
type Gate struct {
	explicit     map[string]struct{}
	prerequisite Prerequisite
}

// New returns a gate for the given explicit targets.
func New(explicit []target.Target, prerequisite Prerequisite) *Gate {
	g := &Gate{
		explicit:     make(map[string]struct{}, len(explicit)),
		prerequisite: prerequisite,
	}

	for _, t := range explicit {
		g.explicit[t.Normalized().ClassName] = struct{}{}
	}

	return g
}

// IsExplicit reports whether className, internal or dotted, was pinned
// explicitly.
func (g *Gate) IsExplicit(className string) bool {
	_, ok := g.explicit[target.Class(className).ClassName]
	return ok
}

// Vote returns Proceed for discovered classes. For explicit classes it
// returns Proceed only once trail holds evidence of the prerequisite.
func (g *Gate) Vote(className string, trail audit.Trail) Vote {
	if !g.IsExplicit(className) {
		return Proceed
	}

	if trail.Any(g.prerequisite.Satisfied) {
		return Proceed
	}

	return Defer
}
