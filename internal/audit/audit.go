// Package audit models the activity records a host transformation pipeline
// keeps for every class it processes.
//
// The pipeline appends records; transformers only read them. A Trail is the
// ordered snapshot for a single class, as handed to a transformer when it is
// asked to vote. A Log groups records for many classes and is what tooling
// loads from disk.
package audit

import (
	"fmt"
	"strings"

	"ofremap/internal/common"
)

// ActivityType names what kind of actor produced an activity.
type ActivityType string

const (
	// Plugin marks activity by a launch plugin.
	Plugin ActivityType = "plugin"
	// Transformer marks a transformer having run on the class.
	Transformer ActivityType = "transformer"
	// Reason marks the reason the class was loaded.
	Reason ActivityType = "reason"
)

// ParseActivityType parses a case-insensitive activity type name.
func ParseActivityType(s string) (ActivityType, error) {
	switch t := ActivityType(strings.ToLower(s)); t {
	case Plugin, Transformer, Reason:
		return t, nil
	default:
		return "", fmt.Errorf("unknown activity type %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ActivityType) UnmarshalText(text []byte) error {
	parsed, err := ParseActivityType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Activity is one audit record. Context is free-form; its meaning depends on
// Type and on the actor that wrote it.
type Activity struct {
	Type    ActivityType `yaml:"type"`
	Context []string     `yaml:"context,omitempty"`
}

// FirstContext returns Context[0], or "" when the context is empty.
func (a Activity) FirstContext() string {
	first, _ := common.First(a.Context)
	return first
}

// String renders the activity as "type:ctx1:ctx2".
func (a Activity) String() string {
	return strings.Join(append([]string{string(a.Type)}, a.Context...), ":")
}

// Trail is the ordered activity snapshot for one class.
type Trail []Activity

// Any reports whether some activity satisfies pred.
func (t Trail) Any(pred func(Activity) bool) bool {
	for _, a := range t {
		if pred(a) {
			return true
		}
	}

	return false
}

// String renders the trail as comma-separated activities.
func (t Trail) String() string {
	parts := make([]string, len(t))
	for i, a := range t {
		parts[i] = a.String()
	}

	return strings.Join(parts, ",")
}
