package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityType(t *testing.T) {
	for in, want := range map[string]ActivityType{
		"plugin":      Plugin,
		"TRANSFORMER": Transformer,
		"Reason":      Reason,
	} {
		got, err := ParseActivityType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseActivityType("decision")
	assert.ErrorContains(t, err, `unknown activity type "decision"`)
}

func TestActivity_FirstContext(t *testing.T) {
	assert.Equal(t, "OptiFine", Activity{Type: Transformer, Context: []string{"OptiFine", "extra"}}.FirstContext())
	assert.Equal(t, "", Activity{Type: Transformer}.FirstContext())
}

func TestTrail_AnyAndString(t *testing.T) {
	trail := Trail{
		{Type: Reason, Context: []string{"classloading"}},
		{Type: Transformer, Context: []string{"OptiFine"}},
	}

	assert.True(t, trail.Any(func(a Activity) bool { return a.Type == Transformer }))
	assert.False(t, trail.Any(func(a Activity) bool { return a.Type == Plugin }))
	assert.False(t, Trail(nil).Any(func(Activity) bool { return true }))

	assert.Equal(t, "reason:classloading,transformer:OptiFine", trail.String())
}
