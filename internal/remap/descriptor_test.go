package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapper_Type(t *testing.T) {
	r := remapper{m: testMapper()}

	assert.Equal(t, "b/New", r.Type("a/Old"))
	assert.Equal(t, "[Lb/New;", r.Type("[La/Old;"))
	assert.Equal(t, "java/lang/String", r.Type("java/lang/String"))
	assert.Equal(t, "", r.Type(""))
	assert.Nil(t, r.Types(nil))
	assert.Equal(t, []string{"b/New", "b/Api"}, r.Types([]string{"a/Old", "a/Api"}))
}

func TestRemapper_Desc(t *testing.T) {
	r := remapper{m: testMapper()}

	tests := []struct {
		in   string
		want string
	}{
		{"I", "I"},
		{"La/Old;", "Lb/New;"},
		{"[[La/Old;", "[[Lb/New;"},
		{"[J", "[J"},
		{"Ljava/lang/String;", "Ljava/lang/String;"},
		{"(La/Old;[ILjava/lang/String;)La/Old;", "(Lb/New;[ILjava/lang/String;)Lb/New;"},
		{"()V", "()V"},
		{"(D[[La/Api;)V", "(D[[Lb/Api;)V"},
		{"", ""},

		// malformed input passes through
		{"La/Old", "La/Old"},
		{"L;", "L;"},
		{"Q", "Q"},
		{"[", "["},
		{"La/Old;I", "La/Old;I"},
		{"(La/Old;", "(La/Old;"},
		{"(I)", "(I)"},
		{"(V)V", "(V)V"},
		{"()La/Old;I", "()La/Old;I"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Desc(tt.in))
		})
	}
}

func TestRemapper_MethodDescRejectsFieldDesc(t *testing.T) {
	r := remapper{m: testMapper()}
	assert.Equal(t, "La/Old;", r.MethodDesc("La/Old;"))
}
