package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain_String(t *testing.T) {
	assert.Equal(t, "class", DomainClass.String())
	assert.Equal(t, "method", DomainMethod.String())
	assert.Equal(t, "field", DomainField.String())
	assert.Equal(t, "unknown", Domain(7).String())
}

func TestParseDomain(t *testing.T) {
	for _, d := range []Domain{DomainClass, DomainMethod, DomainField} {
		got, err := ParseDomain(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDomain("FIELD")
	require.NoError(t, err)
	assert.Equal(t, DomainField, got)

	_, err = ParseDomain("package")
	assert.ErrorContains(t, err, `unknown naming domain "package"`)
}

func TestFunc(t *testing.T) {
	f := Func(func(d Domain, name string) string {
		if d == DomainMethod && name == "baz" {
			return "qux"
		}

		return name
	})

	assert.Equal(t, "qux", f.Resolve(DomainMethod, "baz"))
	assert.Equal(t, "baz", f.Resolve(DomainField, "baz"))
}
