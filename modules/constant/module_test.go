package constant

import (
	"testing"

	"github.com/specialistvlad/gridquad/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstant(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	f, err := r.Build("constant", map[string]float64{"value": -4})
	require.NoError(t, err)
	assert.Equal(t, -4.0, f(123, -9))

	f, err = r.Build("constant", nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f(0, 0))
}
