package app

import (
	"testing"

	"github.com/specialistvlad/gridquad/internal/hcl"
	"github.com/specialistvlad/gridquad/internal/yamlconfig"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLoader_Extensions(t *testing.T) {
	l := DefaultLoader()

	assert.Len(t, l, 4)
	for _, ext := range []string{".hcl", ".json"} {
		assert.IsType(t, &hcl.Loader{}, l[ext], ext)
	}
	for _, ext := range []string{".yaml", ".yml"} {
		assert.IsType(t, &yamlconfig.Loader{}, l[ext], ext)
	}
}
