package hcl

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext returns the context every config expression is evaluated in.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
			"e":  cty.NumberFloatVal(math.E),
		},
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"pow":   stdlib.PowFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"log":   stdlib.LogFunc,
		},
	}
}
