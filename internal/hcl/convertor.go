package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var paramsType = cty.Map(cty.Number)

// decodeParams evaluates the params expression and binds it to a Go map. A
// missing attribute yields a nil map.
func decodeParams(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) (map[string]float64, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		logger.Debug("No params given.")
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("params must be known at load time")
	}

	logger.Debug("Preparing to decode params.",
		"source_type", val.Type().FriendlyName(),
		"target_type", paramsType.FriendlyName(),
	)

	converted, err := convert.Convert(val, paramsType)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), paramsType.FriendlyName(), err)
	}

	var params map[string]float64
	if err := gocty.FromCtyValue(converted, &params); err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]float64{}
	}
	return params, nil
}
