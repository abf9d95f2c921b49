package hcl

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the top level of a run file. There is no remain field, so
// unknown attributes are reported as errors.
type fileRoot struct {
	AbsError  float64        `hcl:"abs_error"`
	RelError  float64        `hcl:"rel_error"`
	X0        float64        `hcl:"x0"`
	Y0        float64        `hcl:"y0"`
	X1        float64        `hcl:"x1"`
	Y1        float64        `hcl:"y1"`
	XSteps    int            `hcl:"xsteps"`
	YSteps    int            `hcl:"ysteps"`
	MaxIters  int            `hcl:"max_iters"`
	ThreadNum int            `hcl:"thread_num"`
	Integrand *string        `hcl:"integrand,optional"`
	Params    hcl.Expression `hcl:"params,optional"`
}

// Load parses a single .hcl or .json file and translates it into a Model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)
	logger.Debug("HCL loader started.")

	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		file, diags = parser.ParseJSONFile(path)
	default:
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	evalCtx := newEvalContext()

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode config file %s: %w", config.ErrInvalidConfig, path, diags)
	}

	params, err := decodeParams(ctx, root.Params, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: in %s, attribute 'params': %w", config.ErrInvalidConfig, path, err)
	}

	m := &config.Model{
		AbsError:  root.AbsError,
		RelError:  root.RelError,
		X0:        root.X0,
		Y0:        root.Y0,
		X1:        root.X1,
		Y1:        root.Y1,
		XSteps:    root.XSteps,
		YSteps:    root.YSteps,
		MaxIters:  root.MaxIters,
		ThreadNum: root.ThreadNum,
		Params:    params,
		Source:    path,
	}
	if root.Integrand != nil {
		m.Integrand = *root.Integrand
	}

	logger.Debug("HCL loading complete.", "integrand", m.Integrand, "params", len(m.Params))
	return m, nil
}
