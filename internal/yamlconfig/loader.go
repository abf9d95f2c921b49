package yamlconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader reads YAML run files.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// document uses pointers so absent keys can be told apart from zero values.
type document struct {
	AbsError  *float64           `yaml:"abs_error"`
	RelError  *float64           `yaml:"rel_error"`
	X0        *float64           `yaml:"x0"`
	Y0        *float64           `yaml:"y0"`
	X1        *float64           `yaml:"x1"`
	Y1        *float64           `yaml:"y1"`
	XSteps    *wholeNumber       `yaml:"xsteps"`
	YSteps    *wholeNumber       `yaml:"ysteps"`
	MaxIters  *wholeNumber       `yaml:"max_iters"`
	ThreadNum *wholeNumber       `yaml:"thread_num"`
	Integrand string             `yaml:"integrand"`
	Params    map[string]float64 `yaml:"params"`
}

// wholeNumber only accepts scalars tagged !!int. yaml.v3 would otherwise
// truncate 1.5 to 1 when decoding into an int.
type wholeNumber int

func (n *wholeNumber) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("line %d: %q is not an integer", node.Line, node.Value)
	}
	var v int
	if err := node.Decode(&v); err != nil {
		return err
	}
	*n = wholeNumber(v)
	return nil
}

func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)
	logger.Debug("YAML loader started.")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", config.ErrInvalidConfig, path, err)
	}
	m.Source = path

	logger.Debug("YAML loading complete.", "integrand", m.Integrand, "params", len(m.Params))
	return m, nil
}

func decode(r io.Reader) (*config.Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	var missing []string
	f := func(name string, p *float64) float64 {
		if p == nil {
			missing = append(missing, name)
			return 0
		}
		return *p
	}
	i := func(name string, p *wholeNumber) int {
		if p == nil {
			missing = append(missing, name)
			return 0
		}
		return int(*p)
	}

	m := &config.Model{
		AbsError:  f("abs_error", doc.AbsError),
		RelError:  f("rel_error", doc.RelError),
		X0:        f("x0", doc.X0),
		Y0:        f("y0", doc.Y0),
		X1:        f("x1", doc.X1),
		Y1:        f("y1", doc.Y1),
		XSteps:    i("xsteps", doc.XSteps),
		YSteps:    i("ysteps", doc.YSteps),
		MaxIters:  i("max_iters", doc.MaxIters),
		ThreadNum: i("thread_num", doc.ThreadNum),
		Integrand: doc.Integrand,
		Params:    doc.Params,
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required key(s): %s", strings.Join(missing, ", "))
	}
	return m, nil
}
