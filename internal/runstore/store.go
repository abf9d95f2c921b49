package runstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/quadrature"
)

// Store persists results by key.
type Store interface {
	// Get returns the cached result for key. A miss is reported by ok=false
	// with a nil error.
	Get(ctx context.Context, key string) (res quadrature.Result, ok bool, err error)
	Put(ctx context.Context, key string, res quadrature.Result) error
}

// Fingerprint hashes every field that influences a run's outcome. Thread count
// is included because summation order, and therefore the last bits of the
// estimate, depend on it.
func Fingerprint(m config.Model) string {
	h := xxhash.New()
	put := func(name, value string) {
		_, _ = h.WriteString(name)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(value)
		_, _ = h.WriteString(";")
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	put("abs_error", f(m.AbsError))
	put("rel_error", f(m.RelError))
	put("x0", f(m.X0))
	put("y0", f(m.Y0))
	put("x1", f(m.X1))
	put("y1", f(m.Y1))
	put("xsteps", strconv.Itoa(m.XSteps))
	put("ysteps", strconv.Itoa(m.YSteps))
	put("max_iters", strconv.Itoa(m.MaxIters))
	put("thread_num", strconv.Itoa(m.ThreadNum))
	put("integrand", m.Integrand)

	keys := make([]string, 0, len(m.Params))
	for k := range m.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		put("params."+k, f(m.Params[k]))
	}

	return strconv.FormatUint(h.Sum64(), 16)
}

// record is the serialized form of a result. Floats are stored as strings
// because JSON has no NaN or infinity and rel_error can be either.
type record struct {
	Integral   string `json:"integral"`
	AbsErr     string `json:"abs_error"`
	RelErr     string `json:"rel_error"`
	ElapsedNS  int64  `json:"elapsed_ns"`
	State      string `json:"state"`
	Iterations int    `json:"iterations"`
	XSteps     int    `json:"xsteps"`
	YSteps     int    `json:"ysteps"`
	StoredAt   string `json:"stored_at"`
}

func encode(res quadrature.Result, now time.Time) ([]byte, error) {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return json.Marshal(record{
		Integral:   f(res.Integral),
		AbsErr:     f(res.AbsErr),
		RelErr:     f(res.RelErr),
		ElapsedNS:  int64(res.Elapsed),
		State:      res.State.String(),
		Iterations: res.Iterations,
		XSteps:     res.Resolution.XSteps,
		YSteps:     res.Resolution.YSteps,
		StoredAt:   now.UTC().Format(time.RFC3339Nano),
	})
}

func decode(data []byte) (quadrature.Result, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return quadrature.Result{}, fmt.Errorf("decoding cached result: %w", err)
	}

	var floats [3]float64
	for i, s := range []string{rec.Integral, rec.AbsErr, rec.RelErr} {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return quadrature.Result{}, fmt.Errorf("decoding cached result: %w", err)
		}
		floats[i] = v
	}
	state, err := quadrature.ParseState(rec.State)
	if err != nil {
		return quadrature.Result{}, fmt.Errorf("decoding cached result: %w", err)
	}

	return quadrature.Result{
		Integral:   floats[0],
		AbsErr:     floats[1],
		RelErr:     floats[2],
		Elapsed:    time.Duration(rec.ElapsedNS),
		State:      state,
		Iterations: rec.Iterations,
		Resolution: quadrature.Resolution{XSteps: rec.XSteps, YSteps: rec.YSteps},
	}, nil
}
