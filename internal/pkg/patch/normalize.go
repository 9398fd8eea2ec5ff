package patch

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/suggestbox/suggestbox/internal/pkg/rules"
)

// Bool coerces v by truthiness: null, false, 0 and "" are false, anything else is true.
func Bool(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case string:
		return x != "", nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return true, nil
		}
		return f != 0 && !math.IsNaN(f), nil
	case float64:
		return x != 0 && !math.IsNaN(x), nil
	case int:
		return x != 0, nil
	case int32:
		return x != 0, nil
	case int64:
		return x != 0, nil
	default:
		return true, nil
	}
}

// Int64 accepts integral JSON numbers and numeric strings.
func Int64(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%s is not an integer", x)
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(x)
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", x)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected an integer, got %T", v)
	}
}

// floatToInt64 rejects fractions and anything outside the int64 range, which
// a plain conversion would wrap.
func floatToInt64(f float64) (any, error) {
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is out of range", f)
	}
	return int64(f), nil
}

// Text returns a normalizer that requires a string within r's bounds.
func Text(r rules.Rule) func(v any) (any, error) {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string for %s", r.Label)
		}
		if err := r.Check(s); err != nil {
			return nil, err
		}
		return s, nil
	}
}
