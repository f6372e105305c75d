package config

import (
	"fmt"
	"math"

	"github.com/matzehuels/grafo/pkg/errors"
)

// Float resolves path and coerces the result to float64.
// A missing path or a non-numeric value is an INVALID_CONFIG error.
func Float(root Node, path string) (float64, error) {
	v, ok := Resolve(root, path)
	if !ok {
		return 0, errors.Config(path, "missing")
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, errors.Config(path, "want number, got %T", v)
	}
	return f, nil
}

// Int resolves path and truncates the result toward zero.
func Int(root Node, path string) (int, error) {
	f, err := Float(root, path)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Config(path, "want finite number, got %v", f)
	}
	return int(f), nil
}

// String resolves path to a string value.
func String(root Node, path string) (string, error) {
	v, ok := Resolve(root, path)
	if !ok {
		return "", errors.Config(path, "missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Config(path, "want string, got %T", v)
	}
	return s, nil
}

// StringMap resolves a flat table into key/value strings. Leaves are
// evaluated once each and non-string scalars are formatted with %v, so
// `overlap = false` arrives as "false". A missing path yields an empty map.
func StringMap(root Node, path string) (map[string]string, error) {
	v, ok := Resolve(root, path)
	if !ok {
		return map[string]string{}, nil
	}
	m, ok := v.(Map)
	if !ok {
		return nil, errors.Config(path, "want table, got %T", v)
	}
	out := make(map[string]string, len(m))
	for _, k := range m.Keys() {
		child := m[k]
		if _, ok := child.(Leaf); !ok {
			return nil, errors.Config(path+"."+k, "want scalar, got %T", child)
		}
		out[k] = fmt.Sprint(Get(child))
	}
	return out, nil
}

// Has reports whether path resolves to anything.
func Has(root Node, path string) bool {
	_, ok := Lookup(root, path)
	return ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
