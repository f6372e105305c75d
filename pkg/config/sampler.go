package config

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/grafo/pkg/errors"
)

// Supported values of the "dist" key.
const (
	DistGauss   = "gauss"
	DistNormal  = "normal"
	DistUniform = "uniform"
	DistRandInt = "randint"
	DistChoice  = "choice"
)

// Distribution is the declarative form of a sampler:
//
//	{ dist = "gauss", mean = 15, stddev = 3, round = true, floor = 1 }
//
// draws round(gauss(15, 3)) and lifts anything below 1 up to 1.
type Distribution struct {
	Dist   string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Values []any

	Round bool     // round half away from zero and return an int
	Floor *float64 // lower clamp applied after rounding
	Ceil  *float64 // upper clamp applied after rounding
}

// isDistribution reports whether a decoded table describes a sampler.
func isDistribution(m map[string]any) bool {
	_, ok := m["dist"].(string)
	return ok
}

// parseDistribution reads a decoded table. path is only used in errors.
func parseDistribution(path string, m map[string]any) (Distribution, error) {
	var d Distribution
	d.Dist = strings.ToLower(m["dist"].(string))

	num := func(key string) (float64, bool, error) {
		v, ok := m[key]
		if !ok {
			return 0, false, nil
		}
		f, ok := toFloat(v)
		if !ok {
			return 0, false, errors.Config(path+"."+key, "want number, got %T", v)
		}
		return f, true, nil
	}

	var err error
	var has bool
	if d.Mean, _, err = num("mean"); err != nil {
		return d, err
	}
	if d.StdDev, has, err = num("stddev"); err != nil {
		return d, err
	} else if !has {
		d.StdDev = 1
	}
	if d.Min, _, err = num("min"); err != nil {
		return d, err
	}
	if d.Max, _, err = num("max"); err != nil {
		return d, err
	}
	if f, ok, err := num("floor"); err != nil {
		return d, err
	} else if ok {
		d.Floor = &f
	}
	if f, ok, err := num("ceil"); err != nil {
		return d, err
	} else if ok {
		d.Ceil = &f
	}
	if r, ok := m["round"]; ok {
		b, ok := r.(bool)
		if !ok {
			return d, errors.Config(path+".round", "want bool, got %T", r)
		}
		d.Round = b
	}
	if vs, ok := m["values"]; ok {
		list, ok := vs.([]any)
		if !ok {
			return d, errors.Config(path+".values", "want list, got %T", vs)
		}
		d.Values = list
	}

	return d, d.validate(path)
}

func (d Distribution) validate(path string) error {
	switch d.Dist {
	case DistGauss, DistNormal:
		if d.StdDev < 0 {
			return errors.Config(path+".stddev", "must not be negative")
		}
	case DistUniform, DistRandInt:
		if d.Max < d.Min {
			return errors.Config(path, "max %v is below min %v", d.Max, d.Min)
		}
	case DistChoice:
		if len(d.Values) == 0 {
			return errors.Config(path+".values", "choice needs at least one value")
		}
	default:
		return errors.Config(path+".dist", "unknown distribution %q", d.Dist)
	}
	return nil
}

// Sampler binds d to rng. Every call draws one value.
func (d Distribution) Sampler(rng *rand.Rand) Sampler {
	return func() any {
		switch d.Dist {
		case DistChoice:
			return d.Values[rng.IntN(len(d.Values))]
		case DistRandInt:
			lo, hi := int(d.Min), int(d.Max)
			return d.shape(float64(lo + rng.IntN(hi-lo+1)))
		case DistUniform:
			return d.shape(d.Min + rng.Float64()*(d.Max-d.Min))
		default:
			return d.shape(d.Mean + rng.NormFloat64()*d.StdDev)
		}
	}
}

func (d Distribution) shape(v float64) any {
	if d.Round || d.Dist == DistRandInt {
		v = math.Round(v)
	}
	if d.Floor != nil {
		v = max(v, *d.Floor)
	}
	if d.Ceil != nil {
		v = min(v, *d.Ceil)
	}
	if d.Round || d.Dist == DistRandInt {
		return int(v)
	}
	return v
}
