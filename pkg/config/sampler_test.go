package config

import (
	"math"
	"testing"
)

func ptr(f float64) *float64 { return &f }

func TestDistribution_Gauss(t *testing.T) {
	d := Distribution{Dist: DistGauss, Mean: 15, StdDev: 3}
	s := d.Sampler(seeded())

	const n = 4000
	sum := 0.0
	for range n {
		sum += s().(float64)
	}
	if mean := sum / n; math.Abs(mean-15) > 0.3 {
		t.Errorf("sample mean = %v, want about 15", mean)
	}
}

func TestDistribution_RoundAndFloor(t *testing.T) {
	// max(1, round(gauss(2, 2)))
	d := Distribution{Dist: DistGauss, Mean: 2, StdDev: 2, Round: true, Floor: ptr(1)}
	s := d.Sampler(seeded())

	for range 500 {
		v, ok := s().(int)
		if !ok {
			t.Fatal("rounded sampler should produce int")
		}
		if v < 1 {
			t.Fatalf("sample %d below floor", v)
		}
	}
}

func TestDistribution_Ceil(t *testing.T) {
	d := Distribution{Dist: DistUniform, Min: 0, Max: 10, Ceil: ptr(2)}
	s := d.Sampler(seeded())

	for range 200 {
		if v := s().(float64); v > 2 {
			t.Fatalf("sample %v above ceil", v)
		}
	}
}

func TestDistribution_RandInt(t *testing.T) {
	d := Distribution{Dist: DistRandInt, Min: 2, Max: 4}
	s := d.Sampler(seeded())

	seen := map[int]bool{}
	for range 300 {
		v := s().(int)
		if v < 2 || v > 4 {
			t.Fatalf("randint sample %d outside [2, 4]", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("randint covered %v, want all of 2..4", seen)
	}
}

func TestDistribution_Choice(t *testing.T) {
	d := Distribution{Dist: DistChoice, Values: []any{"#ff0000", "#00ff00"}}
	s := d.Sampler(seeded())

	for range 50 {
		v := s().(string)
		if v != "#ff0000" && v != "#00ff00" {
			t.Fatalf("choice sample %q not in values", v)
		}
	}
}

func TestDistribution_Reproducible(t *testing.T) {
	d := Distribution{Dist: DistNormal, Mean: 0, StdDev: 1}
	a, b := d.Sampler(seeded()), d.Sampler(seeded())

	for range 20 {
		if a() != b() {
			t.Fatal("samplers with equal seeds diverged")
		}
	}
}

func TestParseDistribution_Defaults(t *testing.T) {
	d, err := parseDistribution("x", map[string]any{"dist": "Gauss"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Dist != DistGauss || d.Mean != 0 || d.StdDev != 1 {
		t.Errorf("defaults = %+v, want gauss(0, 1)", d)
	}
}
