package config

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/grafo/pkg/errors"
)

// Supported file syntaxes.
const (
	SyntaxTOML = "toml"
	SyntaxYAML = "yaml"
)

// Example is a complete configuration: four groups of purple and blue
// nodes with Gaussian brightness jitter, linked densely inside each group
// and sparsely across groups.
//
//go:embed example.toml
var Example []byte

// Load reads a TOML or YAML file, picking the syntax from its extension.
// Samplers in the file draw from rng.
func Load(path string, rng *rand.Rand) (Node, error) {
	syntax, err := SyntaxFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, syntax, rng)
}

// SyntaxFor maps a file extension to a syntax.
func SyntaxFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SyntaxTOML, nil
	case ".yaml", ".yml":
		return SyntaxYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported config file %q (want .toml, .yaml or .yml)", path)
	}
}

// Parse decodes data in the given syntax into a configuration tree.
func Parse(data []byte, syntax string, rng *rand.Rand) (Node, error) {
	raw := map[string]any{}
	switch syntax {
	case SyntaxTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse TOML")
		}
	case SyntaxYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse YAML")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config syntax %q", syntax)
	}
	return FromAny(raw, rng)
}

// FromAny converts decoded TOML, YAML or JSON data into a tree. Tables with a
// "dist" key become samplers bound to rng; a nil rng gets a randomly seeded
// source.
func FromAny(v any, rng *rand.Rand) (Node, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return fromAny("", v, rng)
}

func fromAny(path string, v any, rng *rand.Rand) (Node, error) {
	switch t := v.(type) {
	case Node:
		return t, nil
	case map[string]any:
		if isDistribution(t) {
			d, err := parseDistribution(path, t)
			if err != nil {
				return nil, err
			}
			return Leaf{Value: d.Sampler(rng)}, nil
		}
		out := make(Map, len(t))
		for k, child := range t {
			n, err := fromAny(join(path, k), child, rng)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, child := range t {
			m[fmt.Sprint(k)] = child
		}
		return fromAny(path, m, rng)
	case []map[string]any:
		out := make(Seq, len(t))
		for i, child := range t {
			n, err := fromAny(join(path, strconv.Itoa(i)), child, rng)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []any:
		out := make(Seq, len(t))
		for i, child := range t {
			n, err := fromAny(join(path, strconv.Itoa(i)), child, rng)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return Lit(v), nil
	}
}

func join(path, seg string) string {
	if path == "" {
		return seg
	}
	return path + "." + seg
}
