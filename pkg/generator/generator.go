package generator

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grafo/pkg/color"
	"github.com/matzehuels/grafo/pkg/config"
	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
	"github.com/matzehuels/grafo/pkg/observability"
)

// Configuration paths read by the generator.
const (
	KeyGroups              = "groups"
	KeySharedGroup         = "group"
	KeyBaseColor           = "basecolor"
	KeyBrightnessOffset    = "brightness_offset"
	KeyNodeDiameter        = "node_diameter"
	KeyNumberOfNodes       = "number_of_nodes"
	KeyIntralinksPerNode   = "intralinks_per_node"
	KeyExtralinksPerNode   = "extralinks_per_node"
	KeyNodesWithExtralinks = "nodes_with_extralinks"
	KeyEdgeColor           = "edge.color"
	KeyGraphvizGraph       = "graphviz.graph"
	KeyGraphvizNode        = "graphviz.node"
	KeyGraphvizEdge        = "graphviz.edge"
)

const (
	// BorderOffset is added to a node's fill value to get its border color.
	BorderOffset = -0.4

	// DefaultEdgeColor is used when edge.color is not configured.
	DefaultEdgeColor = "#000000"

	// EdgeColorAverage asks for the RGB mean of both endpoints' fill colors.
	EdgeColorAverage = "average"
)

// Link kinds reported to observability hooks.
const (
	LinkIntra = "intra"
	LinkInter = "inter"
)

// Stats summarizes one generation run.
type Stats struct {
	Groups     int
	Nodes      int
	IntraLinks int
	InterLinks int
	Skipped    int
}

// Result is the outcome of a successful run.
type Result struct {
	Graph *graph.Graph
	Stats Stats
}

// Generator turns a configuration tree into a graph. It is not safe for
// concurrent use because it shares one random source across runs.
type Generator struct {
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a [Generator].
type Option func(*Generator)

// WithLogger sets the logger receiving per-phase debug records.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a generator drawing from rng. A nil rng gets a randomly
// seeded source.
func New(rng *rand.Rand, opts ...Option) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Generator{rng: rng, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// group is the in-flight state of one configured group.
type group struct {
	index int
	opts  config.Node
	nodes []graph.NodeID
}

// run holds the state of a single Generate call.
type run struct {
	*Generator
	ctx    context.Context
	root   config.Node
	g      *graph.Graph
	groups []*group
	stats  Stats
}

// Generate builds a graph from root. On any error no graph is returned.
func (gen *Generator) Generate(ctx context.Context, root config.Node) (res *Result, err error) {
	start := time.Now()
	r := &run{Generator: gen, ctx: ctx, root: root, g: graph.New()}

	defer func() {
		observability.Generator().OnGenerateComplete(ctx, r.g.NodeCount(), r.g.EdgeCount(), time.Since(start), err)
	}()

	if err := r.loadGroups(); err != nil {
		return nil, err
	}
	observability.Generator().OnGenerateStart(ctx, len(r.groups))

	phases := []struct {
		name string
		fn   func() error
	}{
		{"nodes", r.makeNodes},
		{"intralinks", r.makeIntragroupLinks},
		{"extralinks", r.makeIntergroupLinks},
		{"assemble", r.assemble},
	}
	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.fn(); err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		gen.logger.Debug("phase done", "phase", p.name, "nodes", r.g.NodeCount(), "edges", r.g.EdgeCount())
	}

	r.stats.Groups = len(r.groups)
	r.stats.Nodes = r.g.NodeCount()
	return &Result{Graph: r.g, Stats: r.stats}, nil
}

func (r *run) loadGroups() error {
	n, ok := config.Lookup(r.root, KeyGroups)
	if !ok {
		return errors.Config(KeyGroups, "missing")
	}
	seq, ok := n.(config.Seq)
	if !ok {
		return errors.Config(KeyGroups, "want list of tables, got %T", n)
	}
	for i, el := range seq {
		m, ok := el.(config.Map)
		if !ok {
			return errors.Config(groupPath(i), "want table, got %T", el)
		}
		// Rooting the table under its own path makes errors name it in full.
		r.groups = append(r.groups, &group{index: i, opts: config.Map{groupPath(i): m}})
	}
	r.logger.Debug("groups loaded", "groups", len(r.groups))
	return nil
}

func groupPath(i int) string {
	return fmt.Sprintf("%s[%d]", KeyGroups, i)
}

// lookup finds the node for a per-group option, preferring groups[i].key
// over group.key.
func (r *run) lookup(gr *group, key string) (config.Node, string, bool) {
	path := groupPath(gr.index) + "." + key
	if config.Has(gr.opts, path) {
		return gr.opts, path, true
	}
	path = KeySharedGroup + "." + key
	if config.Has(r.root, path) {
		return r.root, path, true
	}
	return nil, "", false
}

func (r *run) float(gr *group, key string) (float64, bool, error) {
	root, path, ok := r.lookup(gr, key)
	if !ok {
		return 0, false, nil
	}
	f, err := config.Float(root, path)
	return f, true, err
}

func (r *run) count(gr *group, key string) (int, error) {
	root, path, ok := r.lookup(gr, key)
	if !ok {
		return 0, nil
	}
	return config.Int(root, path)
}

func (r *run) makeNodes() error {
	for _, gr := range r.groups {
		root, path, ok := r.lookup(gr, KeyNumberOfNodes)
		if !ok {
			return errors.Config(groupPath(gr.index)+"."+KeyNumberOfNodes, "missing")
		}
		n, err := config.Int(root, path)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			id, err := r.makeNode(gr, i)
			if err != nil {
				return err
			}
			gr.nodes = append(gr.nodes, id)
		}
		r.logger.Debug("group populated", "group", gr.index, "nodes", len(gr.nodes))
	}
	return nil
}

func (r *run) makeNode(gr *group, i int) (graph.NodeID, error) {
	root, path, ok := r.lookup(gr, KeyBaseColor)
	if !ok {
		return 0, errors.Config(groupPath(gr.index)+"."+KeyBaseColor, "missing")
	}
	base, err := config.String(root, path)
	if err != nil {
		return 0, err
	}
	hsv, err := color.RGBToHSV(base)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	offset, _, err := r.float(gr, KeyBrightnessOffset)
	if err != nil {
		return 0, err
	}
	fill := color.AdjustBrightness(hsv, offset)
	border := color.AdjustBrightness(fill, BorderOffset)

	attrs := graph.Attrs{
		graph.AttrLabel:     "",
		graph.AttrFillColor: color.HSVToRGB(fill),
		graph.AttrColor:     color.HSVToRGB(border),
	}
	if d, ok, err := r.diameter(gr); err != nil {
		return 0, err
	} else if ok {
		s := strconv.FormatFloat(d, 'f', -1, 64)
		attrs[graph.AttrWidth] = s
		attrs[graph.AttrHeight] = s
	}

	id, err := r.g.AddNode(fmt.Sprintf("g%d_n%d", gr.index, i))
	if err != nil {
		return 0, err
	}
	r.g.Node(id).Attrs.Merge(attrs)
	return id, nil
}

// diameter reads node_diameter. Samplers are drawn until they yield a
// non-negative value; a negative literal is a configuration error.
func (r *run) diameter(gr *group) (float64, bool, error) {
	root, path, ok := r.lookup(gr, KeyNodeDiameter)
	if !ok {
		return 0, false, nil
	}
	n, _ := config.Lookup(root, path)
	sampled := config.IsSampler(n)
	for {
		d, err := config.Float(root, path)
		if err != nil {
			return 0, false, err
		}
		if d >= 0 {
			return d, true, nil
		}
		if !sampled {
			return 0, false, errors.Config(path, "must not be negative, got %v", d)
		}
	}
}

func (r *run) makeIntragroupLinks() error {
	for _, gr := range r.groups {
		for pos, from := range gr.nodes {
			links, err := r.count(gr, KeyIntralinksPerNode)
			if err != nil {
				return err
			}
			for range links {
				if len(gr.nodes) < 2 {
					r.skip(LinkIntra, gr, "no other node in group")
					continue
				}
				to := gr.nodes[r.pickOther(len(gr.nodes), pos)]
				if err := r.link(from, to); err != nil {
					return err
				}
				r.stats.IntraLinks++
			}
		}
	}
	return nil
}

func (r *run) makeIntergroupLinks() error {
	for pos, gr := range r.groups {
		picks, err := r.count(gr, KeyNodesWithExtralinks)
		if err != nil {
			return err
		}
		for range picks {
			if len(gr.nodes) == 0 {
				r.skip(LinkInter, gr, "group has no nodes")
				continue
			}
			from := gr.nodes[r.rng.IntN(len(gr.nodes))]
			links, err := r.count(gr, KeyExtralinksPerNode)
			if err != nil {
				return err
			}
			for range links {
				other := r.pickOtherGroup(pos)
				if other == nil {
					r.skip(LinkInter, gr, "no other group with nodes")
					continue
				}
				to := other.nodes[r.rng.IntN(len(other.nodes))]
				if err := r.link(from, to); err != nil {
					return err
				}
				r.stats.InterLinks++
			}
		}
	}
	return nil
}

// pickOther returns a uniformly random index in [0, n) other than self.
// n must be at least 2.
func (r *run) pickOther(n, self int) int {
	i := r.rng.IntN(n - 1)
	if i >= self {
		i++
	}
	return i
}

// pickOtherGroup returns a uniformly random non-empty group other than the
// one at self, or nil if there is none.
func (r *run) pickOtherGroup(self int) *group {
	candidates := make([]*group, 0, len(r.groups))
	for i, gr := range r.groups {
		if i != self && len(gr.nodes) > 0 {
			candidates = append(candidates, gr)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[r.rng.IntN(len(candidates))]
}

func (r *run) skip(kind string, gr *group, reason string) {
	r.stats.Skipped++
	r.logger.Debug("link skipped", "kind", kind, "group", gr.index, "reason", reason)
	observability.Generator().OnLinkSkipped(r.ctx, kind, gr.index)
}

func (r *run) link(from, to graph.NodeID) error {
	c, err := r.edgeColor(from, to)
	if err != nil {
		return err
	}
	return r.g.AddEdge(from, to, graph.Attrs{graph.AttrColor: c})
}

func (r *run) edgeColor(from, to graph.NodeID) (string, error) {
	c := DefaultEdgeColor
	if config.Has(r.root, KeyEdgeColor) {
		s, err := config.String(r.root, KeyEdgeColor)
		if err != nil {
			return "", err
		}
		if s != "" {
			c = s
		}
	}
	if c == EdgeColorAverage {
		return color.Average(r.g.Node(from).Attrs[graph.AttrFillColor], r.g.Node(to).Attrs[graph.AttrFillColor])
	}
	if err := errors.ValidateHexColor(c); err != nil {
		return "", fmt.Errorf("%s: %w", KeyEdgeColor, err)
	}
	return strings.ToLower(c), nil
}

func (r *run) assemble() error {
	blocks := []struct {
		path  string
		attrs graph.Attrs
	}{
		{KeyGraphvizGraph, r.g.GraphAttrs},
		{KeyGraphvizNode, r.g.NodeAttrs},
		{KeyGraphvizEdge, r.g.EdgeAttrs},
	}
	for _, b := range blocks {
		m, err := config.StringMap(r.root, b.path)
		if err != nil {
			return err
		}
		b.attrs.Merge(m)
	}
	return nil
}
