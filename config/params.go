// File: params.go — resolver tuning parameters.
package config

// Params collects the numeric thresholds and feature toggles that shape a
// single resolver run: NOE-to-structure distance radii, symmetry and
// clustering tolerances, and the knobs that trade completeness for
// tractability when the symmetrization graph or the enumerator would
// otherwise blow up.
//
// A zero-value Params is not usable; construct one with New, which always
// starts from Default and applies the given options on top.
type Params struct {
	// Radius is the maximum structural distance, in angstroms, at which an
	// ordinary methyl pair may satisfy a distance constraint.
	Radius float64

	// AddedRadius is the distance threshold applied instead of Radius when
	// either methyl in a candidate pair was synthetically added to the
	// structure rather than resolved from a real coordinate.
	AddedRadius float64

	// ShortRadius is the distance threshold applied instead of Radius (and
	// AddedRadius) when either NOE of an edge is short-range.
	ShortRadius float64

	// SymCTol and SymHTol bound how far apart two carbon (resp. hydrogen)
	// chemical shifts may be and still be treated as the same peak when
	// testing NOE reciprocity.
	SymCTol float64
	SymHTol float64

	// ClsCTol and ClsHTol bound chemical-shift closeness when clustering an
	// NOE against a candidate signature.
	ClsCTol float64
	ClsHTol float64

	// MaxCompSize is the largest living-graph component size, in vertices,
	// that set_activity_level will leave fully active; larger components
	// are deactivated until further reduction shrinks them.
	MaxCompSize int

	// MaxEnumeratedComponentSize bounds how large a component the
	// symmetrization reducer will brute-force enumerate matchings for.
	// Components above this size return ErrComponentTooLarge rather than
	// enumerating an intractable number of candidate matchings.
	MaxEnumeratedComponentSize int

	// ForceSV, when true and a signature's support-set options are
	// non-empty, restricts that signature's assignment domain to those
	// options instead of deriving it from color compatibility. Checked
	// before ForceASG: a signature with both options and an asg set under
	// ForceSV and ForceASG takes its domain from options.
	ForceSV bool

	// ForceASG, when true and a signature's known assignment set is
	// non-empty, restricts that signature's domain to that set. Only
	// consulted when ForceSV did not already supply a non-empty domain.
	ForceASG bool
}

// Default returns the resolver's baseline tuning, matching the values the
// reference toolchain shipped with.
func Default() Params {
	return Params{
		Radius:                     10.0,
		AddedRadius:                10.0,
		ShortRadius:                10.0,
		SymCTol:                    0.15,
		SymHTol:                    0.02,
		ClsCTol:                    0.15,
		ClsHTol:                    0.02,
		MaxCompSize:                3,
		MaxEnumeratedComponentSize: 12,
		ForceASG:                   false,
		ForceSV:                    false,
	}
}

// Option configures a Params during construction.
type Option func(*Params)

// New builds a Params starting from Default and applying opts in order.
func New(opts ...Option) Params {
	p := Default()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

func WithRadius(r float64) Option { return func(p *Params) { p.Radius = r } }

func WithAddedRadius(r float64) Option { return func(p *Params) { p.AddedRadius = r } }

func WithShortRadius(r float64) Option { return func(p *Params) { p.ShortRadius = r } }

func WithSymTolerances(cTol, hTol float64) Option {
	return func(p *Params) {
		p.SymCTol = cTol
		p.SymHTol = hTol
	}
}

func WithClsTolerances(cTol, hTol float64) Option {
	return func(p *Params) {
		p.ClsCTol = cTol
		p.ClsHTol = hTol
	}
}

func WithMaxCompSize(n int) Option { return func(p *Params) { p.MaxCompSize = n } }

func WithMaxEnumeratedComponentSize(n int) Option {
	return func(p *Params) { p.MaxEnumeratedComponentSize = n }
}

func WithForceASG(b bool) Option { return func(p *Params) { p.ForceASG = b } }

func WithForceSV(b bool) Option { return func(p *Params) { p.ForceSV = b } }
