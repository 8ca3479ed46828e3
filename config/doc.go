// Package config holds the tunable parameters shared across the resolver
// pipeline: structural distance radii, NOE symmetry/clustering tolerances,
// and the component-size bounds that keep the symmetrization reducer and
// clustering CSP tractable.
//
// Construction follows the functional-options convention used throughout
// this module's graph primitives (see core.GraphOption): Default returns
// the baseline values, and New applies zero or more Option values on top.
package config
