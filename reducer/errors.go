// File: errors.go — sentinel errors reducer callers branch on.
package reducer

import "errors"

// ErrComponentTooLarge is returned by the per-component matching test when
// a living-but-inactive component exceeds
// config.Params.MaxEnumeratedComponentSize: brute-force matching
// enumeration over it is not attempted. Reduce does not return it; it logs
// and skips such a component, leaving it untouched.
var ErrComponentTooLarge = errors.New("reducer: component exceeds the enumerable size bound")
