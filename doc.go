// Package layout provides a constraint-based geometry engine for a
// retained-mode widget tree.
//
// The engine arranges externally owned items: each item exposes a size hint,
// a minimum size and its current rendering area, and receives a concrete
// rectangle back after every recompute pass. Three layout flavors share the
// same base registry and fair-allocation algorithm:
//   - LinearLayout: one axis, logical ordering independent of allocation ids
//   - GridLayout: 2-D cell placement with per-line constraints and spanning
//   - SelectorLayout: stacked items, one active item visible at a time
//
// All layouts are safe for concurrent use. Geometry is computed under an
// instance lock and pushed to items only after the lock is released, so a
// collaborator may trigger a nested layout pass from its geometry setter.
package layout
