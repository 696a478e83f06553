// Package lattice samples a connection on a regular grid of plaquettes in a
// coordinate 2-plane of the base: per-cell Wilson loops, the midpoint-rule
// first-Chern flux, and connected regions of significant flux.
//
// What:
//
//   - Lattice cuts a Plane (directions μ,ν, origin, extent, NX×NY cells) into
//     row-major plaquettes, idx = y*Width + x.
//   - Plaquettes measures every cell: Wilson loop around its boundary,
//     Tr F_{μν}/2π at the centre and that density times the cell area.
//   - SumFlux and TotalFlux integrate the first Chern density over the plane.
//   - Regions and FluxRegions group cells with |density| ≥ threshold into
//     connected components.
//
// Complexity:
//
//   - Plaquettes: O(W×H×steps) field evaluations, Memory: O(W×H).
//   - Regions:    O(W×H×d), Memory: O(W×H)    (d = number of neighbours, 4 or 8).
//
// Options:
//
//   - Options.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//   - Options.Transport: transport options for the per-cell holonomy.
//   - Options.Logger: debug logging of sweeps; nil means no-op.
//
// Errors:
//
//   - ErrNilConnection, ErrEmptyLattice, ErrPlane, ErrCellSize from New.
//   - ErrSweepSize when Regions receives a slice that is not a sweep.
//
// A Lattice is immutable and recomputes on every call; reuse the result of
// Plaquettes when both flux and regions are needed.
package lattice
