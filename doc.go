// Package gauge is a numerical toolkit for connections on fibre bundles:
// gauge potentials, their curvature, parallel transport and holonomy, and
// the characteristic classes built from them.
//
// The library is organised bottom-up:
//
//	matrix/      dense row-major matrices, linear algebra and Lie brackets
//	fingerprint/ stable content hashes for every value object
//	manifold/    base spaces (dimension, coordinate labels, charts)
//	liegroup/    structure groups U(1), SU(2), SU(3), GL(n) and exp
//	bundle/      fibres, fibre points, bundles and sections
//	connection/  potentials A_μ, curvature F_{μν}, D_μ s, gauge transforms
//	curvature/   the curvature 2-form, F² contractions, Yang–Mills density
//	transport/   path-ordered transport, holonomy, Wilson loops
//	chern/       first and second Chern densities, Chern character
//	factory/     canonical bundles and connections (flat, constant, instanton)
//	lattice/     plaquette sweeps, integrated flux and flux regions
//
// The gaugectl command (cmd/gaugectl) evaluates YAML scenarios against these
// packages.
//
// Quick example: the holonomy of the flat connection on the principal SU(2)
// bundle over R² is the identity,
//
//	base, _ := manifold.Euclidean(2)
//	b, _ := factory.PrincipalSU2(base)
//	conn, _ := factory.FlatConnection(b)
//	tr, _ := transport.New(conn)
//	loop, _ := transport.Rectangle([]float64{0, 0}, 0, 1, 1, 1)
//	w, _ := tr.WilsonLoop([]float64{0, 0}, loop) // 1
//
//	go get github.com/katalvlaran/gauge
package gauge
