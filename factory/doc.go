// Package factory builds canonical bundles and connections.
//
// Bundles are globally trivial products of a base manifold with a typical
// fibre; the constructors only choose the fibre dimension, type and
// structure group. Connections are concrete connection.Field
// implementations with content fingerprints.
package factory
