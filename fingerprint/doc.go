// Package fingerprint derives deterministic structural identities for the
// engine's immutable entities.
//
// A fingerprint is the 64-bit xxhash of a canonical, length-prefixed
// encoding of an entity kind and its field tuple, rendered as 16 lowercase
// hex digits. It identifies configuration, not secrets: it is stable across
// runs and platforms and carries no cryptographic guarantee.
//
// Supported part types: string, bool, int, float64 (by IEEE-754 bits, so
// 0 and -0 differ and NaN payloads are preserved), []string, []int,
// []float64, [][]float64 and Fingerprinter (nested by its own fingerprint).
package fingerprint
