// Package scenario reads YAML descriptions of a gauge configuration (base,
// bundle, connection, sample points, loops and an optional lattice) and
// materialises them into library objects.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind indicates an unrecognised bundle, connection, group or loop kind.
	ErrUnknownKind = errors.New("scenario: unknown kind")
	// ErrMissing indicates a required field left empty.
	ErrMissing = errors.New("scenario: missing field")
	// ErrEmpty indicates a file without a YAML document.
	ErrEmpty = errors.New("scenario: empty document")
)

// Scenario is the top-level document.
type Scenario struct {
	Name       string         `yaml:"name"`
	Base       BaseSpec       `yaml:"base"`
	Bundle     BundleSpec     `yaml:"bundle"`
	Connection ConnectionSpec `yaml:"connection"`
	Points     [][]float64    `yaml:"points,omitempty"`
	Loops      []LoopSpec     `yaml:"loops,omitempty"`
	Lattice    *LatticeSpec   `yaml:"lattice,omitempty"`
}

// BaseSpec describes the base manifold. Coordinates default to x0..x{n-1}.
type BaseSpec struct {
	Name        string   `yaml:"name,omitempty"`
	Dimension   int      `yaml:"dimension"`
	Coordinates []string `yaml:"coordinates,omitempty"`
}

// BundleSpec selects a canonical bundle by kind: tangent, cotangent,
// principal-u1, principal-su2, principal-su3, line or trivial. Rank, Type
// and Group apply to trivial only.
type BundleSpec struct {
	Kind  string `yaml:"kind"`
	Rank  int    `yaml:"rank,omitempty"`
	Type  string `yaml:"type,omitempty"`
	Group string `yaml:"group,omitempty"`
}

// ConnectionSpec selects a canonical connection: flat, constant (one
// matrix per base direction in Components) or instanton (size Rho).
type ConnectionSpec struct {
	Kind       string        `yaml:"kind"`
	Components [][][]float64 `yaml:"components,omitempty"`
	Rho        float64       `yaml:"rho,omitempty"`
}

// LoopSpec is a closed loop in the (Mu,Nu) plane: a rectangle of
// Width×Height with corner Origin, or a circle of Radius centred on Origin.
type LoopSpec struct {
	Shape  string    `yaml:"shape,omitempty"`
	Origin []float64 `yaml:"origin"`
	Mu     int       `yaml:"mu"`
	Nu     int       `yaml:"nu"`
	Width  float64   `yaml:"width,omitempty"`
	Height float64   `yaml:"height,omitempty"`
	Radius float64   `yaml:"radius,omitempty"`
}

// LatticeSpec describes a plaquette sweep.
type LatticeSpec struct {
	Mu           int       `yaml:"mu"`
	Nu           int       `yaml:"nu"`
	Origin       []float64 `yaml:"origin"`
	Width        float64   `yaml:"width"`
	Height       float64   `yaml:"height"`
	NX           int       `yaml:"nx"`
	NY           int       `yaml:"ny"`
	Threshold    float64   `yaml:"threshold,omitempty"`
	Connectivity int       `yaml:"connectivity,omitempty"`
}

// Parse decodes one YAML document, rejecting unknown fields.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("scenario: %w", err)
	}
	s.Bundle.Kind = strings.ToLower(strings.TrimSpace(s.Bundle.Kind))
	s.Connection.Kind = strings.ToLower(strings.TrimSpace(s.Connection.Kind))
	if s.Base.Dimension == 0 {
		return nil, fmt.Errorf("base.dimension: %w", ErrMissing)
	}
	if s.Bundle.Kind == "" {
		return nil, fmt.Errorf("bundle.kind: %w", ErrMissing)
	}
	if s.Connection.Kind == "" {
		s.Connection.Kind = "flat"
	}

	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return Parse(data)
}

// Encode renders s as YAML.
func (s *Scenario) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return buf.Bytes(), nil
}
