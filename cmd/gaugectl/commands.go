package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gauge/chern"
	"github.com/katalvlaran/gauge/curvature"
	"github.com/katalvlaran/gauge/lattice"
	"github.com/katalvlaran/gauge/matrix"
)

func (a *app) runCurvature(cmd *cobra.Command, _ []string) error {
	s, conn, err := a.load()
	if err != nil {
		return err
	}
	form, err := curvature.New(conn)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range s.Points {
		comps, err := form.Components(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "point %v\n", p)
		for _, c := range comps {
			fmt.Fprintf(out, "  F_%d%d = %v\n", c.Mu, c.Nu, c.F)
		}
		scalar, err := form.Scalar(p, nil)
		if err != nil {
			return err
		}
		ym, err := form.YangMillsDensity(p)
		if err != nil {
			return err
		}
		flat, err := conn.IsFlat(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  scalar %.6g  yang-mills %.6g  flat %t\n", scalar, ym, flat)
	}

	return nil
}

func (a *app) runHolonomy(cmd *cobra.Command, _ []string) error {
	s, conn, err := a.load()
	if err != nil {
		return err
	}
	tr, err := a.transporter(conn)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, l := range s.Loops {
		loop, err := l.Path()
		if err != nil {
			return fmt.Errorf("loop %d: %w", i, err)
		}
		start := loop(0)
		h, err := tr.Holonomy(start, loop)
		if err != nil {
			return fmt.Errorf("loop %d: %w", i, err)
		}
		trace, err := matrix.Trace(h)
		if err != nil {
			return fmt.Errorf("loop %d: %w", i, err)
		}
		w := trace / float64(conn.Rank())
		fmt.Fprintf(out, "loop %d (%s) at %v\n  holonomy %v\n  wilson %.6f\n", i, shape(l.Shape), start, h, w)
	}

	return nil
}

func shape(s string) string {
	if s == "" {
		return "rectangle"
	}

	return s
}

func (a *app) runChern(cmd *cobra.Command, _ []string) error {
	s, conn, err := a.load()
	if err != nil {
		return err
	}
	form, err := curvature.New(conn)
	if err != nil {
		return err
	}
	class, err := chern.New(form)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range s.Points {
		c1, err := class.FirstDensity(p)
		if err != nil {
			return err
		}
		c2, err := class.SecondNumber(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "point %v\n  c1 %.6g  c2 %.6g\n  ch", p, c1, c2)
		for order := 0; order <= chern.MaxOrder; order++ {
			v, err := class.Character(p, order)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, " %.6g", v)
		}
		fmt.Fprintln(out)
	}

	return nil
}

func (a *app) runLattice(cmd *cobra.Command, _ []string) error {
	s, conn, err := a.load()
	if err != nil {
		return err
	}
	if s.Lattice == nil {
		return fmt.Errorf("scenario %q has no lattice section", s.Name)
	}
	trOpts, err := a.settings.TransportOptions(a.logger)
	if err != nil {
		return err
	}
	lat, err := lattice.New(conn, s.Lattice.Plane(), lattice.Options{
		Conn: s.Lattice.Conn(), Transport: trOpts, Logger: a.logger,
	})
	if err != nil {
		return err
	}
	pqs, err := lat.Plaquettes()
	if err != nil {
		return err
	}
	total := lattice.SumFlux(pqs)
	regions, err := lat.Regions(pqs, s.Lattice.Threshold)
	if err != nil {
		return err
	}
	a.logger.Debug("lattice done", zap.Int("regions", len(regions)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "lattice %dx%d\n  total flux %.6g (∫Tr F %.6g)\n  regions %d\n",
		lat.Width, lat.Height, total, 2*math.Pi*total, len(regions))
	for i, r := range regions {
		fmt.Fprintf(out, "  region %d: %v\n", i, r)
	}

	return nil
}

func (a *app) runFingerprint(cmd *cobra.Command, _ []string) error {
	_, conn, err := a.load()
	if err != nil {
		return err
	}
	tr, err := a.transporter(conn)
	if err != nil {
		return err
	}
	form, err := curvature.New(conn)
	if err != nil {
		return err
	}
	class, err := chern.New(form)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "bundle     %s\n", conn.Bundle().Fingerprint())
	fmt.Fprintf(out, "connection %s\n", conn.Fingerprint())
	fmt.Fprintf(out, "curvature  %s\n", form.Fingerprint())
	fmt.Fprintf(out, "chern      %s\n", class.Fingerprint())
	fmt.Fprintf(out, "transport  %s\n", tr.Fingerprint())

	return nil
}
