package main

import (
	"github.com/flswld/halo/logger"
	"github.com/spf13/cobra"

	"github.com/dzz9143/code-math/internal/config"
	"github.com/dzz9143/code-math/internal/nav"
	"github.com/dzz9143/code-math/internal/sim"
)

func VoronoiCmd() *cobra.Command {
	var opts runOptions
	c := &cobra.Command{
		Use:   "voronoi",
		Short: "chase across a noise-generated voronoi map",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			initLogger("voronoi", cfg.Logger)
			defer logger.CloseLogger()
			return runVoronoi(cfg, opts)
		},
	}
	opts.bind(c)
	return c
}

func graphMapOptions(c config.Voronoi) nav.GraphMapOptions {
	opts := nav.DefaultGraphMapOptions()
	opts.Size = c.Size
	opts.Jitter = c.Jitter
	opts.Scale = c.Scale
	opts.Seed = c.Seed
	opts.Threshold = c.Threshold
	return opts
}

func runVoronoi(cfg *config.Config, opts runOptions) error {
	m, err := nav.NewGraphMap(graphMapOptions(cfg.Voronoi))
	if err != nil {
		return err
	}
	logger.Info("voronoi map: %v seeds, %v triangles, %v half-edges", m.Len(), m.NumTriangles(), m.NumEdges())

	w := sim.NewWorld(m)
	a := populate(w, cfg)
	if err := simulate(w, a, opts.ticks, opts.target); err != nil {
		return err
	}

	if opts.export == "" {
		return nil
	}
	return writeExport(opts.export, nav.ExportGraph(m, a.Position(), a.Path()))
}
