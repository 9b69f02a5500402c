package main

import (
	"github.com/flswld/halo/logger"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/dzz9143/code-math/internal/config"
	"github.com/dzz9143/code-math/internal/nav"
	"github.com/dzz9143/code-math/internal/sim"
)

func GridCmd() *cobra.Command {
	var opts runOptions
	c := &cobra.Command{
		Use:   "grid",
		Short: "chase on a square grid with toggleable walls",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			initLogger("grid", cfg.Logger)
			defer logger.CloseLogger()
			return runGrid(cfg, opts)
		},
	}
	opts.bind(c)
	return c
}

func buildGrid(c config.Grid) (*nav.Grid, *nav.Walls, error) {
	g := nav.NewGrid(c.Rows, c.Cols, c.CellSize, orb.Point{c.OriginX, c.OriginY})
	walls := nav.NewWalls()
	for _, w := range c.Walls {
		walls.Set(g.NodeOf(w[0], w[1]), true)
	}
	if c.ObstaclesFile != "" {
		polygons, err := nav.LoadObstaclesFile(c.ObstaclesFile)
		if err != nil {
			return nil, nil, err
		}
		n := walls.BlockPolygons(g, polygons)
		logger.Info("blocked %v cells from %v obstacle polygons", n, len(polygons))
	}
	return g, walls, nil
}

func runGrid(cfg *config.Config, opts runOptions) error {
	g, walls, err := buildGrid(cfg.Grid)
	if err != nil {
		return err
	}
	logger.Info("grid %vx%v, cell %v, %v walls", g.Rows, g.Cols, g.CellSize, walls.Len())

	w := sim.NewWorld(sim.NewGridTerrain(g, walls))
	a := populate(w, cfg)
	if err := simulate(w, a, opts.ticks, opts.target); err != nil {
		return err
	}

	if opts.export == "" {
		return nil
	}
	return writeExport(opts.export, nav.ExportGrid(g, walls, a.Position(), a.Path()))
}
