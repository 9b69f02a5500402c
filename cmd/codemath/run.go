package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flswld/halo/logger"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/dzz9143/code-math/internal/agent"
	"github.com/dzz9143/code-math/internal/config"
	"github.com/dzz9143/code-math/internal/sim"
)

// runOptions are the flags shared by every map subcommand.
type runOptions struct {
	configFile string
	ticks      int
	target     string
	export     string
}

func (o *runOptions) bind(c *cobra.Command) {
	c.Flags().StringVar(&o.configFile, "config", "", "hjson config file, defaults are used when empty")
	c.Flags().IntVar(&o.ticks, "ticks", 600, "number of ticks to simulate")
	c.Flags().StringVar(&o.target, "target", "", "fixed target as x,y instead of chasing the player")
	c.Flags().StringVar(&o.export, "export", "", "write the final map and path as geojson")
}

func (o *runOptions) loadConfig() (*config.Config, error) {
	if o.configFile == "" {
		return config.Default(), nil
	}
	return config.Load(o.configFile)
}

func initLogger(appName string, c config.Logger) {
	logger.InitLogger(&logger.Config{
		AppName:      appName,
		Level:        logger.ParseLevel(c.Level),
		TrackLine:    c.TrackLine,
		TrackThread:  c.TrackThread,
		EnableFile:   c.EnableFile,
		DisableColor: c.DisableColor,
		EnableJson:   c.EnableJson,
	})
}

// parsePoint reads "x,y".
func parsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("point %q must be x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return orb.Point{x, y}, nil
}

// populate adds the player at the center of the terrain and one enemy.
func populate(w *sim.World, cfg *config.Config) *agent.Agent {
	w.AddPlayer(w.Terrain().Bound().Center(), cfg.Player.Size, cfg.Player.Speed)
	a := agent.New(
		orb.Point{cfg.Agent.StartX, cfg.Agent.StartY},
		agent.WithSpeed(cfg.Agent.Speed),
		agent.WithThreshold(cfg.Agent.Threshold),
	)
	w.AddEnemy(cfg.Agent.Size, a)
	return a
}

// simulate drives the world headlessly. A fixed target is latched once before
// the first tick; afterwards the enemy keeps it.
func simulate(w *sim.World, a *agent.Agent, ticks int, target string) error {
	var in sim.Input
	if target != "" {
		p, err := parsePoint(target)
		if err != nil {
			return err
		}
		in.SetTarget(p)
	}

	for i := 0; i < ticks; i++ {
		w.Tick(in.Snapshot())
		if i > 0 && a.State() == agent.Idle {
			logger.Info("agent settled after %v ticks", w.Ticks())
			break
		}
	}
	w.LogSummary()
	return nil
}

func writeExport(filename string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	logger.Info("wrote %v features to %v", len(fc.Features), filename)
	return nil
}
