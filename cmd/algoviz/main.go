// SPDX-License-Identifier: MIT

// Command algoviz runs graph algorithms step by step against a random graph,
// painting progress to the terminal and optionally serving it over HTTP.
//
//	algoviz -variant dijkstra -size medium -delay 50ms -once
//	algoviz -config algoviz.yaml -serve :8080
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/registry"
	"github.com/katalvlaran/algoviz/render"
	"github.com/katalvlaran/algoviz/server"
	"github.com/katalvlaran/algoviz/session"
)

type flags struct {
	config  string
	variant string
	size    string
	delay   time.Duration
	seed    int64
	source  int
	target  int
	serve   string
	once    bool
	verbose bool
	colour  bool
	list    bool

	// set holds the names of flags given on the command line.
	set map[string]bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "path to a YAML configuration file (watched for changes)")
	flag.StringVar(&f.variant, "variant", "", "algorithm name or alias, e.g. bfs, astar, kruskal")
	flag.StringVar(&f.size, "size", "", "graph size: small, medium or large")
	flag.DurationVar(&f.delay, "delay", 0, "step delay; 0 keeps the algorithm's default pacing")
	flag.Int64Var(&f.seed, "seed", 0, "random seed for graph generation; 0 is time-based")
	flag.IntVar(&f.source, "source", 0, "source node for single-source algorithms")
	flag.IntVar(&f.target, "target", -1, "target node; -1 is the last node")
	flag.StringVar(&f.serve, "serve", "", "serve the HTTP API on this address")
	flag.BoolVar(&f.once, "once", false, "exit after the first run finishes")
	flag.BoolVar(&f.verbose, "v", false, "list visited edge ids on every line")
	flag.BoolVar(&f.colour, "colour", true, "colour terminal output")
	flag.BoolVar(&f.list, "list", false, "list the available algorithms and exit")
	flag.Parse()
	f.set = make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if f.list {
		for _, e := range registry.All() {
			fmt.Printf("%-22s %-13s %v\n", e.Name, e.Class, e.DefaultDelay)
		}
		return
	}

	if err := run(f); err != nil {
		fmt.Fprintln(os.Stderr, "algoviz:", err)
		os.Exit(1)
	}
}

// apply overlays explicitly set flags on cfg. It runs on the initial load
// and on every reload so the command line keeps precedence over the file.
func (f flags) apply(cfg *config.Config) error {
	var err error
	for name := range f.set {
		switch name {
		case "variant":
			cfg.Animation.Variant = f.variant
		case "size":
			var s builder.Size
			if s, err = builder.ParseSize(f.size); err == nil {
				cfg.Graph.Size = s
			}
		case "delay":
			cfg.Animation.StepDelay = f.delay
		case "seed":
			cfg.Graph.Seed = f.seed
		case "source":
			cfg.Animation.Source = f.source
		case "target":
			cfg.Animation.Target = f.target
		case "serve":
			cfg.Server.Enabled, cfg.Server.Addr = true, f.serve
		}
	}
	if err != nil {
		return err
	}
	if !cfg.Server.Enabled || f.once {
		cfg.Animation.AutoStart = true
	}

	return cfg.Validate()
}

func run(f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if err = f.apply(cfg); err != nil {
		return err
	}

	log, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var m *metrics.Collector
	if cfg.Metrics.Enabled {
		m = metrics.NewCollector(cfg.Metrics.Namespace)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var poller *render.Poller
	finished := make(chan engine.Result, 1)
	sess := session.New(session.Options{
		Size:       cfg.Graph.Size,
		Seed:       cfg.Graph.Seed,
		Width:      cfg.Graph.Width,
		Height:     cfg.Graph.Height,
		NodeRadius: cfg.Graph.NodeRadius,
		StepDelay:  cfg.Animation.StepDelay,
		Logger:     log,
		Metrics:    m,
		Redraw: func() {
			if poller != nil {
				poller.Request()
			}
		},
		OnFinish: func(res engine.Result) {
			select {
			case finished <- res:
			default:
			}
		},
	})
	if cfg.Render.Enabled {
		txt := render.NewText(os.Stdout, render.WithColour(f.colour), render.WithVerbose(f.verbose))
		poller = render.NewPoller(sess, txt, cfg.Render.Interval, log)
	}

	if err = prepare(sess, cfg); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if poller != nil {
		g.Go(func() error { return poller.Run(gctx) })
	}
	if cfg.Server.Enabled {
		srv := server.New(sess, server.Options{
			Logger:      log,
			Metrics:     m,
			ReadTimeout: cfg.Server.ReadTimeout,
		})
		g.Go(func() error { return srv.ListenAndServe(gctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout) })
	}
	if f.config != "" {
		g.Go(func() error {
			return config.Watch(gctx, f.config, log, func(c *config.Config) {
				if err := f.apply(c); err != nil {
					log.Warn("reloaded config rejected", zap.Error(err))
					return
				}
				sess.SetStepDelay(c.Animation.StepDelay)
				log.Info("step delay updated", zap.Duration("step_delay", c.Animation.StepDelay))
			})
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		sess.Stop()
		return nil
	})

	if cfg.Animation.AutoStart {
		if err = sess.Start(); err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
	}
	if f.once {
		g.Go(func() error {
			select {
			case res := <-finished:
				cancel()
				return res.Err
			case <-gctx.Done():
				return nil
			}
		})
	}

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// prepare selects the variant, builds the graph and sets the endpoints.
func prepare(sess *session.Session, cfg *config.Config) error {
	if err := sess.SelectVariant(cfg.Animation.Variant); err != nil {
		return err
	}
	if _, err := sess.Refresh(); err != nil {
		return err
	}

	n := sess.Graph().NodeCount()
	target := cfg.Animation.Target
	if target < 0 {
		target = n - 1
	}

	return sess.SetEndpoints(cfg.Animation.Source, target)
}
