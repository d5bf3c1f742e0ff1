package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metroroute/config"
	"github.com/katalvlaran/metroroute/dataset"
	"github.com/katalvlaran/metroroute/heuristic"
	"github.com/katalvlaran/metroroute/internal/logging"
	"github.com/katalvlaran/metroroute/planner"
	"github.com/katalvlaran/metroroute/transit"
)

type rootOptions struct {
	configPath string
	envFiles   []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "metroroute",
		Short: "Door-to-door metro trip planner",
		Long: `metroroute loads a metro line file, builds the (station, line) graph and
answers fastest-trip queries from the command line or over HTTP.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "dotenv files loaded before the configuration")

	cmd.AddCommand(newServeCmd(opts), newRouteCmd(opts), newStationsCmd(opts))

	return cmd
}

// app is everything a subcommand needs, built from the configuration.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	network *transit.Network
	cache   *heuristic.Cache
	planner *planner.Planner
}

// load reads the environment and configuration, builds the network and the
// planner. A malformed dataset aborts here.
func (o *rootOptions) load() (*app, error) {
	if err := config.LoadDotEnv(o.envFiles...); err != nil {
		return nil, err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return build(cfg, logger)
}

func build(cfg *config.Config, logger *slog.Logger) (*app, error) {
	params, err := cfg.RoutingParams()
	if err != nil {
		return nil, err
	}
	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(cfg.Dataset.Path, cfg.DatasetOptions())
	if err != nil {
		return nil, err
	}
	net, err := transit.Build(ds, params)
	if err != nil {
		return nil, err
	}

	st := net.Stats()
	logger.Info("network built",
		"dataset", cfg.Dataset.Path,
		"stations", st.Stations,
		"lines", st.Lines,
		"line_nodes", st.Nodes,
		"in_line_edges", st.InLineEdges,
		"transfer_edges", st.TransferEdges,
		"transfer_stations", st.TransferStations,
		"components", st.Components,
	)
	if st.Components > 1 {
		logger.Warn("rail network is not connected; some trips need walking or have no route",
			"components", st.Components)
	}

	cache := heuristic.NewCache(net, cfg.Routing.HeuristicCacheSize, cfg.Routing.HeuristicCacheTTL)
	p, err := planner.New(net,
		planner.WithCache(cache),
		planner.WithStrategy(strategy),
		planner.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, network: net, cache: cache, planner: p}, nil
}
