// Command lvperiodic computes the periodicity of a periodic net described
// by a YAML or HCL run configuration, optionally centers and expands it, and
// renders the result; with -listen it serves the HTTP API instead.
//
//	lvperiodic -config run.yaml [-json] [-dot out.dot] [-net out.net] [-adjacency]
//	lvperiodic -config run.hcl -listen :8080
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvperiodic/cache"
	"github.com/katalvlaran/lvperiodic/centering"
	"github.com/katalvlaran/lvperiodic/component"
	"github.com/katalvlaran/lvperiodic/config"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/httpapi"
	"github.com/katalvlaran/lvperiodic/matrix"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/netfmt"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/render"
	"github.com/katalvlaran/lvperiodic/supergraph"
	"github.com/katalvlaran/lvperiodic/vec3"
)

type flags struct {
	config    string
	json      bool
	dot       string
	net       string
	adjacency bool
	listen    string
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "run configuration (.yaml or .hcl)")
	flag.BoolVar(&f.json, "json", false, "print the report as JSON")
	flag.StringVar(&f.dot, "dot", "", "write the (centered) graph as Graphviz DOT to this file")
	flag.StringVar(&f.net, "net", "", "write the (centered) graph in net notation to this file")
	flag.BoolVar(&f.adjacency, "adjacency", false, "print the bond multiplicity matrix")
	flag.StringVar(&f.listen, "listen", "", "serve the HTTP API on this address instead of running once")
	flag.Parse()

	if f.config == "" && f.listen == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(f, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lvperiodic:", err)
		os.Exit(1)
	}
}

func run(f flags, stdout io.Writer) error {
	cfg := &config.Config{Algorithm: config.DefaultAlgorithm, LogLevel: config.DefaultLogLevel}
	if f.config != "" {
		var err error
		if cfg, err = config.LoadFile(f.config); err != nil {
			return err
		}
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var store *cache.Store
	if cfg.CacheDir != "" {
		dir := cfg.CacheDir
		if dir == config.MemoryCache {
			dir = ""
		}
		if store, err = cache.Open(dir); err != nil {
			return err
		}
		defer store.Close()
	}

	if f.listen != "" {
		deps := httpapi.Deps{Logger: logger, Metrics: m, Gatherer: reg, Algorithm: periodicity.Algorithm(cfg.Algorithm)}
		if store != nil {
			deps.Cache = store
		}
		return serve(f.listen, httpapi.NewRouter(deps), logger)
	}

	opts := []component.Option{component.WithLogger(logger), component.WithMetrics(m)}
	if store != nil {
		opts = append(opts, component.WithResultCache(store))
	}
	c, err := cfg.NewComponent(opts...)
	if err != nil {
		return err
	}

	rep, final, err := analyze(cfg, c, logger)
	if err != nil {
		return err
	}
	if f.adjacency {
		if rep.Adjacency, err = matrix.Adjacency(c.Graph()); err != nil {
			return err
		}
	}
	if f.dot != "" {
		if err = writeFile(f.dot, func(w io.Writer) error {
			return render.WriteDOT(w, final, render.ShellLayout(final), rep.Vectors)
		}); err != nil {
			return err
		}
	}
	if f.net != "" {
		if err = writeFile(f.net, func(w io.Writer) error { return netfmt.Format(w, final) }); err != nil {
			return err
		}
	}
	if f.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	return rep.print(stdout)
}

// report is what a single run prints.
type report struct {
	Component  *component.Component `json:"component"`
	Algorithm  string               `json:"algorithm"`
	Dimension  int                  `json:"dimension"`
	Name       string               `json:"name"`
	Vectors    []vec3.Vec3          `json:"vectors"`
	Centered   bool                 `json:"centered"`
	Supergraph *expansion           `json:"supergraph,omitempty"`
	Adjacency  *matrix.Dense        `json:"-"`
}

type expansion struct {
	Multiplicity []int `json:"multiplicity"`
	Nodes        int   `json:"nodes"`
	Edges        int   `json:"edges"`
	Collapses    bool  `json:"collapses"`
}

// analyze computes the periodicity and the requested derived graphs. It
// returns the graph to render: the centered one when centering was asked.
func analyze(cfg *config.Config, c *component.Component, logger *zap.Logger) (*report, *core.Graph, error) {
	res, err := c.Periodicity()
	if err != nil {
		return nil, nil, err
	}
	rep := &report{
		Component: c,
		Algorithm: string(res.Algorithm),
		Dimension: int(res.Dimension()),
		Name:      res.Dimension().Name(),
		Vectors:   res.Vectors,
	}
	if rep.Vectors == nil {
		rep.Vectors = []vec3.Vec3{}
	}

	final := c.Graph()
	if cfg.Center {
		var opts []centering.Option
		if cfg.Root != "" {
			opts = append(opts, centering.WithRoot(cfg.Root))
		}
		if cfg.AnyRoot {
			opts = append(opts, centering.WithAnyRoot())
		}
		if final, err = c.Centered(opts...); err != nil {
			return nil, nil, err
		}
		rep.Centered = true
	}

	if len(cfg.Supergraph) > 0 {
		var opts []supergraph.Option
		if cfg.AllowOffAxis {
			opts = append(opts, supergraph.WithAllowOffAxis())
		}
		sg, err := c.Expand(cfg.Supergraph, opts...)
		if err != nil {
			return nil, nil, err
		}
		collapses, err := collapseCheck(c.Graph(), sg, cfg.Supergraph[0])
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("supergraph collapse check", zap.Bool("collapses", collapses))
		rep.Supergraph = &expansion{
			Multiplicity: cfg.Supergraph,
			Nodes:        sg.NodeCount(),
			Edges:        sg.EdgeCount(),
			Collapses:    collapses,
		}
	}

	return rep, final, nil
}

// collapseCheck reports whether folding the supergraph's bond matrix modulo
// the component size gives m times the component's own matrix.
func collapseCheck(g, sg *core.Graph, m int) (bool, error) {
	base, err := matrix.Adjacency(g)
	if err != nil {
		return false, err
	}
	big, err := matrix.Adjacency(sg)
	if err != nil {
		return false, err
	}
	folded, err := matrix.Fold(big, g.NodeCount())
	if err != nil {
		return false, err
	}

	return folded.Equal(base.Scale(float64(m))), nil
}

func (r *report) print(w io.Writer) error {
	fmt.Fprintf(w, "component:   %s\n", r.Component.ID())
	fmt.Fprintf(w, "algorithm:   %s\n", r.Algorithm)
	fmt.Fprintf(w, "periodicity: %dD %s %v\n", r.Dimension, r.Name, r.Vectors)
	if r.Centered {
		fmt.Fprintln(w, "centered:    yes")
	}
	if s := r.Supergraph; s != nil {
		fmt.Fprintf(w, "supergraph:  x%v, %d nodes, %d edges, collapses=%t\n", s.Multiplicity, s.Nodes, s.Edges, s.Collapses)
	}
	if r.Adjacency != nil {
		fmt.Fprint(w, "adjacency:\n", r.Adjacency)
	}

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(fh); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}

func serve(addr string, h http.Handler, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
