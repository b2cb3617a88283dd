package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/centering"
	"github.com/katalvlaran/lvperiodic/component"
	"github.com/katalvlaran/lvperiodic/config"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/supergraph"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// errBadRequest marks malformed requests.
var errBadRequest = errors.New("httpapi: bad request")

type periodicityResponse struct {
	ID        string      `json:"id"`
	Algorithm string      `json:"algorithm"`
	Dimension int         `json:"dimension"`
	Vectors   []vec3.Vec3 `json:"vectors"`
}

type nodeJSON struct {
	ID    string `json:"id"`
	ISite int    `json:"isite"`
}

type edgeJSON struct {
	ID    string    `json:"id"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	Start int       `json:"start"`
	End   int       `json:"end"`
	Delta vec3.Vec3 `json:"delta"`
}

type graphResponse struct {
	ID        string     `json:"id"`
	NodeCount int        `json:"node_count"`
	EdgeCount int        `json:"edge_count"`
	Nodes     []nodeJSON `json:"nodes"`
	Edges     []edgeJSON `json:"edges"`
}

func (s *server) periodicity(w http.ResponseWriter, r *http.Request) {
	c, err := s.component(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := c.Periodicity()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	vs := res.Vectors
	if vs == nil {
		vs = []vec3.Vec3{}
	}
	writeJSON(w, http.StatusOK, periodicityResponse{
		ID:        c.ID().String(),
		Algorithm: string(res.Algorithm),
		Dimension: int(res.Dimension()),
		Vectors:   vs,
	})
}

func (s *server) centered(w http.ResponseWriter, r *http.Request) {
	c, err := s.component(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var opts []centering.Option
	if root := r.URL.Query().Get("root"); root != "" {
		opts = append(opts, centering.WithRoot(root))
	}
	if anyRoot, _ := strconv.ParseBool(r.URL.Query().Get("any_root")); anyRoot {
		opts = append(opts, centering.WithAnyRoot())
	}
	g, err := c.Centered(opts...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, graphJSON(c, g))
}

func (s *server) supergraph(w http.ResponseWriter, r *http.Request) {
	m, err := strconv.Atoi(r.URL.Query().Get("m"))
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: m must be an integer", errBadRequest))
		return
	}
	c, err := s.component(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var opts []supergraph.Option
	if off, _ := strconv.ParseBool(r.URL.Query().Get("allow_off_axis")); off {
		opts = append(opts, supergraph.WithAllowOffAxis())
	}
	g, err := c.Expand([]int{m}, opts...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, graphJSON(c, g))
}

// component decodes and builds the request's component.
func (s *server) component(w http.ResponseWriter, r *http.Request) (*component.Component, error) {
	alg := s.algorithm
	if name := r.URL.Query().Get("algorithm"); name != "" {
		a, err := periodicity.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		alg = a
	}

	var doc config.ComponentDoc
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	opts := []component.Option{
		component.WithAlgorithm(alg),
		component.WithLogger(s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))),
		component.WithMetrics(s.metrics),
	}
	if s.cache != nil {
		opts = append(opts, component.WithResultCache(s.cache))
	}

	return doc.Build(opts...)
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	for _, target := range []error{
		errBadRequest,
		config.ErrInvalidConfig,
		component.ErrUnknownNode,
		periodicity.ErrUnknownAlgorithm,
		core.ErrEmptyNodeID,
		core.ErrNegativeISite,
		core.ErrDuplicateNode,
		centering.ErrRootNotFound,
		supergraph.ErrBadMultiplicity,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range []error{
		core.ErrInconsistentEdge,
		centering.ErrCenteringImpossible,
		centering.ErrMultipleZeroDeltas,
		supergraph.ErrNotImplemented,
		supergraph.ErrNoPeriodicity,
		supergraph.ErrOffAxisEdge,
	} {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}

	return http.StatusInternalServerError
}

func graphJSON(c *component.Component, g *core.Graph) graphResponse {
	out := graphResponse{
		ID:        c.ID().String(),
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Nodes:     make([]nodeJSON, 0, g.NodeCount()),
		Edges:     make([]edgeJSON, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, nodeJSON{ID: n.ID, ISite: n.ISite})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeJSON{
			ID: e.ID, From: e.From, To: e.To, Start: e.Start, End: e.End, Delta: e.Delta,
		})
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
