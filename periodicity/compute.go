// File: compute.go
// Role: Compute entry point: option handling, dispatch, logging and metrics.

package periodicity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/vec3"
)

var tracer = otel.Tracer("lvperiodic/periodicity")

// Compute determines the independent periodicity vectors of g with the
// configured algorithm (DefaultAlgorithm unless WithAlgorithm is given).
//
// Both algorithms report the same dimensionality; the representative
// vectors may differ in choice and sign.
//
// Errors:
//   - ErrGraphNil, ErrUnknownAlgorithm.
//   - core.ErrInconsistentEdge when an edge's roles match neither endpoint.
//   - ctx.Err() when the context passed with WithContext is done.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	alg, err := ParseAlgorithm(string(o.algorithm))
	if err != nil {
		return Result{}, err
	}

	ctx, span := tracer.Start(o.ctx, "periodicity.Compute",
		trace.WithAttributes(
			attribute.String("algorithm", string(alg)),
			attribute.Int("nodes", g.NodeCount()),
			attribute.Int("edges", g.EdgeCount()),
		))
	defer span.End()
	o.ctx = ctx

	start := time.Now()
	var (
		vs       []vec3.Vec3
		examined int
	)
	switch alg {
	case AllSimplePaths:
		vs, examined, err = allSimplePaths(g, o)
	case CycleBasis:
		vs, examined, err = cycleBasis(g, o)
	}
	if err != nil {
		outcome := metrics.OutcomeFailed
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome = metrics.OutcomeCanceled
		}
		o.logger.Warn("periodicity computation failed",
			zap.String("algorithm", string(alg)),
			zap.String("outcome", outcome),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return Result{}, fmt.Errorf("periodicity: %s: %w", alg, err)
	}

	res := Result{Algorithm: alg, Vectors: vs}
	span.SetAttributes(attribute.Int("dimension", len(vs)), attribute.Int("examined", examined))
	o.metrics.RecordComputation(string(alg), res.Label(), examined, time.Since(start))
	o.logger.Debug("periodicity computed",
		zap.String("algorithm", string(alg)),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("examined", examined),
		zap.Stringer("dimension", res.Dimension()),
		zap.String("vectors", fmt.Sprint(res.Vectors)))

	return res, nil
}
