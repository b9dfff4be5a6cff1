package aigateway

import (
	"context"
	"time"

	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/saulo-duarte/interview-coach/internal/aigateway")

type instrumentedGateway struct {
	inner   Gateway
	timeout time.Duration
}

// WithInstrumentation wraps g with a per-call timeout, a trace span and a
// log line per completion.
func WithInstrumentation(g Gateway, timeout time.Duration) Gateway {
	return &instrumentedGateway{inner: g, timeout: timeout}
}

func (g *instrumentedGateway) Complete(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "aigateway.Complete",
		trace.WithAttributes(
			attribute.String("ai.model", g.inner.Model()),
			attribute.Int("ai.prompt_length", len(prompt)),
		),
	)
	defer span.End()

	log := config.WithContext(ctx).WithField("model", g.inner.Model())
	start := time.Now()

	raw, err := g.inner.Complete(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		log.WithError(err).WithField("duration_ms", elapsed.Milliseconds()).Error("AI completion failed")
		return "", err
	}

	span.SetAttributes(attribute.Int("ai.response_length", len(raw)))
	log.WithFields(logrus.Fields{
		"duration_ms":     elapsed.Milliseconds(),
		"response_length": len(raw),
	}).Info("AI completion succeeded")
	log.Debugf("Raw model response:\n%s", raw)
	return raw, nil
}

func (g *instrumentedGateway) Model() string {
	return g.inner.Model()
}
