package main

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pg-sharding/nullscan/pkg/config"
	"github.com/pg-sharding/nullscan/pkg/planlog"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"
)

// jaegerLogger sends tracer diagnostics to planlog.Zero.
type jaegerLogger struct{}

func (jaegerLogger) Error(msg string) {
	planlog.Zero.Error().Str("component", "jaeger").Msg(msg)
}

func (jaegerLogger) Infof(msg string, args ...any) {
	planlog.Zero.Debug().Str("component", "jaeger").Msg(fmt.Sprintf(msg, args...))
}

// initJaegerTracer installs the global tracer rewrite spans are reported to.
// A disabled config leaves the global tracer untouched.
func initJaegerTracer(cfg *config.JaegerCfg) (io.Closer, error) {
	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName,
		Disabled:    cfg.Disabled,
		Sampler: &jaegercfg.SamplerConfig{
			Type:              "const",
			Param:             1,
			SamplingServerURL: cfg.JaegerUrl,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: cfg.AgentHostPort,
		},
		Gen128Bit: true,
		Tags: []opentracing.Tag{
			{Key: "span.kind", Value: "client"},
		},
	}

	return jcfg.InitGlobalTracer(
		cfg.ServiceName,
		jaegercfg.Logger(jaegerLogger{}),
		jaegercfg.Metrics(metrics.NullFactory),
	)
}
