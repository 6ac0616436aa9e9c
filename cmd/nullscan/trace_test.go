package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/pg-sharding/nullscan/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestJaegerTracerIsInstalled(t *testing.T) {
	assert := assert.New(t)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	cfg := config.DefaultOptimizerCfg().JaegerConfig
	cfg.AgentHostPort = "127.0.0.1:6831"

	closer, err := initJaegerTracer(&cfg)
	assert.NoError(err)
	defer func() { _ = closer.Close() }()

	_, noop := opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.False(noop)
	assert.True(opentracing.IsGlobalTracerRegistered())
}

func TestDisabledJaegerKeepsGlobalTracer(t *testing.T) {
	assert := assert.New(t)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)

	cfg := config.DefaultOptimizerCfg().JaegerConfig
	cfg.Disabled = true

	closer, err := initJaegerTracer(&cfg)
	assert.NoError(err)
	assert.NoError(closer.Close())
	assert.Equal(opentracing.Tracer(tracer), opentracing.GlobalTracer())
}

func TestRewriteReportsSpanPerPlan(t *testing.T) {
	assert := assert.New(t)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)

	cfg := filepath.Join(t.TempDir(), "nullscan.yaml")
	assert.NoError(os.WriteFile(cfg, []byte(`
jaeger:
  disabled: true
`), 0600))

	good := "../../pkg/planfile/testdata/plan.yaml"
	_, err := run(t, "rewrite", "-c", cfg, "-l", "disabled", "-f", "yaml", "-o", "", good)
	assert.NoError(err)

	spans := tracer.FinishedSpans()
	if assert.Len(spans, 1) {
		assert.Equal("nullscan.rewrite", spans[0].OperationName)
		assert.Equal(good, spans[0].Tag("plan"))
		assert.NotNil(spans[0].Tag("query_id"))
		assert.Nil(spans[0].Tag("error"))
	}

	tracer.Reset()
	bad := "../../pkg/planfile/testdata/bad_ref.yaml"
	_, err = run(t, "rewrite", "-c", cfg, "-l", "disabled", "-f", "yaml", "-o", "", bad)
	assert.Error(err)

	spans = tracer.FinishedSpans()
	if assert.Len(spans, 1) {
		assert.Equal(bad, spans[0].Tag("plan"))
		assert.Equal(true, spans[0].Tag("error"))
	}
}
