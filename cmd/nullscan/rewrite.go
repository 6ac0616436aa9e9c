package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/pg-sharding/nullscan/pkg/config"
	"github.com/pg-sharding/nullscan/pkg/optimizer/nullscan"
	"github.com/pg-sharding/nullscan/pkg/planfile"
	"github.com/pg-sharding/nullscan/pkg/planlog"
	"github.com/pg-sharding/nullscan/pkg/scratch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite plan-file...",
	Short: "run the null scan pass over plan documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		closer, err := initJaegerTracer(&cfg.JaegerConfig)
		if err != nil {
			return errors.Wrap(err, "could not initialize jaeger tracer")
		}
		defer func() {
			if err := closer.Close(); err != nil {
				planlog.Zero.Error().Err(err).Msg("failed to close tracer")
			}
		}()

		outs := make([]bytes.Buffer, len(args))
		g, ctx := errgroup.WithContext(cmd.Context())
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				return rewritePlan(ctx, cfg, path, &outs[i])
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, path := range args {
			if outDir == "" {
				if _, err := cmd.OutOrStdout().Write(outs[i].Bytes()); err != nil {
					return err
				}
				continue
			}
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			dst := filepath.Join(outDir, base+"."+outputFormat)
			if err := os.WriteFile(dst, outs[i].Bytes(), 0644); err != nil {
				return err
			}
			planlog.Zero.Info().Str("plan", path).Str("out", dst).Msg("rewritten plan written")
		}
		return nil
	},
}

// rewritePlan compiles one plan document. Every document gets its own
// physical context, rule table and scratch namespace.
func rewritePlan(ctx context.Context, cfg *config.OptimizerCfg, path string, out *bytes.Buffer) (err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "nullscan.rewrite")
	span.SetTag("plan", path)
	defer func() {
		if err != nil {
			span.SetTag("error", true)
			span.LogKV("event", "error", "message", err.Error())
		}
		span.Finish()
	}()

	doc, err := planfile.Load(path)
	if err != nil {
		return err
	}

	tmp := scratch.NewContext(cfg.ScratchDir)
	span.SetTag("query_id", tmp.QueryID().String())

	pctx, err := doc.Build(tmp)
	if err != nil {
		return errors.Wrapf(err, "plan %s", path)
	}

	opt, err := nullscan.NewNullScanOptimizer(&cfg.NullScan)
	if err != nil {
		return err
	}
	if err := opt.Resolve(pctx); err != nil {
		return errors.Wrapf(err, "plan %s", path)
	}

	planlog.Zero.Debug().Str("plan", path).Str("query_id", tmp.QueryID().String()).Msg("plan rewritten")
	return planfile.FromPhysicalContext(pctx).Encode(out, outputFormat)
}
