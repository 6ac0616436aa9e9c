package planfile_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/pg-sharding/nullscan/pkg/config"
	"github.com/pg-sharding/nullscan/pkg/models/planerror"
	"github.com/pg-sharding/nullscan/pkg/optimizer/nullscan"
	"github.com/pg-sharding/nullscan/pkg/plan"
	"github.com/pg-sharding/nullscan/pkg/planfile"
	"github.com/pg-sharding/nullscan/pkg/scratch"
	"github.com/stretchr/testify/assert"
)

var queryID = uuid.MustParse("6f1c2a8e-8f3d-4c55-9a8b-1d2e3f405162")

func TestBuildSharesReferencedOperators(t *testing.T) {
	assert := assert.New(t)

	doc, err := planfile.Load("testdata/plan.yaml")
	assert.NoError(err)

	pctx, err := doc.Build(scratch.NewContextWithID("/tmp/ns", queryID))
	assert.NoError(err)
	assert.Len(pctx.Tasks, 1)

	task := pctx.Tasks[0]
	mw := task.Works[0]
	t1, _ := mw.AliasToWork.Get("t1")
	t2, _ := mw.AliasToWork.Get("t2")

	join := t1.Children()[0].Children()[0]
	assert.Equal("JOIN_2", join.ID())
	assert.True(join == t2.Children()[0])

	assert.True(pctx.IsTopOp(t1))
	assert.True(pctx.IsTopOp(t2))
	assert.Equal("GBY_9", task.Reducer(mw).ID())
	assert.True(t1.(*plan.TableScan).Conf.IsMetadataOnly)
	assert.Equal("t1", t1.(*plan.TableScan).Conf.Alias)
}

func TestNullScanOverPlanDocument(t *testing.T) {
	assert := assert.New(t)

	doc, err := planfile.Load("testdata/plan.yaml")
	assert.NoError(err)
	pctx, err := doc.Build(scratch.NewContextWithID("/tmp/ns", queryID))
	assert.NoError(err)

	opt, err := nullscan.NewNullScanOptimizer(nil)
	assert.NoError(err)
	assert.NoError(opt.Resolve(pctx))

	out := planfile.FromPhysicalContext(pctx)
	work := out.Tasks[0].Works[0]

	assert.True(work.UseOneNullRowInputFormat)
	assert.Len(work.Paths, 2)
	assert.Equal("hdfs://nn:8020/warehouse/t2", work.Paths[0].Path)
	assert.Equal("/tmp/ns/"+queryID.String()+"/-mr-10001/t1ds_2020-01-01", work.Paths[1].Path)
	assert.Equal([]string{"t1"}, work.Paths[1].Aliases)
	assert.Equal(plan.OneNullRowInputFormat, work.Paths[1].Partition.InputFormat)
	assert.Equal(plan.NullStructSerDe, work.Paths[1].Partition.Properties[plan.SerializationLib])
	assert.Equal(plan.TextInputFormat, work.Paths[0].Partition.InputFormat)

	assert.Equal(plan.OneNullRowInputFormat, work.Aliases[0].Partition.InputFormat)
	assert.Equal(plan.TextInputFormat, work.Aliases[1].Partition.InputFormat)
	assert.Equal("JOIN_2", work.Aliases[1].Operator.Children[0].Ref)
	assert.Equal("GBY_9", work.Reducer.ID)

	// the rewritten document loads back into an equivalent plan
	var buf bytes.Buffer
	assert.NoError(out.Encode(&buf, planfile.FormatYAML))
	p := filepath.Join(t.TempDir(), "out.yaml")
	assert.NoError(os.WriteFile(p, buf.Bytes(), 0600))

	again, err := planfile.Load(p)
	assert.NoError(err)
	assert.Equal(out, again)
}

func TestPlanDocumentFormats(t *testing.T) {
	type tcase struct {
		name  string
		file  string
		rules []string
	}

	for _, tt := range []tcase{
		{name: "json limit zero", file: "testdata/plan.json", rules: []string{config.RuleLimitZero}},
		{name: "toml where false", file: "testdata/plan.toml", rules: []string{config.RuleWhereFalse}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			doc, err := planfile.Load(tt.file)
			assert.NoError(err)
			pctx, err := doc.Build(scratch.NewContextWithID("/tmp/ns", queryID))
			assert.NoError(err)

			opt, err := nullscan.NewNullScanOptimizer(&config.NullScanCfg{Enabled: true, Rules: tt.rules})
			assert.NoError(err)
			assert.NoError(opt.Resolve(pctx))

			mw := pctx.Tasks[0].Works[0]
			assert.True(mw.UseOneNullRowInputFormat)
			assert.Equal([]string{"/tmp/ns/" + queryID.String() + "/-mr-10001/t"}, mw.Paths())

			var buf bytes.Buffer
			assert.NoError(planfile.FromPhysicalContext(pctx).Encode(&buf, planfile.FormatJSON))
			assert.Contains(buf.String(), `"metadata_only": true`)
		})
	}
}

func TestBadPlanDocuments(t *testing.T) {
	assert := assert.New(t)

	doc, err := planfile.Load("testdata/bad_ref.yaml")
	assert.NoError(err)
	_, err = doc.Build(scratch.NewContext("/tmp"))

	var pe *planerror.PlanError
	assert.True(errors.As(err, &pe))
	assert.Equal(planerror.NSCAN_PLAN_FILE, pe.ErrorCode)

	unknownKind := &planfile.Document{Tasks: []planfile.Task{{
		ID: "Stage-1",
		Works: []planfile.Work{{
			Name:    "Map 1",
			Aliases: []planfile.Alias{{Alias: "t", Operator: planfile.Operator{ID: "X_0", Kind: "SORT"}}},
		}},
	}}}
	_, err = unknownKind.Build(scratch.NewContext("/tmp"))
	assert.True(errors.As(err, &pe))
	assert.Equal(planerror.NSCAN_PLAN_FILE, pe.ErrorCode)

	missingPartition := &planfile.Document{Tasks: []planfile.Task{{
		ID: "Stage-1",
		Works: []planfile.Work{{
			Name:    "Map 1",
			Aliases: []planfile.Alias{{Alias: "t", Operator: planfile.Operator{ID: "TS_0", Kind: "TS"}}},
			Paths:   []planfile.Path{{Path: "/data/t", Aliases: []string{"u"}}},
		}},
	}}}
	_, err = missingPartition.Build(scratch.NewContext("/tmp"))
	assert.True(errors.As(err, &pe))

	assert.Error(unknownKind.Encode(&bytes.Buffer{}, "xml"))

	_, err = planfile.Load(filepath.Join(t.TempDir(), "plan.ini"))
	assert.Error(err)
}

func TestUnknownPlanKeysAreRejected(t *testing.T) {
	type tcase struct {
		name string
		file string
		body string
	}

	for _, tt := range []tcase{
		{
			name: "yaml",
			file: "plan.yaml",
			body: "tasks:\n  - id: Stage-1\n    workz: []\n",
		},
		{
			name: "json",
			file: "plan.json",
			body: `{"tasks": [{"id": "Stage-1", "works": [{"name": "Map 1", "use_null_row": true}]}]}`,
		},
		{
			name: "toml",
			file: "plan.toml",
			body: "[[tasks]]\nid = \"Stage-1\"\nreducers = 1\n",
		},
		{
			name: "unknown suffix",
			file: "plan.ini",
			body: "tasks=",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			p := filepath.Join(t.TempDir(), tt.file)
			assert.NoError(os.WriteFile(p, []byte(tt.body), 0600))

			_, err := planfile.Load(p)
			var pe *planerror.PlanError
			assert.True(errors.As(err, &pe))
			assert.Equal(planerror.NSCAN_PLAN_FILE, pe.ErrorCode)
		})
	}
}
