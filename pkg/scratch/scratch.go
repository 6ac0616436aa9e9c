package scratch

import (
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/pg-sharding/nullscan/pkg/plan"
	"go.uber.org/atomic"
)

const mrPrefix = "-mr-"

// Context is the scratch namespace of one query.
type Context struct {
	scratchDir string
	queryID    uuid.UUID
	pathID     *atomic.Int64
}

var _ plan.PathProvider = &Context{}

func NewContext(scratchDir string) *Context {
	return NewContextWithID(scratchDir, uuid.New())
}

func NewContextWithID(scratchDir string, queryID uuid.UUID) *Context {
	return &Context{
		scratchDir: scratchDir,
		queryID:    queryID,
		pathID:     atomic.NewInt64(10000),
	}
}

func (c *Context) QueryID() uuid.UUID {
	return c.queryID
}

// MRScratchDir is the directory every temp path of the query lives under.
func (c *Context) MRScratchDir() string {
	return path.Join(c.scratchDir, c.queryID.String())
}

// MRTmpPath returns a fresh path under MRScratchDir, terminated by "/".
func (c *Context) MRTmpPath() string {
	id := c.pathID.Inc()
	return path.Join(c.MRScratchDir(), fmt.Sprintf("%s%d", mrPrefix, id)) + "/"
}
