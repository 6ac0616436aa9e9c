package planfile

import "github.com/pg-sharding/nullscan/pkg/plan"

// Document is the on-disk form of a physical plan.
type Document struct {
	Tasks []Task `json:"tasks" toml:"tasks" yaml:"tasks"`
}

type Task struct {
	ID    string `json:"id" toml:"id" yaml:"id"`
	Works []Work `json:"works" toml:"works" yaml:"works"`
}

type Work struct {
	Name    string    `json:"name" toml:"name" yaml:"name"`
	Aliases []Alias   `json:"aliases" toml:"aliases" yaml:"aliases"`
	Paths   []Path    `json:"paths" toml:"paths" yaml:"paths"`
	Reducer *Operator `json:"reducer,omitempty" toml:"reducer,omitempty" yaml:"reducer,omitempty"`

	UseOneNullRowInputFormat bool `json:"use_one_null_row_input_format" toml:"use_one_null_row_input_format" yaml:"use_one_null_row_input_format"`
}

type Alias struct {
	Alias     string     `json:"alias" toml:"alias" yaml:"alias"`
	Operator  Operator   `json:"operator" toml:"operator" yaml:"operator"`
	Partition *Partition `json:"partition,omitempty" toml:"partition,omitempty" yaml:"partition,omitempty"`

	// Detached roots are not registered as top-level operators and are never walked.
	Detached bool `json:"detached,omitempty" toml:"detached,omitempty" yaml:"detached,omitempty"`
}

type Path struct {
	Path      string    `json:"path" toml:"path" yaml:"path"`
	Aliases   []string  `json:"aliases" toml:"aliases" yaml:"aliases"`
	Partition Partition `json:"partition" toml:"partition" yaml:"partition"`
}

// Operator is an operator tree. An operator with Ref set stands for the
// operator of that id defined earlier in the same work, which is how
// shared DAG nodes are written down.
type Operator struct {
	ID   string `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Kind string `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty"`
	Ref  string `json:"ref,omitempty" toml:"ref,omitempty" yaml:"ref,omitempty"`

	Alias        string `json:"alias,omitempty" toml:"alias,omitempty" yaml:"alias,omitempty"`
	Table        string `json:"table,omitempty" toml:"table,omitempty" yaml:"table,omitempty"`
	MetadataOnly bool   `json:"metadata_only,omitempty" toml:"metadata_only,omitempty" yaml:"metadata_only,omitempty"`
	Predicate    string `json:"predicate,omitempty" toml:"predicate,omitempty" yaml:"predicate,omitempty"`
	Limit        int    `json:"limit,omitempty" toml:"limit,omitempty" yaml:"limit,omitempty"`

	Children []Operator `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
}

type Partition struct {
	Table        string            `json:"table" toml:"table" yaml:"table"`
	InputFormat  string            `json:"input_format" toml:"input_format" yaml:"input_format"`
	OutputFormat string            `json:"output_format" toml:"output_format" yaml:"output_format"`
	Properties   map[string]string `json:"properties,omitempty" toml:"properties,omitempty" yaml:"properties,omitempty"`
	PartSpec     plan.PartSpec     `json:"part_spec,omitempty" toml:"part_spec,omitempty" yaml:"part_spec,omitempty"`
}

func (p *Partition) toDesc() *plan.PartitionDesc {
	if p == nil {
		return nil
	}
	pd := &plan.PartitionDesc{
		TableName:        p.Table,
		InputFileFormat:  p.InputFormat,
		OutputFileFormat: p.OutputFormat,
		Properties:       map[string]string{},
		PartSpec:         append(plan.PartSpec(nil), p.PartSpec...),
	}
	for k, v := range p.Properties {
		pd.Properties[k] = v
	}
	return pd
}

func fromDesc(pd *plan.PartitionDesc) *Partition {
	if pd == nil {
		return nil
	}
	cp := pd.Clone()
	p := &Partition{
		Table:        cp.TableName,
		InputFormat:  cp.InputFileFormat,
		OutputFormat: cp.OutputFileFormat,
	}
	if len(cp.Properties) > 0 {
		p.Properties = cp.Properties
	}
	if len(cp.PartSpec) > 0 {
		p.PartSpec = cp.PartSpec
	}
	return p
}
