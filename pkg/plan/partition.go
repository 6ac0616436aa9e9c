package plan

import "strings"

type PartSpecEntry struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// PartSpec is an ordered list of partition key/value pairs.
type PartSpec []PartSpecEntry

func (ps PartSpec) Get(key string) (string, bool) {
	for _, e := range ps {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

func (ps PartSpec) String() string {
	parts := make([]string, 0, len(ps))
	for _, e := range ps {
		parts = append(parts, e.Key+"="+e.Value)
	}
	return strings.Join(parts, "/")
}

// PartitionDesc governs how one input path (or alias) is read.
type PartitionDesc struct {
	TableName        string
	InputFileFormat  string
	OutputFileFormat string
	Properties       map[string]string
	PartSpec         PartSpec
}

func (pd *PartitionDesc) SerDe() string {
	if pd.Properties == nil {
		return ""
	}
	return pd.Properties[SerializationLib]
}

func (pd *PartitionDesc) SetProperty(key, value string) {
	if pd.Properties == nil {
		pd.Properties = map[string]string{}
	}
	pd.Properties[key] = value
}

// Clone returns a deep copy.
func (pd *PartitionDesc) Clone() *PartitionDesc {
	if pd == nil {
		return nil
	}
	cp := *pd
	cp.Properties = make(map[string]string, len(pd.Properties))
	for k, v := range pd.Properties {
		cp.Properties[k] = v
	}
	cp.PartSpec = append(PartSpec(nil), pd.PartSpec...)
	return &cp
}
