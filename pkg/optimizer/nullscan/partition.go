package nullscan

import (
	"strings"

	"github.com/pg-sharding/nullscan/pkg/plan"
)

// changePartitionToMetadataOnly points desc at the one-null-row source.
// A nil desc is returned untouched.
func changePartitionToMetadataOnly(desc *plan.PartitionDesc) *plan.PartitionDesc {
	if desc != nil {
		desc.InputFileFormat = plan.OneNullRowInputFormat
		desc.OutputFileFormat = plan.HiveIgnoreKeyTextOutputFormat
		desc.SetProperty(plan.SerializationLib, plan.NullStructSerDe)
	}
	return desc
}

var pathUnsafe = strings.NewReplacer(":", "_", "/", "_", "#", "_", "?", "_")

// encodePartSpec renders spec as key:value pairs joined by "/" and makes
// the result safe to use as a path element.
func encodePartSpec(spec plan.PartSpec) string {
	parts := make([]string, 0, len(spec))
	for _, e := range spec {
		parts = append(parts, e.Key+":"+e.Value)
	}
	return pathUnsafe.Replace(strings.Join(parts, "/"))
}
