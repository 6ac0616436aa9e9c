package planfile

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pg-sharding/nullscan/pkg/models/planerror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Load reads a plan document, the decoder is picked by the file suffix.
// Keys the document model does not know are rejected.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := &Document{}
	if err := decodeStrict(file, filepath.Ext(path), d); err != nil {
		return nil, &planerror.PlanError{
			Err:       errors.Wrapf(err, "decoding plan document %s", path),
			ErrorCode: planerror.NSCAN_PLAN_FILE,
		}
	}
	return d, nil
}

func decodeStrict(r io.Reader, ext string, d *Document) error {
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.SetStrict(true)
		return dec.Decode(d)
	case ".json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(d)
	case ".toml":
		md, err := toml.NewDecoder(r).Decode(d)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.Errorf("unknown keys %v", undecoded)
		}
		return nil
	default:
		return errors.Errorf("unknown plan document format %q, use .yaml, .json or .toml", ext)
	}
}

func (d *Document) Encode(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(d)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return planerror.Newf(planerror.NSCAN_PLAN_FILE, "unknown output format %q", format)
	}
}
