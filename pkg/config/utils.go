package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// initConfig decodes file into target by the file name suffix. Keys absent
// from the file keep whatever target held.
func initConfig(file *os.File, target any) error {
	switch filepath.Ext(file.Name()) {
	case ".toml":
		_, err := toml.NewDecoder(file).Decode(target)
		return err
	case ".yaml", ".yml":
		return yaml.NewDecoder(file).Decode(target)
	case ".json":
		return json.NewDecoder(file).Decode(target)
	default:
		return fmt.Errorf("unknown config format type: %s. Use .toml, .yaml or .json suffix in filename", file.Name())
	}
}
