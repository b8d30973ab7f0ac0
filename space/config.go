package space

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/relmem/memref"
)

// Config holds the runtime parameters of an addressing space. It can be read from TOML:
//
//	table_index_bits = 8
//	far_offset_shift = 0
//	near_offset_shift = 0
//	use_mutex = true
type Config struct {
	// TableIndexBits is the number of far reference bits that select a table. Every component
	// that decodes references from this space must use the same value.
	TableIndexBits uint8 `toml:"table_index_bits"`
	// FarOffsetShift scales far reference offsets into cell offsets
	FarOffsetShift uint8 `toml:"far_offset_shift"`
	// NearOffsetShift scales near reference offsets into cell offsets
	NearOffsetShift uint8 `toml:"near_offset_shift"`
	// UseMutex guards the table registry with a lock. Leave it off only when a single goroutine
	// attaches, detaches and resolves.
	UseMutex bool `toml:"use_mutex"`
}

// DefaultConfig returns 8 table index bits, unscaled offsets and a locked registry
func DefaultConfig() Config {
	return Config{
		TableIndexBits: 8,
		UseMutex:       true,
	}
}

// Format returns the reference format described by the config
func (c Config) Format() memref.Format {
	return memref.Format{
		TableIndexBits:  c.TableIndexBits,
		FarOffsetShift:  c.FarOffsetShift,
		NearOffsetShift: c.NearOffsetShift,
	}
}

// Validate checks that the config describes a usable reference format
func (c Config) Validate() error {
	return c.Format().Validate()
}

// LoadConfig reads a TOML config from r. Keys missing from the input keep their DefaultConfig
// values, and keys the config does not define are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, cerrors.Wrap(err, "could not decode addressing space config")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, cerrors.Wrapf(ErrUnknownConfigKey, "%s", strings.Join(keys, ", "))
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a TOML config from the file at path
func LoadConfigFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, cerrors.Wrapf(err, "could not open config file %s", path)
	}
	defer file.Close()

	return LoadConfig(file)
}
