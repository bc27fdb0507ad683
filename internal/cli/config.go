package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
)

const (
	configName = "nxnbld"
	configType = "yaml"
	envPrefix  = "NXNBLD"

	cfgKeySize      = "size"
	cfgKeyLettering = "lettering"
	cfgKeyDB        = "db"
	cfgKeyBuffers   = "buffers"
)

var ErrInvalidSize = errors.New("cli: cube size must be at least 1")

// settings are the resolved configuration of one command run.
type settings struct {
	Size   int
	BLD    bld.Config
	DBPath string
}

// newViper builds the configuration layers: defaults, an optional
// nxnbld.yaml, NXNBLD_* environment variables and the persistent flags.
func newViper(cmd *cobra.Command, file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeySize, 3)
	v.SetDefault(cfgKeyLettering, bld.DefaultLettering)
	v.SetDefault(cfgKeyBuffers+".edges", bld.DefaultBuffers.Edges.Index())
	v.SetDefault(cfgKeyBuffers+".corners", bld.DefaultBuffers.Corners.Index())
	v.SetDefault(cfgKeyBuffers+".wings", bld.DefaultBuffers.Wings.Index())
	v.SetDefault(cfgKeyBuffers+".xcenters", bld.DefaultBuffers.XCenters.Index())
	v.SetDefault(cfgKeyBuffers+".tcenters", bld.DefaultBuffers.TCenters.Index())
	v.SetDefault(cfgKeyBuffers+".obliques", bld.DefaultBuffers.LeftObliques.Index())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".nxnbld"))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	flags := cmd.Flags()
	for _, key := range []string{cfgKeySize, cfgKeyLettering, cfgKeyDB} {
		// Unset string flags would otherwise shadow the config file.
		if f := flags.Lookup(key); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// loadSettings resolves the settings for cmd.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v, err := newViper(cmd, configFile)
	if err != nil {
		return settings{}, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		debugf("using config %s\n", used)
	}
	return settingsFrom(v)
}

func settingsFrom(v *viper.Viper) (settings, error) {
	s := settings{Size: v.GetInt(cfgKeySize), DBPath: v.GetString(cfgKeyDB)}
	if s.Size < 1 {
		return settings{}, fmt.Errorf("%w: %d", ErrInvalidSize, s.Size)
	}

	lettering, err := bld.NewLettering(v.GetString(cfgKeyLettering))
	if err != nil {
		return settings{}, err
	}

	// Unmarshal merges every layer per leaf key; UnmarshalKey would take the
	// config file's buffers map without the defaults.
	var raw struct {
		Buffers bld.BufferIndices `mapstructure:"buffers"`
	}
	if err := v.Unmarshal(&raw); err != nil {
		return settings{}, fmt.Errorf("failed to read buffers: %w", err)
	}
	buffers, err := raw.Buffers.Buffers()
	if err != nil {
		return settings{}, err
	}

	s.BLD = bld.Config{Lettering: lettering, Buffers: buffers}
	return s, nil
}

// openDB opens the configured database, or the default one.
func (s settings) openDB() (*storage.DB, error) {
	if s.DBPath != "" {
		return storage.Open(s.DBPath)
	}
	return storage.OpenDefault()
}
