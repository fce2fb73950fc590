package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Structure names accepted in the structures list.
const (
	StructTwoThree = "twothree"
	StructGBTree   = "gbtree"
	StructList     = "listindex"
	StructLSM      = "lsm"
	StructBunt     = "bunt"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Scale      int       `mapstructure:"scale"`
	Degrees    []int     `mapstructure:"degrees"`
	Structures []string  `mapstructure:"structures"`
	LSMDir     string    `mapstructure:"lsm_dir"`
	Output     string    `mapstructure:"output"`
	Chart      string    `mapstructure:"chart"`
	DOT        string    `mapstructure:"dot"`
	Seed       uint64    `mapstructure:"seed"`
	Log        LogConfig `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scale", 200000)
	v.SetDefault("degrees", []int{8, 32, 128})
	v.SetDefault("structures", []string{StructTwoThree, StructGBTree, StructLSM, StructBunt})
	v.SetDefault("lsm_dir", "")
	v.SetDefault("output", "results.csv")
	v.SetDefault("chart", "")
	v.SetDefault("dot", "")
	v.SetDefault("seed", uint64(1))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// LoadConfig resolves the benchmark configuration from defaults, an optional
// YAML file, BMARK_* environment variables and command line flags, in
// increasing order of precedence.
func LoadConfig(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("bmark", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	fs.Int("scale", 0, "number of keys loaded into each structure")
	fs.IntSlice("degrees", nil, "google/btree degrees to sweep")
	fs.StringSlice("structures", nil, "structures to benchmark")
	fs.String("lsm-dir", "", "pebble directory, in-memory when empty")
	fs.String("output", "", "CSV results path")
	fs.String("chart", "", "latency chart path (.png or .svg), skipped when empty")
	fs.String("dot", "", "Graphviz dump of a sample 2-3 tree, skipped when empty")
	fs.Uint64("seed", 0, "workload random seed")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.String("log-format", "", "console or json")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "config: parse flags")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", *configPath)
		}
	}

	for key, flag := range map[string]string{
		"scale":      "scale",
		"degrees":    "degrees",
		"structures": "structures",
		"lsm_dir":    "lsm-dir",
		"output":     "output",
		"chart":      "chart",
		"dot":        "dot",
		"seed":       "seed",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, errors.Wrapf(err, "config: bind %s", flag)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Scale < 2 {
		return errors.Newf("config: scale must be at least 2, got %d", c.Scale)
	}
	if len(c.Structures) == 0 {
		return errors.New("config: no structures selected")
	}
	for _, s := range c.Structures {
		switch s {
		case StructTwoThree, StructGBTree, StructList, StructLSM, StructBunt:
		default:
			return errors.Newf("config: unknown structure %q", s)
		}
	}
	for _, d := range c.Degrees {
		if d < 2 {
			return errors.Newf("config: btree degree must be at least 2, got %d", d)
		}
	}
	return nil
}
