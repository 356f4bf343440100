// Package config loads a quickplot.Style from a configuration file and
// command line flags.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vdobler/quickplot"
)

// FlagKeys maps command line flag names to configuration keys.
var FlagKeys = map[string]string{
	"width":         "width",
	"height":        "height",
	"dpi":           "dpi",
	"math-text":     "math_text",
	"sci-threshold": "sci_threshold",
	"minor-ticks":   "minor_ticks",
}

// Load returns quickplot.DefaultStyle overlaid with the settings of the
// file at path (YAML, TOML or JSON by extension) and with the flags of
// FlagKeys that were set explicitly. An empty path skips the file, a nil
// flag set the flags.
func Load(path string, flags *pflag.FlagSet) (quickplot.Style, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return quickplot.Style{}, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return quickplot.Style{}, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	style := quickplot.DefaultStyle()
	if err := v.Unmarshal(&style, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return quickplot.Style{}, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := style.Validate(); err != nil {
		return quickplot.Style{}, err
	}
	return style, nil
}
