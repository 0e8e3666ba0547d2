package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stewi1014/newtonfractal/newton"
)

// Config is the effective configuration after defaults, config file,
// environment and flags have been merged (later sources win).
type Config struct {
	Side          int     `mapstructure:"side" yaml:"side"`
	Threads       int     `mapstructure:"threads" yaml:"threads"`
	MaxIterations int     `mapstructure:"max_iterations" yaml:"max_iterations"`
	CenterRe      float64 `mapstructure:"center_re" yaml:"center_re"`
	CenterIm      float64 `mapstructure:"center_im" yaml:"center_im"`
	HalfSpan      float64 `mapstructure:"half_span" yaml:"half_span"`
	Out           string  `mapstructure:"out" yaml:"out"`
	Compress      bool    `mapstructure:"compress" yaml:"compress"`
	Summary       bool    `mapstructure:"summary" yaml:"summary"`
	LogLevel      string  `mapstructure:"log_level" yaml:"log_level"`
	Gops          bool    `mapstructure:"gops" yaml:"gops"`
}

const envPrefix = "NEWTON"

func setDefaults(v *viper.Viper) {
	v.SetDefault("side", newton.DefaultSide)
	v.SetDefault("threads", newton.DefaultWorkers)
	v.SetDefault("max_iterations", newton.DefaultMaxIterations)
	v.SetDefault("center_re", newton.DefaultPlane.Center[0])
	v.SetDefault("center_im", newton.DefaultPlane.Center[1])
	v.SetDefault("half_span", newton.DefaultPlane.HalfSpan)
	v.SetDefault("out", ".")
	v.SetDefault("compress", false)
	v.SetDefault("summary", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("gops", false)
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "YAML config file")
	flags.IntP("side", "l", newton.DefaultSide, "grid side length in pixels")
	flags.IntP("threads", "t", newton.DefaultWorkers, "number of worker goroutines")
	flags.Int("max-iterations", newton.DefaultMaxIterations, "Newton steps before a pixel counts as diverged")
	flags.Float64("center-re", newton.DefaultPlane.Center[0], "real part of the plane centre")
	flags.Float64("center-im", newton.DefaultPlane.Center[1], "imaginary part of the plane centre")
	flags.Float64("half-span", newton.DefaultPlane.HalfSpan, "half the width of the sampled square")
	flags.StringP("out", "o", ".", "output directory")
	flags.Bool("compress", false, "zstd-compress the images")
	flags.Bool("summary", false, "write a JSON run summary")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("gops", false, "start the gops diagnostics agent")
}

// loadConfig merges defaults, the optional config file, NEWTON_* environment
// variables and any flags set on the command line.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if bindErr != nil {
		return Config{}, fmt.Errorf("bind flags: %w", bindErr)
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Params converts the configuration into run parameters for one degree.
func (c Config) Params(degree int) newton.Params {
	return newton.Params{
		Degree:        degree,
		Side:          c.Side,
		Workers:       c.Threads,
		MaxIterations: c.MaxIterations,
		Plane: newton.Plane{
			Center:   mgl64.Vec2{c.CenterRe, c.CenterIm},
			HalfSpan: c.HalfSpan,
		},
	}
}
