package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Service struct {
	URL string `mapstructure:"url"`
}

type Services struct {
	Face   Service `mapstructure:"face"`
	Speech Service `mapstructure:"speech"`
}

type Detection struct {
	FaceConfidence float64 `mapstructure:"face_confidence"`
	SpeechMaxGap   float64 `mapstructure:"speech_max_gap"`
}

type Smoothing struct {
	MinDuration float64 `mapstructure:"min_duration"`
}

type Root struct {
	Pipeline struct {
		Name    string `mapstructure:"name"`
		Version string `mapstructure:"version"`
		LogLvl  string `mapstructure:"log_level"`
	} `mapstructure:"pipeline"`
	Services  Services  `mapstructure:"services"`
	Detection Detection `mapstructure:"detection"`
	Smoothing Smoothing `mapstructure:"smoothing"`
	Server    struct {
		Addr           string `mapstructure:"addr"`
		ClientTimeout  int    `mapstructure:"client_timeout"`
		MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	} `mapstructure:"server"`
	Paths struct {
		Outputs string `mapstructure:"outputs"`
		DB      string `mapstructure:"db"`
	} `mapstructure:"paths"`
}

// Load reads config.yaml from the CONFIG_ENV directory (dev by default),
// falling back to the working directory, with SCENES_* environment variables
// overriding any key. A missing file is fine; defaults cover everything.
func Load() (*Root, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	v.AddConfigPath(filepath.Join("config", env))
	v.AddConfigPath(".")

	v.SetEnvPrefix("SCENES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "scene-consolidator")
	v.SetDefault("pipeline.version", "0.1.0")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("detection.face_confidence", 0.3)
	v.SetDefault("detection.speech_max_gap", 0.5)
	v.SetDefault("smoothing.min_duration", 1.0)
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.client_timeout", 120)
	v.SetDefault("server.max_upload_bytes", int64(512<<20))
	v.SetDefault("paths.outputs", "outputs")
	v.SetDefault("paths.db", filepath.Join("outputs", "runs.sqlite"))
}

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
