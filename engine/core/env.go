package core

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment keys read by LoadEnv
const (
	EnvSeed          = "SHOOTER_SEED"
	EnvMute          = "SHOOTER_MUTE"
	EnvVolume        = "SHOOTER_VOLUME"
	EnvScale         = "SHOOTER_SCALE"
	EnvLogFile       = "SHOOTER_LOG_FILE"
	EnvWinScore      = "SHOOTER_WIN_SCORE"
	EnvVersusScore   = "SHOOTER_VERSUS_WIN_SCORE"
	EnvSpawnInterval = "SHOOTER_SPAWN_INTERVAL_MS"
)

// Settings are the presentation knobs that live outside the gameplay Config
type Settings struct {
	Seed    int64
	Muted   bool
	Volume  float64 // 0-1
	Scale   float64 // window scale
	LogFile string
}

// DefaultSettings returns settings seeded from the wall clock
func DefaultSettings() Settings {
	return Settings{
		Seed:   time.Now().UnixNano(),
		Volume: 0.6,
		Scale:  1,
	}
}

// LoadEnv reads an optional .env file, then applies SHOOTER_* overrides from
// the process environment to cfg and the returned Settings. A missing file
// is not an error. Variables already set in the environment take precedence
// over the file.
func LoadEnv(path string, cfg *Config) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return s, errors.Wrapf(err, "load %s", path)
		}
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, errors.Wrapf(err, "parse %s", EnvSeed)
		}
		s.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvMute); ok {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return s, errors.Wrapf(err, "parse %s", EnvMute)
		}
		s.Muted = muted
	}
	if v, ok := os.LookupEnv(EnvVolume); ok {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, errors.Wrapf(err, "parse %s", EnvVolume)
		}
		s.Volume = clamp(vol, 0, 1)
	}
	if v, ok := os.LookupEnv(EnvScale); ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, errors.Wrapf(err, "parse %s", EnvScale)
		}
		if scale > 0 {
			s.Scale = scale
		}
	}
	s.LogFile = os.Getenv(EnvLogFile)

	if err := envInt(EnvWinScore, &cfg.WinScore); err != nil {
		return s, err
	}
	if err := envInt(EnvVersusScore, &cfg.VersusWinScore); err != nil {
		return s, err
	}
	if v, ok := os.LookupEnv(EnvSpawnInterval); ok {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, errors.Wrapf(err, "parse %s", EnvSpawnInterval)
		}
		cfg.AlienSpawnInterval = ms
	}

	return s, cfg.Validate()
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	*dst = n
	return nil
}
