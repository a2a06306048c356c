package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env-default:"info"`
	Redis     Redis     `yaml:"redis"`
	MoveTable MoveTable `yaml:"move-table"`
	Benchmark Benchmark `yaml:"benchmark"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MoveTable selects where the exhaustive solver's table is cached between runs.
type MoveTable struct {
	Storage    string `yaml:"storage" env-default:"memory"`
	Name       string `yaml:"name" env-default:"exhaustive"`
	SQLitePath string `yaml:"sqlite-path" env-default:"./movetable.db"`
}

type Benchmark struct {
	Games int `yaml:"games" env-default:"100"`
	// FixedSides keeps the first strategy on PlayerOne instead of flipping a coin per game.
	FixedSides bool  `yaml:"fixed-sides"`
	MinDepth   int   `yaml:"min-depth" env-default:"1"`
	MaxDepth   int   `yaml:"max-depth" env-default:"9"`
	Seed       int64 `yaml:"seed"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.MoveTable.Storage {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("unknown move table storage %q", that.MoveTable.Storage)
	}

	if that.Benchmark.MinDepth < 0 || that.Benchmark.MinDepth > that.Benchmark.MaxDepth {
		return fmt.Errorf("bad minimax depth range %d..%d", that.Benchmark.MinDepth, that.Benchmark.MaxDepth)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
