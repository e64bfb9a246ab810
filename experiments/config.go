package experiments

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"minichess/meta"
)

const (
	// KindLearning grows a tree with exploring agents, then evaluates a
	// greedy agent on it.
	KindLearning = "learning"
	// KindRecorded plays a random-tree agent over a tree loaded from CSV game records.
	KindRecorded = "recorded"
	// KindComplete plays a greedy agent over a fully expanded tree.
	KindComplete = "complete"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type Config struct {
	Name string `mapstructure:"name"`
	Kind string `mapstructure:"kind"`

	// Games is the number of games per run: learning games for KindLearning,
	// match games otherwise.
	Games int `mapstructure:"games"`
	// Seed makes a run reproducible; zero seeds from the clock.
	Seed      uint64 `mapstructure:"seed"`
	OutputDir string `mapstructure:"output_dir"`

	// Learning
	Exploration     float64   `mapstructure:"exploration"`
	Probabilities   []float64 `mapstructure:"probabilities"` // overrides Games and Exploration
	EvaluationGames int       `mapstructure:"evaluation_games"`
	Archive         string    `mapstructure:"archive"` // replayed into the tree before learning

	// Recorded
	GamesFile   string `mapstructure:"games_file"`
	BlackRandom bool   `mapstructure:"black_random"`

	// Complete
	Depth       int  `mapstructure:"depth"`
	WhiteGreedy bool `mapstructure:"white_greedy"`

	RollingWindow int `mapstructure:"rolling_window"`
	// GraphDepth is how many tree levels the DOT rendering shows; negative
	// renders the whole tree.
	GraphDepth int `mapstructure:"graph_depth"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "minichess")
	v.SetDefault("kind", KindLearning)
	v.SetDefault("games", 900)
	v.SetDefault("output_dir", "experiments")
	v.SetDefault("exploration", meta.DefaultExplorationProbability)
	v.SetDefault("evaluation_games", 100)
	v.SetDefault("black_random", true)
	v.SetDefault("depth", 5)
	v.SetDefault("white_greedy", true)
	v.SetDefault("rolling_window", meta.RollingWindow)
	v.SetDefault("graph_depth", meta.GraphDepth)
}

// DefaultConfig returns the configuration used when a file sets nothing.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// LoadConfig reads a YAML, JSON or TOML file, the format following the extension.
func LoadConfig(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(cfgPath)

	err := v.ReadInConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", cfgPath)
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode config %s", cfgPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs *multierror.Error
	invalid := func(format string, args ...any) {
		errs = multierror.Append(errs, errors.Wrapf(ErrInvalidConfig, format, args...))
	}

	switch c.Kind {
	case KindLearning:
		for i, p := range c.LearningProbabilities() {
			if p < 0 || p > 1 {
				invalid("probability %d is %v, want [0, 1]", i, p)
				break
			}
		}
		if c.EvaluationGames < 0 {
			invalid("evaluation_games is negative")
		}
	case KindRecorded:
		if c.GamesFile == "" {
			invalid("games_file is required for %s experiments", c.Kind)
		}
	case KindComplete:
		if c.Depth < 0 || c.Depth > meta.MaxExpansionDepth {
			invalid("depth is %d, want [0, %d]", c.Depth, meta.MaxExpansionDepth)
		}
	default:
		invalid("unknown kind %q", c.Kind)
	}

	if len(c.Probabilities) == 0 && c.Games < 1 {
		invalid("games must be positive")
	}
	if c.RollingWindow < 1 {
		invalid("rolling_window must be positive")
	}
	return errs.ErrorOrNil()
}

// LearningProbabilities returns the exploration probability of every learning game.
func (c *Config) LearningProbabilities() []float64 {
	if len(c.Probabilities) > 0 {
		return c.Probabilities
	}
	probabilities := make([]float64, c.Games)
	for i := range probabilities {
		probabilities[i] = c.Exploration
	}
	return probabilities
}
