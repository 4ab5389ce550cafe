package recommendation

import (
	"fmt"
	"math"
)

// Weights of the three signals in the hybrid blend. They must sum to 1 so
// that each weight is directly its share of the final score.
type Weights struct {
	Collaborative float64 `yaml:"collaborative" json:"collaborative"`
	Content       float64 `yaml:"content" json:"content"`
	Trending      float64 `yaml:"trending" json:"trending"`
}

func (w Weights) Sum() float64 {
	return w.Collaborative + w.Content + w.Trending
}

type Config struct {
	Weights Weights `yaml:"weights" json:"weights"`

	// neighbours need a Jaccard similarity strictly above this value
	SimilarityThreshold float64 `yaml:"similarity_threshold" json:"similarity_threshold"`

	TrendingWindowDays int `yaml:"trending_window_days" json:"trending_window_days"`

	DefaultPersonalizedLimit int `yaml:"default_personalized_limit" json:"default_personalized_limit"`
	DefaultTrendingLimit     int `yaml:"default_trending_limit" json:"default_trending_limit"`
	DefaultSimilarLimit      int `yaml:"default_similar_limit" json:"default_similar_limit"`
	MaxLimit                 int `yaml:"max_limit" json:"max_limit"`
}

const (
	defaultWCollaborative      = 0.4
	defaultWContent            = 0.3
	defaultWTrending           = 0.3
	defaultSimilarityThreshold = 0.1
	defaultTrendingWindowDays  = 30
	defaultPersonalizedLimit   = 10
	defaultTrendingLimit       = 10
	defaultSimilarLimit        = 5
	defaultMaxLimit            = 100
	weightSumTolerance         = 1e-9
)

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Collaborative: defaultWCollaborative,
			Content:       defaultWContent,
			Trending:      defaultWTrending,
		},
		SimilarityThreshold:      defaultSimilarityThreshold,
		TrendingWindowDays:       defaultTrendingWindowDays,
		DefaultPersonalizedLimit: defaultPersonalizedLimit,
		DefaultTrendingLimit:     defaultTrendingLimit,
		DefaultSimilarLimit:      defaultSimilarLimit,
		MaxLimit:                 defaultMaxLimit,
	}
}

func (c Config) Validate() error {
	w := c.Weights
	if w.Collaborative < 0 || w.Content < 0 || w.Trending < 0 {
		return fmt.Errorf("%w: weights must not be negative", ErrInvalidConfig)
	}
	if math.Abs(w.Sum()-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v, expected 1", ErrInvalidConfig, w.Sum())
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("%w: similarity_threshold must be in [0,1)", ErrInvalidConfig)
	}
	if c.TrendingWindowDays <= 0 {
		return fmt.Errorf("%w: trending_window_days must be positive", ErrInvalidConfig)
	}
	if c.MaxLimit <= 0 {
		return fmt.Errorf("%w: max_limit must be positive", ErrInvalidConfig)
	}
	if c.DefaultPersonalizedLimit <= 0 || c.DefaultTrendingLimit <= 0 || c.DefaultSimilarLimit <= 0 {
		return fmt.Errorf("%w: default limits must be positive", ErrInvalidConfig)
	}

	return nil
}

// clampLimit maps a non-positive limit to def and caps everything at max.
func clampLimit(limit, def, maxLimit int) int {
	if limit <= 0 {
		limit = def
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
