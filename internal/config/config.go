// Package config loads sitescore configuration from rc files, the
// environment, and flags via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/sitescore/internal/scoring"
)

// Config represents the sitescore configuration.
type Config struct {
	Root        string `mapstructure:"root"`
	Mode        string `mapstructure:"mode"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Quiet       bool   `mapstructure:"quiet"`
	Verbose     bool   `mapstructure:"verbose"`
	Concurrency int    `mapstructure:"concurrency"`

	// CorpusPath is the sqlite database holding document collections.
	CorpusPath string `mapstructure:"corpusPath"`
	// LexiconPath optionally points at a YAML lexicon override file.
	LexiconPath string `mapstructure:"lexiconPath"`

	Weights scoring.Weights `mapstructure:"weights"`
	Scoring scoring.Params  `mapstructure:"scoring"`

	// TrustSaturation is the k constant of the trust-building curve.
	TrustSaturation float64 `mapstructure:"trustSaturation"`
	// ExpandSections controls markdown section extraction before
	// website analysis.
	ExpandSections bool `mapstructure:"expandSections"`
}

// LoadConfig loads configuration from rc files, environment, and
// defaults. rootPath overrides the configured root when non-empty.
func LoadConfig(rootPath string) (*Config, error) {
	homeDir, _ := os.UserHomeDir()

	viper.SetDefault("root", ".")
	viper.SetDefault("mode", "auto")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("concurrency", 8)
	viper.SetDefault("corpusPath", filepath.Join(homeDir, ".sitescore", "corpus.db"))
	viper.SetDefault("trustSaturation", 0.25)
	viper.SetDefault("expandSections", true)

	defaults := scoring.DefaultParams()
	viper.SetDefault("scoring.vague_penalty", defaults.VaguePenalty)
	viper.SetDefault("scoring.precision_gain", defaults.PrecisionGain)
	viper.SetDefault("scoring.modal_epsilon", defaults.ModalEpsilon)
	viper.SetDefault("scoring.variance_target_low", defaults.VarianceTargetLow)
	viper.SetDefault("scoring.variance_target_high", defaults.VarianceTargetHigh)
	viper.SetDefault("scoring.variance_decay", defaults.VarianceDecay)
	viper.SetDefault("scoring.ideal_paragraphs", defaults.IdealParagraphs)
	viper.SetDefault("scoring.structure_variance", defaults.StructureVariance)
	viper.SetDefault("scoring.structure_paragraph", defaults.StructureParagraph)
	viper.SetDefault("scoring.structure_transition", defaults.StructureTransition)
	viper.SetDefault("scoring.punctuation_marks", defaults.PunctuationMarks)
	viper.SetDefault("scoring.density_gain", defaults.DensityGain)
	viper.SetDefault("scoring.exclamation_threshold", defaults.ExclamationThreshold)
	viper.SetDefault("scoring.exclamation_steepness", defaults.ExclamationSteepness)
	viper.SetDefault("scoring.min_segment_words", defaults.MinSegmentWords)

	w := scoring.DefaultWeights()
	viper.SetDefault("weights.word_precision", w.WordPrecision)
	viper.SetDefault("weights.modal_certainty", w.ModalCertainty)
	viper.SetDefault("weights.structure_efficiency", w.StructureEfficiency)
	viper.SetDefault("weights.punctuation_impact", w.PunctuationImpact)
	viper.SetDefault("weights.semantic_consistency", w.SemanticConsistency)

	// Config file locations
	configPaths := []string{".sitescorerc.json", ".sitescorerc.yaml", ".sitescorerc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("SITESCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	for _, w := range []float64{
		config.Weights.WordPrecision, config.Weights.ModalCertainty,
		config.Weights.StructureEfficiency, config.Weights.PunctuationImpact,
		config.Weights.SemanticConsistency,
	} {
		if w < 0 {
			return fmt.Errorf("dimension weights must be non-negative")
		}
	}

	if config.TrustSaturation <= 0 {
		return fmt.Errorf("trustSaturation must be positive")
	}
	return nil
}
