// Package cli provides the cobra command tree for the Prepline CLI.
// Commands are thin: they read input, call the pipeline service, and
// format its trace for display. All processing lives in core.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepline-labs/prepline-cli/internal/adapters/driven/config/file"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driven"
	"github.com/prepline-labs/prepline-cli/internal/core/ports/driving"
	"github.com/prepline-labs/prepline-cli/internal/core/services"
	"github.com/prepline-labs/prepline-cli/internal/logger"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/htmlstrip"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/pii"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/profanity"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/sentences"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/urls"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/whitespace"
	"github.com/prepline-labs/prepline-cli/internal/tokenizers/tiktoken"
	"github.com/prepline-labs/prepline-cli/internal/tokenizers/words"
)

// version is overridden at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string

	// pipelineService is built in PersistentPreRunE. Tests inject a
	// pre-built service to skip config loading.
	pipelineService driving.Pipeline
)

var rootCmd = &cobra.Command{
	Use:   "prepline",
	Short: "Deterministic, explainable text preprocessing",
	Long: `Prepline runs raw text through an ordered set of validation,
sanitization, structuring, chunking, and classification rules, and
reports a structured per-rule trace instead of a black-box result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if pipelineService != nil {
			return nil
		}

		svc, err := buildPipeline(configDir)
		if err != nil {
			return err
		}
		pipelineService = svc
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.prepline)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// buildPipeline assembles the engine from the TOML config and the
// standard sanitizer set. Config values override the defaults; absent
// keys keep them.
func buildPipeline(configDir string) (driving.Pipeline, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := services.DefaultConfig()
	if v := store.GetInt("min_words"); v > 0 {
		cfg.MinWords = v
	}
	if v := store.GetInt("token_limit"); v > 0 {
		cfg.TokenLimit = v
	}
	if _, ok := store.Get("chunk_overlap"); ok {
		cfg.ChunkOverlap = store.GetInt("chunk_overlap")
	}
	if domains := store.DomainKeywords(); len(domains) > 0 {
		cfg.DomainKeywords = domains
	}

	tokenizer, err := buildTokenizer(store.GetString("tokenizer"))
	if err != nil {
		return nil, err
	}

	deps := services.Dependencies{
		Whitespace: whitespace.New(),
		URLs:       urls.New(),
		HTML:       htmlstrip.New(),
		PII:        pii.New(),
		Profanity:  profanity.New(),
		Sentences:  sentences.New(),
		Tokenizer:  tokenizer,
	}

	logger.Debug("pipeline config: min_words=%d token_limit=%d chunk_overlap=%d domains=%d",
		cfg.MinWords, cfg.TokenLimit, cfg.ChunkOverlap, len(cfg.DomainKeywords))

	return services.NewEngine(cfg, deps)
}

// buildTokenizer selects the tokenizer named in the config: "words"
// (the default) or "tiktoken" for model-accurate BPE counting.
func buildTokenizer(name string) (driven.Tokenizer, error) {
	switch name {
	case "", "words":
		return words.New(), nil
	case "tiktoken":
		tok, err := tiktoken.New()
		if err != nil {
			return nil, fmt.Errorf("tokenizer %q: %w", name, err)
		}
		return tok, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q (want words or tiktoken)", name)
	}
}
