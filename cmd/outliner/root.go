package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner/classify"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Document outline extraction from text fragments",
	Long: `Outliner turns extracted document text into a title and a hierarchical
outline of headings (H1 through H6, each with its page number).

It reads either fragment interchange JSON produced by an extraction tool or,
best-effort, PDF files directly. Headings are detected from formatting
signals: font size, weight, style, and indentation.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./outliner.yaml or ~/.outliner/outliner.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return initConfig()
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// initConfig wires viper: built-in defaults, then an optional config file,
// then OUTLINER_-prefixed environment variables.
func initConfig() error {
	defaults := classify.DefaultConfig()
	viper.SetDefault("score.font_rank_weight", defaults.Score.FontRankWeight)
	viper.SetDefault("score.bold_bonus", defaults.Score.BoldBonus)
	viper.SetDefault("score.italic_bonus", defaults.Score.ItalicBonus)
	viper.SetDefault("score.indent_weight", defaults.Score.IndentWeight)
	viper.SetDefault("score.word_count_penalty", defaults.Score.WordCountPenalty)
	viper.SetDefault("score.word_count_cap", defaults.Score.WordCountCap)
	viper.SetDefault("hierarchy.bracket_width", defaults.Hierarchy.BracketWidth)
	viper.SetDefault("hierarchy.max_depth", defaults.Hierarchy.MaxDepth)
	viper.SetDefault("hierarchy.max_bracket_entries", defaults.Hierarchy.MaxBracketEntries)
	viper.SetDefault("merge.line_gap_factor", defaults.Merge.LineGapFactor)
	viper.SetDefault("merge.max_size_delta", defaults.Merge.MaxSizeDelta)
	viper.SetDefault("filter.top_margin_fraction", defaults.Filter.TopMarginFraction)
	viper.SetDefault("filter.bottom_margin_fraction", defaults.Filter.BottomMarginFraction)
	viper.SetDefault("filter.repeat_ratio", defaults.Filter.RepeatRatio)
	viper.SetDefault("validate.max_words", defaults.Validate.MaxWords)
	viper.SetDefault("validate.min_dict_ratio", defaults.Validate.MinDictRatio)
	viper.SetDefault("workers", 4)

	viper.SetEnvPrefix("OUTLINER")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outliner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.outliner")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return err
	}
	slog.Debug("config loaded", "file", viper.ConfigFileUsed())
	return nil
}

// pipelineConfig materializes the classify configuration from viper
func pipelineConfig() classify.Config {
	cfg := classify.DefaultConfig()
	cfg.Score.FontRankWeight = viper.GetFloat64("score.font_rank_weight")
	cfg.Score.BoldBonus = viper.GetFloat64("score.bold_bonus")
	cfg.Score.ItalicBonus = viper.GetFloat64("score.italic_bonus")
	cfg.Score.IndentWeight = viper.GetFloat64("score.indent_weight")
	cfg.Score.WordCountPenalty = viper.GetFloat64("score.word_count_penalty")
	cfg.Score.WordCountCap = viper.GetFloat64("score.word_count_cap")
	cfg.Hierarchy.BracketWidth = viper.GetFloat64("hierarchy.bracket_width")
	cfg.Hierarchy.MaxDepth = viper.GetInt("hierarchy.max_depth")
	cfg.Hierarchy.MaxBracketEntries = viper.GetInt("hierarchy.max_bracket_entries")
	cfg.Merge.LineGapFactor = viper.GetFloat64("merge.line_gap_factor")
	cfg.Merge.MaxSizeDelta = viper.GetFloat64("merge.max_size_delta")
	cfg.Filter.TopMarginFraction = viper.GetFloat64("filter.top_margin_fraction")
	cfg.Filter.BottomMarginFraction = viper.GetFloat64("filter.bottom_margin_fraction")
	cfg.Filter.RepeatRatio = viper.GetFloat64("filter.repeat_ratio")
	cfg.Validate.MaxWords = viper.GetInt("validate.max_words")
	cfg.Validate.MinDictRatio = viper.GetFloat64("validate.min_dict_ratio")
	return cfg
}
