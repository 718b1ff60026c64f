package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
	"github.com/prepline-labs/prepline-cli/internal/logger"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the preprocessing pipeline on a file or stdin",
	Long: `Reads text from the given file (or stdin when omitted or "-"),
runs it through the pipeline, and prints the per-rule trace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := pipelineService.Run(context.Background(), raw)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if runJSON {
		return outputResultJSON(cmd, result)
	}
	return outputResultTable(cmd, result)
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func outputResultJSON(cmd *cobra.Command, result *domain.PipelineResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultTable(cmd *cobra.Command, result *domain.PipelineResult) error {
	cmd.Printf("Run %s\n\n", result.RunID)

	for _, outcome := range result.Outcomes {
		status := "PASS"
		if !outcome.Passed {
			status = "FAIL"
		}
		cmd.Printf("  [%s] %s\n", status, outcome.RuleID)
		if logger.IsVerbose() && len(outcome.Metadata) > 0 {
			cmd.Printf("         %v\n", outcome.Metadata)
		}
	}

	cmd.Println()
	cmd.Printf("Final text: %s\n", result.FinalText)

	if len(result.Chunks) > 0 {
		cmd.Printf("Chunks: %d\n", len(result.Chunks))
		for _, ch := range result.Chunks {
			cmd.Printf("  [%d] tokens %d-%d: %s\n", ch.Index, ch.StartToken, ch.EndToken, preview(ch.Text))
		}
	}

	if result.Classification != nil {
		cls := result.Classification
		cmd.Printf("Domain: %s", cls.Domain)
		if len(cls.TiedDomains) > 0 {
			cmd.Printf(" (tied: %s)", strings.Join(cls.TiedDomains, ", "))
		}
		if len(cls.MatchedKeywords) > 0 {
			cmd.Printf(" [%s]", strings.Join(cls.MatchedKeywords, ", "))
		}
		cmd.Println()
	}

	return nil
}

// preview shortens long chunk text for table display.
func preview(text string) string {
	const max = 60
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
