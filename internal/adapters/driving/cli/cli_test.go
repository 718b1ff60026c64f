package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepline-labs/prepline-cli/internal/core/domain"
	"github.com/prepline-labs/prepline-cli/internal/core/services"
	"github.com/prepline-labs/prepline-cli/internal/logger"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/htmlstrip"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/pii"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/profanity"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/sentences"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/urls"
	"github.com/prepline-labs/prepline-cli/internal/sanitizers/whitespace"
	"github.com/prepline-labs/prepline-cli/internal/tokenizers/words"
)

// injectPipeline installs a real engine so commands run without a
// config directory. State is restored after the test.
func injectPipeline(t *testing.T) {
	t.Helper()

	engine, err := services.NewEngine(services.DefaultConfig(), services.Dependencies{
		Whitespace: whitespace.New(),
		URLs:       urls.New(),
		HTML:       htmlstrip.New(),
		PII:        pii.New(),
		Profanity:  profanity.New(),
		Sentences:  sentences.New(),
		Tokenizer:  words.New(),
	})
	require.NoError(t, err)

	pipelineService = engine
	t.Cleanup(func() {
		pipelineService = nil
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		runJSON = false
		verbose = false
		logger.SetVerbose(false)
	})
}

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if stdin != "" {
		rootCmd.SetIn(strings.NewReader(stdin))
	}
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	injectPipeline(t)

	out := execute(t, "", "version")
	assert.Contains(t, out, "prepline version")
}

func TestRunCommand_Stdin(t *testing.T) {
	injectPipeline(t)

	out := execute(t, "What is the refund pricing?", "run", "-")

	assert.Contains(t, out, "[PASS] non-empty")
	assert.Contains(t, out, "Final text: What is the refund pricing?")
	assert.Contains(t, out, "Domain: finance")
}

func TestRunCommand_FailedRuleShown(t *testing.T) {
	injectPipeline(t)

	out := execute(t, "Hi there", "run", "-")
	assert.Contains(t, out, "[FAIL] min-words")
	assert.Contains(t, out, "[PASS] mask-pii")
}

func TestRunCommand_VerboseShowsMetadata(t *testing.T) {
	injectPipeline(t)

	out := execute(t, "Hi there", "run", "-", "--verbose")

	assert.Contains(t, out, "[FAIL] min-words")
	assert.Contains(t, out, "word_count")
}

func TestRunCommand_JSON(t *testing.T) {
	injectPipeline(t)

	out := execute(t, "Plain text with enough words here.", "run", "--json", "-")

	var result domain.PipelineResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Outcomes, 10)
	assert.Equal(t, "Plain text with enough words here.", result.FinalText)
}

func TestRunCommand_File(t *testing.T) {
	injectPipeline(t)

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Contact jane@example.com about the invoice."), 0600))

	out := execute(t, "", "run", path)
	assert.Contains(t, out, "Final text: Contact [EMAIL] about the invoice.")
}

func TestRulesCommand(t *testing.T) {
	injectPipeline(t)

	out := execute(t, "", "rules")

	assert.Contains(t, out, "non-empty")
	assert.Contains(t, out, "classify-domain")
	assert.Contains(t, out, "sanitization")
}

func TestBuildTokenizer_Unknown(t *testing.T) {
	_, err := buildTokenizer("bpe-9000")
	assert.Error(t, err)
}

func TestBuildTokenizer_Words(t *testing.T) {
	tok, err := buildTokenizer("")
	require.NoError(t, err)
	assert.NotNil(t, tok)
}
