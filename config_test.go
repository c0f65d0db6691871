package querytext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/goccy/go-yaml"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "querytext.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	// A non-existent file yields the default configuration.
	config, err := LoadConfig("non-existent-file.yaml")
	assert.NoError(t, err)
	assert.True(t, config != nil)

	assert.Equal(t, "literal", config.PatternType)
	assert.Equal(t, "", config.DefaultContext)
	assert.Zero(t, config.Redact)
	assert.True(t, config.ColorEnabled())
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
default_context: global
pattern_type: regexp
redact:
  - author
  - committer
color: false
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "global", config.DefaultContext)
	assert.Equal(t, "regexp", config.PatternType)
	assert.Equal(t, []string{"author", "committer"}, config.Redact)
	assert.False(t, config.ColorEnabled())
}

func TestLoadConfig_AppliesPatternTypeDefault(t *testing.T) {
	path := writeConfig(t, "default_context: ctx\n")

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "literal", config.PatternType)
}

func TestLoadConfig_RejectsUnknownField(t *testing.T) {
	path := writeConfig(t, "pattern_typo: literal\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsInvalidPatternType(t *testing.T) {
	path := writeConfig(t, "pattern_type: fuzzy\n")

	_, err := LoadConfig(path)
	assert.True(t, errors.Is(err, ErrConfigValidation))
}

func TestLoadConfig_RejectsUnknownRedactField(t *testing.T) {
	path := writeConfig(t, "redact:\n  - bogus\n")

	_, err := LoadConfig(path)
	assert.True(t, errors.Is(err, ErrUnknownFilter))
}

func TestLoadConfig_ExpandsEnvVars(t *testing.T) {
	t.Setenv("QUERYTEXT_TEST_CONTEXT", "team-a")
	path := writeConfig(t, "default_context: ${QUERYTEXT_TEST_CONTEXT}\n")

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "team-a", config.DefaultContext)
}

func TestConfig_ColorNullHandling(t *testing.T) {
	var config Config
	assert.NoError(t, yaml.Unmarshal([]byte("color: null\n"), &config))
	assert.True(t, config.ColorEnabled())

	assert.NoError(t, yaml.Unmarshal([]byte("color: true\n"), &config))
	assert.True(t, config.ColorEnabled())
}
