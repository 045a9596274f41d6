package src

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConf(t *testing.T) {
	conf, err := parse(strings.NewReader(`
# sstl-cli config
prompt "stl> "
historyFile /tmp/sstl_history
loglevel info
heapOrder min
multiline yes
maxListing 16
unknownKey whatever
`))
	require.NoError(t, err)
	assert.Equal(t, "stl> ", conf.Prompt)
	assert.Equal(t, "/tmp/sstl_history", conf.HistoryFile)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, HEAP_ORDER_MIN, conf.HeapOrder)
	assert.True(t, conf.Multiline)
	assert.Equal(t, 16, conf.MaxListing)
}

func TestParseConfDefaults(t *testing.T) {
	conf, err := parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), conf)

	conf, err = parse(strings.NewReader("maxListing lots\n"))
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_MAX_LISTING, conf.MaxListing)
}

func TestParseConfRejects(t *testing.T) {
	_, err := parse(strings.NewReader("heapOrder sideways\n"))
	assert.Error(t, err)
	_, err = parse(strings.NewReader("logLevel loud\n"))
	assert.Error(t, err)
}

func TestParseYaml(t *testing.T) {
	conf, err := parseYaml(strings.NewReader(`
prompt: "yml> "
heapOrder: min
multiline: true
maxListing: 3
`))
	require.NoError(t, err)
	assert.Equal(t, "yml> ", conf.Prompt)
	assert.Equal(t, HEAP_ORDER_MIN, conf.HeapOrder)
	assert.True(t, conf.Multiline)
	assert.Equal(t, 3, conf.MaxListing)
	// untouched keys keep their defaults
	assert.Equal(t, SSTL_CLI_HISTFILE_DEFAULT, conf.HistoryFile)

	conf, err = parseYaml(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), conf)

	_, err = parseYaml(strings.NewReader("heapOrder: sideways\n"))
	assert.Error(t, err)
	_, err = parseYaml(strings.NewReader("maxListing: [1, 2]\n"))
	assert.Error(t, err)
}

func TestSetupConf(t *testing.T) {
	defer func(old *configVal) { config = old }(config)

	dir := t.TempDir()
	yml := filepath.Join(dir, "sstl.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("prompt: \"y> \"\n"), 0o644))
	SetupConf(yml)
	assert.Equal(t, "y> ", config.Prompt)

	conf := filepath.Join(dir, "sstl.conf")
	require.NoError(t, os.WriteFile(conf, []byte("prompt c>\n"), 0o644))
	SetupConf(conf)
	assert.Equal(t, "c>", config.Prompt)
}
