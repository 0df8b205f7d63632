package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"slug", "My Big Event!"}, "my-big-event\n"},
		{[]string{"slug", "Jazz", "Night"}, "jazz-night\n"},
		{[]string{"slug", "  Multi   Space  "}, "multi-space\n"},
	}
	for _, tt := range tests {
		cmd := newRootCmd("config.json")
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(tt.args)
		require.NoError(t, cmd.Execute())
		assert.Equal(t, tt.want, out.String())
	}
}

func TestSlugCommandNeedsAName(t *testing.T) {
	cmd := newRootCmd("config.json")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"slug"})
	assert.Error(t, cmd.Execute())
}

func TestConfigInit(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("EVENTDESK_LISTEN_ADDRESS", ":8123")

	cmd := newRootCmd("unused.json")
	cmd.SetArgs([]string{"config", "init", "--config", file})
	require.NoError(t, cmd.Execute())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	var conf map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &conf))
	assert.Equal(t, ":8123", conf["listenAddress"])
	assert.EqualValues(t, 60, conf["sessionExpiry"])
}

func TestPort(t *testing.T) {
	assert.Equal(t, "3000", port(":3000"))
	assert.Equal(t, "8080", port("0.0.0.0:8080"))
	assert.Equal(t, "8080", port("[::1]:8080"))
	assert.Equal(t, "3000", port("3000"))
}
