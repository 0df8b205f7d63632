package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/models"
)

func testContext() context.Context {
	logger, _ := test.NewNullLogger()
	return ctxhelper.WithLogger(context.Background(), logrus.NewEntry(logger))
}

func TestConfigDefaultsWithoutFile(t *testing.T) {
	ctx := testContext()
	cs := NewConfigService(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, cs.Load(ctx))
	conf := cs.GetConfig(ctx)
	assert.Equal(t, ":3000", conf.ListenAddress)
	assert.Equal(t, uint(models.DefaultSessionExpiry), conf.SessionExpiry)
	assert.Equal(t, "info", conf.Log.Level)
}

func TestConfigLoadKeepsDefaultsForMissingValues(t *testing.T) {
	ctx := testContext()
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"listenAddress": ":9000", "log": {"level": "debug"}}`), 0o600))

	cs := NewConfigService(file)
	require.NoError(t, cs.Load(ctx))
	conf := cs.GetConfig(ctx)
	assert.Equal(t, ":9000", conf.ListenAddress)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, "text", conf.Log.Format)
	assert.Equal(t, uint(models.DefaultSessionExpiry), conf.SessionExpiry)
}

func TestConfigLoadBrokenFile(t *testing.T) {
	ctx := testContext()
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"listenAddress":`), 0o600))

	assert.Error(t, NewConfigService(file).Load(ctx))
}

func TestConfigEnvOverrides(t *testing.T) {
	ctx := testContext()
	t.Setenv("EVENTDESK_LISTEN_ADDRESS", "127.0.0.1:4000")
	t.Setenv("EVENTDESK_SESSION_EXPIRY", "5")
	t.Setenv("EVENTDESK_LOG_FORMAT", "json")

	cs := NewConfigService(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, cs.ApplyEnv(ctx))
	conf := cs.GetConfig(ctx)
	assert.Equal(t, "127.0.0.1:4000", conf.ListenAddress)
	assert.Equal(t, uint(5), conf.SessionExpiry)
	assert.Equal(t, "json", conf.Log.Format)
	assert.Equal(t, "info", conf.Log.Level)
}

func TestConfigEnvOverridesRejectGarbage(t *testing.T) {
	ctx := testContext()
	t.Setenv("EVENTDESK_SESSION_EXPIRY", "forever")

	cs := NewConfigService(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, cs.ApplyEnv(ctx))
}

func TestConfigWriteAndReload(t *testing.T) {
	ctx := testContext()
	file := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("EVENTDESK_UI_DIR", "/srv/ui")

	cs := NewConfigService(file)
	require.NoError(t, cs.ApplyEnv(ctx))
	require.NoError(t, cs.Write(ctx))

	reloaded := NewConfigService(file)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, cs.GetConfig(ctx), reloaded.GetConfig(ctx))
	assert.Equal(t, "/srv/ui", reloaded.GetConfig(ctx).UIDir)
}
