package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamafetch/llama-mcp/config"
)

func TestSetup_WiresAllServices(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OpsPort = 0 // no listener in tests

	registry, app, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, registry)
	require.NotNil(t, app)

	assert.NotNil(t, app.Prices)
	assert.NotNil(t, app.Yields)
	assert.NotNil(t, app.Protocols)

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()
}
