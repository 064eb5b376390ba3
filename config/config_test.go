package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/anytype-fcm-notifier/channel"
)

func TestNewFromFile(t *testing.T) {
	c, err := NewFromFile(filepath.Join("testdata", "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, CName, c.Name())
	assert.Equal(t, "info", c.GetLog().DefaultLevel)
	require.Len(t, c.GetLog().Levels, 1)
	assert.Equal(t, "fcm.channel", c.GetLog().Levels[0].Name)
	assert.Equal(t, "debug", c.GetLog().Levels[0].Level)
	assert.Equal(t, "0.0.0.0:8000", c.GetMetric().Addr)
	assert.Equal(t, "fcm", c.GetMongo().Database)
	assert.False(t, c.GetRedis().IsCluster)
	assert.Equal(t, 10, c.GetQueue().Workers)
	assert.Equal(t, channel.Config{
		CredentialsFile: "etc/service-account.json",
		Transport:       channel.TransportHTTP,
	}, c.GetFCM())
}

func TestNewFromFile_NotFound(t *testing.T) {
	_, err := NewFromFile(filepath.Join("testdata", "missing.yml"))
	assert.Error(t, err)
}
