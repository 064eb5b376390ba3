package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/anytype-fcm-notifier/domain"
)

func parseNotification(t *testing.T, args ...string) (domain.PushNotification, error) {
	var f notificationFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.bind(fs)
	require.NoError(t, fs.Parse(args))
	return f.notification(fs)
}

func TestNotificationFlags(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		n, err := parseNotification(t,
			"--title", "hi",
			"--body", "text",
			"--sound", "default",
			"--priority", "high",
			"--data", "a=1,b=two",
			"--ttl", "1h",
			"--content-available",
			"--topic", "news",
		)
		require.NoError(t, err)
		ttl, available := 3600, true
		assert.Equal(t, domain.PushNotification{
			Title:            "hi",
			Body:             "text",
			Sound:            "default",
			Priority:         "high",
			Data:             map[string]any{"a": "1", "b": "two"},
			TimeToLive:       &ttl,
			ContentAvailable: &available,
			Topic:            "news",
		}, n)
	})
	t.Run("unset optional flags", func(t *testing.T) {
		n, err := parseNotification(t, "--title", "hi")
		require.NoError(t, err)
		assert.Nil(t, n.TimeToLive)
		assert.Nil(t, n.ContentAvailable)
		assert.Nil(t, n.MutableContent)
		assert.Nil(t, n.Data)
	})
	t.Run("zero ttl", func(t *testing.T) {
		n, err := parseNotification(t, "--ttl", "0")
		require.NoError(t, err)
		require.NotNil(t, n.TimeToLive)
		assert.Equal(t, 0, *n.TimeToLive)
	})
	t.Run("invalid priority", func(t *testing.T) {
		_, err := parseNotification(t, "--priority", "urgent")
		assert.Error(t, err)
	})
	t.Run("invalid ttl", func(t *testing.T) {
		_, err := parseNotification(t, "--ttl", "soon")
		assert.Error(t, err)
	})
}

func TestParseTTL(t *testing.T) {
	for in, exp := range map[string]int{"60": 60, "2m": 120, "1h30m": 5400} {
		ttl, err := parseTTL(in)
		require.NoError(t, err, in)
		assert.Equal(t, exp, ttl, in)
	}
	_, err := parseTTL("-5")
	assert.Error(t, err)
}
