package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigFromString(t *testing.T) {
	{
		config, err := NewConfigFromString("memory://")
		require.NoError(t, err)
		require.Equal(t, "memory", config.Scheme)
		require.Equal(t, "memory://", config.String())
	}

	{
		config, err := NewConfigFromString("file:///tmp/council/db")
		require.NoError(t, err)
		require.Equal(t, "file", config.Scheme)
		require.Equal(t, "/tmp/council/db", config.Path)
		require.Equal(t, "file:///tmp/council/db", config.String())
	}

	{
		_, err := NewConfigFromString("file://")
		require.Error(t, err)
	}

	{
		_, err := NewConfigFromString("redis://localhost:6379")
		require.Error(t, err)
	}
}
