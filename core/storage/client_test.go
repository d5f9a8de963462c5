package storage_test

import (
	"testing"

	"migration-validator/core/storage"
	"migration-validator/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mock must keep tracking the Client interface.
var _ storage.Client = (*mocks.Client)(nil)

func TestNewClient(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{Endpoint: "localhost:9000"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Scheme Stripped From Endpoint", func(t *testing.T) {
		// The minio client rejects endpoints carrying a scheme, so
		// NewClient must strip it before connecting.
		client, err := storage.NewClient(storage.Config{Endpoint: "https://minio.example.com"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
