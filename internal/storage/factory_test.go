package storage

import (
	"context"
	"testing"

	"github.com/AnshRaj112/neurosphere-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Memory(t *testing.T) {
	b, err := New(context.Background(), &config.Config{StorageBackend: config.BackendMemory}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, b.Name)
	assert.IsType(t, &Memory{}, b.Port)
	assert.Nil(t, b.Redis)
	assert.NoError(t, b.Close())
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(context.Background(), &config.Config{StorageBackend: "etcd"}, zap.NewNop())
	assert.Error(t, err)
}
