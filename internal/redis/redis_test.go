package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := NewClient(ctx, "127.0.0.1:1", "", "", 0)
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "failed to reach redis at 127.0.0.1:1")
}
