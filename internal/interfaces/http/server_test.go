package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peptilab/peptigraph/internal/config"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
)

func TestServer_StartStop(t *testing.T) {
	cfg := config.ServerConfig{
		Port:            0, // any free port would do; Stop is called before traffic
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}
	srv := NewServer(http.NewServeMux(), cfg, logging.NewNop())

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, srv.Stop(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
