// File: test/e2e_setup_test.go
package test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/websocket"

	"github.com/lguibr/collide/actor"
	"github.com/lguibr/collide/config"
	"github.com/lguibr/collide/physics"
	"github.com/lguibr/collide/server"
	"github.com/lguibr/collide/simactor"
)

// E2ESetupResult bundles everything a driver-level test needs to talk
// to a running simulation over a real WebSocket connection.
type E2ESetupResult struct {
	Engine *actor.Engine
	SimPID *actor.PID
	Server *httptest.Server
	WsURL  string
	Origin string
	Cfg    config.Config
}

// SetupE2ETest spins up an actor engine, a SimActor, and an httptest
// WebSocket server in front of it.
func SetupE2ETest(t *testing.T, cfg config.Config) E2ESetupResult {
	t.Helper()

	engine := actor.NewEngine()
	bounds := physics.Bounds{MinX: 0, MinY: 0, MaxX: cfg.Width, MaxY: cfg.Height}
	simPID := engine.Spawn(actor.NewProps(simactor.NewProducer(cfg.PoolSize, bounds, cfg.Elasticity, cfg.ReflectingBorder, cfg.IsSticky)))
	assert.NotNil(t, simPID, "SimActor PID should not be nil")

	srv := server.New(engine, simPID, cfg.AskTimeout)
	httpServer := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))

	wsURL := "ws" + strings.TrimPrefix(httpServer.URL, "http")
	origin := "http://localhost/"

	return E2ESetupResult{Engine: engine, SimPID: simPID, Server: httpServer, WsURL: wsURL, Origin: origin, Cfg: cfg}
}

// TeardownE2ETest closes the test server and shuts down the engine.
func TeardownE2ETest(t *testing.T, setup E2ESetupResult, shutdownTimeout time.Duration) {
	t.Helper()
	if setup.Server != nil {
		setup.Server.Close()
	}
	if setup.Engine != nil {
		setup.Engine.Shutdown(shutdownTimeout)
	}
}
