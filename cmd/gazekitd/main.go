// gazekitd: the spatial interaction engine daemon.
// Accepts gaze/gesture sample streams over WebSocket, runs the dwell
// and gesture pipelines, and broadcasts derived interaction events.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhittincamdali/go-gazekit/internal/config"
	"github.com/muhittincamdali/go-gazekit/internal/log"
	"github.com/muhittincamdali/go-gazekit/pkg/dwell"
	"github.com/muhittincamdali/go-gazekit/pkg/engine"
	"github.com/muhittincamdali/go-gazekit/pkg/web"
)

var (
	version = "1.0.0"
	port    = flag.String("port", "", "HTTP server port (default from GAZEKIT_PORT)")
	profile = flag.String("profile", "", "dwell profile: default, slow, responsive")
)

func main() {
	flag.Parse()

	log.Init(config.LogLevel())
	log.Info("gazekitd starting", "version", version)

	if *port == "" {
		*port = config.Port()
	}
	if *profile == "" {
		*profile = config.DwellProfile()
	}

	cfg := engine.DefaultConfig()
	switch *profile {
	case "slow":
		cfg.Dwell = dwell.SlowConfig()
	case "responsive":
		cfg.Dwell = dwell.ResponsiveConfig()
	case "default", "":
		// keep defaults
	default:
		log.Warn("unknown dwell profile, using default", "profile", *profile)
	}
	if d := config.DwellDuration(); d > 0 {
		cfg.Dwell.DefaultDuration = d
	}
	cfg.BroadcastInterval = config.BroadcastInterval()

	eng := engine.New(cfg, nil)
	srv := web.NewServer(*port, eng)
	eng.SetSink(srv)

	ctx, cancel := context.WithCancel(context.Background())
	go eng.Run(ctx)
	srv.StartAsync()

	log.Info("gazekitd ready",
		"port", *port,
		"samples_ws", "ws://localhost:"+*port+"/ws/samples",
		"events_ws", "ws://localhost:"+*port+"/ws/events",
		"dwell_profile", *profile)

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Error("shutdown error", "error", err)
	}
}
