// Command displayd is the Constellation display server: it accepts
// scene/timeline mutations over gRPC and drives a render frame loop
// off the resulting transport clock.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/kitonae/constellation/internal/config"
	"github.com/kitonae/constellation/internal/control"
	"github.com/kitonae/constellation/internal/controlpb"
	"github.com/kitonae/constellation/internal/gpu"
	"github.com/kitonae/constellation/internal/render"
	"github.com/kitonae/constellation/internal/statehub"
	"github.com/kitonae/constellation/internal/texture"
	"github.com/kitonae/constellation/internal/transport"
)

var (
	configPath = flag.String("config", "", "path to a JSON server config file (optional)")
	listenAddr = flag.String("listen", "", "override the control surface's listen address")
	mediaRoot  = flag.String("media-root", "", "override the media root directory")
)

func main() {
	flag.Parse()

	cfg := config.Empty()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("displayd: %v", err)
		}
		cfg = loaded
	}
	if *listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if *mediaRoot != "" {
		cfg.MediaRoot = mediaRoot
	}

	clock := transport.New()
	clock.SetRate(cfg.GetDefaultRate())
	clock.Stop() // SetRate above folds nothing yet, but keep the clock stopped at startup
	hub := statehub.New(clock)
	hub.SetMaxSubscribers(cfg.GetMaxSubscribers())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		runControlSurface(ctx, cfg, hub)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runFrameLoop(ctx, cfg, hub)
	}()

	wg.Wait()
	log.Print("displayd: shutdown complete")
}

func runControlSurface(ctx context.Context, cfg *config.ServerConfig, hub *statehub.Hub) {
	lis, err := net.Listen("tcp", cfg.GetListenAddr())
	if err != nil {
		log.Fatalf("displayd: listen on %s: %v", cfg.GetListenAddr(), err)
	}

	server := grpc.NewServer(grpc.ForceServerCodec(controlpb.Codec()))
	controlpb.RegisterDisplayControlServer(server, control.NewServer(hub))

	go func() {
		log.Printf("displayd: control surface listening on %s", cfg.GetListenAddr())
		if err := server.Serve(lis); err != nil {
			log.Printf("displayd: control surface stopped serving: %v", err)
		}
	}()

	<-ctx.Done()
	log.Print("displayd: stopping control surface")
	server.GracefulStop()
}

func runFrameLoop(ctx context.Context, cfg *config.ServerConfig, hub *statehub.Hub) {
	device := gpu.NewNullDevice()
	surface := gpu.NewNullSurface()
	surface.Configure(uint32(cfg.GetWindowWidth()), uint32(cfg.GetWindowHeight()))

	cache, err := texture.NewCache(device, texture.StdlibDecoder{MediaRoot: cfg.GetMediaRoot()})
	if err != nil {
		log.Fatalf("displayd: creating texture cache: %v", err)
	}

	loop := render.New(hub, surface, cache, uint32(cfg.GetWindowWidth()), uint32(cfg.GetWindowHeight()))

	// A real deployment drives Tick from the window system's vsync
	// callback; in the absence of a real GPU/window binding this runs
	// on a fixed ~60Hz ticker against the abstract gpu.Device/Surface.
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	log.Print("displayd: frame loop started")
	for {
		select {
		case <-ctx.Done():
			if err := device.Close(); err != nil {
				log.Printf("displayd: closing device: %v", err)
			}
			log.Print("displayd: frame loop stopped")
			return
		case now := <-ticker.C:
			if err := loop.Tick(now); err != nil {
				log.Printf("displayd: frame tick error: %v", err)
			}
		}
	}
}
