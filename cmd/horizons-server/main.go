// Headless horizon simulation served to browser canvases over websocket.
// Open http://<addr>/ in a browser to watch; every connected client sees
// the same simulation.
package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/love-developer/eras-horizons/horizon"
	"github.com/love-developer/eras-horizons/stream"
)

//go:embed web
var webFS embed.FS

var (
	addrFlag    = flag.String("addr", "localhost:5173", "HTTP listen address")
	horizonFlag = flag.String("horizon", "bigbang", "Horizon to simulate")
	tierFlag    = flag.String("tier", "high", "Particle budget tier: low|medium|high")
	widthFlag   = flag.Float64("width", 960, "Simulation width in canvas units")
	heightFlag  = flag.Float64("height", 540, "Simulation height in canvas units")
	presetsFlag = flag.String("presets", "", "Optional YAML preset file")
)

func main() {
	flag.Parse()

	def := horizon.ByName(*horizonFlag)
	if def == nil {
		log.Fatalf("unknown horizon %q; built-ins:%s", *horizonFlag, names())
	}

	if *presetsFlag != "" {
		presets, err := horizon.LoadPresets(*presetsFlag)
		if err != nil {
			log.Fatalf("presets: %v", err)
		}
		for _, p := range presets {
			if p.Name == def.Name {
				p.Apply(def)
			}
		}
	}

	tier := horizon.TierHigh
	switch *tierFlag {
	case "low":
		tier = horizon.TierLow
	case "medium":
		tier = horizon.TierMedium
	}

	effect := horizon.NewEffect(def, *widthFlag, *heightFlag, tier)
	server := stream.NewServer(*addrFlag, effect)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Print("shutting down")
		cancel()
	}()

	static, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Fatal(err)
	}
	if err := server.Run(ctx, http.FS(static)); err != nil {
		log.Fatal(err)
	}
}

func names() string {
	out := ""
	for _, h := range horizon.All() {
		out += " " + h.Name
	}
	return out
}
