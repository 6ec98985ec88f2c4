package main

import (
	"context"
	"flag"
	"log"
	"os"

	tfbridge "github.com/underwave-robotics/tfbridge"
	"github.com/underwave-robotics/tfbridge/config"
	"github.com/underwave-robotics/tfbridge/internal"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	cfgPath := flag.String("config", "", "config file path (default: config.yml)")
	input := flag.String("input", "-", "JSON-lines sample input, '-' for stdin")
	vehicle := flag.String("vehicle", "", "vehicle name (overrides config)")
	vtype := flag.String("type", "", "vehicle type mk1|mk2 (overrides config)")
	flag.Parse()

	internal.InitLogging()

	var paths []string
	if *cfgPath != "" {
		paths = []string{*cfgPath}
	}
	cfg, err := config.LoadAppConfig(paths...)
	if err != nil {
		// Flags alone can stand in for a config file.
		if *vehicle == "" || *vtype == "" {
			log.Fatalf("load config: %v (or pass -vehicle and -type)", err)
		}
		cfg = config.ApplyDefaults(config.AppConfig{})
	}
	if *vehicle != "" {
		cfg.Vehicle.Name = *vehicle
	}
	if *vtype != "" {
		cfg.Vehicle.Type = *vtype
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	svc, err := tfbridge.NewService(cfg)
	if err != nil {
		// Fatal before any sample processing: never run with
		// silently-wrong offsets.
		log.Fatalf("startup: %v", err)
	}
	svc.Start()
	log.Printf("frame tree up for %s (%s): %d static edges", cfg.Vehicle.Name, cfg.Vehicle.Type, len(svc.Static.Edges()))

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	switch *mode {
	case "oneshot":
		if err := svc.RunStream(context.Background(), in, os.Stdout); err != nil {
			log.Fatalf("stream: %v", err)
		}
	case "serve":
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			if err := svc.RunStream(ctx, in, os.Stdout); err != nil {
				log.Printf("stream ended: %v", err)
			}
		}()
		server := svc.StartServer()
		tfbridge.HandleGracefulShutdown(server)
		cancel()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
