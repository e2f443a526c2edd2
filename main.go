package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"google.golang.org/grpc"

	"github.com/banshee-data/dexhand/internal/config"
	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/inspire"
	"github.com/banshee-data/dexhand/internal/manager"
	"github.com/banshee-data/dexhand/internal/manager/pb"
	"github.com/banshee-data/dexhand/internal/piper"
	"github.com/banshee-data/dexhand/internal/version"
)

var (
	devMode     = flag.Bool("dev", false, "Run in dev mode with simulated devices")
	listen      = flag.String("listen", "", "gRPC listen address (overrides config)")
	configPath  = flag.String("config", "", "Path to runtime config JSON")
	armPort     = flag.String("arm-port", "/dev/ttyACM0", "Serial device of the arm CAN adapter")
	armBaud     = flag.Int("arm-baud", 1000000, "Baud rate of the arm CAN adapter")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// deviceFactory builds the per-controller device set. Dev mode wires the
// in-memory simulators; production opens the real serial transports.
func deviceFactory(cfg *config.RuntimeConfig) dexhand.DeviceFactory {
	return func(dcfg dexhand.Config) (dexhand.Devices, error) {
		if *devMode {
			return dexhand.Devices{
				ArmBus:   piper.NewSimBus(),
				HandPort: inspire.NewMockPort(),
				HandID:   cfg.GetHandDeviceID(),
			}, nil
		}

		handPort, err := inspire.OpenPort(cfg.GetHandSerialPort(), cfg.GetHandBaudRate())
		if err != nil {
			return dexhand.Devices{}, fmt.Errorf("open hand serial port: %w", err)
		}
		return dexhand.Devices{
			ArmBus:   piper.NewCANBus(*armPort, *armBaud),
			HandPort: handPort,
			HandID:   cfg.GetHandDeviceID(),
		}, nil
	}
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("dexhand %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		os.Exit(0)
	}

	cfg := config.EmptyRuntimeConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadRuntimeConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	addr := cfg.GetListenAddr()
	if *listen != "" {
		addr = *listen
	}

	registry := dexhand.NewRegistry(deviceFactory(cfg))
	registry.SetHandshake(piper.HandshakeConfig{
		PollInterval: cfg.GetHandshakePoll(),
		Deadline:     cfg.GetHandshakeDeadline(),
	})

	control := manager.NewControlService(registry)
	control.SetStatusPeriod(cfg.GetStatusPeriod())

	server := grpc.NewServer()
	pb.RegisterDexHandServiceServer(server, manager.NewService(registry))
	pb.RegisterDexHandControlServiceServer(server, control)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// serve gRPC until the context is cancelled
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("serving gRPC on %s (dev=%v)", addr, *devMode)
		if err := server.Serve(lis); err != nil {
			log.Printf("grpc server stopped: %v", err)
		}
	}()

	// wait for shutdown signal, then drain in-flight RPCs
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		log.Print("shutting down gRPC server...")
		server.GracefulStop()
	}()

	wg.Wait()

	// disconnect anything still registered so the hardware is left disabled
	for _, ctrl := range registry.List() {
		if ctrl.State() != dexhand.StateCreated {
			if err := ctrl.Disconnect(); err != nil {
				log.Printf("failed to disconnect %s: %v", ctrl.Name(), err)
			}
		}
	}
	log.Printf("Graceful shutdown complete")
}
