// cmd/psumon/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"psumon/internal/config"
	"psumon/internal/hiddev"
	"psumon/internal/pmbus"
	"psumon/internal/report"
	"psumon/internal/snapshot"
)

var (
	cfgFlag   string
	jsonFlag  bool
	watchFlag time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "psumon [device-path]",
	Short: "Read telemetry from Corsair RMi/HXi power supplies",
	Long: `psumon reads a full telemetry snapshot (temperatures, fan speed,
input voltage, per-rail voltage/current/power, uptime and identity
strings) from a Corsair RMi/HXi series power supply over its raw HID
channel.

Without a device path it scans for the first compatible unit.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFlag, "config", "c", "", "Configuration file (YAML)")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the snapshot as JSON")
	rootCmd.Flags().DurationVarP(&watchFlag, "watch", "w", 0, "Re-read on this interval instead of once")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// --------------------
	// Load + validate config (optional)
	// --------------------

	cfg := &config.Config{}
	if cfgFlag != "" {
		loaded, err := config.Load(cfgFlag)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		if err := config.Validate(loaded); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
		cfg = loaded
	}

	// Flag > config > default.
	path := cfg.Device.Path
	if len(args) == 1 {
		path = args[0]
	}
	asJSON := jsonFlag || cfg.Output.Format == "json"
	interval := watchFlag
	if interval == 0 {
		interval = cfg.Interval()
	}

	// --------------------
	// Open the device
	// --------------------

	if err := hiddev.Init(); err != nil {
		return fmt.Errorf("hid init failed: %w", err)
	}
	defer hiddev.Exit()

	var (
		dev hiddev.Device
		err error
	)
	if path != "" {
		dev, err = hiddev.Open(path)
	} else {
		dev, err = hiddev.Find()
	}
	if err != nil {
		return err
	}
	defer dev.Close()

	client := pmbus.NewClient(dev)

	render := func(s *snapshot.Snapshot) error {
		if asJSON {
			return report.JSON(os.Stdout, s)
		}
		return report.Text(os.Stdout, s)
	}

	// --------------------
	// Single shot
	// --------------------

	if interval <= 0 {
		snap, err := snapshot.Read(client)
		if err != nil {
			return err
		}
		return render(snap)
	}

	// --------------------
	// Watch loop
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := make(chan snapshot.Result)
	go snapshot.Watch(ctx, client, interval, out)

	for {
		select {
		case <-ctx.Done():
			return nil
		case res := <-out:
			// A failed transaction leaves the report framing in an
			// undefined state, so the loop cannot continue.
			if res.Err != nil {
				return res.Err
			}
			if err := render(res.Snap); err != nil {
				return err
			}
		}
	}
}
