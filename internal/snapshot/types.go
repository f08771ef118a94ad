package snapshot

import "time"

// Output is one power rail's readings.
type Output struct {
	Volts float64 `json:"volts"`
	Amps  float64 `json:"amps"`
	Watts float64 `json:"watts"`
}

// Snapshot is one complete telemetry readout. Read builds it fresh per
// invocation; it is never mutated after Read returns.
type Snapshot struct {
	Name    string `json:"name"`
	Vendor  string `json:"vendor"`
	Product string `json:"product"`

	PoweredSeconds uint32 `json:"powered_seconds"`
	UptimeSeconds  uint32 `json:"uptime_seconds"`

	Temp1      float64 `json:"temp1"`
	Temp2      float64 `json:"temp2"`
	FanRPM     float64 `json:"fan_rpm"`
	VoltsIn    float64 `json:"volts_in"`
	WattsTotal float64 `json:"watts_total"`

	// Outputs holds the three selectable rails in channel order.
	Outputs [3]Output `json:"outputs"`
}

// Days and Hours split a seconds counter for display.
func Days(sec uint32) uint32  { return sec / 86400 }
func Hours(sec uint32) uint32 { return sec / 3600 % 24 }

// Result is the outcome of one Watch cycle.
type Result struct {
	At   time.Time
	Snap *Snapshot
	Err  error // non-nil means the cycle failed; Snap is nil
}
