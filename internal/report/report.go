// Package report renders telemetry snapshots. No I/O beyond the supplied
// writer; no side effects.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"psumon/internal/snapshot"
)

// labelWidth is the column the values start in.
const labelWidth = 16

// Text writes the human-readable report, one reading per line.
func Text(w io.Writer, s *snapshot.Snapshot) error {
	var b strings.Builder

	ident := func(label, v string) {
		fmt.Fprintf(&b, "%-*s'%s'\n", labelWidth, label+":", v)
	}
	seconds := func(label string, v uint32) {
		fmt.Fprintf(&b, "%-*s%d (%dd. %dh)\n", labelWidth, label+":",
			v, snapshot.Days(v), snapshot.Hours(v))
	}
	scalar := func(label string, v float64) {
		fmt.Fprintf(&b, "%-*s%5.1f\n", labelWidth, label+":", v)
	}

	ident("name", s.Name)
	ident("vendor", s.Vendor)
	ident("product", s.Product)

	seconds("powered", s.PoweredSeconds)
	seconds("uptime", s.UptimeSeconds)

	scalar("temp1", s.Temp1)
	scalar("temp2", s.Temp2)
	scalar("fan rpm", s.FanRPM)
	scalar("supply volts", s.VoltsIn)
	scalar("total watts", s.WattsTotal)

	for i, out := range s.Outputs {
		scalar(fmt.Sprintf("output%d volts", i), out.Volts)
		scalar(fmt.Sprintf("output%d amps", i), out.Amps)
		scalar(fmt.Sprintf("output%d watts", i), out.Watts)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the snapshot as a single JSON object followed by a newline.
func JSON(w io.Writer, s *snapshot.Snapshot) error {
	return json.NewEncoder(w).Encode(s)
}
