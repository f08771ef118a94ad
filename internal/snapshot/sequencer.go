package snapshot

import (
	"fmt"

	"psumon/internal/pmbus"
)

// Client abstracts the register access the sequencer needs. The sequencer
// depends on read order only, not on transport details.
type Client interface {
	ReadName() (string, error)
	ReadString(reg byte) (string, error)
	ReadLinear(reg byte) (float64, error)
	ReadUint32(reg byte) (uint32, error)
	SelectOutput(ch uint8) error
}

// step is one transaction of the fixed sequence.
type step struct {
	name string
	run  func() error
}

// Read performs the full snapshot sequence: identity strings, duration
// counters, scalar registers, then each output rail behind its channel
// select, and finally the select restore to channel 0.
//
// All-or-nothing: the first failing step aborts the sequence immediately
// and no further transactions are issued, including the restore (the
// channel's framing state is undefined after a failure).
func Read(c Client) (*Snapshot, error) {
	var s Snapshot

	str := func(reg byte, dst *string) func() error {
		return func() error {
			v, err := c.ReadString(reg)
			*dst = v
			return err
		}
	}
	u32 := func(reg byte, dst *uint32) func() error {
		return func() error {
			v, err := c.ReadUint32(reg)
			*dst = v
			return err
		}
	}
	lin := func(reg byte, dst *float64) func() error {
		return func() error {
			v, err := c.ReadLinear(reg)
			*dst = v
			return err
		}
	}

	steps := []step{
		{"name", func() error {
			v, err := c.ReadName()
			s.Name = v
			return err
		}},
		{"vendor", str(pmbus.RegVendor, &s.Vendor)},
		{"product", str(pmbus.RegProduct, &s.Product)},
		{"powered seconds", u32(pmbus.RegPoweredSeconds, &s.PoweredSeconds)},
		{"uptime seconds", u32(pmbus.RegUptimeSeconds, &s.UptimeSeconds)},
		{"temp1", lin(pmbus.RegTemp1, &s.Temp1)},
		{"temp2", lin(pmbus.RegTemp2, &s.Temp2)},
		{"fan rpm", lin(pmbus.RegFanRPM, &s.FanRPM)},
		{"supply volts", lin(pmbus.RegVIn, &s.VoltsIn)},
		{"total watts", lin(pmbus.RegPTotal, &s.WattsTotal)},
	}

	for ch := uint8(0); ch < 3; ch++ {
		out := &s.Outputs[ch]
		steps = append(steps,
			step{fmt.Sprintf("select output %d", ch), func() error {
				return c.SelectOutput(ch)
			}},
			step{fmt.Sprintf("output%d volts", ch), lin(pmbus.RegVOut, &out.Volts)},
			step{fmt.Sprintf("output%d amps", ch), lin(pmbus.RegIOut, &out.Amps)},
			step{fmt.Sprintf("output%d watts", ch), lin(pmbus.RegPOut, &out.Watts)},
		)
	}

	// Leave the device on its default channel.
	steps = append(steps, step{"restore output 0", func() error {
		return c.SelectOutput(0)
	}})

	for _, st := range steps {
		if err := st.run(); err != nil {
			return nil, fmt.Errorf("snapshot: %s: %w", st.name, err)
		}
	}
	return &s, nil
}
