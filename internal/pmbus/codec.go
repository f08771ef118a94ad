package pmbus

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Device is the raw HID report channel the codec drives. Satisfied by
// *hid.Device and by the fakes used in tests.
type Device interface {
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
}

// Transact sends one command report and returns the validated response
// payload, truncated to n bytes (at most 62).
//
// The outbound report is 65 bytes: report id 0, then the opcode triplet,
// then zero padding. The response is a blocking 64-byte read whose first
// two bytes must echo the request's command and register. Any short
// transfer or echo mismatch is terminal; there is no resynchronization
// primitive, so no retries are attempted.
func Transact(d Device, cmd, reg, sub byte, n int) ([]byte, error) {
	var out [CommandReportLen]byte
	out[1] = cmd
	out[2] = reg
	out[3] = sub

	wn, err := d.Write(out[:])
	if err != nil || wn != CommandReportLen {
		return nil, &TransportError{Op: "write", N: wn, Want: CommandReportLen, Err: err}
	}

	var in [ResponseReportLen]byte
	rn, err := d.Read(in[:])
	if err != nil || rn != ResponseReportLen {
		if rn < 0 {
			rn = 0
		}
		return nil, &TransportError{
			Op:      "read",
			N:       rn,
			Want:    ResponseReportLen,
			Partial: append([]byte(nil), in[:rn]...),
			Err:     err,
		}
	}

	if in[0] != cmd || in[1] != reg {
		return nil, &MismatchError{
			Command:     cmd,
			Register:    reg,
			SubIndex:    sub,
			GotCommand:  in[0],
			GotRegister: in[1],
			Response:    append([]byte(nil), in[:]...),
		}
	}

	if n > MaxPayloadLen {
		n = MaxPayloadLen
	}
	payload := make([]byte, n)
	copy(payload, in[2:2+n])
	return payload, nil
}

// Client issues typed register reads over a single device handle. It holds
// no state beyond the handle; the caller owns the handle's lifecycle.
type Client struct {
	dev Device
}

func NewClient(d Device) *Client {
	return &Client{dev: d}
}

// ReadName reads the device name through its dedicated opcode path.
func (c *Client) ReadName() (string, error) {
	r, _ := Lookup(CmdReadName, RegName)
	p, err := Transact(c.dev, r.Cmd, r.Addr, 0x00, r.Len)
	if err != nil {
		return "", err
	}
	return cstring(p), nil
}

// ReadString reads a NUL-padded ASCII identity register.
func (c *Client) ReadString(reg byte) (string, error) {
	r, err := lookupKind(reg, KindString)
	if err != nil {
		return "", err
	}
	p, err := Transact(c.dev, r.Cmd, r.Addr, 0x00, r.Len)
	if err != nil {
		return "", err
	}
	return cstring(p), nil
}

// ReadLinear reads a LINEAR11 scalar register.
func (c *Client) ReadLinear(reg byte) (float64, error) {
	r, err := lookupKind(reg, KindLinear)
	if err != nil {
		return 0, err
	}
	p, err := Transact(c.dev, r.Cmd, r.Addr, 0x00, r.Len)
	if err != nil {
		return 0, err
	}
	return DecodeLinear11(binary.LittleEndian.Uint16(p)), nil
}

// ReadUint32 reads a 32-bit seconds counter register.
func (c *Client) ReadUint32(reg byte) (uint32, error) {
	r, err := lookupKind(reg, KindUint32)
	if err != nil {
		return 0, err
	}
	p, err := Transact(c.dev, r.Cmd, r.Addr, 0x00, r.Len)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// SelectOutput selects which output rail subsequent VOut/IOut/POut reads
// refer to. Channel 0 is the device's default; callers must restore it
// when done.
func (c *Client) SelectOutput(ch uint8) error {
	if ch > 2 {
		return fmt.Errorf("pmbus: output channel %d out of range (0..2)", ch)
	}
	_, err := Transact(c.dev, CmdSelectOutput, 0x00, ch, 0)
	return err
}

func lookupKind(reg byte, kind Kind) (Register, error) {
	r, ok := Lookup(CmdRead, reg)
	if !ok {
		return Register{}, fmt.Errorf("pmbus: unknown register %#02x", reg)
	}
	if r.Kind != kind {
		return Register{}, fmt.Errorf("pmbus: register %#02x (%s) has the wrong kind", reg, r.Name)
	}
	return r, nil
}

// cstring trims a NUL-padded payload to the device-supplied string.
func cstring(p []byte) string {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return string(p)
}
