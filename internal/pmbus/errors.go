package pmbus

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// TransportError reports a failed or short report write/read. The channel's
// framing state is undefined afterwards, so the whole snapshot attempt is
// terminal.
type TransportError struct {
	Op      string // "write" or "read"
	N       int    // bytes transferred
	Want    int
	Partial []byte // bytes obtained before a short read, if any
	Err     error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pmbus: %s %d/%d", e.Op, e.N, e.Want)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Partial) > 0 {
		b.WriteString("\n")
		b.WriteString(dump(e.Partial))
	}
	return b.String()
}

func (e *TransportError) Unwrap() error { return e.Err }

// MismatchError reports a response whose echoed header disagrees with the
// request. It carries the full response for diagnosis.
type MismatchError struct {
	Command  byte // request triplet
	Register byte
	SubIndex byte

	GotCommand  byte
	GotRegister byte
	Response    []byte
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pmbus: unexpected response %02x %02x to cmd %02x %02x %02x\n",
		e.GotCommand, e.GotRegister, e.Command, e.Register, e.SubIndex)
	b.WriteString(dump(e.Response))
	return b.String()
}

// dump renders a hex+ASCII view of raw report bytes.
func dump(p []byte) string {
	var b strings.Builder
	d := hex.Dumper(&b)
	d.Write(p)
	d.Close()
	return b.String()
}
