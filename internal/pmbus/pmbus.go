// Package pmbus implements the vendor PMBus-like command/response protocol
// spoken by Corsair RMi/HXi power supplies over their raw HID report channel.
package pmbus

// Report sizes are fixed by the device firmware.
const (
	CommandReportLen  = 65 // report id byte + 64 data bytes
	ResponseReportLen = 64
	MaxPayloadLen     = ResponseReportLen - 2 // bytes after the echoed header
)

// Command bytes.
const (
	CmdRead         = 0x03 // read register; register = address, sub-index = 0
	CmdSelectOutput = 0x02 // register = 0, sub-index = output channel 0..2
	CmdReadName     = 0xfe // device name lives in a separate address space
)

// RegName is the device name address within the CmdReadName space.
const RegName = 0x03

// Register addresses consumed by this tool.
//
// Registers the firmware exposes but whose meaning is unknown or constant
// (0x40, 0x44, 0x46, 0x4f, 0x7a..0x7e, 0xc4, 0xd4, 0xd8, 0xd9) and the fan
// mode/pwm/status registers (0x3a, 0x3b, 0x81, 0xf0) are not modeled.
const (
	RegVIn            = 0x88 // input volts, LINEAR11
	RegVOut           = 0x8b // selected output volts, LINEAR11
	RegIOut           = 0x8c // selected output amps, LINEAR11
	RegTemp1          = 0x8d // LINEAR11
	RegTemp2          = 0x8e // LINEAR11
	RegFanRPM         = 0x90 // LINEAR11
	RegPOut           = 0x96 // selected output watts, LINEAR11
	RegVendor         = 0x99 // ASCII, NUL padded
	RegProduct        = 0x9a // ASCII, NUL padded
	RegPoweredSeconds = 0xd1 // uint32, total powered time
	RegUptimeSeconds  = 0xd2 // uint32, time since power-on
	RegPTotal         = 0xee // total watts, LINEAR11
)

// Kind describes how a register's payload is decoded.
type Kind uint8

const (
	KindString Kind = iota // raw ASCII, NUL padded, up to 62 bytes
	KindLinear             // uint16 little-endian, LINEAR11
	KindUint32             // uint32 little-endian, whole seconds
)

// Register describes one readable register: its opcode pair, decode kind
// and payload width in bytes.
type Register struct {
	Name string
	Cmd  byte
	Addr byte
	Kind Kind
	Len  int
}

// registerTable is fixed at compile time. Lookups are by (command, address)
// because the device name is reached through CmdReadName, not CmdRead.
var registerTable = [...]Register{
	{"name", CmdReadName, RegName, KindString, MaxPayloadLen},
	{"vendor", CmdRead, RegVendor, KindString, MaxPayloadLen},
	{"product", CmdRead, RegProduct, KindString, MaxPayloadLen},
	{"powered seconds", CmdRead, RegPoweredSeconds, KindUint32, 4},
	{"uptime seconds", CmdRead, RegUptimeSeconds, KindUint32, 4},
	{"temp1", CmdRead, RegTemp1, KindLinear, 2},
	{"temp2", CmdRead, RegTemp2, KindLinear, 2},
	{"fan rpm", CmdRead, RegFanRPM, KindLinear, 2},
	{"input volts", CmdRead, RegVIn, KindLinear, 2},
	{"output volts", CmdRead, RegVOut, KindLinear, 2},
	{"output amps", CmdRead, RegIOut, KindLinear, 2},
	{"output watts", CmdRead, RegPOut, KindLinear, 2},
	{"total watts", CmdRead, RegPTotal, KindLinear, 2},
}

// Lookup returns the descriptor for a (command, address) pair.
func Lookup(cmd, addr byte) (Register, bool) {
	for _, r := range registerTable {
		if r.Cmd == cmd && r.Addr == addr {
			return r, true
		}
	}
	return Register{}, false
}
