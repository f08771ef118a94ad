// Package hiddev finds and opens the raw HID channel of supported power
// supplies. Identity matching happens here; protocol handling does not.
package hiddev

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sstallion/go-hid"
)

// VendorCorsair is the USB vendor id shared by all supported units.
const VendorCorsair = 0x1b1c

// products maps supported product ids to model names.
var products = map[uint16]string{
	0x1c0a: "RM650i",
	0x1c0b: "RM750i",
	0x1c0c: "RM850i",
	0x1c0d: "RM1000i",
	0x1c04: "HX650i",
	0x1c05: "HX750i",
	0x1c06: "HX850i",
	0x1c07: "HX1000i",
	0x1c08: "HX1200i",
	0x1c1e: "HX1000i", // 2nd generation
}

// Device is an open, exclusively-owned report channel. Satisfied by
// *hid.Device.
type Device interface {
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
	Close() error
}

// ErrNotRecognized marks a device whose vendor/product pair is not in the
// supported table.
var ErrNotRecognized = errors.New("hiddev: device not recognized")

// ErrNoDevice means enumeration finished without a usable device.
var ErrNoDevice = errors.New("hiddev: no compatible device found")

// Init and Exit bracket all hiddev use; Exit releases the HID backend.
func Init() error { return hid.Init() }
func Exit() error { return hid.Exit() }

// Supported reports whether a vendor/product pair identifies a known unit.
func Supported(vendor, product uint16) bool {
	return vendor == VendorCorsair && products[product] != ""
}

// Model returns the marketing name for a supported product id.
func Model(product uint16) string {
	return products[product]
}

// Open opens an explicit device node and verifies its identity.
func Open(path string) (Device, error) {
	d, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("hiddev: open %s: %w", path, err)
	}
	info, err := d.GetDeviceInfo()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("hiddev: device info for %s: %w", path, err)
	}
	if !Supported(info.VendorID, info.ProductID) {
		d.Close()
		return nil, fmt.Errorf("%w: %s is %04x:%04x",
			ErrNotRecognized, path, info.VendorID, info.ProductID)
	}
	return d, nil
}

// Find enumerates HID devices and opens the first supported one. When
// candidates exist but none can be opened, the error lists each failure;
// on Linux that usually means missing hidraw permissions.
func Find() (Device, error) {
	var paths []string
	err := hid.Enumerate(VendorCorsair, 0, func(info *hid.DeviceInfo) error {
		if products[info.ProductID] != "" {
			paths = append(paths, info.Path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hiddev: enumerate: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoDevice
	}

	var fails []string
	for _, p := range paths {
		d, err := hid.OpenPath(p)
		if err != nil {
			fails = append(fails, fmt.Sprintf("%s: %v", p, err))
			continue
		}
		return d, nil
	}
	return nil, fmt.Errorf("hiddev: could not open any compatible device (check device node permissions): %s",
		strings.Join(fails, "; "))
}
