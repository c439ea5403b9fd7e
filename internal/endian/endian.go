// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package endian

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Order is the tri-state result of byte order detection.
type Order uint8

const (
	// Unknown means the byte order could not be determined.
	Unknown Order = iota

	// Little means the least significant byte is stored first.
	Little

	// Big means the most significant byte is stored first.
	Big
)

// Probe bytes, written in index order.
var probeBytes = [4]byte{0xA1, 0xB2, 0xC3, 0xD4}

const (
	littleWord uint32 = 0xD4C3B2A1
	bigWord    uint32 = 0xA1B2C3D4
)

// String returns a human-readable name.
func (o Order) String() string {
	switch o {
	case Little:
		return "little-endian"
	case Big:
		return "big-endian"
	default:
		return "unknown"
	}
}

// Known reports whether o is Little or Big.
func (o Order) Known() bool {
	return o == Little || o == Big
}

// Classify maps a reinterpreted probe word to an Order.
// Any value other than the two expected layouts yields Unknown.
func Classify(word uint32) Order {
	switch word {
	case littleWord:
		return Little
	case bigWord:
		return Big
	default:
		return Unknown
	}
}

// ProbeWord writes the probe bytes into a 4-byte region and returns the
// region reinterpreted as a native uint32.
func ProbeWord() uint32 {
	// A uint32 backing array guarantees alignment for the reinterpretation.
	var region [1]uint32
	b := (*[4]byte)(unsafe.Pointer(&region[0]))
	for i, v := range probeBytes {
		b[i] = v
	}
	return region[0]
}

// compiled returns the byte order the toolchain targets.
func compiled() Order {
	if cpu.IsBigEndian {
		return Big
	}
	return Little
}

// Detect runs the probe and reconciles it with the compiled byte order.
func Detect() Order {
	return reconcile(Classify(ProbeWord()), compiled())
}

func reconcile(probed, compiled Order) Order {
	if probed != compiled {
		return Unknown
	}
	return probed
}

var native = Detect()

// Native returns the byte order detected once at package initialization.
func Native() Order { return native }
