// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package endian detects the host byte order.
//
// Detection writes four known bytes into memory and reinterprets them as a
// uint32. The result is cross-checked against the compile-time byte order
// reported by golang.org/x/sys/cpu; a host where the two disagree, or where
// the probe word matches neither layout, is reported as Unknown.
package endian
