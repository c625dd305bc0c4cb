// Package bthome constructs Bluetooth Low Energy advertising payloads in the BTHome v2 format.
// A Device holds the advertised identity (name and trigger-based flag) and the current value of
// every supported sensor property; Device.PackAdvertisement encodes a chosen set of readings into
// the final advertisement bytes, ready to hand to a broadcast transport such as broadcast/bluez.
//
// The codec is encode-only and performs no I/O. Encryption is not supported.
//
// See https://bthome.io/format/ for the published wire format.
package bthome
