// Package sysex models Yamaha FB-01 voice bank dumps.
//
// A bank dump is the fixed-size sysex message the FB-01 emits for one of its
// two 48-voice banks. The file is always 6363 bytes: a 7-byte sysex header
// whose final byte selects bank A (0x00) or bank B (0x01), followed by 48
// voice packets. Each packet carries 128 bytes of nibblized voice data, one
// checksum byte, and the two size-header bytes of the next packet. The first
// packet's voice data starts at offset 0x4C, and packet starts advance by 131
// bytes.
//
// The package validates dumps against this layout and extracts the
// concatenated voice data (48 x 128 = 6144 bytes) for downstream transcoding.
// It deliberately understands nothing else about sysex; any other message
// shape is rejected.
package sysex
