// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"

	"github.com/sigurn/crc16"
)

// StrkeyVersion is the leading byte of a strkey, which selects its first character
type StrkeyVersion byte

const (
	StrkeyVersionAccount       StrkeyVersion = 6 << 3  // G
	StrkeyVersionContract      StrkeyVersion = 2 << 3  // C
	StrkeyVersionMuxedAccount  StrkeyVersion = 12 << 3 // M
	StrkeyVersionSeed          StrkeyVersion = 18 << 3 // S
	StrkeyVersionPreAuthTx     StrkeyVersion = 19 << 3 // T
	StrkeyVersionHashX         StrkeyVersion = 23 << 3 // X
	StrkeyVersionSignedPayload StrkeyVersion = 15 << 3 // P
)

func (v StrkeyVersion) String() string {
	switch v {
	case StrkeyVersionAccount:
		return "account"
	case StrkeyVersionContract:
		return "contract"
	case StrkeyVersionMuxedAccount:
		return "muxed account"
	case StrkeyVersionSeed:
		return "seed"
	case StrkeyVersionPreAuthTx:
		return "pre-auth tx"
	case StrkeyVersionHashX:
		return "hash-x"
	case StrkeyVersionSignedPayload:
		return "signed payload"
	default:
		return fmt.Sprintf("strkey version %d", byte(v))
	}
}

const (
	strkeyChecksumSize = 2
	// signed payload strkeys carry at most 32 + 4 + 64 bytes of payload
	maxStrkeyPayloadSize = 100
)

var (
	strkeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)
	strkeyCrcTable = crc16.MakeTable(crc16.CRC16_XMODEM)
)

// EncodeStrkey returns the strkey form of payload: base32 of the version byte,
// the payload and a little-endian CRC16-XModem checksum of both
func EncodeStrkey(version StrkeyVersion, payload []byte) string {
	raw := make([]byte, 0, 1+len(payload)+strkeyChecksumSize)
	raw = append(raw, byte(version))
	raw = append(raw, payload...)
	raw = binary.LittleEndian.AppendUint16(raw, strkeyChecksum(raw))
	return strkeyEncoding.EncodeToString(raw)
}

// DecodeStrkey returns the payload of a strkey after checking its version and checksum
func DecodeStrkey(expected StrkeyVersion, s string) ([]byte, error) {
	field := expected.String()
	if len(s) == 0 ||
		len(s) > strkeyEncoding.EncodedLen(1+maxStrkeyPayloadSize+strkeyChecksumSize) {
		return nil, invalidArgument(field, "bad strkey length", nil)
	}
	raw, err := strkeyEncoding.DecodeString(s)
	if err != nil {
		return nil, invalidArgument(field, "bad base32 encoding", err)
	}
	// Reject non-canonical encodings where trailing bits are not zero
	if strkeyEncoding.EncodeToString(raw) != s {
		return nil, invalidArgument(field, "non-canonical base32 encoding", nil)
	}
	if len(raw) < 1+strkeyChecksumSize {
		return nil, invalidArgument(field, "strkey too short", nil)
	}
	if StrkeyVersion(raw[0]) != expected {
		return nil, invalidArgument(
			field,
			fmt.Sprintf("unexpected %s version byte", StrkeyVersion(raw[0])),
			nil,
		)
	}
	body := raw[:len(raw)-strkeyChecksumSize]
	checksum := binary.LittleEndian.Uint16(raw[len(raw)-strkeyChecksumSize:])
	if strkeyChecksum(body) != checksum {
		return nil, invalidArgument(field, "checksum mismatch", nil)
	}
	return body[1:], nil
}

// decodeStrkeyFixed decodes a strkey whose payload has an exact size
func decodeStrkeyFixed(expected StrkeyVersion, s string, size int) ([]byte, error) {
	payload, err := DecodeStrkey(expected, s)
	if err != nil {
		return nil, err
	}
	if len(payload) != size {
		return nil, invalidArgument(
			expected.String(),
			fmt.Sprintf("payload is %d bytes, expected %d", len(payload), size),
			nil,
		)
	}
	return payload, nil
}

// StrkeyVersionOf returns the version byte of a strkey without validating the rest
func StrkeyVersionOf(s string) (StrkeyVersion, error) {
	if len(s) < 2 {
		return 0, invalidArgument("strkey", "too short", nil)
	}
	// The first two characters carry the 8 bits of the version byte
	head, err := strkeyEncoding.DecodeString(s[:2])
	if err != nil || len(head) == 0 {
		return 0, invalidArgument("strkey", "bad base32 encoding", err)
	}
	return StrkeyVersion(head[0]), nil
}

// strkeyChecksum computes CRC-16/XMODEM (polynomial 0x1021, zero initial value)
func strkeyChecksum(data []byte) uint16 {
	return crc16.Checksum(data, strkeyCrcTable)
}
