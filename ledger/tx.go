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

package ledger

import (
	"encoding/base64"
	"fmt"

	"github.com/blinklabs-io/gostellar/xdr"
)

// EncodeEnvelope returns the wire form of env, including its envelope type
func EncodeEnvelope(env TransactionEnvelope) ([]byte, error) {
	return xdr.EncodeWith(env, TransactionEnvelopeUnion.Encode)
}

// EncodeEnvelopeBase64 returns the base64 wire form of env, as submitted to the network
func EncodeEnvelopeBase64(env TransactionEnvelope) (string, error) {
	data, err := EncodeEnvelope(env)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func NewTransactionEnvelopeFromXdr(
	data []byte,
	opts ...xdr.DecoderOptionFunc,
) (TransactionEnvelope, error) {
	return xdr.DecodeWith(data, TransactionEnvelopeUnion.Decode, opts...)
}

func NewTransactionEnvelopeFromBase64(
	data string,
	opts ...xdr.DecoderOptionFunc,
) (TransactionEnvelope, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", xdr.ErrInvalidEncoding, err)
	}
	return NewTransactionEnvelopeFromXdr(raw, opts...)
}

// DetermineEnvelopeType returns the type of the envelope encoded in data
func DetermineEnvelopeType(data []byte) (EnvelopeType, error) {
	env, err := NewTransactionEnvelopeFromXdr(data)
	if err != nil {
		return 0, err
	}
	return env.Type(), nil
}
