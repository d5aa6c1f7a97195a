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

// Package bench provides benchmark utilities and envelope fixtures.
package bench

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gostellar/internal/testdata"
	"github.com/blinklabs-io/gostellar/ledger"
	"github.com/blinklabs-io/gostellar/ledger/common"
)

// BenchNetworkId is the id of the test network, which every fixture is signed for
var BenchNetworkId = common.Sha256Hash([]byte("Test SDF Network ; September 2015"))

// EnvelopeFixture contains a pre-decoded envelope for benchmarking.
type EnvelopeFixture struct {
	Name     string
	Xdr      []byte
	Envelope ledger.TransactionEnvelope
}

// LoadEnvelopeFixture loads a test envelope by name. The names are those
// returned by EnvelopeFixtureNames, compared case insensitively.
func LoadEnvelopeFixture(name string) (*EnvelopeFixture, error) {
	data, err := envelopeXdrFromName(name)
	if err != nil {
		return nil, err
	}
	env, err := ledger.NewTransactionEnvelopeFromXdr(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s envelope: %w", name, err)
	}
	return &EnvelopeFixture{
		Name:     name,
		Xdr:      data,
		Envelope: env,
	}, nil
}

// MustLoadEnvelopeFixture loads a test envelope and panics on error.
// Use this in benchmark setup code.
func MustLoadEnvelopeFixture(name string) *EnvelopeFixture {
	fixture, err := LoadEnvelopeFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s envelope fixture: %v", name, err))
	}
	return fixture
}

// EnvelopeFixtureNames returns the names of the available envelope fixtures.
func EnvelopeFixtureNames() []string {
	return []string{"v0", "v1", "feebump", "maxops"}
}

// BenchSigner returns a deterministic signer whose seed is SHA-256 of label.
func BenchSigner(label string) *ledger.Ed25519Signer {
	seed := sha256.Sum256([]byte(label))
	signer, err := ledger.NewEd25519Signer(ed25519.NewKeyFromSeed(seed[:]))
	if err != nil {
		panic(err)
	}
	return signer
}

// MaxOperationsTransaction returns an unsigned transaction carrying the largest
// number of payments a transaction may hold.
func MaxOperationsTransaction() (*ledger.PendingTransaction, error) {
	source := BenchSigner("alice").AccountId().ToMuxedAccount()
	dest := BenchSigner("bob").AccountId().ToMuxedAccount()
	builder := ledger.NewTransactionBuilder(source, 2)
	for i := range common.MaxOperationsPerTransaction {
		builder.AddOperation(common.Operation{
			Body: common.PaymentOp{
				Destination: dest,
				Asset:       common.AssetNative{},
				Amount:      int64(i + 1),
			},
		})
	}
	return builder.Build()
}

func envelopeXdrFromName(name string) ([]byte, error) {
	switch strings.ToLower(name) {
	case "v0":
		return testdata.MustDecodeBase64(testdata.PaymentEnvelopeV0Base64), nil
	case "v1":
		return testdata.MustDecodeBase64(testdata.PaymentEnvelopeBase64), nil
	case "feebump":
		return testdata.MustDecodeBase64(testdata.FeeBumpEnvelopeBase64), nil
	case "maxops":
		pending, err := MaxOperationsTransaction()
		if err != nil {
			return nil, err
		}
		if err := pending.Sign(BenchNetworkId, BenchSigner("alice")); err != nil {
			return nil, err
		}
		env, err := pending.ToEnvelope()
		if err != nil {
			return nil, err
		}
		return ledger.EncodeEnvelope(env)
	default:
		return nil, fmt.Errorf("unknown envelope fixture: %s", name)
	}
}
