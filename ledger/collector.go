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
	"errors"
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
)

// SignatureState describes how far signing of a transaction has progressed
type SignatureState int

const (
	SignatureStateUnsigned SignatureState = iota
	SignatureStatePartiallySigned
	SignatureStateSigned
)

func (s SignatureState) String() string {
	switch s {
	case SignatureStateUnsigned:
		return "unsigned"
	case SignatureStatePartiallySigned:
		return "partially signed"
	case SignatureStateSigned:
		return "signed"
	default:
		return fmt.Sprintf("SignatureState(%d)", int(s))
	}
}

// signatureCollector holds the canonical bytes of one transaction and the
// signatures gathered for it. The bytes are encoded once and never change, so
// hashing needs no lock; only the signature list is guarded
type signatureCollector struct {
	// prefix is written between the network id and body in the signature base
	prefix []byte
	body   []byte
	sigs   *SignatureList
	logger *slog.Logger
}

func newSignatureCollector(
	prefix []byte,
	body []byte,
	sigs []DecoratedSignature,
	logger *slog.Logger,
) signatureCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return signatureCollector{
		prefix: prefix,
		body:   body,
		sigs:   newSignatureList(sigs),
		logger: logger,
	}
}

// clone returns a collector with the same bytes and a copy of the current signatures
func (c *signatureCollector) clone() signatureCollector {
	return newSignatureCollector(c.prefix, c.body, c.sigs.Snapshot(), c.logger)
}

func (c *signatureCollector) encodeBody(e *xdr.Encoder) error {
	if c.sigs == nil {
		return fmt.Errorf("%w: envelope was not built or decoded", xdr.ErrInvalidEncoding)
	}
	if err := e.EncodeRaw(c.body); err != nil {
		return err
	}
	return c.sigs.EncodeXDR(e)
}

// SignatureBase returns the bytes whose hash is signed: the network id, the
// envelope type tag and the transaction
func (c *signatureCollector) SignatureBase(networkId common.Hash) []byte {
	ret := make([]byte, 0, len(networkId)+len(c.prefix)+len(c.body))
	ret = append(ret, networkId[:]...)
	ret = append(ret, c.prefix...)
	return append(ret, c.body...)
}

// Hash returns the transaction hash on the network identified by networkId
func (c *signatureCollector) Hash(networkId common.Hash) common.Hash {
	return common.Sha256Hash(c.SignatureBase(networkId))
}

// Sign signs the transaction hash with each signer and appends the resulting
// signatures. Signing happens before the signature list is locked
func (c *signatureCollector) Sign(networkId common.Hash, signers ...Signer) error {
	hash := c.Hash(networkId)
	sigs := make([]DecoratedSignature, 0, len(signers))
	for _, signer := range signers {
		raw, err := signer.Sign(hash[:])
		if err != nil {
			return fmt.Errorf("sign transaction: %w", err)
		}
		sig, err := NewDecoratedSignature(signer.PublicKey(), raw)
		if err != nil {
			return err
		}
		sigs = append(sigs, sig)
	}
	return c.AddSignature(sigs...)
}

// SignHashX appends the signature satisfying a hash-x signer for preimage
func (c *signatureCollector) SignHashX(preimage []byte) error {
	sig, err := NewHashXSignature(preimage)
	if err != nil {
		return err
	}
	return c.AddSignature(sig)
}

// AddSignature appends signatures produced elsewhere, such as by another party
// of a multi-signature workflow
func (c *signatureCollector) AddSignature(sigs ...DecoratedSignature) error {
	if len(sigs) == 0 {
		return nil
	}
	if err := c.sigs.Append(sigs...); err != nil {
		return err
	}
	for _, sig := range sigs {
		c.logger.Debug(
			"added transaction signature",
			"hint", sig.Hint.String(),
			"signatures", c.sigs.Len(),
		)
	}
	return nil
}

// Signatures returns a snapshot of the signatures collected so far
func (c *signatureCollector) Signatures() []DecoratedSignature {
	return c.sigs.Snapshot()
}

// State reports the signing progress against the number of signatures the
// ledger requires. The threshold itself is only known to the ledger
func (c *signatureCollector) State(threshold int) SignatureState {
	count := c.sigs.Len()
	switch {
	case count == 0:
		return SignatureStateUnsigned
	case count < max(threshold, 1):
		return SignatureStatePartiallySigned
	default:
		return SignatureStateSigned
	}
}

// Verify checks that the transaction carries a valid signature by publicKey
func (c *signatureCollector) Verify(networkId common.Hash, publicKey []byte) error {
	hash := c.Hash(networkId)
	var errs []error
	for _, sig := range c.sigs.Snapshot() {
		if !sig.MatchesKey(publicKey) {
			continue
		}
		err := sig.Verify(publicKey, hash)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return fmt.Errorf(
		"%w: no signature for key %s",
		ErrMissingSignature,
		common.NewUint256(publicKey).Hint(),
	)
}
