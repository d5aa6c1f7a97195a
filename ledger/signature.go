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
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/jinzhu/copier"
)

// MaxSignatures is the maximum number of signatures an envelope can carry
const MaxSignatures = 20

// DecoratedSignature is a signature together with the hint of the key that produced it
type DecoratedSignature struct {
	Hint      common.SignatureHint
	Signature []byte
}

// NewDecoratedSignature returns the decorated form of a signature made by publicKey
func NewDecoratedSignature(publicKey []byte, signature []byte) (DecoratedSignature, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return DecoratedSignature{}, invalidArgument(
			"public key",
			fmt.Sprintf("size is %d, expected %d", len(publicKey), ed25519.PublicKeySize),
			nil,
		)
	}
	if len(signature) > common.MaxSignatureSize {
		return DecoratedSignature{}, invalidArgument(
			"signature",
			fmt.Sprintf("size is %d, at most %d allowed", len(signature), common.MaxSignatureSize),
			nil,
		)
	}
	return DecoratedSignature{
		Hint:      common.NewUint256(publicKey).Hint(),
		Signature: bytes.Clone(signature),
	}, nil
}

// NewHashXSignature returns the signature satisfying a hash-x signer whose hash is SHA-256 of preimage
func NewHashXSignature(preimage []byte) (DecoratedSignature, error) {
	if len(preimage) > common.MaxSignatureSize {
		return DecoratedSignature{}, invalidArgument(
			"hash-x preimage",
			fmt.Sprintf("size is %d, at most %d allowed", len(preimage), common.MaxSignatureSize),
			nil,
		)
	}
	hash := sha256.Sum256(preimage)
	ret := DecoratedSignature{Signature: bytes.Clone(preimage)}
	copy(ret.Hint[:], hash[len(hash)-common.SignatureHintSize:])
	return ret, nil
}

// MatchesKey reports whether the hint of the signature matches publicKey
func (s DecoratedSignature) MatchesKey(publicKey []byte) bool {
	if len(publicKey) < common.SignatureHintSize {
		return false
	}
	return bytes.Equal(s.Hint[:], publicKey[len(publicKey)-common.SignatureHintSize:])
}

// Verify checks the signature against publicKey and the signed transaction hash
func (s DecoratedSignature) Verify(publicKey []byte, hash common.Hash) error {
	if !s.MatchesKey(publicKey) {
		return fmt.Errorf("%w: hint %s does not match public key", ErrSignatureMismatch, s.Hint)
	}
	return VerifySignature(publicKey, s.Signature, hash[:])
}

func (s DecoratedSignature) EncodeXDR(e *xdr.Encoder) error {
	if err := s.Hint.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeOpaque(s.Signature, common.MaxSignatureSize)
}

func (s *DecoratedSignature) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = s.Hint.DecodeXDR(d); err != nil {
		return err
	}
	s.Signature, err = d.DecodeOpaque(common.MaxSignatureSize)
	return err
}

func encodeSignatures(e *xdr.Encoder, sigs []DecoratedSignature) error {
	return xdr.EncodeVarArray(e, sigs, MaxSignatures, xdr.EncodeRecord[DecoratedSignature])
}

func decodeSignatures(d *xdr.Decoder) ([]DecoratedSignature, error) {
	return xdr.DecodeVarArray(d, MaxSignatures, xdr.Record[DecoratedSignature])
}

// SignatureList is the signature list of an envelope. It may be appended to
// from several goroutines; readers get a snapshot
type SignatureList struct {
	mu   sync.RWMutex
	sigs []DecoratedSignature
}

func newSignatureList(sigs []DecoratedSignature) *SignatureList {
	return &SignatureList{sigs: sigs}
}

// Append adds signatures to the list. It fails without adding anything if the
// list would grow beyond MaxSignatures
func (l *SignatureList) Append(sigs ...DecoratedSignature) error {
	for _, sig := range sigs {
		if len(sig.Signature) > common.MaxSignatureSize {
			return invalidArgument(
				"signature",
				fmt.Sprintf("size is %d, at most %d allowed", len(sig.Signature), common.MaxSignatureSize),
				nil,
			)
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.sigs)+len(sigs) > MaxSignatures {
		return ErrTooManySignatures
	}
	l.sigs = append(l.sigs, sigs...)
	return nil
}

func (l *SignatureList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sigs)
}

// Snapshot returns a deep copy of the signatures taken under the list lock
func (l *SignatureList) Snapshot() []DecoratedSignature {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.sigs) == 0 {
		return nil
	}
	var ret []DecoratedSignature
	// Deep copies of plain structs and slices do not fail
	_ = copier.CopyWithOption(&ret, l.sigs, copier.Option{DeepCopy: true})
	return ret
}

func (l *SignatureList) EncodeXDR(e *xdr.Encoder) error {
	return encodeSignatures(e, l.Snapshot())
}

func (l *SignatureList) DecodeXDR(d *xdr.Decoder) error {
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sigs = sigs
	return nil
}

// Signer produces ed25519 signatures for one key. Implementations may hold the
// key in memory or delegate to a hardware device or remote service
type Signer interface {
	PublicKey() []byte
	Sign(message []byte) ([]byte, error)
}

// Ed25519Signer signs with an in-memory ed25519 private key
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

func NewEd25519Signer(key ed25519.PrivateKey) (*Ed25519Signer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, invalidArgument(
			"private key",
			fmt.Sprintf("size is %d, expected %d", len(key), ed25519.PrivateKeySize),
			nil,
		)
	}
	return &Ed25519Signer{key: key}, nil
}

// NewEd25519SignerFromSecret returns the signer for an S... secret seed strkey
func NewEd25519SignerFromSecret(secret string) (*Ed25519Signer, error) {
	seed, err := common.DecodeStrkey(common.StrkeyVersionSeed, secret)
	if err != nil {
		return nil, err
	}
	if len(seed) != ed25519.SeedSize {
		return nil, invalidArgument("seed", "bad seed size", nil)
	}
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

func (s *Ed25519Signer) PublicKey() []byte {
	return bytes.Clone(s.key.Public().(ed25519.PublicKey))
}

// AccountId returns the account controlled by this key
func (s *Ed25519Signer) AccountId() common.AccountId {
	return common.AccountId{Ed25519: common.NewUint256(s.PublicKey())}
}

func (s *Ed25519Signer) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.key, message), nil
}
