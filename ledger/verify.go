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
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
)

// ValidatePublicKey checks that pubKey is a well-formed ed25519 public key: it
// must decode to a curve point that is not of small order
func ValidatePublicKey(pubKey []byte) error {
	if len(pubKey) != ed25519.PublicKeySize {
		return invalidArgument(
			"public key",
			fmt.Sprintf("size is %d, expected %d", len(pubKey), ed25519.PublicKeySize),
			nil,
		)
	}
	point := &edwards25519.Point{}
	if _, err := point.SetBytes(pubKey); err != nil {
		return invalidArgument("public key", "not a curve point", err)
	}
	isSmallOrder := (&edwards25519.Point{}).MultByCofactor(point).
		Equal(edwards25519.NewIdentityPoint()) ==
		1
	if isSmallOrder {
		return invalidArgument("public key", "small order point", nil)
	}
	return nil
}

// VerifySignature verifies an ed25519 signature against the provided public key and message
func VerifySignature(pubKey, sig, msg []byte) error {
	if err := ValidatePublicKey(pubKey); err != nil {
		return err
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("invalid signature size: %d", len(sig))
	}
	if !ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig) {
		return ErrSignatureMismatch
	}
	return nil
}

