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

// Package xdr provides XDR (RFC 4506) encoding/decoding utilities for ledger data structures.
//
// # AI Navigation Guide
//
// This package wraps github.com/rasky/go-xdr/xdr2 with the canonical rules used by
// the ledger's consensus nodes. Types do not rely on reflection: every wire type
// implements Encodable and Decodable by hand, which keeps field order explicit.
//
// # Key Types
//
//   - Encoder: append-only writer for primitives (int/hyper/bool/opaque/string)
//   - Decoder: cursor over a byte slice with strictness options
//   - Union[T]: discriminant -> arm decoder table shared by every sum type
//   - Enum: validator for enum-typed fields and single-arm unions
//
// # Critical Pattern: records and unions
//
// Records encode their fields in declaration order:
//
//	type Price struct {
//	    N int32
//	    D int32
//	}
//
//	func (p Price) EncodeXDR(e *xdr.Encoder) error {
//	    if err := e.EncodeInt32(p.N); err != nil {
//	        return err
//	    }
//	    return e.EncodeInt32(p.D)
//	}
//
//	func (p *Price) DecodeXDR(d *xdr.Decoder) (err error) {
//	    if p.N, err = d.DecodeInt32(); err != nil {
//	        return err
//	    }
//	    p.D, err = d.DecodeInt32()
//	    return err
//	}
//
// Unions are Go interfaces whose arms implement UnionArm. The arm's EncodeXDR
// writes only the payload; the Union table writes the discriminant:
//
//	var assetUnion = xdr.NewUnion[Asset]("Asset").
//	    Void(AssetTypeNative, AssetNative{}).
//	    Arm(AssetTypeCreditAlphanum4, xdr.ArmOf[Asset, AssetAlphaNum4]())
//
// # Encoding Gotchas
//
//  1. Every unit is padded to a multiple of 4 bytes; padding is zero on write
//     and validated as zero on read unless WithStrictPadding(false) is used
//  2. Unknown discriminants are errors unless WithPermissiveUnions(true) is used
//  3. Optional values are a 4-byte presence flag that must be 0 or 1
//  4. Variable arrays are checked against the remaining input before allocating
package xdr
