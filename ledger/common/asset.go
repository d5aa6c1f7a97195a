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
	"bytes"
	"fmt"

	"github.com/blinklabs-io/gostellar/xdr"
)

type AssetType int32

const (
	AssetTypeNative           AssetType = 0
	AssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
	AssetTypePoolShare        AssetType = 3
)

// Asset is a native or issued asset
type Asset interface {
	xdr.UnionArm
	String() string
	isAsset()
}

// ChangeTrustAsset is an Asset or the parameters of a liquidity pool
type ChangeTrustAsset interface {
	xdr.UnionArm
	isChangeTrustAsset()
}

// TrustLineAsset is an Asset or the id of a liquidity pool
type TrustLineAsset interface {
	xdr.UnionArm
	isTrustLineAsset()
}

var AssetUnion = xdr.NewUnion[Asset]("Asset").
	Void(int32(AssetTypeNative), AssetNative{}).
	Arm(int32(AssetTypeCreditAlphanum4), xdr.ArmOf[Asset, AssetAlphaNum4]()).
	Arm(int32(AssetTypeCreditAlphanum12), xdr.ArmOf[Asset, AssetAlphaNum12]())

var ChangeTrustAssetUnion = xdr.NewUnion[ChangeTrustAsset]("ChangeTrustAsset").
	Void(int32(AssetTypeNative), AssetNative{}).
	Arm(int32(AssetTypeCreditAlphanum4), xdr.ArmOf[ChangeTrustAsset, AssetAlphaNum4]()).
	Arm(int32(AssetTypeCreditAlphanum12), xdr.ArmOf[ChangeTrustAsset, AssetAlphaNum12]()).
	Arm(int32(AssetTypePoolShare), xdr.ArmOf[ChangeTrustAsset, ChangeTrustAssetPoolShare]())

var TrustLineAssetUnion = xdr.NewUnion[TrustLineAsset]("TrustLineAsset").
	Void(int32(AssetTypeNative), AssetNative{}).
	Arm(int32(AssetTypeCreditAlphanum4), xdr.ArmOf[TrustLineAsset, AssetAlphaNum4]()).
	Arm(int32(AssetTypeCreditAlphanum12), xdr.ArmOf[TrustLineAsset, AssetAlphaNum12]()).
	Arm(int32(AssetTypePoolShare), xdr.ArmOf[TrustLineAsset, TrustLineAssetPoolShare]())

// NewCreditAsset returns an alphanum4 or alphanum12 asset depending on the code length
func NewCreditAsset(code string, issuer string) (Asset, error) {
	issuerId, err := NewAccountId(issuer)
	if err != nil {
		return nil, err
	}
	if len(code) == 0 || len(code) > 12 {
		return nil, invalidArgument(
			"asset code",
			fmt.Sprintf("length %d is not between 1 and 12", len(code)),
			nil,
		)
	}
	for _, c := range []byte(code) {
		if !isAssetCodeChar(c) {
			return nil, invalidArgument(
				"asset code",
				fmt.Sprintf("character %q is not alphanumeric", c),
				nil,
			)
		}
	}
	if len(code) <= 4 {
		ret := AssetAlphaNum4{Issuer: issuerId}
		copy(ret.AssetCode[:], code)
		return ret, nil
	}
	ret := AssetAlphaNum12{Issuer: issuerId}
	copy(ret.AssetCode[:], code)
	return ret, nil
}

func isAssetCodeChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type AssetNative struct{}

func (AssetNative) isAsset()                     {}
func (AssetNative) isChangeTrustAsset()          {}
func (AssetNative) isTrustLineAsset()            {}
func (AssetNative) Discriminant() int32          { return int32(AssetTypeNative) }
func (AssetNative) EncodeXDR(*xdr.Encoder) error { return nil }
func (AssetNative) String() string               { return "native" }

type AssetCode4 [4]byte

func (c AssetCode4) Discriminant() int32 {
	return int32(AssetTypeCreditAlphanum4)
}

// String returns the code without its trailing zero bytes
func (c AssetCode4) String() string {
	return string(bytes.TrimRight(c[:], "\x00"))
}

func (c AssetCode4) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeFixedOpaque(c[:])
}

func (c *AssetCode4) DecodeXDR(d *xdr.Decoder) error {
	return d.DecodeFixedOpaqueInto(c[:])
}

type AssetCode12 [12]byte

func (c AssetCode12) Discriminant() int32 {
	return int32(AssetTypeCreditAlphanum12)
}

func (c AssetCode12) String() string {
	return string(bytes.TrimRight(c[:], "\x00"))
}

func (c AssetCode12) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeFixedOpaque(c[:])
}

func (c *AssetCode12) DecodeXDR(d *xdr.Decoder) error {
	return d.DecodeFixedOpaqueInto(c[:])
}

// AssetCode is the code part of an issued asset, as used by AllowTrustOp
type AssetCode interface {
	xdr.UnionArm
	String() string
}

var AssetCodeUnion = xdr.NewUnion[AssetCode]("AssetCode").
	Arm(int32(AssetTypeCreditAlphanum4), xdr.ArmOf[AssetCode, AssetCode4]()).
	Arm(int32(AssetTypeCreditAlphanum12), xdr.ArmOf[AssetCode, AssetCode12]())

type AssetAlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountId
}

func (AssetAlphaNum4) isAsset()            {}
func (AssetAlphaNum4) isChangeTrustAsset() {}
func (AssetAlphaNum4) isTrustLineAsset()   {}

func (AssetAlphaNum4) Discriminant() int32 {
	return int32(AssetTypeCreditAlphanum4)
}

func (a AssetAlphaNum4) String() string {
	return a.AssetCode.String() + ":" + a.Issuer.Address()
}

func (a AssetAlphaNum4) EncodeXDR(e *xdr.Encoder) error {
	if err := a.AssetCode.EncodeXDR(e); err != nil {
		return err
	}
	return a.Issuer.EncodeXDR(e)
}

func (a *AssetAlphaNum4) DecodeXDR(d *xdr.Decoder) error {
	if err := a.AssetCode.DecodeXDR(d); err != nil {
		return err
	}
	return a.Issuer.DecodeXDR(d)
}

type AssetAlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountId
}

func (AssetAlphaNum12) isAsset()            {}
func (AssetAlphaNum12) isChangeTrustAsset() {}
func (AssetAlphaNum12) isTrustLineAsset()   {}

func (AssetAlphaNum12) Discriminant() int32 {
	return int32(AssetTypeCreditAlphanum12)
}

func (a AssetAlphaNum12) String() string {
	return a.AssetCode.String() + ":" + a.Issuer.Address()
}

func (a AssetAlphaNum12) EncodeXDR(e *xdr.Encoder) error {
	if err := a.AssetCode.EncodeXDR(e); err != nil {
		return err
	}
	return a.Issuer.EncodeXDR(e)
}

func (a *AssetAlphaNum12) DecodeXDR(d *xdr.Decoder) error {
	if err := a.AssetCode.DecodeXDR(d); err != nil {
		return err
	}
	return a.Issuer.DecodeXDR(d)
}

type LiquidityPoolType int32

const LiquidityPoolConstantProduct LiquidityPoolType = 0

var liquidityPoolTypes = xdr.NewEnum("LiquidityPoolType", LiquidityPoolConstantProduct)

// LiquidityPoolFeeV18 is the only fee, in basis points, accepted for constant product pools
const LiquidityPoolFeeV18 = 30

// LiquidityPoolParameters is the constant product arm of the LiquidityPoolParameters union
type LiquidityPoolParameters struct {
	AssetA Asset
	AssetB Asset
	Fee    int32
}

func (p LiquidityPoolParameters) EncodeXDR(e *xdr.Encoder) error {
	if err := liquidityPoolTypes.Encode(e, LiquidityPoolConstantProduct); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, p.AssetA); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, p.AssetB); err != nil {
		return err
	}
	return e.EncodeInt32(p.Fee)
}

func (p *LiquidityPoolParameters) DecodeXDR(d *xdr.Decoder) (err error) {
	if _, err = liquidityPoolTypes.Decode(d); err != nil {
		return err
	}
	if p.AssetA, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if p.AssetB, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	p.Fee, err = d.DecodeInt32()
	return err
}

// PoolId returns the id of the pool: the SHA-256 of the encoded parameters
func (p LiquidityPoolParameters) PoolId() (PoolId, error) {
	data, err := xdr.Marshal(p)
	if err != nil {
		return PoolId{}, err
	}
	return Sha256Hash(data), nil
}

type ChangeTrustAssetPoolShare struct {
	LiquidityPool LiquidityPoolParameters
}

func (ChangeTrustAssetPoolShare) isChangeTrustAsset() {}

func (ChangeTrustAssetPoolShare) Discriminant() int32 {
	return int32(AssetTypePoolShare)
}

func (a ChangeTrustAssetPoolShare) EncodeXDR(e *xdr.Encoder) error {
	return a.LiquidityPool.EncodeXDR(e)
}

func (a *ChangeTrustAssetPoolShare) DecodeXDR(d *xdr.Decoder) error {
	return a.LiquidityPool.DecodeXDR(d)
}

type TrustLineAssetPoolShare struct {
	LiquidityPoolId PoolId
}

func (TrustLineAssetPoolShare) isTrustLineAsset() {}

func (TrustLineAssetPoolShare) Discriminant() int32 {
	return int32(AssetTypePoolShare)
}

func (a TrustLineAssetPoolShare) EncodeXDR(e *xdr.Encoder) error {
	return a.LiquidityPoolId.EncodeXDR(e)
}

func (a *TrustLineAssetPoolShare) DecodeXDR(d *xdr.Decoder) error {
	return a.LiquidityPoolId.DecodeXDR(d)
}

// Price is a rational number n/d
type Price struct {
	N int32
	D int32
}

func (p Price) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeInt32(p.N); err != nil {
		return err
	}
	return e.EncodeInt32(p.D)
}

func (p *Price) DecodeXDR(d *xdr.Decoder) (err error) {
	if p.N, err = d.DecodeInt32(); err != nil {
		return err
	}
	p.D, err = d.DecodeInt32()
	return err
}

type ClaimableBalanceIdType int32

const ClaimableBalanceIdTypeV0 ClaimableBalanceIdType = 0

var claimableBalanceIdTypes = xdr.NewEnum("ClaimableBalanceIDType", ClaimableBalanceIdTypeV0)

// ClaimableBalanceId is the v0 arm of the ClaimableBalanceID union
type ClaimableBalanceId struct {
	V0 Hash
}

func (c ClaimableBalanceId) EncodeXDR(e *xdr.Encoder) error {
	if err := claimableBalanceIdTypes.Encode(e, ClaimableBalanceIdTypeV0); err != nil {
		return err
	}
	return c.V0.EncodeXDR(e)
}

func (c *ClaimableBalanceId) DecodeXDR(d *xdr.Decoder) error {
	if _, err := claimableBalanceIdTypes.Decode(d); err != nil {
		return err
	}
	return c.V0.DecodeXDR(d)
}
