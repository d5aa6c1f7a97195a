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
	"fmt"

	"github.com/blinklabs-io/gostellar/xdr"
)

type TransactionResultCode int32

const (
	TransactionResultCodeFeeBumpInnerSuccess TransactionResultCode = 1
	TransactionResultCodeSuccess             TransactionResultCode = 0
	TransactionResultCodeFailed              TransactionResultCode = -1
	TransactionResultCodeTooEarly            TransactionResultCode = -2
	TransactionResultCodeTooLate             TransactionResultCode = -3
	TransactionResultCodeMissingOperation    TransactionResultCode = -4
	TransactionResultCodeBadSeq              TransactionResultCode = -5
	TransactionResultCodeBadAuth             TransactionResultCode = -6
	TransactionResultCodeInsufficientBalance TransactionResultCode = -7
	TransactionResultCodeNoAccount           TransactionResultCode = -8
	TransactionResultCodeInsufficientFee     TransactionResultCode = -9
	TransactionResultCodeBadAuthExtra        TransactionResultCode = -10
	TransactionResultCodeInternalError       TransactionResultCode = -11
	TransactionResultCodeNotSupported        TransactionResultCode = -12
	TransactionResultCodeFeeBumpInnerFailed  TransactionResultCode = -13
	TransactionResultCodeBadSponsorship      TransactionResultCode = -14
	TransactionResultCodeBadMinSeqAgeOrGap   TransactionResultCode = -15
	TransactionResultCodeMalformed           TransactionResultCode = -16
	TransactionResultCodeSorobanInvalid      TransactionResultCode = -17
)

const minTransactionResultCode = TransactionResultCodeSorobanInvalid

func (c TransactionResultCode) Valid() bool {
	return c >= minTransactionResultCode && c <= TransactionResultCodeFeeBumpInnerSuccess
}

// TransactionResultBody is the result union of a TransactionResult or InnerTransactionResult
type TransactionResultBody interface {
	xdr.UnionArm
	Code() TransactionResultCode
}

// TransactionResultOperations holds the per-operation results of a
// transaction that reached operation application
type TransactionResultOperations struct {
	ResultCode TransactionResultCode
	Results    []OperationResult
}

func (r TransactionResultOperations) Code() TransactionResultCode { return r.ResultCode }
func (r TransactionResultOperations) Discriminant() int32         { return int32(r.ResultCode) }

func (r TransactionResultOperations) EncodeXDR(e *xdr.Encoder) error {
	return xdr.EncodeVarArray(e, r.Results, xdr.Unbounded, OperationResultUnion.Encode)
}

// TransactionResultFeeBump holds the result of the inner transaction of a fee bump
type TransactionResultFeeBump struct {
	ResultCode      TransactionResultCode
	InnerResultPair InnerTransactionResultPair
}

func (r TransactionResultFeeBump) Code() TransactionResultCode { return r.ResultCode }
func (r TransactionResultFeeBump) Discriminant() int32         { return int32(r.ResultCode) }

func (r TransactionResultFeeBump) EncodeXDR(e *xdr.Encoder) error {
	return r.InnerResultPair.EncodeXDR(e)
}

// TransactionResultCodeOnly is a failure without payload
type TransactionResultCodeOnly TransactionResultCode

func (r TransactionResultCodeOnly) Code() TransactionResultCode { return TransactionResultCode(r) }
func (r TransactionResultCodeOnly) Discriminant() int32         { return int32(r) }
func (TransactionResultCodeOnly) EncodeXDR(*xdr.Encoder) error  { return nil }

func decodeTransactionResultOperations(d *xdr.Decoder, disc int32) (TransactionResultBody, error) {
	results, err := xdr.DecodeVarArray(d, xdr.Unbounded, OperationResultUnion.Decode)
	if err != nil {
		return nil, err
	}
	return TransactionResultOperations{
		ResultCode: TransactionResultCode(disc),
		Results:    results,
	}, nil
}

func decodeTransactionResultFeeBump(d *xdr.Decoder, disc int32) (TransactionResultBody, error) {
	ret := TransactionResultFeeBump{ResultCode: TransactionResultCode(disc)}
	if err := ret.InnerResultPair.DecodeXDR(d); err != nil {
		return nil, err
	}
	return ret, nil
}

func decodeTransactionResultCodeOnly(_ *xdr.Decoder, disc int32) (TransactionResultBody, error) {
	code := TransactionResultCode(disc)
	if !code.Valid() {
		return nil, xdr.UnknownDiscriminantError{Union: "TransactionResultResult", Value: disc}
	}
	return TransactionResultCodeOnly(code), nil
}

var TransactionResultBodyUnion = xdr.NewUnion[TransactionResultBody]("TransactionResultResult").
	Arm(int32(TransactionResultCodeFeeBumpInnerSuccess), decodeTransactionResultFeeBump).
	Arm(int32(TransactionResultCodeFeeBumpInnerFailed), decodeTransactionResultFeeBump).
	Arm(int32(TransactionResultCodeSuccess), decodeTransactionResultOperations).
	Arm(int32(TransactionResultCodeFailed), decodeTransactionResultOperations).
	Default(decodeTransactionResultCodeOnly)

// InnerTransactionResultBodyUnion is TransactionResultBodyUnion without the fee bump arms
var InnerTransactionResultBodyUnion = xdr.NewUnion[TransactionResultBody]("InnerTransactionResultResult").
	Arm(int32(TransactionResultCodeSuccess), decodeTransactionResultOperations).
	Arm(int32(TransactionResultCodeFailed), decodeTransactionResultOperations).
	Default(func(d *xdr.Decoder, disc int32) (TransactionResultBody, error) {
		switch TransactionResultCode(disc) {
		case TransactionResultCodeFeeBumpInnerSuccess, TransactionResultCodeFeeBumpInnerFailed:
			return nil, xdr.UnknownDiscriminantError{Union: "InnerTransactionResultResult", Value: disc}
		}
		return decodeTransactionResultCodeOnly(d, disc)
	})

// TransactionResult is the outcome of applying a transaction, as returned on submission
type TransactionResult struct {
	FeeCharged int64
	Result     TransactionResultBody
	Ext        ExtensionPoint
}

func (r TransactionResult) Successful() bool {
	return r.Result != nil &&
		(r.Result.Code() == TransactionResultCodeSuccess ||
			r.Result.Code() == TransactionResultCodeFeeBumpInnerSuccess)
}

// OperationResults returns the operation results of the transaction or, for a fee bump, of its inner transaction
func (r TransactionResult) OperationResults() []OperationResult {
	switch res := r.Result.(type) {
	case TransactionResultOperations:
		return res.Results
	case TransactionResultFeeBump:
		if ops, ok := res.InnerResultPair.Result.Result.(TransactionResultOperations); ok {
			return ops.Results
		}
	}
	return nil
}

func (r TransactionResult) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeInt64(r.FeeCharged); err != nil {
		return err
	}
	if err := TransactionResultBodyUnion.Encode(e, r.Result); err != nil {
		return err
	}
	return r.Ext.EncodeXDR(e)
}

func (r *TransactionResult) DecodeXDR(d *xdr.Decoder) (err error) {
	if r.FeeCharged, err = d.DecodeInt64(); err != nil {
		return err
	}
	if r.Result, err = TransactionResultBodyUnion.Decode(d); err != nil {
		return err
	}
	return r.Ext.DecodeXDR(d)
}

type InnerTransactionResult struct {
	FeeCharged int64
	Result     TransactionResultBody
	Ext        ExtensionPoint
}

func (r InnerTransactionResult) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeInt64(r.FeeCharged); err != nil {
		return err
	}
	if r.Result != nil {
		if _, ok := r.Result.(TransactionResultFeeBump); ok {
			return xdr.UnknownDiscriminantError{
				Union: InnerTransactionResultBodyUnion.Name(),
				Value: r.Result.Discriminant(),
			}
		}
	}
	if err := InnerTransactionResultBodyUnion.Encode(e, r.Result); err != nil {
		return err
	}
	return r.Ext.EncodeXDR(e)
}

func (r *InnerTransactionResult) DecodeXDR(d *xdr.Decoder) (err error) {
	if r.FeeCharged, err = d.DecodeInt64(); err != nil {
		return err
	}
	if r.Result, err = InnerTransactionResultBodyUnion.Decode(d); err != nil {
		return err
	}
	return r.Ext.DecodeXDR(d)
}

type InnerTransactionResultPair struct {
	TransactionHash Hash
	Result          InnerTransactionResult
}

func (p InnerTransactionResultPair) EncodeXDR(e *xdr.Encoder) error {
	if err := p.TransactionHash.EncodeXDR(e); err != nil {
		return err
	}
	return p.Result.EncodeXDR(e)
}

func (p *InnerTransactionResultPair) DecodeXDR(d *xdr.Decoder) error {
	if err := p.TransactionHash.DecodeXDR(d); err != nil {
		return err
	}
	return p.Result.DecodeXDR(d)
}

type OperationResultCode int32

const (
	OperationResultCodeInner             OperationResultCode = 0
	OperationResultCodeBadAuth           OperationResultCode = -1
	OperationResultCodeNoAccount         OperationResultCode = -2
	OperationResultCodeNotSupported      OperationResultCode = -3
	OperationResultCodeTooManySubentries OperationResultCode = -4
	OperationResultCodeExceededWorkLimit OperationResultCode = -5
	OperationResultCodeTooManySponsoring OperationResultCode = -6
)

const minOperationResultCode = OperationResultCodeTooManySponsoring

// OperationResult is either the result of an applied operation
// (OperationInnerResult) or an OperationResultCode explaining why it was not applied
type OperationResult interface {
	xdr.UnionArm
}

var OperationResultUnion = xdr.NewUnion[OperationResult]("OperationResult").
	Arm(int32(OperationResultCodeInner), xdr.ArmOf[OperationResult, OperationInnerResult]()).
	Default(func(_ *xdr.Decoder, disc int32) (OperationResult, error) {
		if disc < int32(minOperationResultCode) || disc > 0 {
			return nil, xdr.UnknownDiscriminantError{Union: "OperationResult", Value: disc}
		}
		return OperationResultCode(disc), nil
	})

func (c OperationResultCode) Discriminant() int32        { return int32(c) }
func (OperationResultCode) EncodeXDR(*xdr.Encoder) error { return nil }

// operationResultMinCodes is the most negative result code of each operation type. Success is always 0
var operationResultMinCodes = map[OperationType]int32{
	OperationTypeCreateAccount:                 -4,
	OperationTypePayment:                       -9,
	OperationTypePathPaymentStrictReceive:      -12,
	OperationTypeManageSellOffer:               -12,
	OperationTypeCreatePassiveSellOffer:        -12,
	OperationTypeSetOptions:                    -10,
	OperationTypeChangeTrust:                   -8,
	OperationTypeAllowTrust:                    -7,
	OperationTypeAccountMerge:                  -7,
	OperationTypeInflation:                     -1,
	OperationTypeManageData:                    -4,
	OperationTypeBumpSequence:                  -1,
	OperationTypeManageBuyOffer:                -12,
	OperationTypePathPaymentStrictSend:         -12,
	OperationTypeCreateClaimableBalance:        -5,
	OperationTypeClaimClaimableBalance:         -5,
	OperationTypeBeginSponsoringFutureReserves: -3,
	OperationTypeEndSponsoringFutureReserves:   -1,
	OperationTypeRevokeSponsorship:             -5,
	OperationTypeClawback:                      -4,
	OperationTypeClawbackClaimableBalance:      -3,
	OperationTypeSetTrustLineFlags:             -5,
	OperationTypeLiquidityPoolDeposit:          -7,
	OperationTypeLiquidityPoolWithdraw:         -4,
	OperationTypeInvokeHostFunction:            -6,
	OperationTypeExtendFootprintTtl:            -3,
	OperationTypeRestoreFootprint:              -3,
}

// Result code shared by both path payment operations whose failure carries the asset without issuer
const PathPaymentResultCodeNoIssuer int32 = -9

type resultKey struct {
	opType OperationType
	code   int32
}

// operationResultPayloads lists the (operation, code) pairs whose result carries a payload
var operationResultPayloads = map[resultKey]func(*xdr.Decoder) (xdr.Encodable, error){
	{OperationTypePathPaymentStrictReceive, 0}:                             decodePayload[PathPaymentSuccess],
	{OperationTypePathPaymentStrictReceive, PathPaymentResultCodeNoIssuer}: decodePayload[PathPaymentNoIssuer],
	{OperationTypePathPaymentStrictSend, 0}:                                decodePayload[PathPaymentSuccess],
	{OperationTypePathPaymentStrictSend, PathPaymentResultCodeNoIssuer}:    decodePayload[PathPaymentNoIssuer],
	{OperationTypeManageSellOffer, 0}:                                      decodePayload[ManageOfferSuccessResult],
	{OperationTypeCreatePassiveSellOffer, 0}:                               decodePayload[ManageOfferSuccessResult],
	{OperationTypeManageBuyOffer, 0}:                                       decodePayload[ManageOfferSuccessResult],
	{OperationTypeAccountMerge, 0}:                                         decodePayload[AccountMergeSuccess],
	{OperationTypeInflation, 0}:                                            decodePayload[InflationSuccess],
	{OperationTypeCreateClaimableBalance, 0}:                               decodePayload[ClaimableBalanceId],
	{OperationTypeInvokeHostFunction, 0}:                                   decodePayload[Hash],
}

func decodePayload[T any, P interface {
	*T
	xdr.Decodable
}](d *xdr.Decoder) (xdr.Encodable, error) {
	v, err := xdr.Record[T, P](d)
	if err != nil {
		return nil, err
	}
	ret, ok := any(v).(xdr.Encodable)
	if !ok {
		return nil, fmt.Errorf("%T does not implement xdr.Encodable", v)
	}
	return ret, nil
}

// OperationInnerResult is the result of an applied operation. Code is 0 on
// success and negative on failure. Payload is set only for the success or
// failure codes that carry data, such as PathPaymentSuccess or ManageOfferSuccessResult
type OperationInnerResult struct {
	Type    OperationType
	Code    int32
	Payload xdr.Encodable
}

func (OperationInnerResult) Discriminant() int32 { return int32(OperationResultCodeInner) }

func (r OperationInnerResult) Successful() bool {
	return r.Code == 0
}

func (r OperationInnerResult) validate() error {
	minCode, ok := operationResultMinCodes[r.Type]
	if !ok {
		return xdr.UnknownDiscriminantError{Union: "OperationResultTr", Value: int32(r.Type)}
	}
	if r.Code > 0 || r.Code < minCode {
		return xdr.UnknownDiscriminantError{
			Union: r.Type.String() + "Result",
			Value: r.Code,
		}
	}
	return nil
}

func (r OperationInnerResult) EncodeXDR(e *xdr.Encoder) error {
	if err := r.validate(); err != nil {
		return err
	}
	_, hasPayload := operationResultPayloads[resultKey{r.Type, r.Code}]
	if hasPayload != (r.Payload != nil) {
		return fmt.Errorf(
			"%w: %s result code %d payload mismatch",
			xdr.ErrInvalidEncoding,
			r.Type,
			r.Code,
		)
	}
	if err := e.EncodeDiscriminant(int32(r.Type)); err != nil {
		return err
	}
	if err := e.EncodeDiscriminant(r.Code); err != nil {
		return err
	}
	if r.Payload == nil {
		return nil
	}
	return r.Payload.EncodeXDR(e)
}

func (r *OperationInnerResult) DecodeXDR(d *xdr.Decoder) error {
	opType, err := d.DecodeDiscriminant()
	if err != nil {
		return err
	}
	code, err := d.DecodeDiscriminant()
	if err != nil {
		return err
	}
	r.Type = OperationType(opType)
	r.Code = code
	r.Payload = nil
	if err := r.validate(); err != nil {
		return err
	}
	if fn, ok := operationResultPayloads[resultKey{r.Type, r.Code}]; ok {
		if r.Payload, err = fn(d); err != nil {
			return err
		}
	}
	return nil
}

type ClaimAtomType int32

const (
	ClaimAtomTypeV0            ClaimAtomType = 0
	ClaimAtomTypeOrderBook     ClaimAtomType = 1
	ClaimAtomTypeLiquidityPool ClaimAtomType = 2
)

// ClaimAtom describes one offer or pool crossed while executing a trade
type ClaimAtom interface {
	xdr.UnionArm
}

var ClaimAtomUnion = xdr.NewUnion[ClaimAtom]("ClaimAtom").
	Arm(int32(ClaimAtomTypeV0), xdr.ArmOf[ClaimAtom, ClaimOfferAtomV0]()).
	Arm(int32(ClaimAtomTypeOrderBook), xdr.ArmOf[ClaimAtom, ClaimOfferAtom]()).
	Arm(int32(ClaimAtomTypeLiquidityPool), xdr.ArmOf[ClaimAtom, ClaimLiquidityAtom]())

// tradeLeg is the sold/bought tail shared by every claim atom
type tradeLeg struct {
	AssetSold    Asset
	AmountSold   int64
	AssetBought  Asset
	AmountBought int64
}

func (t tradeLeg) EncodeXDR(e *xdr.Encoder) error {
	if err := AssetUnion.Encode(e, t.AssetSold); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.AmountSold); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, t.AssetBought); err != nil {
		return err
	}
	return e.EncodeInt64(t.AmountBought)
}

func (t *tradeLeg) DecodeXDR(d *xdr.Decoder) (err error) {
	if t.AssetSold, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if t.AmountSold, err = d.DecodeInt64(); err != nil {
		return err
	}
	if t.AssetBought, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	t.AmountBought, err = d.DecodeInt64()
	return err
}

type ClaimOfferAtomV0 struct {
	SellerEd25519 Uint256
	OfferId       int64
	AssetSold     Asset
	AmountSold    int64
	AssetBought   Asset
	AmountBought  int64
}

func (ClaimOfferAtomV0) Discriminant() int32 { return int32(ClaimAtomTypeV0) }

func (a ClaimOfferAtomV0) EncodeXDR(e *xdr.Encoder) error {
	if err := a.SellerEd25519.EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(a.OfferId); err != nil {
		return err
	}
	return tradeLeg{a.AssetSold, a.AmountSold, a.AssetBought, a.AmountBought}.EncodeXDR(e)
}

func (a *ClaimOfferAtomV0) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = a.SellerEd25519.DecodeXDR(d); err != nil {
		return err
	}
	if a.OfferId, err = d.DecodeInt64(); err != nil {
		return err
	}
	var leg tradeLeg
	if err = leg.DecodeXDR(d); err != nil {
		return err
	}
	a.AssetSold, a.AmountSold, a.AssetBought, a.AmountBought = leg.AssetSold, leg.AmountSold, leg.AssetBought, leg.AmountBought
	return nil
}

type ClaimOfferAtom struct {
	SellerId     AccountId
	OfferId      int64
	AssetSold    Asset
	AmountSold   int64
	AssetBought  Asset
	AmountBought int64
}

func (ClaimOfferAtom) Discriminant() int32 { return int32(ClaimAtomTypeOrderBook) }

func (a ClaimOfferAtom) EncodeXDR(e *xdr.Encoder) error {
	if err := a.SellerId.EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(a.OfferId); err != nil {
		return err
	}
	return tradeLeg{a.AssetSold, a.AmountSold, a.AssetBought, a.AmountBought}.EncodeXDR(e)
}

func (a *ClaimOfferAtom) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = a.SellerId.DecodeXDR(d); err != nil {
		return err
	}
	if a.OfferId, err = d.DecodeInt64(); err != nil {
		return err
	}
	var leg tradeLeg
	if err = leg.DecodeXDR(d); err != nil {
		return err
	}
	a.AssetSold, a.AmountSold, a.AssetBought, a.AmountBought = leg.AssetSold, leg.AmountSold, leg.AssetBought, leg.AmountBought
	return nil
}

type ClaimLiquidityAtom struct {
	LiquidityPoolId PoolId
	AssetSold       Asset
	AmountSold      int64
	AssetBought     Asset
	AmountBought    int64
}

func (ClaimLiquidityAtom) Discriminant() int32 { return int32(ClaimAtomTypeLiquidityPool) }

func (a ClaimLiquidityAtom) EncodeXDR(e *xdr.Encoder) error {
	if err := a.LiquidityPoolId.EncodeXDR(e); err != nil {
		return err
	}
	return tradeLeg{a.AssetSold, a.AmountSold, a.AssetBought, a.AmountBought}.EncodeXDR(e)
}

func (a *ClaimLiquidityAtom) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = a.LiquidityPoolId.DecodeXDR(d); err != nil {
		return err
	}
	var leg tradeLeg
	if err = leg.DecodeXDR(d); err != nil {
		return err
	}
	a.AssetSold, a.AmountSold, a.AssetBought, a.AmountBought = leg.AssetSold, leg.AmountSold, leg.AssetBought, leg.AmountBought
	return nil
}

type SimplePaymentResult struct {
	Destination AccountId
	Asset       Asset
	Amount      int64
}

func (r SimplePaymentResult) EncodeXDR(e *xdr.Encoder) error {
	if err := r.Destination.EncodeXDR(e); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, r.Asset); err != nil {
		return err
	}
	return e.EncodeInt64(r.Amount)
}

func (r *SimplePaymentResult) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = r.Destination.DecodeXDR(d); err != nil {
		return err
	}
	if r.Asset, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	r.Amount, err = d.DecodeInt64()
	return err
}

// PathPaymentSuccess is the success payload of both path payment operations
type PathPaymentSuccess struct {
	Offers []ClaimAtom
	Last   SimplePaymentResult
}

func (r PathPaymentSuccess) EncodeXDR(e *xdr.Encoder) error {
	if err := xdr.EncodeVarArray(e, r.Offers, xdr.Unbounded, ClaimAtomUnion.Encode); err != nil {
		return err
	}
	return r.Last.EncodeXDR(e)
}

func (r *PathPaymentSuccess) DecodeXDR(d *xdr.Decoder) (err error) {
	if r.Offers, err = xdr.DecodeVarArray(d, xdr.Unbounded, ClaimAtomUnion.Decode); err != nil {
		return err
	}
	return r.Last.DecodeXDR(d)
}

// PathPaymentNoIssuer names the asset whose issuer does not exist
type PathPaymentNoIssuer struct {
	Asset Asset
}

func (r PathPaymentNoIssuer) EncodeXDR(e *xdr.Encoder) error {
	return AssetUnion.Encode(e, r.Asset)
}

func (r *PathPaymentNoIssuer) DecodeXDR(d *xdr.Decoder) (err error) {
	r.Asset, err = AssetUnion.Decode(d)
	return err
}

type OfferEntry struct {
	SellerId AccountId
	OfferId  int64
	Selling  Asset
	Buying   Asset
	Amount   int64
	Price    Price
	Flags    uint32
	Ext      ExtensionPoint
}

func (o OfferEntry) EncodeXDR(e *xdr.Encoder) error {
	if err := o.SellerId.EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(o.OfferId); err != nil {
		return err
	}
	if err := (offer{Selling: o.Selling, Buying: o.Buying, Amount: o.Amount, Price: o.Price}).EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(o.Flags); err != nil {
		return err
	}
	return o.Ext.EncodeXDR(e)
}

func (o *OfferEntry) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = o.SellerId.DecodeXDR(d); err != nil {
		return err
	}
	if o.OfferId, err = d.DecodeInt64(); err != nil {
		return err
	}
	var of offer
	if err = of.DecodeXDR(d); err != nil {
		return err
	}
	o.Selling, o.Buying, o.Amount, o.Price = of.Selling, of.Buying, of.Amount, of.Price
	if o.Flags, err = d.DecodeUint32(); err != nil {
		return err
	}
	return o.Ext.DecodeXDR(d)
}

type ManageOfferEffect int32

const (
	ManageOfferCreated ManageOfferEffect = 0
	ManageOfferUpdated ManageOfferEffect = 1
	ManageOfferDeleted ManageOfferEffect = 2
)

var manageOfferEffects = xdr.NewEnum(
	"ManageOfferEffect",
	ManageOfferCreated,
	ManageOfferUpdated,
	ManageOfferDeleted,
)

// ManageOfferSuccessResult is the success payload of the offer operations.
// Offer is set unless Effect is ManageOfferDeleted
type ManageOfferSuccessResult struct {
	OffersClaimed []ClaimAtom
	Effect        ManageOfferEffect
	Offer         *OfferEntry
}

func (r ManageOfferSuccessResult) EncodeXDR(e *xdr.Encoder) error {
	err := xdr.EncodeVarArray(e, r.OffersClaimed, xdr.Unbounded, ClaimAtomUnion.Encode)
	if err != nil {
		return err
	}
	if err := manageOfferEffects.Encode(e, r.Effect); err != nil {
		return err
	}
	if r.Effect == ManageOfferDeleted {
		return nil
	}
	if r.Offer == nil {
		return fmt.Errorf("%w: ManageOfferSuccessResult: missing offer", xdr.ErrInvalidEncoding)
	}
	return r.Offer.EncodeXDR(e)
}

func (r *ManageOfferSuccessResult) DecodeXDR(d *xdr.Decoder) (err error) {
	if r.OffersClaimed, err = xdr.DecodeVarArray(d, xdr.Unbounded, ClaimAtomUnion.Decode); err != nil {
		return err
	}
	if r.Effect, err = manageOfferEffects.Decode(d); err != nil {
		return err
	}
	if r.Effect == ManageOfferDeleted {
		r.Offer = nil
		return nil
	}
	r.Offer = &OfferEntry{}
	return r.Offer.DecodeXDR(d)
}

// AccountMergeSuccess is the balance transferred to the merge destination
type AccountMergeSuccess int64

func (r AccountMergeSuccess) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeInt64(int64(r))
}

func (r *AccountMergeSuccess) DecodeXDR(d *xdr.Decoder) error {
	v, err := d.DecodeInt64()
	*r = AccountMergeSuccess(v)
	return err
}

type InflationPayout struct {
	Destination AccountId
	Amount      int64
}

func (p InflationPayout) EncodeXDR(e *xdr.Encoder) error {
	if err := p.Destination.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeInt64(p.Amount)
}

func (p *InflationPayout) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = p.Destination.DecodeXDR(d); err != nil {
		return err
	}
	p.Amount, err = d.DecodeInt64()
	return err
}

type InflationSuccess []InflationPayout

func (r InflationSuccess) EncodeXDR(e *xdr.Encoder) error {
	return xdr.EncodeVarArray(e, r, xdr.Unbounded, xdr.EncodeRecord[InflationPayout])
}

func (r *InflationSuccess) DecodeXDR(d *xdr.Decoder) error {
	v, err := xdr.DecodeVarArray(d, xdr.Unbounded, xdr.Record[InflationPayout])
	*r = v
	return err
}
