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

type OperationType int32

const (
	OperationTypeCreateAccount                 OperationType = 0
	OperationTypePayment                       OperationType = 1
	OperationTypePathPaymentStrictReceive      OperationType = 2
	OperationTypeManageSellOffer               OperationType = 3
	OperationTypeCreatePassiveSellOffer        OperationType = 4
	OperationTypeSetOptions                    OperationType = 5
	OperationTypeChangeTrust                   OperationType = 6
	OperationTypeAllowTrust                    OperationType = 7
	OperationTypeAccountMerge                  OperationType = 8
	OperationTypeInflation                     OperationType = 9
	OperationTypeManageData                    OperationType = 10
	OperationTypeBumpSequence                  OperationType = 11
	OperationTypeManageBuyOffer                OperationType = 12
	OperationTypePathPaymentStrictSend         OperationType = 13
	OperationTypeCreateClaimableBalance        OperationType = 14
	OperationTypeClaimClaimableBalance         OperationType = 15
	OperationTypeBeginSponsoringFutureReserves OperationType = 16
	OperationTypeEndSponsoringFutureReserves   OperationType = 17
	OperationTypeRevokeSponsorship             OperationType = 18
	OperationTypeClawback                      OperationType = 19
	OperationTypeClawbackClaimableBalance      OperationType = 20
	OperationTypeSetTrustLineFlags             OperationType = 21
	OperationTypeLiquidityPoolDeposit          OperationType = 22
	OperationTypeLiquidityPoolWithdraw         OperationType = 23
	OperationTypeInvokeHostFunction            OperationType = 24
	OperationTypeExtendFootprintTtl            OperationType = 25
	OperationTypeRestoreFootprint              OperationType = 26
)

var operationTypeNames = map[OperationType]string{
	OperationTypeCreateAccount:                 "CreateAccount",
	OperationTypePayment:                       "Payment",
	OperationTypePathPaymentStrictReceive:      "PathPaymentStrictReceive",
	OperationTypeManageSellOffer:               "ManageSellOffer",
	OperationTypeCreatePassiveSellOffer:        "CreatePassiveSellOffer",
	OperationTypeSetOptions:                    "SetOptions",
	OperationTypeChangeTrust:                   "ChangeTrust",
	OperationTypeAllowTrust:                    "AllowTrust",
	OperationTypeAccountMerge:                  "AccountMerge",
	OperationTypeInflation:                     "Inflation",
	OperationTypeManageData:                    "ManageData",
	OperationTypeBumpSequence:                  "BumpSequence",
	OperationTypeManageBuyOffer:                "ManageBuyOffer",
	OperationTypePathPaymentStrictSend:         "PathPaymentStrictSend",
	OperationTypeCreateClaimableBalance:        "CreateClaimableBalance",
	OperationTypeClaimClaimableBalance:         "ClaimClaimableBalance",
	OperationTypeBeginSponsoringFutureReserves: "BeginSponsoringFutureReserves",
	OperationTypeEndSponsoringFutureReserves:   "EndSponsoringFutureReserves",
	OperationTypeRevokeSponsorship:             "RevokeSponsorship",
	OperationTypeClawback:                      "Clawback",
	OperationTypeClawbackClaimableBalance:      "ClawbackClaimableBalance",
	OperationTypeSetTrustLineFlags:             "SetTrustLineFlags",
	OperationTypeLiquidityPoolDeposit:          "LiquidityPoolDeposit",
	OperationTypeLiquidityPoolWithdraw:         "LiquidityPoolWithdraw",
	OperationTypeInvokeHostFunction:            "InvokeHostFunction",
	OperationTypeExtendFootprintTtl:            "ExtendFootprintTtl",
	OperationTypeRestoreFootprint:              "RestoreFootprint",
}

func (t OperationType) String() string {
	if name, ok := operationTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OperationType(%d)", int32(t))
}

const (
	MaxOperationsPerTransaction = 100
	MaxPaymentPathLength        = 5
	MaxClaimants                = 10
)

// Operation is a single ledger action. A nil SourceAccount means the
// transaction source account is used
type Operation struct {
	SourceAccount MuxedAccount
	Body          OperationBody
}

func (o Operation) Type() OperationType {
	if o.Body == nil {
		return -1
	}
	return OperationType(o.Body.Discriminant())
}

func (o Operation) EncodeXDR(e *xdr.Encoder) error {
	if err := encodeOptionalMuxedAccount(e, o.SourceAccount); err != nil {
		return err
	}
	return OperationBodyUnion.Encode(e, o.Body)
}

func (o *Operation) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.SourceAccount, err = decodeOptionalMuxedAccount(d); err != nil {
		return err
	}
	o.Body, err = OperationBodyUnion.Decode(d)
	return err
}

type OperationBody interface {
	xdr.UnionArm
}

var OperationBodyUnion = xdr.NewUnion[OperationBody]("OperationBody").
	Arm(int32(OperationTypeCreateAccount), xdr.ArmOf[OperationBody, CreateAccountOp]()).
	Arm(int32(OperationTypePayment), xdr.ArmOf[OperationBody, PaymentOp]()).
	Arm(
		int32(OperationTypePathPaymentStrictReceive),
		xdr.ArmOf[OperationBody, PathPaymentStrictReceiveOp](),
	).
	Arm(int32(OperationTypeManageSellOffer), xdr.ArmOf[OperationBody, ManageSellOfferOp]()).
	Arm(
		int32(OperationTypeCreatePassiveSellOffer),
		xdr.ArmOf[OperationBody, CreatePassiveSellOfferOp](),
	).
	Arm(int32(OperationTypeSetOptions), xdr.ArmOf[OperationBody, SetOptionsOp]()).
	Arm(int32(OperationTypeChangeTrust), xdr.ArmOf[OperationBody, ChangeTrustOp]()).
	Arm(int32(OperationTypeAllowTrust), xdr.ArmOf[OperationBody, AllowTrustOp]()).
	Arm(int32(OperationTypeAccountMerge), xdr.ArmOf[OperationBody, AccountMergeOp]()).
	Void(int32(OperationTypeInflation), InflationOp{}).
	Arm(int32(OperationTypeManageData), xdr.ArmOf[OperationBody, ManageDataOp]()).
	Arm(int32(OperationTypeBumpSequence), xdr.ArmOf[OperationBody, BumpSequenceOp]()).
	Arm(int32(OperationTypeManageBuyOffer), xdr.ArmOf[OperationBody, ManageBuyOfferOp]()).
	Arm(
		int32(OperationTypePathPaymentStrictSend),
		xdr.ArmOf[OperationBody, PathPaymentStrictSendOp](),
	).
	Arm(
		int32(OperationTypeCreateClaimableBalance),
		xdr.ArmOf[OperationBody, CreateClaimableBalanceOp](),
	).
	Arm(
		int32(OperationTypeClaimClaimableBalance),
		xdr.ArmOf[OperationBody, ClaimClaimableBalanceOp](),
	).
	Arm(
		int32(OperationTypeBeginSponsoringFutureReserves),
		xdr.ArmOf[OperationBody, BeginSponsoringFutureReservesOp](),
	).
	Void(int32(OperationTypeEndSponsoringFutureReserves), EndSponsoringFutureReservesOp{}).
	Arm(int32(OperationTypeRevokeSponsorship), xdr.ArmOf[OperationBody, RevokeSponsorshipOp]()).
	Arm(int32(OperationTypeClawback), xdr.ArmOf[OperationBody, ClawbackOp]()).
	Arm(
		int32(OperationTypeClawbackClaimableBalance),
		xdr.ArmOf[OperationBody, ClawbackClaimableBalanceOp](),
	).
	Arm(int32(OperationTypeSetTrustLineFlags), xdr.ArmOf[OperationBody, SetTrustLineFlagsOp]()).
	Arm(
		int32(OperationTypeLiquidityPoolDeposit),
		xdr.ArmOf[OperationBody, LiquidityPoolDepositOp](),
	).
	Arm(
		int32(OperationTypeLiquidityPoolWithdraw),
		xdr.ArmOf[OperationBody, LiquidityPoolWithdrawOp](),
	).
	Arm(
		int32(OperationTypeInvokeHostFunction),
		xdr.ArmOf[OperationBody, InvokeHostFunctionOp](),
	).
	Arm(
		int32(OperationTypeExtendFootprintTtl),
		xdr.ArmOf[OperationBody, ExtendFootprintTtlOp](),
	).
	Arm(int32(OperationTypeRestoreFootprint), xdr.ArmOf[OperationBody, RestoreFootprintOp]())

type CreateAccountOp struct {
	Destination     AccountId
	StartingBalance int64
}

func (CreateAccountOp) Discriminant() int32 { return int32(OperationTypeCreateAccount) }

func (o CreateAccountOp) EncodeXDR(e *xdr.Encoder) error {
	if err := o.Destination.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeInt64(o.StartingBalance)
}

func (o *CreateAccountOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = o.Destination.DecodeXDR(d); err != nil {
		return err
	}
	o.StartingBalance, err = d.DecodeInt64()
	return err
}

type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

func (PaymentOp) Discriminant() int32 { return int32(OperationTypePayment) }

func (o PaymentOp) EncodeXDR(e *xdr.Encoder) error {
	if err := MuxedAccountUnion.Encode(e, o.Destination); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, o.Asset); err != nil {
		return err
	}
	return e.EncodeInt64(o.Amount)
}

func (o *PaymentOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.Destination, err = MuxedAccountUnion.Decode(d); err != nil {
		return err
	}
	if o.Asset, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	o.Amount, err = d.DecodeInt64()
	return err
}

// pathPayment is the wire layout shared by both path payment operations
type pathPayment struct {
	SendAsset   Asset
	SendAmount  int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  int64
	Path        []Asset
}

func (p pathPayment) EncodeXDR(e *xdr.Encoder) error {
	if err := AssetUnion.Encode(e, p.SendAsset); err != nil {
		return err
	}
	if err := e.EncodeInt64(p.SendAmount); err != nil {
		return err
	}
	if err := MuxedAccountUnion.Encode(e, p.Destination); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, p.DestAsset); err != nil {
		return err
	}
	if err := e.EncodeInt64(p.DestAmount); err != nil {
		return err
	}
	return xdr.EncodeVarArray(e, p.Path, MaxPaymentPathLength, AssetUnion.Encode)
}

func (p *pathPayment) DecodeXDR(d *xdr.Decoder) (err error) {
	if p.SendAsset, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if p.SendAmount, err = d.DecodeInt64(); err != nil {
		return err
	}
	if p.Destination, err = MuxedAccountUnion.Decode(d); err != nil {
		return err
	}
	if p.DestAsset, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if p.DestAmount, err = d.DecodeInt64(); err != nil {
		return err
	}
	p.Path, err = xdr.DecodeVarArray(d, MaxPaymentPathLength, AssetUnion.Decode)
	return err
}

// PathPaymentStrictReceiveOp delivers exactly DestAmount, spending at most SendMax
type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  int64
	Path        []Asset
}

func (PathPaymentStrictReceiveOp) Discriminant() int32 {
	return int32(OperationTypePathPaymentStrictReceive)
}

func (o PathPaymentStrictReceiveOp) EncodeXDR(e *xdr.Encoder) error {
	return pathPayment{
		SendAsset:   o.SendAsset,
		SendAmount:  o.SendMax,
		Destination: o.Destination,
		DestAsset:   o.DestAsset,
		DestAmount:  o.DestAmount,
		Path:        o.Path,
	}.EncodeXDR(e)
}

func (o *PathPaymentStrictReceiveOp) DecodeXDR(d *xdr.Decoder) error {
	var p pathPayment
	if err := p.DecodeXDR(d); err != nil {
		return err
	}
	*o = PathPaymentStrictReceiveOp{
		SendAsset:   p.SendAsset,
		SendMax:     p.SendAmount,
		Destination: p.Destination,
		DestAsset:   p.DestAsset,
		DestAmount:  p.DestAmount,
		Path:        p.Path,
	}
	return nil
}

// PathPaymentStrictSendOp spends exactly SendAmount, delivering at least DestMin
type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     int64
	Path        []Asset
}

func (PathPaymentStrictSendOp) Discriminant() int32 {
	return int32(OperationTypePathPaymentStrictSend)
}

func (o PathPaymentStrictSendOp) EncodeXDR(e *xdr.Encoder) error {
	return pathPayment{
		SendAsset:   o.SendAsset,
		SendAmount:  o.SendAmount,
		Destination: o.Destination,
		DestAsset:   o.DestAsset,
		DestAmount:  o.DestMin,
		Path:        o.Path,
	}.EncodeXDR(e)
}

func (o *PathPaymentStrictSendOp) DecodeXDR(d *xdr.Decoder) error {
	var p pathPayment
	if err := p.DecodeXDR(d); err != nil {
		return err
	}
	*o = PathPaymentStrictSendOp{
		SendAsset:   p.SendAsset,
		SendAmount:  p.SendAmount,
		Destination: p.Destination,
		DestAsset:   p.DestAsset,
		DestMin:     p.DestAmount,
		Path:        p.Path,
	}
	return nil
}

// offer is the wire layout shared by the offer operations. OfferId is
// omitted for passive offers
type offer struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
}

func (o offer) EncodeXDR(e *xdr.Encoder) error {
	if err := AssetUnion.Encode(e, o.Selling); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, o.Buying); err != nil {
		return err
	}
	if err := e.EncodeInt64(o.Amount); err != nil {
		return err
	}
	return o.Price.EncodeXDR(e)
}

func (o *offer) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.Selling, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if o.Buying, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if o.Amount, err = d.DecodeInt64(); err != nil {
		return err
	}
	return o.Price.DecodeXDR(d)
}

// ManageSellOfferOp creates, updates or deletes an offer. An OfferId of 0 creates a new offer
type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
	OfferId int64
}

func (ManageSellOfferOp) Discriminant() int32 { return int32(OperationTypeManageSellOffer) }

func (o ManageSellOfferOp) EncodeXDR(e *xdr.Encoder) error {
	err := offer{Selling: o.Selling, Buying: o.Buying, Amount: o.Amount, Price: o.Price}.EncodeXDR(e)
	if err != nil {
		return err
	}
	return e.EncodeInt64(o.OfferId)
}

func (o *ManageSellOfferOp) DecodeXDR(d *xdr.Decoder) (err error) {
	var of offer
	if err = of.DecodeXDR(d); err != nil {
		return err
	}
	o.Selling, o.Buying, o.Amount, o.Price = of.Selling, of.Buying, of.Amount, of.Price
	o.OfferId, err = d.DecodeInt64()
	return err
}

// ManageBuyOfferOp is ManageSellOfferOp with the amount expressed in the buying asset
type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount int64
	Price     Price
	OfferId   int64
}

func (ManageBuyOfferOp) Discriminant() int32 { return int32(OperationTypeManageBuyOffer) }

func (o ManageBuyOfferOp) EncodeXDR(e *xdr.Encoder) error {
	err := offer{Selling: o.Selling, Buying: o.Buying, Amount: o.BuyAmount, Price: o.Price}.EncodeXDR(e)
	if err != nil {
		return err
	}
	return e.EncodeInt64(o.OfferId)
}

func (o *ManageBuyOfferOp) DecodeXDR(d *xdr.Decoder) (err error) {
	var of offer
	if err = of.DecodeXDR(d); err != nil {
		return err
	}
	o.Selling, o.Buying, o.BuyAmount, o.Price = of.Selling, of.Buying, of.Amount, of.Price
	o.OfferId, err = d.DecodeInt64()
	return err
}

type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
}

func (CreatePassiveSellOfferOp) Discriminant() int32 {
	return int32(OperationTypeCreatePassiveSellOffer)
}

func (o CreatePassiveSellOfferOp) EncodeXDR(e *xdr.Encoder) error {
	return offer(o).EncodeXDR(e)
}

func (o *CreatePassiveSellOfferOp) DecodeXDR(d *xdr.Decoder) error {
	return (*offer)(o).DecodeXDR(d)
}

// Signer is an additional account signer with its weight. A weight of 0 removes the signer
type Signer struct {
	Key    SignerKey
	Weight uint32
}

func (s Signer) EncodeXDR(e *xdr.Encoder) error {
	if err := SignerKeyUnion.Encode(e, s.Key); err != nil {
		return err
	}
	return e.EncodeUint32(s.Weight)
}

func (s *Signer) DecodeXDR(d *xdr.Decoder) (err error) {
	if s.Key, err = SignerKeyUnion.Decode(d); err != nil {
		return err
	}
	s.Weight, err = d.DecodeUint32()
	return err
}

// SetOptionsOp changes account settings. Nil fields are left unchanged
type SetOptionsOp struct {
	InflationDest *AccountId
	ClearFlags    *uint32
	SetFlags      *uint32
	MasterWeight  *uint32
	LowThreshold  *uint32
	MedThreshold  *uint32
	HighThreshold *uint32
	HomeDomain    *string
	Signer        *Signer
}

func (SetOptionsOp) Discriminant() int32 { return int32(OperationTypeSetOptions) }

func (o SetOptionsOp) uint32Fields() []*uint32 {
	return []*uint32{o.ClearFlags, o.SetFlags, o.MasterWeight, o.LowThreshold, o.MedThreshold, o.HighThreshold}
}

func (o SetOptionsOp) EncodeXDR(e *xdr.Encoder) error {
	if err := xdr.EncodeOptional(e, o.InflationDest, xdr.EncodeRecord[AccountId]); err != nil {
		return err
	}
	for _, v := range o.uint32Fields() {
		if err := encodeUint32Ptr(e, v); err != nil {
			return err
		}
	}
	err := xdr.EncodeOptional(e, o.HomeDomain, func(e *xdr.Encoder, s string) error {
		return e.EncodeString(s, MaxString32Size)
	})
	if err != nil {
		return err
	}
	return xdr.EncodeOptional(e, o.Signer, xdr.EncodeRecord[Signer])
}

func (o *SetOptionsOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.InflationDest, err = xdr.DecodeOptional(d, xdr.Record[AccountId]); err != nil {
		return err
	}
	for _, field := range []**uint32{
		&o.ClearFlags,
		&o.SetFlags,
		&o.MasterWeight,
		&o.LowThreshold,
		&o.MedThreshold,
		&o.HighThreshold,
	} {
		if *field, err = decodeUint32Ptr(d); err != nil {
			return err
		}
	}
	o.HomeDomain, err = xdr.DecodeOptional(d, func(d *xdr.Decoder) (string, error) {
		return d.DecodeString(MaxString32Size)
	})
	if err != nil {
		return err
	}
	o.Signer, err = xdr.DecodeOptional(d, xdr.Record[Signer])
	return err
}

// ChangeTrustOp creates, updates or removes a trustline. A Limit of 0 removes it
type ChangeTrustOp struct {
	Line  ChangeTrustAsset
	Limit int64
}

func (ChangeTrustOp) Discriminant() int32 { return int32(OperationTypeChangeTrust) }

func (o ChangeTrustOp) EncodeXDR(e *xdr.Encoder) error {
	if err := ChangeTrustAssetUnion.Encode(e, o.Line); err != nil {
		return err
	}
	return e.EncodeInt64(o.Limit)
}

func (o *ChangeTrustOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.Line, err = ChangeTrustAssetUnion.Decode(d); err != nil {
		return err
	}
	o.Limit, err = d.DecodeInt64()
	return err
}

type AllowTrustOp struct {
	Trustor   AccountId
	Asset     AssetCode
	Authorize uint32
}

func (AllowTrustOp) Discriminant() int32 { return int32(OperationTypeAllowTrust) }

func (o AllowTrustOp) EncodeXDR(e *xdr.Encoder) error {
	if err := o.Trustor.EncodeXDR(e); err != nil {
		return err
	}
	if err := AssetCodeUnion.Encode(e, o.Asset); err != nil {
		return err
	}
	return e.EncodeUint32(o.Authorize)
}

func (o *AllowTrustOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = o.Trustor.DecodeXDR(d); err != nil {
		return err
	}
	if o.Asset, err = AssetCodeUnion.Decode(d); err != nil {
		return err
	}
	o.Authorize, err = d.DecodeUint32()
	return err
}

type AccountMergeOp struct {
	Destination MuxedAccount
}

func (AccountMergeOp) Discriminant() int32 { return int32(OperationTypeAccountMerge) }

func (o AccountMergeOp) EncodeXDR(e *xdr.Encoder) error {
	return MuxedAccountUnion.Encode(e, o.Destination)
}

func (o *AccountMergeOp) DecodeXDR(d *xdr.Decoder) (err error) {
	o.Destination, err = MuxedAccountUnion.Decode(d)
	return err
}

type InflationOp struct{}

func (InflationOp) Discriminant() int32          { return int32(OperationTypeInflation) }
func (InflationOp) EncodeXDR(*xdr.Encoder) error { return nil }

// ManageDataOp sets or, with a nil DataValue, deletes an account data entry
type ManageDataOp struct {
	DataName  string
	DataValue []byte
}

func (ManageDataOp) Discriminant() int32 { return int32(OperationTypeManageData) }

func (o ManageDataOp) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeString(o.DataName, MaxString64Size); err != nil {
		return err
	}
	if o.DataValue == nil {
		return e.EncodePresence(false)
	}
	if err := e.EncodePresence(true); err != nil {
		return err
	}
	return e.EncodeOpaque(o.DataValue, MaxDataValueSize)
}

func (o *ManageDataOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.DataName, err = d.DecodeString(MaxString64Size); err != nil {
		return err
	}
	present, err := d.DecodePresence()
	if err != nil || !present {
		return err
	}
	if o.DataValue, err = d.DecodeOpaque(MaxDataValueSize); err != nil {
		return err
	}
	if o.DataValue == nil {
		o.DataValue = []byte{}
	}
	return nil
}

type BumpSequenceOp struct {
	BumpTo int64
}

func (BumpSequenceOp) Discriminant() int32 { return int32(OperationTypeBumpSequence) }

func (o BumpSequenceOp) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeInt64(o.BumpTo)
}

func (o *BumpSequenceOp) DecodeXDR(d *xdr.Decoder) (err error) {
	o.BumpTo, err = d.DecodeInt64()
	return err
}

type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    int64
	Claimants []Claimant
}

func (CreateClaimableBalanceOp) Discriminant() int32 {
	return int32(OperationTypeCreateClaimableBalance)
}

func (o CreateClaimableBalanceOp) EncodeXDR(e *xdr.Encoder) error {
	if err := AssetUnion.Encode(e, o.Asset); err != nil {
		return err
	}
	if err := e.EncodeInt64(o.Amount); err != nil {
		return err
	}
	return xdr.EncodeVarArray(e, o.Claimants, MaxClaimants, xdr.EncodeRecord[Claimant])
}

func (o *CreateClaimableBalanceOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.Asset, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if o.Amount, err = d.DecodeInt64(); err != nil {
		return err
	}
	o.Claimants, err = xdr.DecodeVarArray(d, MaxClaimants, xdr.Record[Claimant])
	return err
}

type ClaimClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (ClaimClaimableBalanceOp) Discriminant() int32 {
	return int32(OperationTypeClaimClaimableBalance)
}

func (o ClaimClaimableBalanceOp) EncodeXDR(e *xdr.Encoder) error {
	return o.BalanceId.EncodeXDR(e)
}

func (o *ClaimClaimableBalanceOp) DecodeXDR(d *xdr.Decoder) error {
	return o.BalanceId.DecodeXDR(d)
}

type BeginSponsoringFutureReservesOp struct {
	SponsoredId AccountId
}

func (BeginSponsoringFutureReservesOp) Discriminant() int32 {
	return int32(OperationTypeBeginSponsoringFutureReserves)
}

func (o BeginSponsoringFutureReservesOp) EncodeXDR(e *xdr.Encoder) error {
	return o.SponsoredId.EncodeXDR(e)
}

func (o *BeginSponsoringFutureReservesOp) DecodeXDR(d *xdr.Decoder) error {
	return o.SponsoredId.DecodeXDR(d)
}

type EndSponsoringFutureReservesOp struct{}

func (EndSponsoringFutureReservesOp) Discriminant() int32 {
	return int32(OperationTypeEndSponsoringFutureReserves)
}

func (EndSponsoringFutureReservesOp) EncodeXDR(*xdr.Encoder) error { return nil }

type RevokeSponsorshipType int32

const (
	RevokeSponsorshipTypeLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipTypeSigner      RevokeSponsorshipType = 1
)

// RevokeSponsorship is the target of a RevokeSponsorshipOp
type RevokeSponsorship interface {
	xdr.UnionArm
}

var RevokeSponsorshipUnion = xdr.NewUnion[RevokeSponsorship]("RevokeSponsorshipOp").
	Arm(
		int32(RevokeSponsorshipTypeLedgerEntry),
		xdr.ArmOf[RevokeSponsorship, RevokeSponsorshipLedgerEntry](),
	).
	Arm(
		int32(RevokeSponsorshipTypeSigner),
		xdr.ArmOf[RevokeSponsorship, RevokeSponsorshipSigner](),
	)

type RevokeSponsorshipLedgerEntry struct {
	LedgerKey LedgerKey
}

func (RevokeSponsorshipLedgerEntry) Discriminant() int32 {
	return int32(RevokeSponsorshipTypeLedgerEntry)
}

func (r RevokeSponsorshipLedgerEntry) EncodeXDR(e *xdr.Encoder) error {
	return LedgerKeyUnion.Encode(e, r.LedgerKey)
}

func (r *RevokeSponsorshipLedgerEntry) DecodeXDR(d *xdr.Decoder) (err error) {
	r.LedgerKey, err = LedgerKeyUnion.Decode(d)
	return err
}

type RevokeSponsorshipSigner struct {
	AccountId AccountId
	SignerKey SignerKey
}

func (RevokeSponsorshipSigner) Discriminant() int32 {
	return int32(RevokeSponsorshipTypeSigner)
}

func (r RevokeSponsorshipSigner) EncodeXDR(e *xdr.Encoder) error {
	if err := r.AccountId.EncodeXDR(e); err != nil {
		return err
	}
	return SignerKeyUnion.Encode(e, r.SignerKey)
}

func (r *RevokeSponsorshipSigner) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = r.AccountId.DecodeXDR(d); err != nil {
		return err
	}
	r.SignerKey, err = SignerKeyUnion.Decode(d)
	return err
}

type RevokeSponsorshipOp struct {
	Target RevokeSponsorship
}

func (RevokeSponsorshipOp) Discriminant() int32 { return int32(OperationTypeRevokeSponsorship) }

func (o RevokeSponsorshipOp) EncodeXDR(e *xdr.Encoder) error {
	return RevokeSponsorshipUnion.Encode(e, o.Target)
}

func (o *RevokeSponsorshipOp) DecodeXDR(d *xdr.Decoder) (err error) {
	o.Target, err = RevokeSponsorshipUnion.Decode(d)
	return err
}

type ClawbackOp struct {
	Asset  Asset
	From   MuxedAccount
	Amount int64
}

func (ClawbackOp) Discriminant() int32 { return int32(OperationTypeClawback) }

func (o ClawbackOp) EncodeXDR(e *xdr.Encoder) error {
	if err := AssetUnion.Encode(e, o.Asset); err != nil {
		return err
	}
	if err := MuxedAccountUnion.Encode(e, o.From); err != nil {
		return err
	}
	return e.EncodeInt64(o.Amount)
}

func (o *ClawbackOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.Asset, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if o.From, err = MuxedAccountUnion.Decode(d); err != nil {
		return err
	}
	o.Amount, err = d.DecodeInt64()
	return err
}

type ClawbackClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (ClawbackClaimableBalanceOp) Discriminant() int32 {
	return int32(OperationTypeClawbackClaimableBalance)
}

func (o ClawbackClaimableBalanceOp) EncodeXDR(e *xdr.Encoder) error {
	return o.BalanceId.EncodeXDR(e)
}

func (o *ClawbackClaimableBalanceOp) DecodeXDR(d *xdr.Decoder) error {
	return o.BalanceId.DecodeXDR(d)
}

// Trustline flags
const (
	TrustLineAuthorized                      uint32 = 1
	TrustLineAuthorizedToMaintainLiabilities uint32 = 2
	TrustLineClawbackEnabled                 uint32 = 4
)

type SetTrustLineFlagsOp struct {
	Trustor    AccountId
	Asset      Asset
	ClearFlags uint32
	SetFlags   uint32
}

func (SetTrustLineFlagsOp) Discriminant() int32 { return int32(OperationTypeSetTrustLineFlags) }

func (o SetTrustLineFlagsOp) EncodeXDR(e *xdr.Encoder) error {
	if err := o.Trustor.EncodeXDR(e); err != nil {
		return err
	}
	if err := AssetUnion.Encode(e, o.Asset); err != nil {
		return err
	}
	if err := e.EncodeUint32(o.ClearFlags); err != nil {
		return err
	}
	return e.EncodeUint32(o.SetFlags)
}

func (o *SetTrustLineFlagsOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = o.Trustor.DecodeXDR(d); err != nil {
		return err
	}
	if o.Asset, err = AssetUnion.Decode(d); err != nil {
		return err
	}
	if o.ClearFlags, err = d.DecodeUint32(); err != nil {
		return err
	}
	o.SetFlags, err = d.DecodeUint32()
	return err
}

type LiquidityPoolDepositOp struct {
	LiquidityPoolId PoolId
	MaxAmountA      int64
	MaxAmountB      int64
	MinPrice        Price
	MaxPrice        Price
}

func (LiquidityPoolDepositOp) Discriminant() int32 {
	return int32(OperationTypeLiquidityPoolDeposit)
}

func (o LiquidityPoolDepositOp) EncodeXDR(e *xdr.Encoder) error {
	if err := o.LiquidityPoolId.EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(o.MaxAmountA); err != nil {
		return err
	}
	if err := e.EncodeInt64(o.MaxAmountB); err != nil {
		return err
	}
	if err := o.MinPrice.EncodeXDR(e); err != nil {
		return err
	}
	return o.MaxPrice.EncodeXDR(e)
}

func (o *LiquidityPoolDepositOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = o.LiquidityPoolId.DecodeXDR(d); err != nil {
		return err
	}
	if o.MaxAmountA, err = d.DecodeInt64(); err != nil {
		return err
	}
	if o.MaxAmountB, err = d.DecodeInt64(); err != nil {
		return err
	}
	if err = o.MinPrice.DecodeXDR(d); err != nil {
		return err
	}
	return o.MaxPrice.DecodeXDR(d)
}

type LiquidityPoolWithdrawOp struct {
	LiquidityPoolId PoolId
	Amount          int64
	MinAmountA      int64
	MinAmountB      int64
}

func (LiquidityPoolWithdrawOp) Discriminant() int32 {
	return int32(OperationTypeLiquidityPoolWithdraw)
}

func (o LiquidityPoolWithdrawOp) EncodeXDR(e *xdr.Encoder) error {
	if err := o.LiquidityPoolId.EncodeXDR(e); err != nil {
		return err
	}
	for _, v := range []int64{o.Amount, o.MinAmountA, o.MinAmountB} {
		if err := e.EncodeInt64(v); err != nil {
			return err
		}
	}
	return nil
}

func (o *LiquidityPoolWithdrawOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = o.LiquidityPoolId.DecodeXDR(d); err != nil {
		return err
	}
	for _, v := range []*int64{&o.Amount, &o.MinAmountA, &o.MinAmountB} {
		if *v, err = d.DecodeInt64(); err != nil {
			return err
		}
	}
	return nil
}

type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

func (InvokeHostFunctionOp) Discriminant() int32 {
	return int32(OperationTypeInvokeHostFunction)
}

func (o InvokeHostFunctionOp) EncodeXDR(e *xdr.Encoder) error {
	if err := HostFunctionUnion.Encode(e, o.HostFunction); err != nil {
		return err
	}
	return xdr.EncodeVarArray(
		e,
		o.Auth,
		xdr.Unbounded,
		xdr.EncodeRecord[SorobanAuthorizationEntry],
	)
}

func (o *InvokeHostFunctionOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if o.HostFunction, err = HostFunctionUnion.Decode(d); err != nil {
		return err
	}
	o.Auth, err = xdr.DecodeVarArray(
		d,
		xdr.Unbounded,
		xdr.Record[SorobanAuthorizationEntry],
	)
	return err
}

type ExtendFootprintTtlOp struct {
	Ext      ExtensionPoint
	ExtendTo uint32
}

func (ExtendFootprintTtlOp) Discriminant() int32 {
	return int32(OperationTypeExtendFootprintTtl)
}

func (o ExtendFootprintTtlOp) EncodeXDR(e *xdr.Encoder) error {
	if err := o.Ext.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeUint32(o.ExtendTo)
}

func (o *ExtendFootprintTtlOp) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = o.Ext.DecodeXDR(d); err != nil {
		return err
	}
	o.ExtendTo, err = d.DecodeUint32()
	return err
}

type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

func (RestoreFootprintOp) Discriminant() int32 {
	return int32(OperationTypeRestoreFootprint)
}

func (o RestoreFootprintOp) EncodeXDR(e *xdr.Encoder) error {
	return o.Ext.EncodeXDR(e)
}

func (o *RestoreFootprintOp) DecodeXDR(d *xdr.Decoder) error {
	return o.Ext.DecodeXDR(d)
}
