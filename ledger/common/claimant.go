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
	"github.com/blinklabs-io/gostellar/xdr"
)

type ClaimPredicateType int32

const (
	ClaimPredicateTypeUnconditional      ClaimPredicateType = 0
	ClaimPredicateTypeAnd                ClaimPredicateType = 1
	ClaimPredicateTypeOr                 ClaimPredicateType = 2
	ClaimPredicateTypeNot                ClaimPredicateType = 3
	ClaimPredicateTypeBeforeAbsoluteTime ClaimPredicateType = 4
	ClaimPredicateTypeBeforeRelativeTime ClaimPredicateType = 5
)

// MaxClaimPredicateOperands bounds the operands of an and/or predicate
const MaxClaimPredicateOperands = 2

// ClaimPredicate is a condition a claimant must satisfy to claim a balance
type ClaimPredicate interface {
	xdr.UnionArm
}

// ClaimPredicateUnion refers to itself through the and/or/not arms, so it is
// populated in init
var ClaimPredicateUnion *xdr.Union[ClaimPredicate]

func init() {
	ClaimPredicateUnion = xdr.NewUnion[ClaimPredicate]("ClaimPredicate").
		Void(int32(ClaimPredicateTypeUnconditional), ClaimPredicateUnconditional{}).
		Arm(int32(ClaimPredicateTypeAnd), xdr.ArmOf[ClaimPredicate, ClaimPredicateAnd]()).
		Arm(int32(ClaimPredicateTypeOr), xdr.ArmOf[ClaimPredicate, ClaimPredicateOr]()).
		Arm(int32(ClaimPredicateTypeNot), xdr.ArmOf[ClaimPredicate, ClaimPredicateNot]()).
		Arm(
			int32(ClaimPredicateTypeBeforeAbsoluteTime),
			xdr.ArmOf[ClaimPredicate, ClaimPredicateBeforeAbsoluteTime](),
		).
		Arm(
			int32(ClaimPredicateTypeBeforeRelativeTime),
			xdr.ArmOf[ClaimPredicate, ClaimPredicateBeforeRelativeTime](),
		)
}

type ClaimPredicateUnconditional struct{}

func (ClaimPredicateUnconditional) Discriminant() int32 {
	return int32(ClaimPredicateTypeUnconditional)
}

func (ClaimPredicateUnconditional) EncodeXDR(*xdr.Encoder) error { return nil }

type ClaimPredicateAnd []ClaimPredicate

func (ClaimPredicateAnd) Discriminant() int32 { return int32(ClaimPredicateTypeAnd) }

func (p ClaimPredicateAnd) EncodeXDR(e *xdr.Encoder) error {
	return xdr.EncodeVarArray(e, p, MaxClaimPredicateOperands, ClaimPredicateUnion.Encode)
}

func (p *ClaimPredicateAnd) DecodeXDR(d *xdr.Decoder) error {
	v, err := xdr.DecodeVarArray(d, MaxClaimPredicateOperands, ClaimPredicateUnion.Decode)
	*p = v
	return err
}

type ClaimPredicateOr []ClaimPredicate

func (ClaimPredicateOr) Discriminant() int32 { return int32(ClaimPredicateTypeOr) }

func (p ClaimPredicateOr) EncodeXDR(e *xdr.Encoder) error {
	return xdr.EncodeVarArray(e, p, MaxClaimPredicateOperands, ClaimPredicateUnion.Encode)
}

func (p *ClaimPredicateOr) DecodeXDR(d *xdr.Decoder) error {
	v, err := xdr.DecodeVarArray(d, MaxClaimPredicateOperands, ClaimPredicateUnion.Decode)
	*p = v
	return err
}

// ClaimPredicateNot negates Predicate. A nil Predicate is encoded as absent
type ClaimPredicateNot struct {
	Predicate ClaimPredicate
}

func (ClaimPredicateNot) Discriminant() int32 { return int32(ClaimPredicateTypeNot) }

func (p ClaimPredicateNot) EncodeXDR(e *xdr.Encoder) error {
	if p.Predicate == nil {
		return e.EncodePresence(false)
	}
	if err := e.EncodePresence(true); err != nil {
		return err
	}
	return ClaimPredicateUnion.Encode(e, p.Predicate)
}

func (p *ClaimPredicateNot) DecodeXDR(d *xdr.Decoder) error {
	present, err := d.DecodePresence()
	if err != nil || !present {
		return err
	}
	p.Predicate, err = ClaimPredicateUnion.Decode(d)
	return err
}

// ClaimPredicateBeforeAbsoluteTime holds while the close time is before the given unix time
type ClaimPredicateBeforeAbsoluteTime int64

func (ClaimPredicateBeforeAbsoluteTime) Discriminant() int32 {
	return int32(ClaimPredicateTypeBeforeAbsoluteTime)
}

func (p ClaimPredicateBeforeAbsoluteTime) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeInt64(int64(p))
}

func (p *ClaimPredicateBeforeAbsoluteTime) DecodeXDR(d *xdr.Decoder) error {
	v, err := d.DecodeInt64()
	*p = ClaimPredicateBeforeAbsoluteTime(v)
	return err
}

// ClaimPredicateBeforeRelativeTime holds for the given number of seconds after the balance is created
type ClaimPredicateBeforeRelativeTime int64

func (ClaimPredicateBeforeRelativeTime) Discriminant() int32 {
	return int32(ClaimPredicateTypeBeforeRelativeTime)
}

func (p ClaimPredicateBeforeRelativeTime) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeInt64(int64(p))
}

func (p *ClaimPredicateBeforeRelativeTime) DecodeXDR(d *xdr.Decoder) error {
	v, err := d.DecodeInt64()
	*p = ClaimPredicateBeforeRelativeTime(v)
	return err
}

type ClaimantType int32

const ClaimantTypeV0 ClaimantType = 0

var claimantTypes = xdr.NewEnum("ClaimantType", ClaimantTypeV0)

// Claimant is the v0 arm of the Claimant union
type Claimant struct {
	Destination AccountId
	Predicate   ClaimPredicate
}

func (c Claimant) EncodeXDR(e *xdr.Encoder) error {
	if err := claimantTypes.Encode(e, ClaimantTypeV0); err != nil {
		return err
	}
	if err := c.Destination.EncodeXDR(e); err != nil {
		return err
	}
	return ClaimPredicateUnion.Encode(e, c.Predicate)
}

func (c *Claimant) DecodeXDR(d *xdr.Decoder) (err error) {
	if _, err = claimantTypes.Decode(d); err != nil {
		return err
	}
	if err = c.Destination.DecodeXDR(d); err != nil {
		return err
	}
	c.Predicate, err = ClaimPredicateUnion.Decode(d)
	return err
}
