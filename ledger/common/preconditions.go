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

type PreconditionType int32

const (
	PreconditionTypeNone PreconditionType = 0
	PreconditionTypeTime PreconditionType = 1
	PreconditionTypeV2   PreconditionType = 2
)

const MaxExtraSigners = 2

// Preconditions restrict when a transaction is valid
type Preconditions interface {
	xdr.UnionArm
}

var PreconditionsUnion = xdr.NewUnion[Preconditions]("Preconditions").
	Void(int32(PreconditionTypeNone), PreconditionsNone{}).
	Arm(int32(PreconditionTypeTime), xdr.ArmOf[Preconditions, TimeBounds]()).
	Arm(int32(PreconditionTypeV2), xdr.ArmOf[Preconditions, PreconditionsV2]())

type PreconditionsNone struct{}

func (PreconditionsNone) Discriminant() int32          { return int32(PreconditionTypeNone) }
func (PreconditionsNone) EncodeXDR(*xdr.Encoder) error { return nil }

// TimeBounds limits validity to [MinTime, MaxTime] in unix seconds. A MaxTime of 0 means no upper bound
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

func (TimeBounds) Discriminant() int32 {
	return int32(PreconditionTypeTime)
}

func (t TimeBounds) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeUint64(t.MinTime); err != nil {
		return err
	}
	return e.EncodeUint64(t.MaxTime)
}

func (t *TimeBounds) DecodeXDR(d *xdr.Decoder) (err error) {
	if t.MinTime, err = d.DecodeUint64(); err != nil {
		return err
	}
	t.MaxTime, err = d.DecodeUint64()
	return err
}

type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

func (l LedgerBounds) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeUint32(l.MinLedger); err != nil {
		return err
	}
	return e.EncodeUint32(l.MaxLedger)
}

func (l *LedgerBounds) DecodeXDR(d *xdr.Decoder) (err error) {
	if l.MinLedger, err = d.DecodeUint32(); err != nil {
		return err
	}
	l.MaxLedger, err = d.DecodeUint32()
	return err
}

type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *int64
	MinSeqAge       uint64
	MinSeqLedgerGap uint32
	ExtraSigners    []SignerKey
}

func (PreconditionsV2) Discriminant() int32 {
	return int32(PreconditionTypeV2)
}

func (p PreconditionsV2) EncodeXDR(e *xdr.Encoder) error {
	if err := xdr.EncodeOptional(e, p.TimeBounds, xdr.EncodeRecord[TimeBounds]); err != nil {
		return err
	}
	if err := xdr.EncodeOptional(e, p.LedgerBounds, xdr.EncodeRecord[LedgerBounds]); err != nil {
		return err
	}
	if err := xdr.EncodeOptional(e, p.MinSeqNum, (*xdr.Encoder).EncodeInt64); err != nil {
		return err
	}
	if err := e.EncodeUint64(p.MinSeqAge); err != nil {
		return err
	}
	if err := e.EncodeUint32(p.MinSeqLedgerGap); err != nil {
		return err
	}
	return xdr.EncodeVarArray(e, p.ExtraSigners, MaxExtraSigners, SignerKeyUnion.Encode)
}

func (p *PreconditionsV2) DecodeXDR(d *xdr.Decoder) (err error) {
	if p.TimeBounds, err = xdr.DecodeOptional(d, xdr.Record[TimeBounds]); err != nil {
		return err
	}
	if p.LedgerBounds, err = xdr.DecodeOptional(d, xdr.Record[LedgerBounds]); err != nil {
		return err
	}
	if p.MinSeqNum, err = xdr.DecodeOptional(d, (*xdr.Decoder).DecodeInt64); err != nil {
		return err
	}
	if p.MinSeqAge, err = d.DecodeUint64(); err != nil {
		return err
	}
	if p.MinSeqLedgerGap, err = d.DecodeUint32(); err != nil {
		return err
	}
	p.ExtraSigners, err = xdr.DecodeVarArray(d, MaxExtraSigners, SignerKeyUnion.Decode)
	return err
}
