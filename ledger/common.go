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
	"strconv"

	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
)

// Compatibility aliases
type (
	Hash          = common.Hash
	AccountId     = common.AccountId
	MuxedAccount  = common.MuxedAccount
	Operation     = common.Operation
	Memo          = common.Memo
	Preconditions = common.Preconditions
	SignatureHint = common.SignatureHint
)

// EnvelopeType tags the payload of a signature base, hash preimage or envelope
type EnvelopeType int32

const (
	EnvelopeTypeTxV0                 EnvelopeType = 0
	EnvelopeTypeScp                  EnvelopeType = 1
	EnvelopeTypeTx                   EnvelopeType = 2
	EnvelopeTypeAuth                 EnvelopeType = 3
	EnvelopeTypeScpValue             EnvelopeType = 4
	EnvelopeTypeTxFeeBump            EnvelopeType = 5
	EnvelopeTypeOpId                 EnvelopeType = 6
	EnvelopeTypePoolRevokeOpId       EnvelopeType = 7
	EnvelopeTypeContractId           EnvelopeType = 8
	EnvelopeTypeSorobanAuthorization EnvelopeType = 9
)

var envelopeTypeNames = map[EnvelopeType]string{
	EnvelopeTypeTxV0:                 "ENVELOPE_TYPE_TX_V0",
	EnvelopeTypeScp:                  "ENVELOPE_TYPE_SCP",
	EnvelopeTypeTx:                   "ENVELOPE_TYPE_TX",
	EnvelopeTypeAuth:                 "ENVELOPE_TYPE_AUTH",
	EnvelopeTypeScpValue:             "ENVELOPE_TYPE_SCPVALUE",
	EnvelopeTypeTxFeeBump:            "ENVELOPE_TYPE_TX_FEE_BUMP",
	EnvelopeTypeOpId:                 "ENVELOPE_TYPE_OP_ID",
	EnvelopeTypePoolRevokeOpId:       "ENVELOPE_TYPE_POOL_REVOKE_OP_ID",
	EnvelopeTypeContractId:           "ENVELOPE_TYPE_CONTRACT_ID",
	EnvelopeTypeSorobanAuthorization: "ENVELOPE_TYPE_SOROBAN_AUTHORIZATION",
}

func (t EnvelopeType) String() string {
	if name, ok := envelopeTypeNames[t]; ok {
		return name
	}
	return "EnvelopeType(" + strconv.Itoa(int(t)) + ")"
}

// encodeEnvelopeType returns t as the 4-byte tag used in signature bases
func encodeEnvelopeType(t EnvelopeType) []byte {
	return encodeInt32(int32(t))
}

func encodeInt32(v int32) []byte {
	e := xdr.NewEncoder()
	_ = e.EncodeInt32(v)
	return e.Bytes()
}
