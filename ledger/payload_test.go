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

package ledger_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/ledger"
	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionSignaturePayload(t *testing.T) {
	testnetId := hashFromHex(t, testnetIdHex)
	env := mustDecodeEnvelope(t, paymentEnvelope).(*ledger.TransactionV1Envelope)
	base, err := ledger.TransactionSignatureBase(env.Transaction(), testnetId)
	require.NoError(t, err)
	assert.Equal(t, env.SignatureBase(testnetId), base)

	var payload ledger.TransactionSignaturePayload
	require.NoError(t, xdr.Unmarshal(base, &payload))
	assert.Equal(t, testnetId, payload.NetworkId)
	tx, ok := payload.TaggedTransaction.(ledger.Transaction)
	require.True(t, ok)
	assert.Equal(t, int64(2), tx.SeqNum)
	assert.Equal(t, uint32(100), tx.Fee)

	// Legacy transactions have no arm of their own
	v0 := test.DecodeHexString("cee0302d59844d32bdca915c8203dd44b33fbb7edc19051ea37abedf28ecd472 00000000")
	err = xdr.Unmarshal(v0, &payload)
	assert.True(t, errors.Is(err, xdr.ErrUnknownDiscriminant))
}

func TestClaimableBalanceId(t *testing.T) {
	alice := testSigner(t, "alice").AccountId()
	id, err := ledger.ClaimableBalanceId(alice, 2, 0)
	require.NoError(t, err)
	assert.Equal(
		t,
		"0a3c9b5982f6591c4838ed6c572c92362e0ec285dcbb4838ab48a057fbd926dc",
		id.V0.String(),
	)
	other, err := ledger.ClaimableBalanceId(alice, 2, 1)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestContractId(t *testing.T) {
	testnetId := hashFromHex(t, testnetIdHex)
	id, err := ledger.ContractId(
		testnetId,
		common.ContractIdPreimageFromAsset{Asset: common.AssetNative{}},
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC",
		common.EncodeStrkey(common.StrkeyVersionContract, id.Bytes()),
	)
	publicId, err := ledger.ContractId(
		hashFromHex(t, publicIdHex),
		common.ContractIdPreimageFromAsset{Asset: common.AssetNative{}},
	)
	require.NoError(t, err)
	assert.NotEqual(t, id, publicId)
}

func TestAuthorizationPayloadHash(t *testing.T) {
	testnetId := hashFromHex(t, testnetIdHex)
	invocation := common.SorobanAuthorizedInvocation{
		Function: common.SorobanAuthorizedCreateContract{
			Args: common.CreateContractArgs{
				ContractIdPreimage: common.ContractIdPreimageFromAsset{Asset: common.AssetNative{}},
				Executable:         common.ContractExecutableStellarAsset{},
			},
		},
	}
	preimage := ledger.HashIdPreimageSorobanAuthorization{
		NetworkId:                 testnetId,
		Nonce:                     42,
		SignatureExpirationLedger: 1000,
		Invocation:                invocation,
	}
	encoded, err := xdr.EncodeWith[ledger.HashIdPreimage](preimage, ledger.HashIdPreimageUnion.Encode)
	require.NoError(t, err)
	assert.Equal(
		t,
		test.DecodeHexString(`00000009
			cee0302d59844d32bdca915c8203dd44b33fbb7edc19051ea37abedf28ecd472
			000000000000002a 000003e8
			00000001 00000001 00000000 00000001 00000000`),
		encoded,
	)

	hash, err := ledger.AuthorizationPayloadHash(
		testnetId,
		common.SorobanAddressCredentials{Nonce: 42, SignatureExpirationLedger: 1000},
		invocation,
	)
	require.NoError(t, err)
	assert.Equal(t, "d0c213d6be65f2d71ca20542a0823eb2b451cb94c9e6827bd3206ea63fa7459f", hash.String())

	decoded, err := xdr.DecodeWith(encoded, ledger.HashIdPreimageUnion.Decode)
	require.NoError(t, err)
	assert.Equal(t, preimage, decoded)
}

func TestHashIdPreimageRevokeId(t *testing.T) {
	alice := testSigner(t, "alice").AccountId()
	preimage := ledger.HashIdPreimageRevokeId{
		SourceAccount:   alice,
		SeqNum:          7,
		OpNum:           3,
		LiquidityPoolId: common.Hash(test.Bytes32(0x11)),
		Asset:           common.AssetNative{},
	}
	encoded, err := xdr.EncodeWith[ledger.HashIdPreimage](preimage, ledger.HashIdPreimageUnion.Encode)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 7}, encoded[:4])
	decoded, err := xdr.DecodeWith(encoded, ledger.HashIdPreimageUnion.Decode)
	require.NoError(t, err)
	assert.Equal(t, preimage, decoded)
}
