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
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContractIdHex = "363eaa3867841fbad0f4ed88c779e4fe66e56a2470dc98c0ec9c073d05c7b103"

func uint32Ptr(v uint32) *uint32 { return &v }
func stringPtr(v string) *string { return &v }

func TestOperationXdr(t *testing.T) {
	accountId := testAccountId(t)
	muxed, err := NewMuxedAccount(
		"MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAAAAAAAACJUQ",
	)
	require.NoError(t, err)
	contract, err := NewSCAddress(testContractAddress)
	require.NoError(t, err)
	invokeArgs := InvokeContractArgs{
		ContractAddress: contract,
		FunctionName:    "hello",
		Args:            []SCVal{SCValU32(1)},
	}
	invokeArgsHex := "00000001" + testContractIdHex + "00000005 68656c6c 6f000000 00000001 00000003 00000001"
	testDefs := []struct {
		name   string
		op     Operation
		xdrHex string
	}{
		{
			name: "payment",
			op: Operation{
				Body: PaymentOp{
					Destination: accountId.ToMuxedAccount(),
					Asset:       AssetNative{},
					Amount:      10000000,
				},
			},
			xdrHex: "00000000 00000001 00000000" + testAccountKeyHex + "00000000 0000000000989680",
		},
		{
			name: "create account with muxed source",
			op: Operation{
				SourceAccount: muxed,
				Body: CreateAccountOp{
					Destination:     accountId,
					StartingBalance: 1,
				},
			},
			xdrHex: "00000001 00000100 0000000000000000" + testAccountKeyHex +
				"00000000 00000000" + testAccountKeyHex + "0000000000000001",
		},
		{
			name: "set options",
			op: Operation{
				Body: SetOptionsOp{
					MasterWeight: uint32Ptr(1),
					HomeDomain:   stringPtr("example.com"),
				},
			},
			xdrHex: `00000000 00000005
				00000000 00000000 00000000
				00000001 00000001
				00000000 00000000 00000000
				00000001 0000000b 6578616d 706c652e 636f6d00
				00000000`,
		},
		{
			name: "manage data delete",
			op: Operation{
				Body: ManageDataOp{DataName: "key1"},
			},
			xdrHex: "00000000 0000000a 00000004 6b657931 00000000",
		},
		{
			name: "manage data empty value",
			op: Operation{
				Body: ManageDataOp{DataName: "key1", DataValue: []byte{}},
			},
			xdrHex: "00000000 0000000a 00000004 6b657931 00000001 00000000",
		},
		{
			name: "inflation",
			op: Operation{
				Body: InflationOp{},
			},
			xdrHex: "00000000 00000009",
		},
		{
			name: "bump sequence",
			op: Operation{
				Body: BumpSequenceOp{BumpTo: 100},
			},
			xdrHex: "00000000 0000000b 0000000000000064",
		},
		{
			name: "manage sell offer",
			op: Operation{
				Body: ManageSellOfferOp{
					Selling: AssetNative{},
					Buying: AssetAlphaNum4{
						AssetCode: AssetCode4{'U', 'S', 'D'},
						Issuer:    accountId,
					},
					Amount:  5,
					Price:   Price{N: 1, D: 2},
					OfferId: 0,
				},
			},
			xdrHex: "00000000 00000003 00000000 00000001 55534400 00000000" + testAccountKeyHex +
				"0000000000000005 00000001 00000002 0000000000000000",
		},
		{
			name: "create claimable balance",
			op: Operation{
				Body: CreateClaimableBalanceOp{
					Asset:  AssetNative{},
					Amount: 100,
					Claimants: []Claimant{
						{
							Destination: accountId,
							Predicate: ClaimPredicateAnd{
								ClaimPredicateBeforeAbsoluteTime(100),
								ClaimPredicateNot{Predicate: ClaimPredicateUnconditional{}},
							},
						},
					},
				},
			},
			xdrHex: "00000000 0000000e 00000000 0000000000000064 00000001 00000000 00000000" +
				testAccountKeyHex +
				"00000001 00000002 00000004 0000000000000064 00000003 00000001 00000000",
		},
		{
			name: "revoke signer sponsorship",
			op: Operation{
				Body: RevokeSponsorshipOp{
					Target: RevokeSponsorshipSigner{
						AccountId: accountId,
						SignerKey: SignerKeyHashX{HashX: test.Bytes32(0x11)},
					},
				},
			},
			xdrHex: "00000000 00000012 00000001 00000000" + testAccountKeyHex +
				"00000002 1111111111111111111111111111111111111111111111111111111111111111",
		},
		{
			name: "end sponsoring",
			op: Operation{
				Body: EndSponsoringFutureReservesOp{},
			},
			xdrHex: "00000000 00000011",
		},
		{
			name: "invoke host function",
			op: Operation{
				Body: InvokeHostFunctionOp{
					HostFunction: invokeArgs,
					Auth: []SorobanAuthorizationEntry{
						{
							Credentials: SorobanCredentialsSourceAccount{},
							RootInvocation: SorobanAuthorizedInvocation{
								Function: SorobanAuthorizedContractFunction{Args: invokeArgs},
							},
						},
					},
				},
			},
			xdrHex: "00000000 00000018 00000000" + invokeArgsHex +
				"00000001 00000000 00000000" + invokeArgsHex + "00000000",
		},
		{
			name: "restore footprint",
			op: Operation{
				Body: RestoreFootprintOp{},
			},
			xdrHex: "00000000 0000001a 00000000",
		},
	}
	for _, testDef := range testDefs {
		expected := test.DecodeHexString(testDef.xdrHex)
		data, err := xdr.Marshal(testDef.op)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, hex.EncodeToString(expected), hex.EncodeToString(data), testDef.name)
		var decoded Operation
		require.NoError(t, xdr.Unmarshal(data, &decoded), testDef.name)
		assert.Equal(t, testDef.op, decoded, testDef.name)
	}
}

func TestOperationType(t *testing.T) {
	op := Operation{Body: InflationOp{}}
	assert.Equal(t, OperationTypeInflation, op.Type())
	assert.Equal(t, "Inflation", op.Type().String())
	assert.Equal(t, "OperationType(99)", OperationType(99).String())
	assert.Equal(t, OperationType(-1), Operation{}.Type())
}

func TestOperationMissingBody(t *testing.T) {
	_, err := xdr.Marshal(Operation{})
	assert.True(t, errors.Is(err, xdr.ErrInvalidEncoding))
}

func TestPaymentPathLimit(t *testing.T) {
	path := make([]Asset, MaxPaymentPathLength+1)
	for i := range path {
		path[i] = AssetNative{}
	}
	_, err := xdr.Marshal(Operation{
		Body: PathPaymentStrictSendOp{
			SendAsset:   AssetNative{},
			Destination: testAccountId(t).ToMuxedAccount(),
			DestAsset:   AssetNative{},
			Path:        path,
		},
	})
	assert.True(t, errors.Is(err, xdr.ErrValueTooLarge))
}

func TestClaimPredicateLimits(t *testing.T) {
	pred := ClaimPredicateOr{
		ClaimPredicateUnconditional{},
		ClaimPredicateUnconditional{},
		ClaimPredicateUnconditional{},
	}
	_, err := xdr.EncodeWith[ClaimPredicate](pred, ClaimPredicateUnion.Encode)
	assert.True(t, errors.Is(err, xdr.ErrValueTooLarge))

	// Deeply nested "not" predicates are bounded by the decoder depth
	var nested ClaimPredicate = ClaimPredicateUnconditional{}
	for range 50 {
		nested = ClaimPredicateNot{Predicate: nested}
	}
	data, err := xdr.EncodeWith(nested, ClaimPredicateUnion.Encode)
	require.NoError(t, err)
	_, err = xdr.DecodeWith(data, ClaimPredicateUnion.Decode, xdr.WithMaxDepth(16))
	assert.True(t, errors.Is(err, xdr.ErrInvalidEncoding))
	decoded, err := xdr.DecodeWith(data, ClaimPredicateUnion.Decode)
	require.NoError(t, err)
	assert.Equal(t, nested, decoded)
}

func TestSorobanTransactionData(t *testing.T) {
	data := SorobanTransactionData{
		Resources: SorobanResources{
			Footprint: LedgerFootprint{
				ReadOnly: []LedgerKey{
					LedgerKeyContractCode{Hash: test.Bytes32(0x22)},
				},
				ReadWrite: []LedgerKey{
					LedgerKeyContractData{
						Contract:   SCAddressContract{ContractId: test.Bytes32(0x33)},
						Key:        SCValLedgerKeyContractInstance{},
						Durability: ContractDataDurabilityPersistent,
					},
				},
			},
			Instructions: 1000,
			ReadBytes:    200,
			WriteBytes:   100,
		},
		ResourceFee: 5000,
	}
	expected := test.DecodeHexString(`00000000
		00000001 00000007 2222222222222222222222222222222222222222222222222222222222222222
		00000001 00000006 00000001 3333333333333333333333333333333333333333333333333333333333333333
		00000014 00000001
		000003e8 000000c8 00000064
		0000000000001388`)
	encoded, err := xdr.Marshal(data)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(expected), hex.EncodeToString(encoded))
	decoded, err := xdr.Decode[SorobanTransactionData](encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestSorobanAuthorizedInvocationDepth(t *testing.T) {
	contract := SCAddressContract{ContractId: test.Bytes32(0x01)}
	invocation := SorobanAuthorizedInvocation{
		Function: SorobanAuthorizedContractFunction{
			Args: InvokeContractArgs{ContractAddress: contract, FunctionName: "f"},
		},
	}
	for range 30 {
		invocation = SorobanAuthorizedInvocation{
			Function:       invocation.Function,
			SubInvocations: []SorobanAuthorizedInvocation{invocation},
		}
	}
	data, err := xdr.Marshal(invocation)
	require.NoError(t, err)
	_, err = xdr.Decode[SorobanAuthorizedInvocation](data, xdr.WithMaxDepth(20))
	assert.True(t, errors.Is(err, xdr.ErrInvalidEncoding))
	decoded, err := xdr.Decode[SorobanAuthorizedInvocation](data)
	require.NoError(t, err)
	assert.Equal(t, invocation, decoded)
}

func TestHostFunctionArms(t *testing.T) {
	preimage := ContractIdPreimageFromAddress{
		Address: SCAddressAccount{AccountId: testAccountId(t)},
		Salt:    test.Bytes32(0x07),
	}
	testDefs := []HostFunction{
		CreateContractArgs{
			ContractIdPreimage: preimage,
			Executable:         ContractExecutableWasm{WasmHash: test.Bytes32(0x09)},
		},
		UploadContractWasm{0x00, 0x61, 0x73, 0x6d},
		CreateContractArgsV2{
			ContractIdPreimage: ContractIdPreimageFromAsset{Asset: AssetNative{}},
			Executable:         ContractExecutableStellarAsset{},
			ConstructorArgs:    []SCVal{SCValBool(true)},
		},
	}
	for _, hf := range testDefs {
		data, err := xdr.EncodeWith(hf, HostFunctionUnion.Encode)
		require.NoError(t, err)
		decoded, err := xdr.DecodeWith(data, HostFunctionUnion.Decode)
		require.NoError(t, err)
		assert.Equal(t, hf, decoded)
	}
}
