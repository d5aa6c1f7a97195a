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

const (
	testAccountAddress = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"
	testAccountKeyHex  = "3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a"
)

func testAccountId(t *testing.T) AccountId {
	t.Helper()
	accountId, err := NewAccountId(testAccountAddress)
	require.NoError(t, err)
	return accountId
}

func TestStrkeyRoundTrip(t *testing.T) {
	testDefs := []struct {
		version    StrkeyVersion
		payloadHex string
		strkey     string
	}{
		{
			version:    StrkeyVersionAccount,
			payloadHex: "0000000000000000000000000000000000000000000000000000000000000000",
			strkey:     "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF",
		},
		{
			version:    StrkeyVersionAccount,
			payloadHex: testAccountKeyHex,
			strkey:     testAccountAddress,
		},
		{
			version:    StrkeyVersionMuxedAccount,
			payloadHex: testAccountKeyHex + "0000000000000000",
			strkey:     "MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAAAAAAAACJUQ",
		},
		{
			version:    StrkeyVersionContract,
			payloadHex: "363eaa3867841fbad0f4ed88c779e4fe66e56a2470dc98c0ec9c073d05c7b103",
			strkey:     "CA3D5KRYM6CB7OWQ6TWYRR3Z4T7GNZLKERYNZGGA5SOAOPIFY6YQGAXE",
		},
	}
	for _, testDef := range testDefs {
		payload := test.DecodeHexString(testDef.payloadHex)
		assert.Equal(t, testDef.strkey, EncodeStrkey(testDef.version, payload))
		decoded, err := DecodeStrkey(testDef.version, testDef.strkey)
		require.NoError(t, err, testDef.strkey)
		assert.Equal(t, testDef.payloadHex, hex.EncodeToString(decoded))
		version, err := StrkeyVersionOf(testDef.strkey)
		require.NoError(t, err)
		assert.Equal(t, testDef.version, version)
	}
}

func TestStrkeyChecksum(t *testing.T) {
	// CRC-16/XMODEM check value
	assert.Equal(t, uint16(0x31c3), strkeyChecksum([]byte("123456789")))
	assert.Equal(t, uint16(0), strkeyChecksum(nil))
}

func TestStrkeyInvalid(t *testing.T) {
	testDefs := []struct {
		name    string
		version StrkeyVersion
		strkey  string
	}{
		{
			name:    "bad checksum",
			version: StrkeyVersionAccount,
			strkey:  "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGA",
		},
		{
			name:    "wrong version",
			version: StrkeyVersionSeed,
			strkey:  testAccountAddress,
		},
		{
			name:    "not base32",
			version: StrkeyVersionAccount,
			strkey:  "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSG1",
		},
		{
			name:    "empty",
			version: StrkeyVersionAccount,
			strkey:  "",
		},
		{
			name:    "lowercase",
			version: StrkeyVersionAccount,
			strkey:  "ga7qynf7sowq3glr2bgmzehxavirza4kvwltjjfc7mgxua74p7ujvsgz",
		},
	}
	for _, testDef := range testDefs {
		_, err := DecodeStrkey(testDef.version, testDef.strkey)
		require.Error(t, err, testDef.name)
		assert.True(t, errors.Is(err, ErrInvalidArgument), testDef.name)
		var argErr InvalidArgumentError
		assert.True(t, errors.As(err, &argErr), testDef.name)
	}
}

func TestAccountIdXdr(t *testing.T) {
	accountId := testAccountId(t)
	assert.Equal(t, testAccountAddress, accountId.String())
	data, err := xdr.Marshal(accountId)
	require.NoError(t, err)
	assert.Equal(t, "00000000"+testAccountKeyHex, hex.EncodeToString(data))
	var decoded AccountId
	require.NoError(t, xdr.Unmarshal(data, &decoded))
	assert.Equal(t, accountId, decoded)
	// Only ed25519 public keys exist
	bad := append(test.DecodeHexString("00000001"), accountId.Ed25519[:]...)
	err = xdr.Unmarshal(bad, &decoded)
	assert.True(t, errors.Is(err, xdr.ErrUnknownDiscriminant))
}

func TestMuxedAccount(t *testing.T) {
	testDefs := []struct {
		address string
		xdrHex  string
	}{
		{
			address: testAccountAddress,
			xdrHex:  "00000000" + testAccountKeyHex,
		},
		{
			address: "MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVAAAAAAAAAAAAAJLK",
			xdrHex:  "00000100" + "8000000000000000" + testAccountKeyHex,
		},
	}
	for _, testDef := range testDefs {
		account, err := NewMuxedAccount(testDef.address)
		require.NoError(t, err)
		assert.Equal(t, testDef.address, account.Address())
		assert.Equal(t, testAccountAddress, account.AccountId().Address())
		data, err := xdr.EncodeWith(account, MuxedAccountUnion.Encode)
		require.NoError(t, err)
		assert.Equal(t, testDef.xdrHex, hex.EncodeToString(data))
		decoded, err := xdr.DecodeWith(data, MuxedAccountUnion.Decode)
		require.NoError(t, err)
		assert.Equal(t, account, decoded)
	}
	muxed, err := NewMuxedAccount(testDefs[1].address)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8000000000000000), muxed.(MuxedAccountMed25519).Id)
	_, err = NewMuxedAccount("CA3D5KRYM6CB7OWQ6TWYRR3Z4T7GNZLKERYNZGGA5SOAOPIFY6YQGAXE")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestSignerKey(t *testing.T) {
	testDefs := []struct {
		address string
		xdrHex  string
	}{
		{
			address: testAccountAddress,
			xdrHex:  "00000000" + testAccountKeyHex,
		},
		{
			address: "PA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAQACAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUPB6IBZGM",
			xdrHex: "00000003" + testAccountKeyHex +
				"00000020" + "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20",
		},
		{
			address: "PA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAOQCAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUAAAAFGBU",
			xdrHex: "00000003" + testAccountKeyHex +
				"0000001d" + "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d000000",
		},
	}
	for _, testDef := range testDefs {
		key, err := NewSignerKey(testDef.address)
		require.NoError(t, err, testDef.address)
		assert.Equal(t, testDef.address, key.Address())
		data, err := xdr.EncodeWith(key, SignerKeyUnion.Encode)
		require.NoError(t, err)
		assert.Equal(t, testDef.xdrHex, hex.EncodeToString(data))
		decoded, err := xdr.DecodeWith(data, SignerKeyUnion.Decode)
		require.NoError(t, err)
		assert.Equal(t, key, decoded)
	}
}

func TestSignatureHint(t *testing.T) {
	accountId := testAccountId(t)
	assert.Equal(t, "fc7fe89a", accountId.Ed25519.Hint().String())
}
