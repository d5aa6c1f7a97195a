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

	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetXdr(t *testing.T) {
	usd, err := NewCreditAsset("USD", testAccountAddress)
	require.NoError(t, err)
	longCode, err := NewCreditAsset("LONGASSET", testAccountAddress)
	require.NoError(t, err)
	testDefs := []struct {
		asset  Asset
		xdrHex string
		str    string
	}{
		{
			asset:  AssetNative{},
			xdrHex: "00000000",
			str:    "native",
		},
		{
			asset:  usd,
			xdrHex: "00000001" + "55534400" + "00000000" + testAccountKeyHex,
			str:    "USD:" + testAccountAddress,
		},
		{
			asset:  longCode,
			xdrHex: "00000002" + "4c4f4e474153534554000000" + "00000000" + testAccountKeyHex,
			str:    "LONGASSET:" + testAccountAddress,
		},
	}
	for _, testDef := range testDefs {
		data, err := xdr.EncodeWith(testDef.asset, AssetUnion.Encode)
		require.NoError(t, err)
		assert.Equal(t, testDef.xdrHex, hex.EncodeToString(data))
		assert.Equal(t, testDef.str, testDef.asset.String())
		decoded, err := xdr.DecodeWith(data, AssetUnion.Decode)
		require.NoError(t, err)
		assert.Equal(t, testDef.asset, decoded)
	}
}

func TestNewCreditAssetInvalid(t *testing.T) {
	for _, code := range []string{"", "THIRTEENCHARS", "US-D"} {
		_, err := NewCreditAsset(code, testAccountAddress)
		assert.True(t, errors.Is(err, ErrInvalidArgument), code)
	}
	_, err := NewCreditAsset("USD", "GBAD")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestAssetUnionRejectsPoolShare(t *testing.T) {
	// Pool shares are valid trustline assets but not plain assets
	data := make([]byte, 36)
	data[3] = byte(AssetTypePoolShare)
	_, err := xdr.DecodeWith(data, AssetUnion.Decode)
	assert.True(t, errors.Is(err, xdr.ErrUnknownDiscriminant))
	decoded, err := xdr.DecodeWith(data, TrustLineAssetUnion.Decode)
	require.NoError(t, err)
	assert.IsType(t, TrustLineAssetPoolShare{}, decoded)
}

func TestLiquidityPoolId(t *testing.T) {
	usd, err := NewCreditAsset("USD", testAccountAddress)
	require.NoError(t, err)
	params := LiquidityPoolParameters{
		AssetA: AssetNative{},
		AssetB: usd,
		Fee:    LiquidityPoolFeeV18,
	}
	poolId, err := params.PoolId()
	require.NoError(t, err)
	assert.Equal(
		t,
		"5438f68b36acc4aa8974118896202f1962d262436217a494fa65fcb70f101c5f",
		poolId.String(),
	)
	data, err := xdr.EncodeWith[ChangeTrustAsset](
		ChangeTrustAssetPoolShare{LiquidityPool: params},
		ChangeTrustAssetUnion.Encode,
	)
	require.NoError(t, err)
	decoded, err := xdr.DecodeWith(data, ChangeTrustAssetUnion.Decode)
	require.NoError(t, err)
	assert.Equal(t, ChangeTrustAssetPoolShare{LiquidityPool: params}, decoded)
}
