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
	"strings"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoXdr(t *testing.T) {
	testDefs := []struct {
		memo   Memo
		xdrHex string
	}{
		{
			memo:   MemoNone{},
			xdrHex: "00000000",
		},
		{
			memo:   MemoText("hello"),
			xdrHex: "00000001 00000005 68656c6c 6f000000",
		},
		{
			memo:   MemoId(1234567890),
			xdrHex: "00000002 00000000499602d2",
		},
		{
			memo:   MemoHash(test.Bytes32(0xab)),
			xdrHex: "00000003" + strings.Repeat("ab", 32),
		},
		{
			memo:   MemoReturn(test.Bytes32(0x01)),
			xdrHex: "00000004" + strings.Repeat("01", 32),
		},
	}
	for _, testDef := range testDefs {
		expected := test.DecodeHexString(testDef.xdrHex)
		data, err := xdr.EncodeWith(testDef.memo, MemoUnion.Encode)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(expected), hex.EncodeToString(data))
		decoded, err := xdr.DecodeWith(data, MemoUnion.Decode)
		require.NoError(t, err)
		assert.Equal(t, testDef.memo, decoded)
	}
}

func TestMemoTextLimit(t *testing.T) {
	memo, err := NewMemoText(strings.Repeat("x", MaxMemoTextSize))
	require.NoError(t, err)
	assert.Len(t, string(memo), MaxMemoTextSize)

	_, err = NewMemoText(strings.Repeat("x", MaxMemoTextSize+1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	// Oversized text that bypassed the constructor is still rejected by the encoder
	_, err = xdr.EncodeWith[Memo](MemoText(strings.Repeat("x", 29)), MemoUnion.Encode)
	assert.True(t, errors.Is(err, xdr.ErrValueTooLarge))

	// and by the decoder
	data := test.DecodeHexString("00000001 0000001d" + strings.Repeat("78", 29) + "000000")
	_, err = xdr.DecodeWith(data, MemoUnion.Decode)
	assert.True(t, errors.Is(err, xdr.ErrValueTooLarge))
}

func TestMemoTextUTF8(t *testing.T) {
	memo, err := NewMemoText("héllo wörld")
	require.NoError(t, err)
	data, err := xdr.EncodeWith[Memo](memo, MemoUnion.Encode)
	require.NoError(t, err)
	decoded, err := xdr.DecodeWith(data, MemoUnion.Decode)
	require.NoError(t, err)
	assert.Equal(t, Memo(memo), decoded)

	_, err = NewMemoText("\xff\xfe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	var argErr InvalidArgumentError
	assert.True(t, errors.As(err, &argErr))

	// Text that bypassed the constructor is rejected by the encoder
	_, err = xdr.EncodeWith[Memo](MemoText("\xff\xfe"), MemoUnion.Encode)
	assert.True(t, errors.Is(err, xdr.ErrInvalidEncoding))
}

func TestPreconditionsXdr(t *testing.T) {
	minSeqNum := int64(5)
	signer, err := NewSignerKey(testAccountAddress)
	require.NoError(t, err)
	testDefs := []struct {
		cond   Preconditions
		xdrHex string
	}{
		{
			cond:   PreconditionsNone{},
			xdrHex: "00000000",
		},
		{
			cond:   TimeBounds{MinTime: 0, MaxTime: 1700000000},
			xdrHex: "00000001 0000000000000000 000000006553f100",
		},
		{
			cond: PreconditionsV2{
				TimeBounds:   &TimeBounds{MinTime: 1, MaxTime: 2},
				MinSeqNum:    &minSeqNum,
				ExtraSigners: []SignerKey{signer},
			},
			xdrHex: `00000002
				00000001 0000000000000001 0000000000000002
				00000000
				00000001 0000000000000005
				0000000000000000
				00000000
				00000001 00000000` + testAccountKeyHex,
		},
	}
	for _, testDef := range testDefs {
		expected := test.DecodeHexString(testDef.xdrHex)
		data, err := xdr.EncodeWith(testDef.cond, PreconditionsUnion.Encode)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(expected), hex.EncodeToString(data))
		decoded, err := xdr.DecodeWith(data, PreconditionsUnion.Decode)
		require.NoError(t, err)
		assert.Equal(t, testDef.cond, decoded)
	}
}

func TestPreconditionsExtraSignersLimit(t *testing.T) {
	signer, err := NewSignerKey(testAccountAddress)
	require.NoError(t, err)
	cond := PreconditionsV2{ExtraSigners: []SignerKey{signer, signer, signer}}
	_, err = xdr.EncodeWith[Preconditions](cond, PreconditionsUnion.Encode)
	assert.True(t, errors.Is(err, xdr.ErrValueTooLarge))
}
