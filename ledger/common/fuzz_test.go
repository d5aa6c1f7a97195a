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
	"bytes"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
)

func FuzzSCVal(f *testing.F) {
	seeds := []string{
		"00000000 00000001",
		"00000010 00000001 00000002 00000003 00000001 00000001",
		"00000011 00000001 00000001 0000000f 00000001 61000000 00000000 00000000",
		"0000000a ffffffffffffffff 0000000000000005",
	}
	for _, seed := range seeds {
		f.Add(test.DecodeHexString(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		val, err := xdr.DecodeWith(data, SCValUnion.Decode)
		if err != nil {
			return
		}
		out, err := xdr.EncodeWith(val, SCValUnion.Encode)
		if err != nil {
			return
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("re-encode mismatch: got %x, wanted %x", out, data)
		}
	})
}

func FuzzOperation(f *testing.F) {
	seeds := []string{
		"00000000 00000001 00000000" + testAccountKeyHex + "00000000 0000000000989680",
		"00000000 00000009",
		"00000000 0000000b 0000000000000001",
		"00000000 00000011",
	}
	for _, seed := range seeds {
		f.Add(test.DecodeHexString(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var op Operation
		_ = xdr.Unmarshal(data, &op)
		// Should not panic - that's the test
	})
}

func FuzzTransactionResult(f *testing.F) {
	seeds := []string{
		"0000000000000064 00000000 00000001 00000000 00000001 00000000 00000000",
		"0000000000000064 fffffffb 00000000",
		"0000000000000064 ffffffff 00000001 ffffffff 00000000",
	}
	for _, seed := range seeds {
		f.Add(test.DecodeHexString(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var res TransactionResult
		_ = xdr.Unmarshal(data, &res)
		// Should not panic - that's the test
	})
}
