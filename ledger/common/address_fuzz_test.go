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

import "testing"

func FuzzNewMuxedAccount(f *testing.F) {
	f.Add(
		"GDK36SR7ZTTRPMBYRPGCOSPLYFEK3GLJWI7UL3Q3MBP5LB3YK5VMI6ET",
	) // Valid account
	f.Add(
		"SAV5QBWJP4HABLY2D7BTFD5HMOUSNFZDZDNY7LCPSOXXDWYYNVXJAO6K",
	) // Secret seed, wrong version
	f.Add(
		"invalid_address_string",
	) // Invalid string

	f.Fuzz(func(t *testing.T, addr string) {
		account, err := NewMuxedAccount(addr)
		if err != nil {
			return
		}
		// Accepted strkeys are canonical, so they encode back unchanged
		if account.Address() != addr {
			t.Fatalf("address %q re-encoded as %q", addr, account.Address())
		}
	})
}

func FuzzDecodeStrkey(f *testing.F) {
	f.Add(
		"CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC",
	) // Valid contract
	f.Add("C")

	f.Fuzz(func(t *testing.T, s string) {
		payload, err := DecodeStrkey(StrkeyVersionContract, s)
		if err != nil {
			return
		}
		if EncodeStrkey(StrkeyVersionContract, payload) != s {
			t.Fatalf("strkey %q does not round trip", s)
		}
	})
}

func FuzzNewSignerKey(f *testing.F) {
	f.Add(
		"GDK36SR7ZTTRPMBYRPGCOSPLYFEK3GLJWI7UL3Q3MBP5LB3YK5VMI6ET",
	)
	f.Add("")

	f.Fuzz(func(t *testing.T, addr string) {
		// Should not panic on any input - that's the test
		_, _ = NewSignerKey(addr)
	})
}
