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

// Package testdata provides shared transaction envelopes for benchmarks and tests.
package testdata

import (
	"encoding/base64"
	"strings"

	"github.com/blinklabs-io/gostellar/ledger"
)

// All fixtures are signed for the test network. The payment sends 1 XLM from
// the key with seed SHA-256("alice") to the key with seed SHA-256("bob").

// Payment as a v1 envelope, signed by alice
const PaymentEnvelopeBase64 = "AAAAAgAAAADVv0o/zOcXsDiLzCdJ68FIrZlpsj9F7htgX9WHeFdqxAAAAGQAAAAAAAAAAgAAAAAAAAAAAAAAAQAAAAAAAAABAAAAAOzBtYcn8/ErMZSIGp7LneCyjOeyByMNjpMP4bznXiVsAAAAAAAAAAAAmJaAAAAAAAAAAAF4V2rEAAAAQAjs/inMsfYhQ3pxRa8YUHP7eYMk3w32IUif52Q8w7qZZHkkb3naB9z7RuFAMk++h3MCQ2NZ6wJENQC+3kMFlg0="

// The same payment as a legacy v0 envelope. The signature is unchanged
const PaymentEnvelopeV0Base64 = "AAAAANW/Sj/M5xewOIvMJ0nrwUitmWmyP0XuG2Bf1Yd4V2rEAAAAZAAAAAAAAAACAAAAAAAAAAAAAAABAAAAAAAAAAEAAAAA7MG1hyfz8SsxlIgansud4LKM57IHIw2Okw/hvOdeJWwAAAAAAAAAAACYloAAAAAAAAAAAXhXasQAAABACOz+Kcyx9iFDenFFrxhQc/t5gyTfDfYhSJ/nZDzDuplkeSRvedoH3PtG4UAyT76HcwJDY1nrAkQ1AL7eQwWWDQ=="

// The v1 payment wrapped in a fee bump paid and signed by bob
const FeeBumpEnvelopeBase64 = "AAAABQAAAADswbWHJ/PxKzGUiBqey53gsoznsgcjDY6TD+G8514lbAAAAAAAAADIAAAAAgAAAADVv0o/zOcXsDiLzCdJ68FIrZlpsj9F7htgX9WHeFdqxAAAAGQAAAAAAAAAAgAAAAAAAAAAAAAAAQAAAAAAAAABAAAAAOzBtYcn8/ErMZSIGp7LneCyjOeyByMNjpMP4bznXiVsAAAAAAAAAAAAmJaAAAAAAAAAAAF4V2rEAAAAQAjs/inMsfYhQ3pxRa8YUHP7eYMk3w32IUif52Q8w7qZZHkkb3naB9z7RuFAMk++h3MCQ2NZ6wJENQC+3kMFlg0AAAAAAAAAAedeJWwAAABAFP4ZrPIrpj02VCmwT7Flvn20GdPDEazUMrS0vspBu134MjurgK8UXog3O8wrvH+OiMmv1b0w68S87yB0xElCDQ=="

type TestEnvelope struct {
	Name         string
	EnvelopeType ledger.EnvelopeType
	Xdr          []byte
}

func GetTestEnvelopes() []TestEnvelope {
	return []TestEnvelope{
		{Name: "V0", EnvelopeType: ledger.EnvelopeTypeTxV0, Xdr: MustDecodeBase64(PaymentEnvelopeV0Base64)},
		{Name: "V1", EnvelopeType: ledger.EnvelopeTypeTx, Xdr: MustDecodeBase64(PaymentEnvelopeBase64)},
		{Name: "FeeBump", EnvelopeType: ledger.EnvelopeTypeTxFeeBump, Xdr: MustDecodeBase64(FeeBumpEnvelopeBase64)},
	}
}

// MustDecodeBase64 decodes a base64 string to bytes, panicking on error.
func MustDecodeBase64(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return b
}
