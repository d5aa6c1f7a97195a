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

// Package stellar defines the networks a transaction can be signed for.
//
// Transactions are built and signed in the ledger package, and the wire
// codec lives in the xdr package. A signature is only valid on the network
// whose id was part of the signed payload:
//
//	pending, err := ledger.NewTransactionBuilder(source, seqNum).
//		AddOperation(op).
//		Build()
//	if err != nil {
//		return err
//	}
//	if err := pending.Sign(stellar.NetworkTestnet.Id(), signer); err != nil {
//		return err
//	}
//	env, err := pending.ToEnvelope()
package stellar
