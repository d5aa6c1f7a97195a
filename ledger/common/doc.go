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

// Package common provides the shared wire types used by transactions and their results.
//
// # AI Navigation Guide
//
// This is the foundational package. The ledger package builds transactions and
// envelopes out of the types defined here.
//
// # Key Files by Purpose
//
// Identifiers:
//   - common.go: Hash, Uint256, SignatureHint, ExtensionPoint
//   - strkey.go: G.../M.../C... string encodings (base32 + CRC16)
//   - address.go: AccountId, MuxedAccount, SignerKey
//
// Transaction fields:
//   - asset.go: Asset, ChangeTrustAsset, TrustLineAsset, Price
//   - memo.go: Memo
//   - preconditions.go: Preconditions, TimeBounds, LedgerBounds
//   - operation.go: Operation and every operation body
//   - claimant.go: Claimant and ClaimPredicate
//
// Soroban:
//   - scval.go: SCVal, SCAddress, ContractExecutable
//   - ledger_key.go: LedgerKey (footprint entries)
//   - soroban.go: SorobanTransactionData, HostFunction, authorization entries
//
// Results:
//   - result.go: TransactionResult, OperationResult and success payloads
//
// # Common Patterns
//
// Every sum type is an interface plus a package-level xdr.Union table named
// {Type}Union. Encode and decode union-typed fields through the table, never
// through the arm directly, since the arm only writes its payload:
//
//	if err := AssetUnion.Encode(e, op.Asset); err != nil {
//	    return err
//	}
//
// Tables for recursive unions (SCVal, ClaimPredicate) are populated in init.
//
// Invalid user input (malformed strkeys, oversized memo text) is reported as an
// InvalidArgumentError matching ErrInvalidArgument.
package common
