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
	"github.com/blinklabs-io/gostellar/xdr"
)

type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeConfigSetting    LedgerEntryType = 8
	LedgerEntryTypeTtl              LedgerEntryType = 9
)

type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

var contractDataDurabilities = xdr.NewEnum(
	"ContractDataDurability",
	ContractDataDurabilityTemporary,
	ContractDataDurabilityPersistent,
)

type ConfigSettingId int32

const (
	ConfigSettingContractMaxSizeBytes          ConfigSettingId = 0
	ConfigSettingContractComputeV0             ConfigSettingId = 1
	ConfigSettingContractLedgerCostV0          ConfigSettingId = 2
	ConfigSettingContractHistoricalDataV0      ConfigSettingId = 3
	ConfigSettingContractEventsV0              ConfigSettingId = 4
	ConfigSettingContractBandwidthV0           ConfigSettingId = 5
	ConfigSettingContractCostParamsCpuInsns    ConfigSettingId = 6
	ConfigSettingContractCostParamsMemoryBytes ConfigSettingId = 7
	ConfigSettingContractDataKeySizeBytes      ConfigSettingId = 8
	ConfigSettingContractDataEntrySizeBytes    ConfigSettingId = 9
	ConfigSettingStateArchival                 ConfigSettingId = 10
	ConfigSettingContractExecutionLanes        ConfigSettingId = 11
	ConfigSettingBucketlistSizeWindow          ConfigSettingId = 12
	ConfigSettingEvictionIterator              ConfigSettingId = 13
)

var configSettingIds = xdr.NewEnum(
	"ConfigSettingID",
	ConfigSettingContractMaxSizeBytes,
	ConfigSettingContractComputeV0,
	ConfigSettingContractLedgerCostV0,
	ConfigSettingContractHistoricalDataV0,
	ConfigSettingContractEventsV0,
	ConfigSettingContractBandwidthV0,
	ConfigSettingContractCostParamsCpuInsns,
	ConfigSettingContractCostParamsMemoryBytes,
	ConfigSettingContractDataKeySizeBytes,
	ConfigSettingContractDataEntrySizeBytes,
	ConfigSettingStateArchival,
	ConfigSettingContractExecutionLanes,
	ConfigSettingBucketlistSizeWindow,
	ConfigSettingEvictionIterator,
)

// LedgerKey identifies a single ledger entry, for example in a Soroban footprint
type LedgerKey interface {
	xdr.UnionArm
}

var LedgerKeyUnion = xdr.NewUnion[LedgerKey]("LedgerKey").
	Arm(int32(LedgerEntryTypeAccount), xdr.ArmOf[LedgerKey, LedgerKeyAccount]()).
	Arm(int32(LedgerEntryTypeTrustline), xdr.ArmOf[LedgerKey, LedgerKeyTrustLine]()).
	Arm(int32(LedgerEntryTypeOffer), xdr.ArmOf[LedgerKey, LedgerKeyOffer]()).
	Arm(int32(LedgerEntryTypeData), xdr.ArmOf[LedgerKey, LedgerKeyData]()).
	Arm(int32(LedgerEntryTypeClaimableBalance), xdr.ArmOf[LedgerKey, LedgerKeyClaimableBalance]()).
	Arm(int32(LedgerEntryTypeLiquidityPool), xdr.ArmOf[LedgerKey, LedgerKeyLiquidityPool]()).
	Arm(int32(LedgerEntryTypeContractData), xdr.ArmOf[LedgerKey, LedgerKeyContractData]()).
	Arm(int32(LedgerEntryTypeContractCode), xdr.ArmOf[LedgerKey, LedgerKeyContractCode]()).
	Arm(int32(LedgerEntryTypeConfigSetting), xdr.ArmOf[LedgerKey, LedgerKeyConfigSetting]()).
	Arm(int32(LedgerEntryTypeTtl), xdr.ArmOf[LedgerKey, LedgerKeyTtl]())

type LedgerKeyAccount struct {
	AccountId AccountId
}

func (LedgerKeyAccount) Discriminant() int32 { return int32(LedgerEntryTypeAccount) }

func (k LedgerKeyAccount) EncodeXDR(e *xdr.Encoder) error {
	return k.AccountId.EncodeXDR(e)
}

func (k *LedgerKeyAccount) DecodeXDR(d *xdr.Decoder) error {
	return k.AccountId.DecodeXDR(d)
}

type LedgerKeyTrustLine struct {
	AccountId AccountId
	Asset     TrustLineAsset
}

func (LedgerKeyTrustLine) Discriminant() int32 { return int32(LedgerEntryTypeTrustline) }

func (k LedgerKeyTrustLine) EncodeXDR(e *xdr.Encoder) error {
	if err := k.AccountId.EncodeXDR(e); err != nil {
		return err
	}
	return TrustLineAssetUnion.Encode(e, k.Asset)
}

func (k *LedgerKeyTrustLine) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = k.AccountId.DecodeXDR(d); err != nil {
		return err
	}
	k.Asset, err = TrustLineAssetUnion.Decode(d)
	return err
}

type LedgerKeyOffer struct {
	SellerId AccountId
	OfferId  int64
}

func (LedgerKeyOffer) Discriminant() int32 { return int32(LedgerEntryTypeOffer) }

func (k LedgerKeyOffer) EncodeXDR(e *xdr.Encoder) error {
	if err := k.SellerId.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeInt64(k.OfferId)
}

func (k *LedgerKeyOffer) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = k.SellerId.DecodeXDR(d); err != nil {
		return err
	}
	k.OfferId, err = d.DecodeInt64()
	return err
}

type LedgerKeyData struct {
	AccountId AccountId
	DataName  string
}

func (LedgerKeyData) Discriminant() int32 { return int32(LedgerEntryTypeData) }

func (k LedgerKeyData) EncodeXDR(e *xdr.Encoder) error {
	if err := k.AccountId.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeString(k.DataName, MaxString64Size)
}

func (k *LedgerKeyData) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = k.AccountId.DecodeXDR(d); err != nil {
		return err
	}
	k.DataName, err = d.DecodeString(MaxString64Size)
	return err
}

type LedgerKeyClaimableBalance struct {
	BalanceId ClaimableBalanceId
}

func (LedgerKeyClaimableBalance) Discriminant() int32 {
	return int32(LedgerEntryTypeClaimableBalance)
}

func (k LedgerKeyClaimableBalance) EncodeXDR(e *xdr.Encoder) error {
	return k.BalanceId.EncodeXDR(e)
}

func (k *LedgerKeyClaimableBalance) DecodeXDR(d *xdr.Decoder) error {
	return k.BalanceId.DecodeXDR(d)
}

type LedgerKeyLiquidityPool struct {
	LiquidityPoolId PoolId
}

func (LedgerKeyLiquidityPool) Discriminant() int32 {
	return int32(LedgerEntryTypeLiquidityPool)
}

func (k LedgerKeyLiquidityPool) EncodeXDR(e *xdr.Encoder) error {
	return k.LiquidityPoolId.EncodeXDR(e)
}

func (k *LedgerKeyLiquidityPool) DecodeXDR(d *xdr.Decoder) error {
	return k.LiquidityPoolId.DecodeXDR(d)
}

type LedgerKeyContractData struct {
	Contract   SCAddress
	Key        SCVal
	Durability ContractDataDurability
}

func (LedgerKeyContractData) Discriminant() int32 {
	return int32(LedgerEntryTypeContractData)
}

func (k LedgerKeyContractData) EncodeXDR(e *xdr.Encoder) error {
	if err := SCAddressUnion.Encode(e, k.Contract); err != nil {
		return err
	}
	if err := SCValUnion.Encode(e, k.Key); err != nil {
		return err
	}
	return contractDataDurabilities.Encode(e, k.Durability)
}

func (k *LedgerKeyContractData) DecodeXDR(d *xdr.Decoder) (err error) {
	if k.Contract, err = SCAddressUnion.Decode(d); err != nil {
		return err
	}
	if k.Key, err = SCValUnion.Decode(d); err != nil {
		return err
	}
	k.Durability, err = contractDataDurabilities.Decode(d)
	return err
}

type LedgerKeyContractCode struct {
	Hash Hash
}

func (LedgerKeyContractCode) Discriminant() int32 {
	return int32(LedgerEntryTypeContractCode)
}

func (k LedgerKeyContractCode) EncodeXDR(e *xdr.Encoder) error {
	return k.Hash.EncodeXDR(e)
}

func (k *LedgerKeyContractCode) DecodeXDR(d *xdr.Decoder) error {
	return k.Hash.DecodeXDR(d)
}

type LedgerKeyConfigSetting struct {
	ConfigSettingId ConfigSettingId
}

func (LedgerKeyConfigSetting) Discriminant() int32 {
	return int32(LedgerEntryTypeConfigSetting)
}

func (k LedgerKeyConfigSetting) EncodeXDR(e *xdr.Encoder) error {
	return configSettingIds.Encode(e, k.ConfigSettingId)
}

func (k *LedgerKeyConfigSetting) DecodeXDR(d *xdr.Decoder) (err error) {
	k.ConfigSettingId, err = configSettingIds.Decode(d)
	return err
}

// LedgerKeyTtl identifies the TTL entry of the ledger entry whose key hashes to KeyHash
type LedgerKeyTtl struct {
	KeyHash Hash
}

func (LedgerKeyTtl) Discriminant() int32 { return int32(LedgerEntryTypeTtl) }

func (k LedgerKeyTtl) EncodeXDR(e *xdr.Encoder) error {
	return k.KeyHash.EncodeXDR(e)
}

func (k *LedgerKeyTtl) DecodeXDR(d *xdr.Decoder) error {
	return k.KeyHash.DecodeXDR(d)
}
