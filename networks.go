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

package stellar

import "github.com/blinklabs-io/gostellar/ledger/common"

// Network definitions
var (
	NetworkPublic = Network{
		Name:       "public",
		Passphrase: "Public Global Stellar Network ; September 2015",
	}
	NetworkTestnet = Network{
		Name:       "testnet",
		Passphrase: "Test SDF Network ; September 2015",
	}
	NetworkFuturenet = Network{
		Name:       "futurenet",
		Passphrase: "Test SDF Future Network ; October 2022",
	}
	NetworkStandalone = Network{
		Name:       "standalone",
		Passphrase: "Standalone Network ; February 2017",
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkPublic,
	NetworkTestnet,
	NetworkFuturenet,
	NetworkStandalone,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByPassphrase returns a predefined network by passphrase
func NetworkByPassphrase(passphrase string) Network {
	for _, network := range networks {
		if network.Passphrase == passphrase {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkById returns a predefined network by network id
func NetworkById(id common.Hash) Network {
	for _, network := range networks {
		if network.Id() == id {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a Stellar network
type Network struct {
	Name       string
	Passphrase string
}

// Id returns the network id: SHA-256 of the passphrase. It is part of every
// signature base, so signatures made for one network are not valid on another
func (n Network) Id() common.Hash {
	return common.Sha256Hash([]byte(n.Passphrase))
}

func (n Network) String() string {
	return n.Name
}
