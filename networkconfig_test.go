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

package stellar_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	stellar "github.com/blinklabs-io/gostellar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type networkConfigTestDefinition struct {
	jsonData       string
	expectedObject *stellar.NetworkConfig
}

var networkConfigTests = []networkConfigTestDefinition{
	{
		jsonData: `
{
  "networks": [
    {
      "name": "private",
      "passphrase": "Private Network ; January 2026"
    }
  ]
}
`,
		expectedObject: &stellar.NetworkConfig{
			Networks: []stellar.NetworkConfigEntry{
				{
					Name:       "private",
					Passphrase: "Private Network ; January 2026",
				},
			},
		},
	},
	{
		jsonData:       `{}`,
		expectedObject: &stellar.NetworkConfig{},
	},
}

func TestParseNetworkConfig(t *testing.T) {
	for _, test := range networkConfigTests {
		networkConfig, err := stellar.NewNetworkConfigFromReader(
			strings.NewReader(test.jsonData),
		)
		require.NoError(t, err)
		assert.Equal(t, test.expectedObject, networkConfig)
	}
}

func TestParseNetworkConfigInvalid(t *testing.T) {
	testDefs := []string{
		`{"networks": [{"passphrase": "no name"}]}`,
		`{"networks": [{"name": "nopass"}]}`,
		`{"networks": [{"name": "a", "passphrase": "x"}, {"name": "a", "passphrase": "y"}]}`,
		`{"networks": `,
	}
	for _, jsonData := range testDefs {
		_, err := stellar.NewNetworkConfigFromReader(strings.NewReader(jsonData))
		assert.Error(t, err, jsonData)
	}
}

func TestNetworkConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.json")
	require.NoError(t, os.WriteFile(path, []byte(networkConfigTests[0].jsonData), 0o600))
	networkConfig, err := stellar.NewNetworkConfigFromFile(path)
	require.NoError(t, err)

	network := networkConfig.NetworkByName("private")
	assert.Equal(t, "Private Network ; January 2026", network.Passphrase)
	assert.Equal(t, stellar.NetworkTestnet, networkConfig.NetworkByName("testnet"))
	assert.Equal(t, stellar.NetworkInvalid, networkConfig.NetworkByName("missing"))

	_, err = stellar.NewNetworkConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
