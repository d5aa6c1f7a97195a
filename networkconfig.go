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

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// NetworkConfig lists network definitions beyond the predefined ones, such
// as private networks
type NetworkConfig struct {
	Networks []NetworkConfigEntry `json:"networks"`
}

type NetworkConfigEntry struct {
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
}

func NewNetworkConfigFromFile(path string) (*NetworkConfig, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dataFile.Close()
	return NewNetworkConfigFromReader(dataFile)
}

func NewNetworkConfigFromReader(r io.Reader) (*NetworkConfig, error) {
	c := &NetworkConfig{}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *NetworkConfig) validate() error {
	seen := make(map[string]bool, len(c.Networks))
	var errs []error
	for i, entry := range c.Networks {
		switch {
		case entry.Name == "":
			errs = append(errs, fmt.Errorf("network %d: missing name", i))
		case entry.Passphrase == "":
			errs = append(errs, fmt.Errorf("network %q: missing passphrase", entry.Name))
		case seen[entry.Name]:
			errs = append(errs, fmt.Errorf("network %q: duplicate name", entry.Name))
		}
		seen[entry.Name] = true
	}
	return errors.Join(errs...)
}

// NetworkByName returns the configured network with the given name, falling
// back to the predefined networks
func (c *NetworkConfig) NetworkByName(name string) Network {
	for _, entry := range c.Networks {
		if entry.Name == name {
			return Network{
				Name:       entry.Name,
				Passphrase: entry.Passphrase,
			}
		}
	}
	return NetworkByName(name)
}
