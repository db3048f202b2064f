package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lunfardo314/easytx/ledger"
)

// Config of the tool:
//
//	[ledger]
//	genesis_hash = "<hex>"
//	discrimination = "production" | "test"
//	address_prefix = "ca"
//
//	[fee]
//	constant = 155381
//	coefficient = 43946
//	certificate = 0
type Config struct {
	Ledger LedgerConfig `toml:"ledger"`
	Fee    FeeConfig    `toml:"fee"`
}

type LedgerConfig struct {
	GenesisHash    string `toml:"genesis_hash"`
	Discrimination string `toml:"discrimination"`
	AddressPrefix  string `toml:"address_prefix"`
}

type FeeConfig struct {
	Constant    uint64 `toml:"constant"`
	Coefficient uint64 `toml:"coefficient"`
	Certificate uint64 `toml:"certificate"`
}

func DefaultConfig() *Config {
	return &Config{
		Ledger: LedgerConfig{
			GenesisHash:    ledger.HashBytes([]byte("genesis")).String(),
			Discrimination: ledger.DiscriminationTest.String(),
			AddressPrefix:  ledger.AddressPrefixTest,
		},
		Fee: FeeConfig{
			Constant:    10,
			Coefficient: 1,
			Certificate: 100,
		},
	}
}

// LoadConfig reads the file over the defaults. Empty path means defaults. Unknown keys are an error
func LoadConfig(path string) (*Config, error) {
	ret := DefaultConfig()
	if path == "" {
		return ret, nil
	}
	md, err := toml.DecodeFile(path, ret)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err = ret.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return ret, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
}

func (c *Config) validate() error {
	if _, err := c.Genesis(); err != nil {
		return err
	}
	if _, err := c.Discrimination(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Genesis() (ledger.Hash, error) {
	return ledger.HashFromHex(c.Ledger.GenesisHash)
}

func (c *Config) Discrimination() (ledger.Discrimination, error) {
	return ledger.DiscriminationFromString(c.Ledger.Discrimination)
}

func (c *Config) FeeAlgorithm() ledger.FeeAlgorithm {
	return ledger.NewLinearFee(c.Fee.Constant, c.Fee.Coefficient, c.Fee.Certificate)
}

// FormatAddress renders the address with the configured prefix
func (c *Config) FormatAddress(a ledger.Address) string {
	if c.Ledger.AddressPrefix == "" {
		return a.String()
	}
	return a.StringWithPrefix(c.Ledger.AddressPrefix)
}
