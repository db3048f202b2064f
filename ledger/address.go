package ledger

import (
	"fmt"

	"github.com/lunfardo314/easyfl"
)

type (
	Discrimination byte
	AddressKind    byte

	// Address is the discriminated destination of an output.
	// Single and Group addresses are UTXO-style, Account addresses are account-style
	Address struct {
		discrimination Discrimination
		kind           AddressKind
		spendingKey    PublicKey
		accountKey     PublicKey
	}
)

const (
	DiscriminationProduction Discrimination = iota
	DiscriminationTest
)

const (
	AddressSingle  AddressKind = 0x3
	AddressGroup   AddressKind = 0x4
	AddressAccount AddressKind = 0x5
)

const (
	AddressPrefixProduction = "ca"
	AddressPrefixTest       = "ta"

	addressTestBit  = byte(0x80)
	addressKindMask = byte(0x7f)
)

func (d Discrimination) String() string {
	if d == DiscriminationTest {
		return "test"
	}
	return "production"
}

func DiscriminationFromString(s string) (Discrimination, error) {
	switch s {
	case "production", "":
		return DiscriminationProduction, nil
	case "test":
		return DiscriminationTest, nil
	}
	return 0, Errorf(ERR_DECODE, "unknown discrimination '%s'", s)
}

func (k AddressKind) String() string {
	switch k {
	case AddressSingle:
		return "single"
	case AddressGroup:
		return "group"
	case AddressAccount:
		return "account"
	}
	return fmt.Sprintf("AddressKind(%d)", byte(k))
}

func (k AddressKind) size() int {
	switch k {
	case AddressSingle, AddressAccount:
		return 1 + PublicKeySize
	case AddressGroup:
		return 1 + 2*PublicKeySize
	}
	return 0
}

func NewSingleAddress(d Discrimination, spendingKey PublicKey) Address {
	return Address{discrimination: d, kind: AddressSingle, spendingKey: spendingKey}
}

func NewGroupAddress(d Discrimination, spendingKey, accountKey PublicKey) Address {
	return Address{discrimination: d, kind: AddressGroup, spendingKey: spendingKey, accountKey: accountKey}
}

func NewAccountAddress(d Discrimination, accountKey PublicKey) Address {
	return Address{discrimination: d, kind: AddressAccount, accountKey: accountKey}
}

func AddressFromBytes(data []byte) (Address, error) {
	if len(data) == 0 {
		return Address{}, Errorf(ERR_DECODE, "address: empty data")
	}
	ret := Address{kind: AddressKind(data[0] & addressKindMask)}
	if data[0]&addressTestBit != 0 {
		ret.discrimination = DiscriminationTest
	}
	sz := ret.kind.size()
	if sz == 0 {
		return Address{}, Errorf(ERR_DECODE, "address: unknown kind 0x%02x", byte(ret.kind))
	}
	if len(data) != sz {
		return Address{}, Errorf(ERR_DECODE, "address: wrong length %d for %s address", len(data), ret.kind)
	}
	switch ret.kind {
	case AddressSingle:
		copy(ret.spendingKey[:], data[1:])
	case AddressGroup:
		copy(ret.spendingKey[:], data[1:1+PublicKeySize])
		copy(ret.accountKey[:], data[1+PublicKeySize:])
	case AddressAccount:
		copy(ret.accountKey[:], data[1:])
	}
	return ret, nil
}

// AddressFromString decodes the bech32 readable form. The prefix is not enforced
func AddressFromString(s string) (Address, error) {
	_, data, err := decodeBech32(s)
	if err != nil {
		return Address{}, err
	}
	return AddressFromBytes(data)
}

func (a Address) Kind() AddressKind {
	return a.kind
}

func (a Address) Discrimination() Discrimination {
	return a.discrimination
}

func (a Address) IsAccount() bool {
	return a.kind == AddressAccount
}

// SpendingKey is defined for single and group addresses
func (a Address) SpendingKey() (PublicKey, bool) {
	return a.spendingKey, a.kind == AddressSingle || a.kind == AddressGroup
}

// AccountKey is defined for account and group addresses
func (a Address) AccountKey() (PublicKey, bool) {
	return a.accountKey, a.kind == AddressAccount || a.kind == AddressGroup
}

func (a Address) Bytes() []byte {
	header := byte(a.kind)
	if a.discrimination == DiscriminationTest {
		header |= addressTestBit
	}
	ret := make([]byte, 0, a.kind.size())
	ret = append(ret, header)
	switch a.kind {
	case AddressSingle:
		ret = append(ret, a.spendingKey[:]...)
	case AddressGroup:
		ret = append(ret, a.spendingKey[:]...)
		ret = append(ret, a.accountKey[:]...)
	case AddressAccount:
		ret = append(ret, a.accountKey[:]...)
	default:
		easyfl.Assert(false, "Address.Bytes: invalid address kind")
	}
	return ret
}

func (a Address) StringWithPrefix(prefix string) string {
	ret, err := encodeBech32(prefix, a.Bytes())
	easyfl.AssertNoError(err)
	return ret
}

func (a Address) String() string {
	if a.discrimination == DiscriminationTest {
		return a.StringWithPrefix(AddressPrefixTest)
	}
	return a.StringWithPrefix(AddressPrefixProduction)
}
