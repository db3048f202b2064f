// Package certificate contains concrete non-transfer ledger actions which travel
// as the opaque certificate payload of a transaction
package certificate

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/lunfardo314/easyfl"
	"github.com/lunfardo314/easytx/ledger"
)

const (
	KindStakeDelegation ledger.CertificateKind = 1
	KindPoolRetirement  ledger.CertificateKind = 2
)

type (
	// StakeDelegation delegates the stake of the account to the pool
	StakeDelegation struct {
		_       struct{} `cbor:",toarray"`
		Account []byte
		PoolID  []byte
	}

	// PoolRetirement announces retirement of the pool at the given time
	PoolRetirement struct {
		_              struct{} `cbor:",toarray"`
		PoolID         []byte
		RetirementTime uint64
	}
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	easyfl.AssertNoError(err)
}

func NewStakeDelegation(account ledger.AccountIdentifier, pool ledger.Hash) *StakeDelegation {
	return &StakeDelegation{
		Account: append([]byte(nil), account[:]...),
		PoolID:  append([]byte(nil), pool[:]...),
	}
}

func NewPoolRetirement(pool ledger.Hash, retirementTime uint64) *PoolRetirement {
	return &PoolRetirement{
		PoolID:         append([]byte(nil), pool[:]...),
		RetirementTime: retirementTime,
	}
}

func (d *StakeDelegation) Certificate() (ledger.Certificate, error) {
	return encode(KindStakeDelegation, d)
}

func (d *StakeDelegation) AccountID() (ledger.AccountIdentifier, error) {
	pk, err := ledger.PublicKeyFromBytes(d.Account)
	return ledger.AccountIdentifier(pk), err
}

func (d *StakeDelegation) Pool() (ledger.Hash, error) {
	return ledger.HashFromBytes(d.PoolID)
}

func (r *PoolRetirement) Certificate() (ledger.Certificate, error) {
	return encode(KindPoolRetirement, r)
}

func (r *PoolRetirement) Pool() (ledger.Hash, error) {
	return ledger.HashFromBytes(r.PoolID)
}

func encode(kind ledger.CertificateKind, v any) (ledger.Certificate, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return ledger.Certificate{}, fmt.Errorf("certificate: %w", err)
	}
	return ledger.NewCertificate(kind, data), nil
}

// Decode returns *StakeDelegation or *PoolRetirement
func Decode(c ledger.Certificate) (any, error) {
	switch c.Kind {
	case KindStakeDelegation:
		ret := &StakeDelegation{}
		if err := cbor.Unmarshal(c.Payload, ret); err != nil {
			return nil, ledger.Errorf(ledger.ERR_DECODE, "stake delegation: %v", err)
		}
		if _, err := ret.AccountID(); err != nil {
			return nil, err
		}
		if _, err := ret.Pool(); err != nil {
			return nil, err
		}
		return ret, nil
	case KindPoolRetirement:
		ret := &PoolRetirement{}
		if err := cbor.Unmarshal(c.Payload, ret); err != nil {
			return nil, ledger.Errorf(ledger.ERR_DECODE, "pool retirement: %v", err)
		}
		if _, err := ret.Pool(); err != nil {
			return nil, err
		}
		return ret, nil
	}
	return nil, ledger.Errorf(ledger.ERR_DECODE, "unknown certificate kind %d", c.Kind)
}
