package ledger

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/hex"

	"filippo.io/edwards25519"
	"github.com/lunfardo314/easyfl"
)

const (
	SecretKeySize         = ed25519.SeedSize
	ExtendedSecretKeySize = 64
	PublicKeySize         = ed25519.PublicKeySize
	SignatureSize         = ed25519.SignatureSize
)

type (
	PublicKey [PublicKeySize]byte
	Signature [SignatureSize]byte

	KeyKind byte

	// PrivateKey is either a normal ed25519 key (32 bytes seed) or an extended
	// ed25519 key (64 bytes: clamped scalar kL followed by nonce prefix kR).
	// Both produce signatures verifiable with the standard ed25519 verification
	PrivateKey struct {
		kind     KeyKind
		normal   ed25519.PrivateKey
		extended [ExtendedSecretKeySize]byte
		public   PublicKey
	}
)

const (
	KeyNormal KeyKind = iota
	KeyExtended
)

func (k KeyKind) String() string {
	if k == KeyExtended {
		return "extended"
	}
	return "normal"
}

func NewPrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SecretKeySize {
		return nil, Errorf(ERR_DECODE, "secret key: wrong length %d", len(seed))
	}
	ret := &PrivateKey{
		kind:   KeyNormal,
		normal: ed25519.NewKeyFromSeed(seed),
	}
	copy(ret.public[:], ret.normal.Public().(ed25519.PublicKey))
	return ret, nil
}

// NewExtendedPrivateKeyFromSeed expands seed with SHA-512 and clamps the scalar half
func NewExtendedPrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SecretKeySize {
		return nil, Errorf(ERR_DECODE, "secret key seed: wrong length %d", len(seed))
	}
	digest := sha512.Sum512(seed)
	digest[0] &= 0b1111_1000
	digest[31] &= 0b0011_1111
	digest[31] |= 0b0100_0000
	return NewExtendedPrivateKey(digest[:])
}

func NewExtendedPrivateKey(data []byte) (*PrivateKey, error) {
	if len(data) != ExtendedSecretKeySize {
		return nil, Errorf(ERR_DECODE, "extended secret key: wrong length %d", len(data))
	}
	if data[0]&0b0000_0111 != 0 || data[31]&0b1100_0000 != 0b0100_0000 {
		return nil, Errorf(ERR_DECODE, "extended secret key: scalar is not clamped")
	}
	ret := &PrivateKey{kind: KeyExtended}
	copy(ret.extended[:], data)
	copy(ret.public[:], new(edwards25519.Point).ScalarBaseMult(ret.scalar()).Bytes())
	return ret, nil
}

// PrivateKeyFromBech32 recognizes normal and extended secret keys by the prefix
func PrivateKeyFromBech32(s string) (*PrivateKey, error) {
	hrp, data, err := decodeBech32(s)
	if err != nil {
		return nil, err
	}
	switch hrp {
	case Bech32PrefixSecretKey:
		return NewPrivateKeyFromSeed(data)
	case Bech32PrefixExtendedSecretKey:
		return NewExtendedPrivateKey(data)
	}
	return nil, Errorf(ERR_DECODE, "invalid secret key prefix '%s'", hrp)
}

func (k *PrivateKey) Kind() KeyKind {
	return k.kind
}

func (k *PrivateKey) PublicKey() PublicKey {
	return k.public
}

func (k *PrivateKey) Bytes() []byte {
	if k.kind == KeyExtended {
		return append([]byte(nil), k.extended[:]...)
	}
	return append([]byte(nil), k.normal.Seed()...)
}

func (k *PrivateKey) Bech32() string {
	hrp := Bech32PrefixSecretKey
	if k.kind == KeyExtended {
		hrp = Bech32PrefixExtendedSecretKey
	}
	ret, err := encodeBech32(hrp, k.Bytes())
	easyfl.AssertNoError(err)
	return ret
}

func (k *PrivateKey) Sign(msg []byte) (ret Signature) {
	if k.kind == KeyNormal {
		copy(ret[:], ed25519.Sign(k.normal, msg))
		return
	}
	// RFC 8032 signing with the scalar and the nonce prefix taken as is
	h := sha512.New()
	h.Write(k.extended[32:])
	h.Write(msg)
	r, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	easyfl.AssertNoError(err)
	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(R)
	h.Write(k.public[:])
	h.Write(msg)
	c, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	easyfl.AssertNoError(err)

	S := edwards25519.NewScalar().MultiplyAdd(c, k.scalar(), r)
	copy(ret[:32], R)
	copy(ret[32:], S.Bytes())
	return
}

// scalar kL reduced mod l. kL*B == (kL mod l)*B
func (k *PrivateKey) scalar() *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:32], k.extended[:32])
	ret, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	easyfl.AssertNoError(err)
	return ret
}

func PublicKeyFromBytes(data []byte) (ret PublicKey, err error) {
	if len(data) != PublicKeySize {
		err = Errorf(ERR_DECODE, "public key: wrong length %d", len(data))
		return
	}
	copy(ret[:], data)
	return
}

func PublicKeyFromBech32(s string) (PublicKey, error) {
	hrp, data, err := decodeBech32(s)
	if err != nil {
		return PublicKey{}, err
	}
	if hrp != Bech32PrefixPublicKey {
		return PublicKey{}, Errorf(ERR_DECODE, "invalid public key prefix '%s'", hrp)
	}
	return PublicKeyFromBytes(data)
}

func (pk PublicKey) Verify(msg []byte, sig Signature) bool {
	return ed25519.Verify(pk[:], msg, sig[:])
}

func (pk PublicKey) Bytes() []byte {
	return pk[:]
}

func (pk PublicKey) Bech32() string {
	ret, err := encodeBech32(Bech32PrefixPublicKey, pk[:])
	easyfl.AssertNoError(err)
	return ret
}

func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

func SignatureFromBytes(data []byte) (ret Signature, err error) {
	if len(data) != SignatureSize {
		err = Errorf(ERR_DECODE, "signature: wrong length %d", len(data))
		return
	}
	copy(ret[:], data)
	return
}
