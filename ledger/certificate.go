package ledger

import (
	"bytes"
	"fmt"
)

type CertificateKind byte

// Certificate is an opaque non-transfer ledger action. The engine only looks at its
// presence, the payload is encoded and interpreted elsewhere
type Certificate struct {
	Kind    CertificateKind
	Payload []byte
}

func NewCertificate(kind CertificateKind, payload []byte) Certificate {
	return Certificate{Kind: kind, Payload: append([]byte(nil), payload...)}
}

func (c Certificate) Bytes() []byte {
	return append([]byte{byte(c.Kind)}, c.Payload...)
}

func CertificateFromBytes(data []byte) (Certificate, error) {
	if len(data) == 0 {
		return Certificate{}, Errorf(ERR_DECODE, "certificate: empty data")
	}
	return NewCertificate(CertificateKind(data[0]), data[1:]), nil
}

func (c Certificate) Equal(other Certificate) bool {
	return c.Kind == other.Kind && bytes.Equal(c.Payload, other.Payload)
}

func (c Certificate) String() string {
	return fmt.Sprintf("certificate kind %d, %d bytes", c.Kind, len(c.Payload))
}

// Extra is the closed choice of the extra payload of a transaction:
// NoExtra or CertificateExtra. Consumers switch on the concrete type
type Extra interface {
	extra()
}

type (
	NoExtra struct{}

	CertificateExtra struct {
		Certificate Certificate
	}
)

func (NoExtra) extra()          {}
func (CertificateExtra) extra() {}

func extraBytes(e Extra) []byte {
	switch e := e.(type) {
	case NoExtra:
		return nil
	case CertificateExtra:
		return e.Certificate.Bytes()
	}
	panic(fmt.Sprintf("extraBytes: unknown extra %T", e))
}

// extraFromBytes: empty data means no extra, certificate bytes are never empty
func extraFromBytes(data []byte) (Extra, error) {
	if len(data) == 0 {
		return NoExtra{}, nil
	}
	cert, err := CertificateFromBytes(data)
	if err != nil {
		return nil, err
	}
	return CertificateExtra{Certificate: cert}, nil
}
