//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package attest implements a two-party session in which a prover
// convinces a verifier that it holds a valid VDF proof (T, e, f, pi)
// without the verifier re-running the T sequential squarings itself
// (spec.md §4.6's "Verify cost is dominated by two modular
// exponentiations"). It rides on the same p2p.Conn wire framing the
// teacher's threshold-signature peer uses.
package attest

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/markkurossi/mpc/p2p"
	"github.com/markkurossi/paradoxcompress/bigint"
	"github.com/markkurossi/paradoxcompress/group"
	"github.com/markkurossi/paradoxcompress/vdf"
)

// Role distinguishes the two sides of the protocol.
type Role int

// Attestation protocol roles.
const (
	Prover Role = iota
	Verifier
)

type msgType byte

const (
	msgProof msgType = iota
	msgResult
)

var errTruncated = errors.New("attest: truncated message")

// Peer runs one side of the attestation protocol over conn.
type Peer struct {
	conn *p2p.Conn
	role Role
	v    *vdf.VDF
}

// NewPeer creates a peer bound to conn, acting in the given role, that
// verifies proofs against v's group and hash oracles.
func NewPeer(conn *p2p.Conn, role Role, v *vdf.VDF) *Peer {
	return &Peer{conn: conn, role: role, v: v}
}

// Prove sends (T, e, f, pi) to the peer's verifier and reports whether
// it accepted the proof. Prove panics if called on a Verifier peer.
func (p *Peer) Prove(t *bigint.Int, e []byte, f, pi *group.Element) (bool, error) {
	if p.role != Prover {
		panic("attest: Prove called on a non-prover peer")
	}

	msg := marshalProof(t, e, f, pi, p.v.Group())
	if err := p.conn.SendData(msg); err != nil {
		return false, fmt.Errorf("attest: %w", err)
	}
	if err := p.conn.Flush(); err != nil {
		return false, fmt.Errorf("attest: %w", err)
	}

	resp, err := p.conn.ReceiveData()
	if err != nil {
		return false, fmt.Errorf("attest: %w", err)
	}
	if len(resp) != 2 || msgType(resp[0]) != msgResult {
		return false, fmt.Errorf("attest: malformed result message")
	}
	return resp[1] == 1, nil
}

// Verify waits for a proof from the prover, checks it against this
// peer's VDF, and reports the result back over the wire before
// returning it. Verify panics if called on a Prover peer.
func (p *Peer) Verify() (bool, error) {
	if p.role != Verifier {
		panic("attest: Verify called on a non-verifier peer")
	}

	data, err := p.conn.ReceiveData()
	if err != nil {
		return false, fmt.Errorf("attest: %w", err)
	}

	t, e, f, pi, uerr := unmarshalProof(data, p.v.Group())
	ok := uerr == nil && p.v.Verify(t, e, f, pi)

	result := byte(0)
	if ok {
		result = 1
	}
	if err := p.conn.SendData([]byte{byte(msgResult), result}); err != nil {
		return false, fmt.Errorf("attest: %w", err)
	}
	if err := p.conn.Flush(); err != nil {
		return false, fmt.Errorf("attest: %w", err)
	}
	return ok, nil
}

// marshalProof encodes a proof message: 1 type byte, a 4-byte
// big-endian length of e, e itself, the 16-byte counter, then the two
// Nlen-byte group element encodings.
func marshalProof(t *bigint.Int, e []byte, f, pi *group.Element, g *group.Group) []byte {
	out := make([]byte, 0, 1+4+len(e)+vdf.CounterSize+2*g.Nlen())
	out = append(out, byte(msgProof))

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(e)))
	out = append(out, lenBuf[:]...)
	out = append(out, e...)
	out = append(out, vdf.EncodeCounter(t)...)
	out = append(out, g.Encode(f)...)
	out = append(out, g.Encode(pi)...)
	return out
}

func unmarshalProof(data []byte, g *group.Group) (t *bigint.Int, e []byte, f, pi *group.Element, err error) {
	if len(data) < 5 || msgType(data[0]) != msgProof {
		return nil, nil, nil, nil, errTruncated
	}
	eLen := int(binary.BigEndian.Uint32(data[1:5]))
	off := 5
	want := off + eLen + vdf.CounterSize + 2*g.Nlen()
	if len(data) != want {
		return nil, nil, nil, nil, errTruncated
	}

	e = data[off : off+eLen]
	off += eLen

	t, err = vdf.DecodeCounter(data[off : off+vdf.CounterSize])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	off += vdf.CounterSize

	fOK, piOK := false, false
	f, fOK = g.TryDecode(data[off : off+g.Nlen()])
	off += g.Nlen()
	pi, piOK = g.TryDecode(data[off : off+g.Nlen()])

	if !fOK || !piOK {
		return nil, nil, nil, nil, fmt.Errorf("attest: proof fields do not decode as group elements")
	}
	return t, e, f, pi, nil
}
