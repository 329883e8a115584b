//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package codec implements the paradoxical compression state machine
// of spec.md §4.7: Compress either shrinks via DEFLATE or advances a
// VDF-proved counter embedded in a fixed-size trailing header;
// Decompress reverses either step.
package codec

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"

	"github.com/markkurossi/paradoxcompress/bigint"
	"github.com/markkurossi/paradoxcompress/group"
	"github.com/markkurossi/paradoxcompress/vdf"
)

// Codec binds a fixed modulus N to the Compress/Decompress state
// machine. A Codec is safe for concurrent use across disjoint inputs;
// each call allocates its own sponge state internally (spec.md §5).
type Codec struct {
	g         *group.Group
	v         *vdf.VDF
	headerLen int

	// MaxCounter, if non-nil, caps the T value Decompress will accept
	// before performing the corresponding number of squarings. A
	// maliciously large T embedded in an artifact would otherwise tie
	// up Decompress for an attacker-chosen amount of CPU time
	// (spec.md §5). Nil means no cap, matching the reference codec.
	MaxCounter *bigint.Int
}

// New constructs a Codec over the given modulus N, validating it per
// the group's rules (spec.md §3: positive, odd, at least 1024 bits).
func New(n *bigint.Int) (*Codec, error) {
	g, err := group.New(n)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return &Codec{
		g:         g,
		v:         vdf.New(g),
		headerLen: vdf.CounterSize + 2*g.Nlen(),
	}, nil
}

// HeaderLen returns H_LEN = 16 + 2*Nlen for this codec's modulus.
func (c *Codec) HeaderLen() int {
	return c.headerLen
}

// Group returns the underlying group, e.g. for callers (such as
// package attest) that need to decode/verify a header independently.
func (c *Codec) Group() *group.Group {
	return c.g
}

// VDF returns the underlying VDF instance.
func (c *Codec) VDF() *vdf.VDF {
	return c.v
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: DEFLATE decode: %w", err)
	}
	return out, nil
}

// header is the parsed trailing H_LEN bytes of a candidate artifact.
type header struct {
	t *bigint.Int
	f *group.Element
	p *group.Element
}

// parseHeader splits the last headerLen bytes of data into (T, f, pi),
// decoding f and pi as group elements. ok is false if either fails to
// decode; it is never false for T, which is an unconstrained 16-byte
// counter.
func (c *Codec) parseHeader(data []byte) (h header, ok bool) {
	n := len(data)
	raw := data[n-c.headerLen:]

	tBytes := raw[:vdf.CounterSize]
	fBytes := raw[vdf.CounterSize : vdf.CounterSize+c.g.Nlen()]
	pBytes := raw[vdf.CounterSize+c.g.Nlen():]

	t, err := vdf.DecodeCounter(tBytes)
	if err != nil {
		return header{}, false
	}
	f, fok := c.g.TryDecode(fBytes)
	if !fok {
		return header{}, false
	}
	p, pok := c.g.TryDecode(pBytes)
	if !pok {
		return header{}, false
	}
	return header{t: t, f: f, p: p}, true
}

func (c *Codec) encodeHeader(t *bigint.Int, f, p *group.Element) []byte {
	out := make([]byte, 0, c.headerLen)
	out = append(out, vdf.EncodeCounter(t)...)
	out = append(out, c.g.Encode(f)...)
	out = append(out, c.g.Encode(p)...)
	return out
}

// VerifyHeader reports whether data carries a valid trailing header:
// a counter T and a VDF proof (f, pi) that verify against the
// remaining payload. It performs no squaring, unlike Decompress.
func (c *Codec) VerifyHeader(data []byte) bool {
	if len(data) <= c.headerLen {
		return false
	}
	dPrime := data[:len(data)-c.headerLen]
	h, ok := c.parseHeader(data)
	if !ok {
		return false
	}
	return c.v.Verify(h.t, dPrime, h.f, h.p)
}

// Compress implements spec.md §4.7's Compress procedure.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	if len(data) <= c.headerLen {
		return data, nil
	}

	d, err := deflate(data)
	if err != nil {
		return nil, fmt.Errorf("codec: deflate: %w", err)
	}
	if len(d) < len(data)-c.headerLen {
		f, p := c.v.Eval(bigint.Zero(), d)
		out := make([]byte, 0, len(d)+c.headerLen)
		out = append(out, d...)
		out = append(out, c.encodeHeader(bigint.Zero(), f, p)...)
		return out, nil
	}

	dPrime := data[:len(data)-c.headerLen]
	h, ok := c.parseHeader(data)
	if !ok || !c.v.Verify(h.t, dPrime, h.f, h.p) {
		return data, nil
	}

	tNext := incrementCounter(h.t)
	f, p := c.v.Eval(tNext, dPrime)
	out := make([]byte, 0, len(data))
	out = append(out, dPrime...)
	out = append(out, c.encodeHeader(tNext, f, p)...)
	return out, nil
}

// Decompress implements spec.md §4.7's Decompress procedure.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) <= c.headerLen {
		return data, nil
	}

	dPrime := data[:len(data)-c.headerLen]
	h, ok := c.parseHeader(data)
	if !ok || !c.v.Verify(h.t, dPrime, h.f, h.p) {
		return data, nil
	}

	if c.MaxCounter != nil && h.t.Cmp(c.MaxCounter) > 0 {
		return nil, fmt.Errorf("codec: counter %v exceeds configured MaxCounter %v", h.t, c.MaxCounter)
	}

	if h.t.Sign() > 0 {
		tPrev := h.t.Sub(bigint.One())
		f, p := c.v.Eval(tPrev, dPrime)
		out := make([]byte, 0, len(data))
		out = append(out, dPrime...)
		out = append(out, c.encodeHeader(tPrev, f, p)...)
		return out, nil
	}

	return inflate(dPrime)
}

// incrementCounter increments t, wrapping modulo 2^128 (spec.md §4.6,
// §9's "left as-is" open question): a counter that would need more than
// 128 bits wraps silently to zero, and no error is reported.
func incrementCounter(t *bigint.Int) *bigint.Int {
	next := t.Add(bigint.One())
	if next.BitLen() > vdf.MaxCounterBits {
		return bigint.Zero()
	}
	return next
}
