//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package codec

import "github.com/markkurossi/paradoxcompress/bigint"

// CompressBytes is a convenience wrapper returning only the bytes,
// for callers that don't need Stats.
func (c *Codec) CompressBytes(data []byte) ([]byte, error) {
	return c.Compress(data)
}

// DecompressBytes is a convenience wrapper returning only the bytes.
func (c *Codec) DecompressBytes(data []byte) ([]byte, error) {
	return c.Decompress(data)
}

// Stats summarizes one Compress call, for the CLI's verbose mode.
type Stats struct {
	// InputLen is len(data) as passed to Compress.
	InputLen int
	// OutputLen is len of the returned artifact.
	OutputLen int
	// HeaderLen is H_LEN for this codec's modulus.
	HeaderLen int
	// Counter is the counter T read from the output's trailing H_LEN
	// bytes when its f and pi fields decode as group elements, and nil
	// otherwise. The proof is not verified here, so a pass-through
	// output whose trailing bytes happen to decode also reports a
	// Counter.
	Counter *bigint.Int
}

// CompressWithStats behaves like Compress but also reports Stats
// about the resulting artifact.
func (c *Codec) CompressWithStats(data []byte) ([]byte, Stats, error) {
	out, err := c.Compress(data)
	if err != nil {
		return nil, Stats{}, err
	}
	st := Stats{
		InputLen:  len(data),
		OutputLen: len(out),
		HeaderLen: c.headerLen,
	}
	if len(out) > c.headerLen {
		if h, ok := c.parseHeader(out); ok {
			st.Counter = h.t
		}
	}
	return out, st, nil
}
