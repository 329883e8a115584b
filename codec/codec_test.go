//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package codec

import (
	"bytes"
	"testing"

	"github.com/markkurossi/paradoxcompress/bigint"
)

// testModulus1024 is an odd 1024-bit composite, just large enough to
// satisfy the group's validity threshold, used to keep these tests
// fast relative to the 2048-bit default.
func testModulus1024(t *testing.T) *bigint.Int {
	t.Helper()
	n, err := bigint.ParseRadix(
		"0x"+
			"C7970CEEDCC3B0754490201A7AA613CD"+
			"73911081C790F5F1A8726F463550BB5B"+
			"7FF0DB8E1EA1189EC72F93D1650011BD"+
			"721AEEACC2ACDE32A04107F0648C2813"+
			"A31F5B0B7765FF8B44B4B6FFC93384B6"+
			"46EB09C7CDF1898999182CA50D92DB8F"+
			"22D5F5F6A4C28B9DA45DA0BA84C3D2FB"+
			"BF3A63B6E5CF0D34C1E5DD7C55DF2BB3",
		0)
	if err != nil {
		t.Fatal(err)
	}
	if n.IsEven() {
		n = n.Add(bigint.One())
	}
	return n
}

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New(testModulus1024(t))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// S1: empty input is pass-through both ways.
func TestEmptyInputPassesThrough(t *testing.T) {
	c := newTestCodec(t)
	out, err := c.Compress(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("Compress(nil) = %v, expected empty", out)
	}
	out2, err := c.Decompress(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out2) != 0 {
		t.Errorf("Decompress(nil) = %v, expected empty", out2)
	}
}

// Invariant 3: inputs no longer than H_LEN pass through unchanged.
func TestShortInputPassesThrough(t *testing.T) {
	c := newTestCodec(t)
	data := bytes.Repeat([]byte{0xAB}, c.HeaderLen())
	out, err := c.Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Error("expected Compress to return data unchanged at exactly H_LEN")
	}
	out2, err := c.Decompress(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out2, data) {
		t.Error("expected Decompress to return data unchanged at exactly H_LEN")
	}
}

// S2: compressible data shrinks and round-trips.
func TestCompressShrinksAllZero(t *testing.T) {
	c := newTestCodec(t)
	data := make([]byte, 2000)

	out, err := c.Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) >= len(data) {
		t.Fatalf("expected shrinkage, got len(out)=%d >= len(data)=%d", len(out), len(data))
	}

	back, err := c.Decompress(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, data) {
		t.Error("round trip did not recover the original data")
	}
}

// S3: incompressible (random) data cannot recoup H_LEN bytes via
// DEFLATE, and has no pre-existing valid header, so it passes through.
func TestCompressRandomDataPassesThrough(t *testing.T) {
	c := newTestCodec(t)
	data := make([]byte, 2000)
	// Not cryptographically random, but high-entropy enough that
	// DEFLATE cannot shrink it past H_LEN; deterministic so the test
	// is reproducible.
	x := uint32(0x2545F491)
	for i := range data {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		data[i] = byte(x)
	}

	out, err := c.Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Error("expected incompressible data to pass through unchanged")
	}
}

// S4: iterated compression is non-increasing in length and fully
// reversible by the same number of Decompress calls.
func TestIteratedCompressDecompress(t *testing.T) {
	c := newTestCodec(t)
	d0 := make([]byte, 2000)

	history := []([]byte){d0}
	cur := d0
	for i := 0; i < 5; i++ {
		next, err := c.Compress(cur)
		if err != nil {
			t.Fatal(err)
		}
		if len(next) > len(cur) {
			t.Fatalf("iteration %d: length increased from %d to %d", i, len(cur), len(next))
		}
		history = append(history, next)
		cur = next
	}

	for i := 5; i >= 1; i-- {
		prev, err := c.Decompress(history[i])
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(prev, history[i-1]) {
			t.Fatalf("decompressing step %d did not recover the previous artifact", i)
		}
	}
}

// S6: flipping a byte inside the f field of a compressed artifact
// makes Decompress treat it as an invalid header and pass it through
// unchanged, rather than failing.
func TestTamperedHeaderPassesThrough(t *testing.T) {
	c := newTestCodec(t)
	data := make([]byte, 2000)

	out, err := c.Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) <= c.HeaderLen() {
		t.Fatal("expected a full header to be present for this test")
	}

	tampered := append([]byte(nil), out...)
	fFieldStart := len(tampered) - c.HeaderLen() + 16 // skip the 16-byte counter
	tampered[fFieldStart] ^= 0x01

	back, err := c.Decompress(tampered)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, tampered) {
		t.Error("expected Decompress to pass tampered data through unchanged")
	}
}

// Invariant 1: Compress never expands its input.
func TestNonExpansion(t *testing.T) {
	c := newTestCodec(t)
	cases := [][]byte{
		nil,
		{1, 2, 3},
		bytes.Repeat([]byte{0x42}, 100),
		bytes.Repeat([]byte{0x00}, 5000),
	}
	for _, data := range cases {
		out, err := c.Compress(data)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) > len(data) {
			t.Errorf("Compress expanded input of length %d to %d", len(data), len(out))
		}
	}
}

func TestCompressWithStatsReportsCounter(t *testing.T) {
	c := newTestCodec(t)
	data := make([]byte, 2000)

	out, st, err := c.CompressWithStats(data)
	if err != nil {
		t.Fatal(err)
	}
	if st.InputLen != len(data) || st.OutputLen != len(out) {
		t.Errorf("unexpected stats: %+v", st)
	}
	if st.Counter == nil || st.Counter.Sign() != 0 {
		t.Errorf("expected a fresh artifact with counter 0, got %v", st.Counter)
	}
}

func TestMaxCounterRejectsLargeCounter(t *testing.T) {
	c := newTestCodec(t)
	c.MaxCounter = bigint.FromInt64(0)

	data := make([]byte, 2000)
	out, err := c.Compress(data)
	if err != nil {
		t.Fatal(err)
	}

	again, err := c.Compress(out)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Decompress(again); err == nil {
		t.Error("expected Decompress to reject a counter above MaxCounter")
	}
}
