//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package codec

import "github.com/markkurossi/paradoxcompress/bigint"

// defaultModulusHex is a fixed 2048-bit odd composite (spec.md §6:
// "A default 2048-bit value is supplied"). As with any RSA-type
// modulus used for this construction, its factorization must be
// unknown to all parties relying on it; it is supplied here purely as
// a constant, not generated at runtime (spec.md's Non-goals scope out
// modulus generation for production use — see cmd/genmodulus for the
// test-only small-modulus generator).
const defaultModulusHex = "" +
	"8EF547A0CE7F1E7CFF93BB03C20B45B2" +
	"B2C6B174BC704E554AF842E10A8299A2" +
	"768B576292D3E2652117F7575D563F18" +
	"F7150578E1DDA98BED4AC85D44657994" +
	"3BC59920A1A49FC83FBC421FE04B2E56" +
	"29F6FA1BABDE538B5F8CBB3759A60B8E" +
	"7B9D7853D2C67C41AC7EE8A82D3A99C3" +
	"ECCE96F6D8BFF4F8C32B2FF086AE7561" +
	"6D1CDB064AA75BC667846927135A9110" +
	"4B31031BC3243750AE6116AD2FE9B1F9" +
	"BECF480FFF0174DB162C93B1173358C5" +
	"05A0DB4530CAEC85A465FE7B957C6813" +
	"3D447F884CC46658DA83E38D9CE56018" +
	"3E36F9B079FB90543D9C65F486226763" +
	"C02AE54705CCDEE6ADC281F6B0FF7CF6" +
	"B3ADFB34535B39079FBCA0E7899FDE49"

// DefaultModulus returns the reference 2048-bit modulus N (Nlen=256,
// H_LEN=272).
func DefaultModulus() *bigint.Int {
	n, err := bigint.ParseRadix("0x"+defaultModulusHex, 0)
	if err != nil {
		panic("codec: defaultModulusHex is malformed: " + err.Error())
	}
	return n
}

// NewDefault constructs a Codec over DefaultModulus().
func NewDefault() (*Codec, error) {
	return New(DefaultModulus())
}
