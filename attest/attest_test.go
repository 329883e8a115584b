//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package attest

import (
	"sync"
	"testing"

	"github.com/markkurossi/mpc/p2p"
	"github.com/markkurossi/paradoxcompress/bigint"
	"github.com/markkurossi/paradoxcompress/group"
	"github.com/markkurossi/paradoxcompress/vdf"
)

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

func newTestVDF(t *testing.T) *vdf.VDF {
	t.Helper()
	g, err := group.New(testModulus1024(t))
	if err != nil {
		t.Fatal(err)
	}
	return vdf.New(g)
}

func TestProveVerifyAccepts(t *testing.T) {
	v := newTestVDF(t)
	e := []byte("attestation payload")
	tVal := bigint.FromInt64(3)
	f, pi := v.Eval(tVal, e)

	proverConn, verifierConn := p2p.Pipe()

	var wg sync.WaitGroup
	var accepted bool
	var proveErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		prover := NewPeer(proverConn, Prover, v)
		accepted, proveErr = prover.Prove(tVal, e, f, pi)
	}()

	verifier := NewPeer(verifierConn, Verifier, v)
	verifyResult, err := verifier.Verify()
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	wg.Wait()

	if proveErr != nil {
		t.Fatalf("prover: %v", proveErr)
	}
	if !verifyResult {
		t.Error("verifier rejected a genuine proof")
	}
	if !accepted {
		t.Error("prover did not see the verifier's acceptance")
	}
}

func TestProveVerifyRejectsForgedProof(t *testing.T) {
	v := newTestVDF(t)
	e := []byte("attestation payload")
	tVal := bigint.FromInt64(3)
	f, _ := v.Eval(tVal, e)
	wrongPi := v.H(e) // not a valid proof for this (T, e, f)

	proverConn, verifierConn := p2p.Pipe()

	var wg sync.WaitGroup
	var accepted bool
	var proveErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		prover := NewPeer(proverConn, Prover, v)
		accepted, proveErr = prover.Prove(tVal, e, f, wrongPi)
	}()

	verifier := NewPeer(verifierConn, Verifier, v)
	verifyResult, err := verifier.Verify()
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	wg.Wait()

	if proveErr != nil {
		t.Fatalf("prover: %v", proveErr)
	}
	if verifyResult {
		t.Error("verifier accepted a forged proof")
	}
	if accepted {
		t.Error("prover incorrectly believes a forged proof was accepted")
	}
}

func TestProveOnVerifierPanics(t *testing.T) {
	v := newTestVDF(t)
	_, verifierConn := p2p.Pipe()
	peer := NewPeer(verifierConn, Verifier, v)

	defer func() {
		if recover() == nil {
			t.Error("expected panic calling Prove on a verifier peer")
		}
	}()
	peer.Prove(bigint.Zero(), nil, nil, nil)
}
