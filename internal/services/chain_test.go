package services

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

var hashPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func TestBuildChainLinksAndMines(t *testing.T) {
	chain, err := BuildChain(testMilestones(), DefaultDifficulty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if chain.Total() != 4 {
		t.Fatalf("blocks = %d, want 4", chain.Total())
	}
	if chain.Blocks[0].PreviousHash != GenesisHash {
		t.Fatalf("genesis previous hash = %q", chain.Blocks[0].PreviousHash)
	}
	if chain.Confirmed() != 3 {
		t.Fatalf("confirmed = %d, want 3", chain.Confirmed())
	}

	for i, b := range chain.Blocks {
		if !hashPattern.MatchString(b.Hash) {
			t.Fatalf("block %d hash %q malformed", i, b.Hash)
		}
		if b.Confirmed && !strings.HasPrefix(b.Hash, "0x00") {
			t.Fatalf("confirmed block %d hash %q not mined", i, b.Hash)
		}
		if i > 0 && b.PreviousHash != chain.Blocks[i-1].Hash {
			t.Fatalf("block %d not linked", i)
		}
	}

	if got := len(chain.Blocks[1].Transactions); got != 2 {
		t.Fatalf("block 1 transactions = %d, want 2", got)
	}

	if err := VerifyChain(chain); err != nil {
		t.Fatalf("VerifyChain: %v", err)
	}
}

func TestBuildChainDeterministic(t *testing.T) {
	a, _ := BuildChain(testMilestones(), 1)
	b, _ := BuildChain(testMilestones(), 1)
	for i := range a.Blocks {
		if a.Blocks[i].Hash != b.Blocks[i].Hash {
			t.Fatalf("block %d hash differs between builds", i)
		}
	}
}

func TestVerifyChainDetectsTampering(t *testing.T) {
	chain, _ := BuildChain(testMilestones(), 1)
	chain.Blocks[2].Title = "Chief Everything Officer"

	if err := VerifyChain(chain); !errors.Is(err, ErrChainBroken) {
		t.Fatalf("err = %v, want ErrChainBroken", err)
	}

	if err := VerifyChain(nil); !errors.Is(err, ErrChainBroken) {
		t.Fatalf("nil chain err = %v, want ErrChainBroken", err)
	}
}

func TestBuildChainRejectsDifficulty(t *testing.T) {
	if _, err := BuildChain(testMilestones(), 7); err == nil {
		t.Fatalf("expected error for difficulty 7")
	}
}

func TestScrambleHash(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h1 := ScrambleHash(rng)
	h2 := ScrambleHash(rng)
	if !hashPattern.MatchString(h1) || h1 == h2 {
		t.Fatalf("ScrambleHash produced %q then %q", h1, h2)
	}
}

func TestBuildChainCarriesCompanyAndLocation(t *testing.T) {
	c, err := BuildChain(testMilestones(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := c.Blocks[1]
	if b.Company != "WebexpR / Wholehelp" {
		t.Fatalf("company = %q, want the employer", b.Company)
	}
	if b.Location != "Paris, France" {
		t.Fatalf("location = %q, want the milestone location", b.Location)
	}
}
