package services

import (
	"career-globe-service/internal/domain"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// GenesisHash is the previous-hash of the first block.
var GenesisHash = "0x" + strings.Repeat("0", 64)

// DefaultDifficulty is the number of leading zero hex digits a mined block hash needs.
const DefaultDifficulty = 2

var ErrChainBroken = errors.New("chain broken")

// BuildChain turns milestones into a hash-linked career chain.
//
// A genesis block comes first. Each milestone becomes one block whose
// technologies are recorded as transactions. Blocks of ongoing "current"
// milestones stay unconfirmed and are not mined.
func BuildChain(ms []*domain.Milestone, difficulty int) (*domain.Chain, error) {
	if difficulty < 0 || difficulty > 6 {
		return nil, fmt.Errorf("build chain: difficulty %d out of range [0, 6]", difficulty)
	}

	blocks := make([]domain.Block, 0, len(ms)+1)

	genesis := domain.Block{
		Index:        0,
		ID:           "genesis",
		Title:        "Genesis Block",
		Type:         domain.MilestoneOrigin,
		Description:  "Chain initialized.",
		Transactions: []domain.Transaction{},
		PreviousHash: GenesisHash,
		Confirmed:    true,
	}
	mine(&genesis, difficulty)
	blocks = append(blocks, genesis)

	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("build chain: milestone at index %d is nil", i)
		}

		b := domain.Block{
			Index:        i + 1,
			ID:           m.ID,
			Title:        m.Title,
			Company:      m.Company,
			Location:     m.Location,
			Type:         m.Type,
			Start:        m.StartDate,
			End:          m.EndDate,
			Description:  m.Description,
			Transactions: transactionsFor(m),
			PreviousHash: blocks[i].Hash,
			Confirmed:    m.Type != domain.MilestoneCurrent,
		}

		if b.Confirmed {
			mine(&b, difficulty)
		} else {
			b.Hash = blockHash(&b)
		}

		blocks = append(blocks, b)
	}

	return &domain.Chain{Blocks: blocks, Difficulty: difficulty}, nil
}

// VerifyChain checks indices, hash links, stored hashes and proof of work.
func VerifyChain(c *domain.Chain) error {
	if c == nil || len(c.Blocks) == 0 {
		return fmt.Errorf("verify chain: empty chain: %w", ErrChainBroken)
	}

	prefix := "0x" + strings.Repeat("0", c.Difficulty)
	prev := GenesisHash

	for i := range c.Blocks {
		b := &c.Blocks[i]

		if b.Index != i {
			return fmt.Errorf("verify chain: block %q has index %d, want %d: %w", b.ID, b.Index, i, ErrChainBroken)
		}
		if b.PreviousHash != prev {
			return fmt.Errorf("verify chain: block %q does not link to its predecessor: %w", b.ID, ErrChainBroken)
		}
		if want := blockHash(b); b.Hash != want {
			return fmt.Errorf("verify chain: block %q hash mismatch: %w", b.ID, ErrChainBroken)
		}
		if b.Confirmed && !strings.HasPrefix(b.Hash, prefix) {
			return fmt.Errorf("verify chain: block %q not mined at difficulty %d: %w", b.ID, c.Difficulty, ErrChainBroken)
		}

		prev = b.Hash
	}

	return nil
}

// ScrambleHash returns a random 64-digit hash for blocks still being mined.
func ScrambleHash(rng *rand.Rand) string {
	const digits = "0123456789abcdef"

	var sb strings.Builder
	sb.Grow(66)
	sb.WriteString("0x")
	for i := 0; i < 64; i++ {
		sb.WriteByte(digits[rng.Intn(len(digits))])
	}
	return sb.String()
}

func mine(b *domain.Block, difficulty int) {
	prefix := "0x" + strings.Repeat("0", difficulty)
	for nonce := 0; ; nonce++ {
		b.Nonce = nonce
		b.Hash = blockHash(b)
		if strings.HasPrefix(b.Hash, prefix) {
			return
		}
	}
}

func blockHash(b *domain.Block) string {
	end := ""
	if b.End != nil {
		end = *b.End
	}

	h := sha256.New()
	for _, part := range []string{b.PreviousHash, strconv.Itoa(b.Index), b.ID, b.Title, b.Start, end, strconv.Itoa(b.Nonce)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	for _, tx := range b.Transactions {
		h.Write([]byte(tx.Value))
		h.Write([]byte{0})
	}

	return "0x" + hex.EncodeToString(h.Sum(nil))
}

func transactionsFor(m *domain.Milestone) []domain.Transaction {
	txs := make([]domain.Transaction, 0, len(m.Technologies))
	for i, tech := range m.Technologies {
		sum := sha256.Sum256([]byte(m.ID + "|" + tech))
		txs = append(txs, domain.Transaction{
			ID:        "tx-" + strconv.Itoa(i),
			Type:      domain.TxTech,
			Value:     tech,
			Signature: "0x" + hex.EncodeToString(sum[:4]),
		})
	}
	return txs
}
