package domain

// TransactionType labels what a block transaction records.
type TransactionType string

const (
	TxSkill       TransactionType = "skill"
	TxAchievement TransactionType = "achievement"
	TxTech        TransactionType = "tech"
)

// Represents one skill or technology "committed" in a career block.
type Transaction struct {
	ID        string
	Type      TransactionType
	Value     string
	Signature string
}

// Represents one career milestone rendered as a block of the career chain.
// Blocks are linked through PreviousHash; a block is unconfirmed while its
// milestone is still in progress.
type Block struct {
	Index        int
	ID           string
	Title        string
	Company      string
	Location     string
	Type         MilestoneType
	Start        string
	End          *string
	Description  string
	Transactions []Transaction
	Hash         string
	PreviousHash string
	Nonce        int
	Confirmed    bool
}

// Ordered, hash-linked list of blocks starting at the genesis block.
type Chain struct {
	Blocks     []Block
	Difficulty int
}

func (c *Chain) Total() int { return len(c.Blocks) }

// Confirmed counts blocks that are no longer being mined.
func (c *Chain) Confirmed() int {
	n := 0
	for _, b := range c.Blocks {
		if b.Confirmed {
			n++
		}
	}
	return n
}
