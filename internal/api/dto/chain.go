package dto

type TransactionResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

type BlockResponse struct {
	Index        int                   `json:"index"`
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Company      string                `json:"company"`
	Location     string                `json:"location"`
	Type         string                `json:"type"`
	Start        string                `json:"start"`
	End          *string               `json:"end"`
	Description  string                `json:"description"`
	Transactions []TransactionResponse `json:"transactions"`
	Hash         string                `json:"hash"`
	PreviousHash string                `json:"previous_hash"`
	Nonce        int                   `json:"nonce"`
	Confirmed    bool                  `json:"confirmed"`
}

type ChainResponse struct {
	Blocks      []BlockResponse `json:"blocks"`
	Difficulty  int             `json:"difficulty"`
	TotalBlocks int             `json:"total_blocks"`
	Confirmed   int             `json:"confirmed"`
	Valid       bool            `json:"valid"`
}
