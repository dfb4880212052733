package handlers

import (
	"career-globe-service/internal/api/dto"
	"career-globe-service/internal/ports"
	"career-globe-service/internal/services"
	"errors"
	"log/slog"
	"net/http"
)

// ChainHandler renders the milestones as a hash-linked career chain.
type ChainHandler struct {
	Repo       ports.MilestoneRepository
	Difficulty int
}

func (h *ChainHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ms, err := h.Repo.ListMilestones(r.Context())
	if err != nil {
		writeServiceError(w, r, "build chain", err)
		return
	}

	c, err := services.BuildChain(ms, h.Difficulty)
	if err != nil {
		writeServiceError(w, r, "build chain", err)
		return
	}

	valid := true
	if verr := services.VerifyChain(c); verr != nil {
		if !errors.Is(verr, services.ErrChainBroken) {
			writeServiceError(w, r, "verify chain", verr)
			return
		}
		slog.WarnContext(r.Context(), "chain verification failed", "err", verr)
		valid = false
	}

	res := dto.ChainResponse{
		Blocks:      make([]dto.BlockResponse, 0, len(c.Blocks)),
		Difficulty:  c.Difficulty,
		TotalBlocks: c.Total(),
		Confirmed:   c.Confirmed(),
		Valid:       valid,
	}
	for _, b := range c.Blocks {
		txs := make([]dto.TransactionResponse, 0, len(b.Transactions))
		for _, tx := range b.Transactions {
			txs = append(txs, dto.TransactionResponse{
				ID:        tx.ID,
				Type:      string(tx.Type),
				Value:     tx.Value,
				Signature: tx.Signature,
			})
		}
		res.Blocks = append(res.Blocks, dto.BlockResponse{
			Index:        b.Index,
			ID:           b.ID,
			Title:        b.Title,
			Company:      b.Company,
			Location:     b.Location,
			Type:         string(b.Type),
			Start:        b.Start,
			End:          b.End,
			Description:  b.Description,
			Transactions: txs,
			Hash:         b.Hash,
			PreviousHash: b.PreviousHash,
			Nonce:        b.Nonce,
			Confirmed:    b.Confirmed,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
