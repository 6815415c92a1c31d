package proposal

import "context"

type ListFilter struct {
	Status *Status
	UserID *uint64
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByProposalID(ctx context.Context, proposalID string) (*Proposal, error)
	// Row lock; only meaningful inside a tx
	GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*Proposal, error)
	// Newest first
	ListByUser(ctx context.Context, userID uint64) ([]Proposal, error)
	List(ctx context.Context, f ListFilter) ([]Proposal, int64, error)
	Save(ctx context.Context, p *Proposal) error
}
