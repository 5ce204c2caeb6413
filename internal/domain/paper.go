package domain

import (
	"time"

	"github.com/google/uuid"
)

// Paper is a source document that questions are written from. A paper is
// claimed by exactly one creator, who then fills it up to Capacity.
type Paper struct {
	ID            uuid.UUID
	Title         string
	SourceURL     string
	Capacity      int
	ClaimedBy     *uuid.UUID
	ClaimedAt     *time.Time
	ApprovedCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsClaimedBy reports whether the given user holds the claim on the paper.
func (p *Paper) IsClaimedBy(userID uuid.UUID) bool {
	return p.ClaimedBy != nil && *p.ClaimedBy == userID
}

// CountDrift is a mismatch between a paper's stored approved counter and a recount.
type CountDrift struct {
	PaperID   uuid.UUID
	Stored    int
	Recounted int
}
