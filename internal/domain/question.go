package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoCorrectionsRequired is the owner comment sentinel that marks a resubmission
// made without changes, i.e. a contested rejection.
const NoCorrectionsRequired = "no corrections required"

// Question is a reviewable unit of content written from a paper.
type Question struct {
	ID              uuid.UUID
	PaperID         uuid.UUID
	OwnerID         uuid.UUID
	ReviewerID      *uuid.UUID
	Status          QuestionStatus
	Difficulty      Difficulty
	Body            string
	ImageURLs       []string
	ReviewerComment *string
	OwnerComment    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Owner returns the creator principal of the question.
func (q *Question) Owner() Principal {
	return Principal{Kind: PrincipalCreator, ID: q.OwnerID}
}

// PriorReviewer returns the last recorded reviewer, if any.
func (q *Question) PriorReviewer() (Principal, bool) {
	if q.ReviewerID == nil {
		return Principal{}, false
	}
	return Principal{Kind: PrincipalReviewer, ID: *q.ReviewerID}, true
}

// ContestsRejection reports whether the owner resubmitted without corrections.
func (q *Question) ContestsRejection() bool {
	return q.OwnerComment != nil && *q.OwnerComment == NoCorrectionsRequired
}

// StatusUpdate is the full set of workflow fields written by a transition.
type StatusUpdate struct {
	Status          QuestionStatus
	ReviewerID      *uuid.UUID
	ReviewerComment *string
	OwnerComment    *string
}
