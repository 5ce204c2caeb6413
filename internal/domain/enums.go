package domain

// QuestionStatus represents the position of a question in the review workflow.
type QuestionStatus string

const (
	QuestionStatusDraft     QuestionStatus = "DRAFT"
	QuestionStatusPending   QuestionStatus = "PENDING"
	QuestionStatusApproved  QuestionStatus = "APPROVED"
	QuestionStatusRejected  QuestionStatus = "REJECTED"
	QuestionStatusFinalised QuestionStatus = "FINALISED"
)

func (s QuestionStatus) String() string { return string(s) }

func (s QuestionStatus) IsValid() bool {
	switch s {
	case QuestionStatusDraft, QuestionStatusPending, QuestionStatusApproved,
		QuestionStatusRejected, QuestionStatusFinalised:
		return true
	}
	return false
}

// Editable reports whether the owner may still change the question body.
func (s QuestionStatus) Editable() bool {
	return s == QuestionStatusDraft || s == QuestionStatusRejected
}

// Difficulty is the payout tier of a question.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// PrincipalKind identifies which role a principal acts under.
type PrincipalKind string

const (
	PrincipalCreator  PrincipalKind = "CREATOR"
	PrincipalReviewer PrincipalKind = "REVIEWER"
	PrincipalExpert   PrincipalKind = "EXPERT"
	PrincipalAdmin    PrincipalKind = "ADMIN"
)

func (k PrincipalKind) String() string { return string(k) }

func (k PrincipalKind) IsValid() bool {
	switch k {
	case PrincipalCreator, PrincipalReviewer, PrincipalExpert, PrincipalAdmin:
		return true
	}
	return false
}

// LogKind names an action recorded in a principal's action log.
type LogKind string

const (
	// Reviewer side.
	LogKindAccepted       LogKind = "ACCEPTED"
	LogKindRejected       LogKind = "REJECTED"
	LogKindFalseRejection LogKind = "FALSE_REJECTION"

	// Owner side.
	LogKindQuestionApproved LogKind = "QUESTION_APPROVED"
	LogKindQuestionRejected LogKind = "QUESTION_REJECTED"
)

func (k LogKind) String() string { return string(k) }

func (k LogKind) IsValid() bool {
	switch k {
	case LogKindAccepted, LogKindRejected, LogKindFalseRejection,
		LogKindQuestionApproved, LogKindQuestionRejected:
		return true
	}
	return false
}

// TxKind classifies a ledger transaction.
type TxKind string

const (
	TxKindCredit TxKind = "CREDIT"
	TxKindDebit  TxKind = "DEBIT"
	TxKindPayout TxKind = "PAYOUT"
)

func (k TxKind) String() string { return string(k) }

func (k TxKind) IsValid() bool {
	switch k {
	case TxKindCredit, TxKindDebit, TxKindPayout:
		return true
	}
	return false
}

// AffectsLifetime reports whether transactions of this kind move lifetime earnings.
func (k TxKind) AffectsLifetime() bool {
	return k == TxKindCredit || k == TxKindDebit
}
