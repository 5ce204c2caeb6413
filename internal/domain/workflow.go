package domain

// TransitionAction names one edge of the question workflow.
type TransitionAction string

const (
	ActionSubmit   TransitionAction = "SUBMIT"
	ActionAccept   TransitionAction = "ACCEPT"
	ActionDecline  TransitionAction = "DECLINE"
	ActionResubmit TransitionAction = "RESUBMIT"
	ActionDemote   TransitionAction = "DEMOTE"
	ActionFinalise TransitionAction = "FINALISE"
)

func (a TransitionAction) String() string { return string(a) }

type edge struct {
	from QuestionStatus
	to   QuestionStatus
}

var workflowEdges = map[edge]TransitionAction{
	{QuestionStatusDraft, QuestionStatusPending}:      ActionSubmit,
	{QuestionStatusPending, QuestionStatusApproved}:   ActionAccept,
	{QuestionStatusPending, QuestionStatusRejected}:   ActionDecline,
	{QuestionStatusRejected, QuestionStatusPending}:   ActionResubmit,
	{QuestionStatusApproved, QuestionStatusRejected}:  ActionDemote,
	{QuestionStatusApproved, QuestionStatusFinalised}: ActionFinalise,
}

var actionRoles = map[TransitionAction]PrincipalKind{
	ActionSubmit:   PrincipalCreator,
	ActionResubmit: PrincipalCreator,
	ActionAccept:   PrincipalReviewer,
	ActionDecline:  PrincipalReviewer,
	ActionDemote:   PrincipalReviewer,
	ActionFinalise: PrincipalExpert,
}

// ResolveTransition returns the action for the edge from -> to, or a
// *TransitionError when the edge is not part of the workflow.
func ResolveTransition(from, to QuestionStatus) (TransitionAction, error) {
	action, ok := workflowEdges[edge{from, to}]
	if !ok {
		return "", &TransitionError{From: from, To: to}
	}
	return action, nil
}

// RequiredRole returns the principal kind allowed to perform the action.
func (a TransitionAction) RequiredRole() PrincipalKind {
	return actionRoles[a]
}

// RequiresReason reports whether the action must carry a non-empty reason.
func (a TransitionAction) RequiresReason() bool {
	return a == ActionDecline || a == ActionDemote
}

// IsRejection reports whether the action moves the question into REJECTED.
func (a TransitionAction) IsRejection() bool {
	return a == ActionDecline || a == ActionDemote
}

// ApprovedDelta returns the change the action applies to the paper's approved counter.
func (a TransitionAction) ApprovedDelta() int {
	switch a {
	case ActionAccept:
		return 1
	case ActionDemote, ActionFinalise:
		return -1
	}
	return 0
}
