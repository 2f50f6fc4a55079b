package domain

type WorkStatus string

const (
	WorkPending    WorkStatus = "pending"
	WorkInProgress WorkStatus = "in_progress"
	WorkDone       WorkStatus = "done"
)

// ValidWorkStatuses is the canonical set of accepted work status strings.
var ValidWorkStatuses = map[string]bool{
	"pending": true, "in_progress": true, "done": true,
}

func (s WorkStatus) Valid() bool {
	return ValidWorkStatuses[string(s)]
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
)

func (s ApprovalStatus) Valid() bool {
	return s == ApprovalPending || s == ApprovalApproved
}
