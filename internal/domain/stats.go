package domain

// Stats is the dashboard aggregate computed over all mods.
// PendingMods counts by approval status; InProgressMods and CompletedMods
// count by work status. The asymmetry is intentional: a mod awaiting client
// sign-off is "pending" regardless of whether work has started.
type Stats struct {
	TotalMods      int `json:"totalMods"`
	PendingMods    int `json:"pendingMods"`
	InProgressMods int `json:"inProgressMods"`
	CompletedMods  int `json:"completedMods"`
	TotalEarned    int `json:"totalEarned"`
	TotalDue       int `json:"totalDue"`
}

// ComputeStats derives Stats in a single pass over mods.
func ComputeStats(mods []Mod) Stats {
	var s Stats
	s.TotalMods = len(mods)
	for i := range mods {
		m := &mods[i]
		if m.ApprovalStatus == ApprovalPending {
			s.PendingMods++
		}
		switch m.WorkStatus {
		case WorkInProgress:
			s.InProgressMods++
		case WorkDone:
			s.CompletedMods++
		}
		paid := m.AmountPaid()
		s.TotalEarned += paid
		s.TotalDue += m.TotalPrice - paid
	}
	return s
}
