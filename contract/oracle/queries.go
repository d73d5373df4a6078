package oracle

import "ucic_contracts/state"

// Statistics aggregates the oracle-wide counters into one snapshot.
func (o *Oracle) Statistics() Stats {
	s := Stats{
		Submissions:        state.GetCount(o.st, cntSubmissions),
		Approvals:          state.GetCount(o.st, cntApprovals),
		Rejections:         state.GetCount(o.st, cntRejections),
		AuditComplete:      state.GetCount(o.st, cntAuditComplete),
		Forwarded:          state.GetCount(o.st, cntForwarded),
		ChallengesOpen:     len(o.PendingChallenges()),
		ChallengesAccepted: state.GetCount(o.st, cntChalAccepted),
	}
	if n := state.GetCount(o.st, cntVerifTimeN); n > 0 {
		s.AvgVerificationTime = int64(state.GetCount(o.st, cntVerifTimeSum) / n)
	}
	return s
}

// AcceptanceRate reports the percentage of verifier actions that approved,
// zero before any action.
func (o *Oracle) AcceptanceRate() uint64 {
	approvals := state.GetCount(o.st, cntApprovals)
	total := approvals + state.GetCount(o.st, cntRejections)
	if total == 0 {
		return 0
	}
	return approvals * 100 / total
}
