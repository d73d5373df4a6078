package dao

import (
	"sort"
	"strconv"

	"ucic_contracts/state"
)

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Statistics aggregates the engine-wide counters into one snapshot.
func (e *Engine) Statistics() Stats {
	return Stats{
		Contributors:       e.ContributorCount(),
		Proposals:          state.GetCount(e.st, cntProposals),
		ProposalsExecuted:  state.GetCount(e.st, cntExecuted),
		TotalPointsAwarded: state.GetCount(e.st, cntPointsAwarded),
		RewardsDistributed: state.GetCount(e.st, cntRewardsPaid),
	}
}

// TopContributors returns up to limit contributors ordered by cumulative
// points, ties broken by address for a stable order.
func (e *Engine) TopContributors(limit int) []Contributor {
	if limit <= 0 {
		return nil
	}
	var all []Contributor
	for _, member := range state.IndexMembers(e.st, idxContributors) {
		if c := e.getContributor(state.Address(member)); c != nil {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].TotalPoints != all[j].TotalPoints {
			return all[i].TotalPoints > all[j].TotalPoints
		}
		return all[i].Address < all[j].Address
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// TierDistribution counts contributors per tier.
func (e *Engine) TierDistribution() map[Tier]int {
	out := make(map[Tier]int)
	for _, member := range state.IndexMembers(e.st, idxContributors) {
		if c := e.getContributor(state.Address(member)); c != nil {
			out[c.Tier]++
		}
	}
	return out
}

// GovernanceLog pages through the global action log starting at seq from
// (1-based, 0 means from the beginning), returning at most limit entries.
func (e *Engine) GovernanceLog(from uint64, limit int) []GovEntry {
	if limit <= 0 {
		return nil
	}
	last := state.GetCount(e.st, cntGovLog)
	if from == 0 {
		from = 1
	}
	out := make([]GovEntry, 0, limit)
	for seq := from; seq <= last && len(out) < limit; seq++ {
		ptr := e.st.Get(govLogKey(seq))
		if ptr == nil || *ptr == "" {
			continue
		}
		entry, err := DecodeGovEntry([]byte(*ptr))
		if err != nil {
			continue
		}
		out = append(out, *entry)
	}
	return out
}
