// Package dao implements the contribution governance engine: contributor
// registry, weighted scoring, tier progression, module bonuses, monthly
// reward cycles, and proposal voting. The token ledger is reached only
// through the narrow RewardSink capability, never held directly.
package dao

import "ucic_contracts/state"

type Engine struct {
	st      state.Store
	rewards RewardSink
	log     state.LogFunc
}

// New wires the engine onto its store and the reward capability. A nil
// sink disables payouts but leaves every other operation working.
func New(st state.Store, rewards RewardSink, log state.LogFunc) *Engine {
	return &Engine{st: st, rewards: rewards, log: log}
}

// ------------------------------------------------------------------
// contributor storage
// ------------------------------------------------------------------

func (e *Engine) getContributor(addr state.Address) *Contributor {
	ptr := e.st.Get(contributorKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	c, err := DecodeContributor([]byte(*ptr))
	if err != nil {
		return nil
	}
	return c
}

func (e *Engine) putContributor(c *Contributor) {
	e.st.Set(contributorKey(c.Address), string(EncodeContributor(c)))
}

// RegisterContributor creates a fresh RECOGNIZED member. Registering an
// existing address fails so join timestamps cannot be rewritten.
func (e *Engine) RegisterContributor(addr state.Address, now int64) bool {
	if !addr.IsValid() {
		return false
	}
	if e.getContributor(addr) != nil {
		return false
	}
	e.putContributor(&Contributor{Address: addr, JoinedAt: now, Tier: TierRecognized})
	state.AddToIndex(e.st, idxContributors, addr.String())
	e.emitContributorRegistered(addr.String())
	return true
}

// IsContributor reports whether the address is registered.
func (e *Engine) IsContributor(addr state.Address) bool {
	return e.getContributor(addr) != nil
}

// GetContributor returns a copy of the stored record, nil when unknown.
func (e *Engine) GetContributor(addr state.Address) *Contributor {
	return e.getContributor(addr)
}

// ContributorCount reports how many addresses are registered.
func (e *Engine) ContributorCount() int {
	return state.IndexLen(e.st, idxContributors)
}

// ------------------------------------------------------------------
// scoring and tiers
// ------------------------------------------------------------------

// addPoints credits points, promotes the tier when a threshold is crossed,
// and appends the audit line. Points only ever go up.
func (e *Engine) addPoints(c *Contributor, points uint64, action string, now int64) {
	c.TotalPoints += points
	newTier := TierForPoints(c.TotalPoints)
	if newTier > c.Tier {
		e.emitTierChanged(c.Address.String(), c.Tier, newTier)
		c.Tier = newTier
	}
	e.appendAudit(c, action, points, now)
	state.SetCount(e.st, cntPointsAwarded, state.GetCount(e.st, cntPointsAwarded)+points)
	e.putContributor(c)
}

// SubmitCompositeScore credits one verified evaluation. The caller passes
// the five category scores; the weighted composite is added to the
// contributor's cumulative points. Out-of-range scores fail closed.
func (e *Engine) SubmitCompositeScore(addr state.Address, scores ScoreSet, now int64) bool {
	if !scores.Valid() {
		return false
	}
	c := e.getContributor(addr)
	if c == nil {
		return false
	}
	composite := scores.Composite()
	c.ScoreCount++
	c.LastScoredAt = now
	e.addPoints(c, composite, "score", now)
	e.emitScoreSubmitted(addr.String(), composite, c.TotalPoints, c.Tier)
	return true
}

// CompositeScore exposes the weighting as a pure query.
func (e *Engine) CompositeScore(scores ScoreSet) uint64 {
	return scores.Composite()
}

// Tier returns the contributor's current tier, RECOGNIZED for unknowns.
func (e *Engine) Tier(addr state.Address) Tier {
	c := e.getContributor(addr)
	if c == nil {
		return TierRecognized
	}
	return c.Tier
}

// VotingPower maps the contributor's tier to the 1x..5x multiplier. Unknown
// addresses hold no power.
func (e *Engine) VotingPower(addr state.Address) uint64 {
	c := e.getContributor(addr)
	if c == nil {
		return 0
	}
	return c.Tier.VotingPower()
}

// ContributorsInTier collects the addresses currently holding the tier.
func (e *Engine) ContributorsInTier(tier Tier) []state.Address {
	var out []state.Address
	for _, member := range state.IndexMembers(e.st, idxContributors) {
		addr := state.Address(member)
		if c := e.getContributor(addr); c != nil && c.Tier == tier {
			out = append(out, addr)
		}
	}
	return out
}

// ------------------------------------------------------------------
// module bonuses
// ------------------------------------------------------------------

// ApplyModuleBonus credits the catalog bonus for a completed platform
// module, once per (contributor, module) pair.
func (e *Engine) ApplyModuleBonus(addr state.Address, moduleID uint64, now int64) bool {
	points, ok := moduleBonusCatalog[moduleID]
	if !ok {
		return false
	}
	c := e.getContributor(addr)
	if c == nil {
		return false
	}
	key := bonusKey(moduleID, addr)
	if e.st.Get(key) != nil {
		return false // already claimed
	}
	e.st.Set(key, "1")
	e.addPoints(c, points, "bonus", now)
	e.emitBonusApplied(addr.String(), moduleID, points)
	return true
}

// AvailableBonuses returns the module bonus catalog.
func (e *Engine) AvailableBonuses() map[uint64]uint64 {
	out := make(map[uint64]uint64, len(moduleBonusCatalog))
	for k, v := range moduleBonusCatalog {
		out[k] = v
	}
	return out
}

// HasClaimedBonus reports whether the pair was already credited.
func (e *Engine) HasClaimedBonus(addr state.Address, moduleID uint64) bool {
	return e.st.Get(bonusKey(moduleID, addr)) != nil
}

// ------------------------------------------------------------------
// audit trail
// ------------------------------------------------------------------

// appendAudit stores one history line under the contributor's own sequence.
// The caller persists the record afterwards.
func (e *Engine) appendAudit(c *Contributor, action string, points uint64, now int64) {
	c.AuditCount++
	entry := &AuditEntry{Seq: c.AuditCount, Action: action, Points: points, Timestamp: now}
	e.st.Set(auditKey(c.Address, c.AuditCount), string(EncodeAuditEntry(entry)))
}

// AuditTrail returns the contributor's full point history in order.
func (e *Engine) AuditTrail(addr state.Address) []AuditEntry {
	c := e.getContributor(addr)
	if c == nil {
		return nil
	}
	out := make([]AuditEntry, 0, c.AuditCount)
	for seq := uint64(1); seq <= c.AuditCount; seq++ {
		ptr := e.st.Get(auditKey(addr, seq))
		if ptr == nil || *ptr == "" {
			continue
		}
		entry, err := DecodeAuditEntry([]byte(*ptr))
		if err != nil {
			continue
		}
		out = append(out, *entry)
	}
	return out
}
