package oracle

import "ucic_contracts/state"

func (o *Oracle) getChallenge(id string) *Challenge {
	ptr := o.st.Get(challengeKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	c, err := DecodeChallenge([]byte(*ptr))
	if err != nil {
		return nil
	}
	return c
}

func (o *Oracle) putChallenge(c *Challenge) {
	o.st.Set(challengeKey(c.ID), string(EncodeChallenge(c)))
}

// ChallengeVerification opens a dispute against a submission that has at
// least one verification. Returns the challenge id, empty on failure.
func (o *Oracle) ChallengeVerification(submissionID string, challenger state.Address, reason string, now int64) string {
	if !challenger.IsValid() || reason == "" {
		return ""
	}
	s := o.getSubmission(submissionID)
	if s == nil || s.Level == LevelUnverified {
		return ""
	}

	nonce := state.NextID(o.st, cntChallenges)
	w := []byte(submissionID)
	w = state.PackU64LE(nonce, w)
	id := hashHex(ComputeHash(w))

	c := &Challenge{
		ID: id, SubmissionID: submissionID, Challenger: challenger,
		Reason: reason, CreatedAt: now,
	}
	o.putChallenge(c)
	state.AddToIndex(o.st, idxChallengesOpen, id)
	o.emitChallenge(id, submissionID, "open")
	return id
}

// GetChallenge returns the stored dispute, nil when unknown.
func (o *Oracle) GetChallenge(id string) *Challenge {
	return o.getChallenge(id)
}

// PendingChallenges lists unresolved disputes in insertion order.
func (o *Oracle) PendingChallenges() []Challenge {
	var out []Challenge
	for _, id := range state.IndexMembers(o.st, idxChallengesOpen) {
		if c := o.getChallenge(id); c != nil && !c.Resolved {
			out = append(out, *c)
		}
	}
	return out
}

// ResolveChallenge settles a dispute. Only the admin may resolve. An
// accepted challenge reverts the submission to UNVERIFIED and clears the
// approver set so the same verifiers may act again; an already-forwarded
// score is not clawed back, but the submission never re-forwards.
func (o *Oracle) ResolveChallenge(caller state.Address, challengeID string, accepted bool, now int64) bool {
	if caller != o.admin {
		return false
	}
	c := o.getChallenge(challengeID)
	if c == nil || c.Resolved {
		return false
	}

	c.Resolved = true
	c.Accepted = accepted
	c.ResolvedAt = now
	o.putChallenge(c)
	state.RemoveFromIndex(o.st, idxChallengesOpen, challengeID)

	if accepted {
		state.SetCount(o.st, cntChalAccepted, state.GetCount(o.st, cntChalAccepted)+1)
		if s := o.getSubmission(c.SubmissionID); s != nil {
			for _, entry := range o.VerificationChain(s.ID) {
				o.st.Delete(actedKey(s.ID, entry.Verifier))
			}
			s.Level = LevelUnverified
			s.Approvals = 0
			s.Challenged = true
			o.putSubmission(s)
		}
		o.emitChallenge(challengeID, c.SubmissionID, "accepted")
	} else {
		o.emitChallenge(challengeID, c.SubmissionID, "rejected")
	}
	return true
}
