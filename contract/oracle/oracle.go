// Package oracle implements the verification layer: scored submissions,
// a verifier allow-list, multi-party escalation to AUDIT_COMPLETE, BLAKE3
// evidence hashing with Merkle proofs, and dispute handling. Verified
// scores cross into governance exactly once, through the ScoreSink
// capability, when a submission first completes its audit.
package oracle

import (
	"ucic_contracts/codec"
	"ucic_contracts/contract/dao"
	"ucic_contracts/state"
)

type Oracle struct {
	st    state.Store
	dao   ScoreSink
	log   state.LogFunc
	admin state.Address
}

// New wires the oracle onto its store and the governance capability. The
// admin address is the only caller allowed to manage the verifier
// allow-list and resolve challenges.
func New(st state.Store, sink ScoreSink, log state.LogFunc, admin state.Address) *Oracle {
	return &Oracle{st: st, dao: sink, log: log, admin: admin}
}

// ------------------------------------------------------------------
// submission storage
// ------------------------------------------------------------------

func (o *Oracle) getSubmission(id string) *Submission {
	ptr := o.st.Get(submissionKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	s, err := DecodeSubmission([]byte(*ptr))
	if err != nil {
		return nil
	}
	return s
}

func (o *Oracle) putSubmission(s *Submission) {
	o.st.Set(submissionKey(s.ID), string(EncodeSubmission(s)))
}

// submissionLeaves derives the Merkle leaf layer from the fields that make
// a submission what it is: contributor, the five scores, repository,
// evidence digest, and the submission time. Nine leaves, fixed order.
func submissionLeaves(s *Submission) [][]byte {
	fields := make([][]byte, 0, 9)

	w := codec.NewWriter()
	w.WriteString(s.Contributor.String())
	fields = append(fields, w.Bytes())
	for _, score := range []uint64{
		s.Scores.CodeQuality, s.Scores.Documentation, s.Scores.Testing,
		s.Scores.Innovation, s.Scores.Community,
	} {
		sw := codec.NewWriter()
		sw.WriteUint64(score)
		fields = append(fields, sw.Bytes())
	}
	rw := codec.NewWriter()
	rw.WriteString(s.RepoURL)
	fields = append(fields, rw.Bytes())
	ew := codec.NewWriter()
	ew.WriteBytes(s.EvidenceHash)
	fields = append(fields, ew.Bytes())
	tw := codec.NewWriter()
	tw.WriteInt64(s.SubmittedAt)
	fields = append(fields, tw.Bytes())

	leaves := make([][]byte, len(fields))
	for i, f := range fields {
		leaves[i] = hashLeaf(f)
	}
	return leaves
}

// deriveID hashes the submission content plus a monotonic nonce, so two
// identical submissions still get distinct ids.
func (o *Oracle) deriveID(s *Submission) string {
	nonce := state.NextID(o.st, cntSubmissions)
	w := codec.NewWriter()
	w.WriteUint64(nonce)
	w.WriteString(s.Contributor.String())
	encodeScores(w, s.Scores)
	w.WriteString(s.RepoURL)
	w.WriteBytes(s.EvidenceHash)
	w.WriteInt64(s.SubmittedAt)
	return hashHex(ComputeHash(w.Bytes()))
}

// SubmitScore records one scored contribution. Scores are validated to
// 0..100, the evidence digest must be a full BLAKE3 hash, and when the
// contributor has linked a repository the submission must reference it.
// Returns the new submission id, empty on failure.
func (o *Oracle) SubmitScore(contributor state.Address, scores dao.ScoreSet, repoURL string, evidenceHash []byte, now int64) string {
	if !contributor.IsValid() || !scores.Valid() {
		return ""
	}
	if len(evidenceHash) != HashSize {
		return ""
	}
	if link := o.LinkedRepository(contributor); link != nil && link.RepoURL != repoURL {
		return ""
	}

	s := &Submission{
		Contributor:  contributor,
		Scores:       scores,
		RepoURL:      repoURL,
		EvidenceHash: append([]byte(nil), evidenceHash...),
		SubmittedAt:  now,
		Level:        LevelUnverified,
	}
	s.ID = o.deriveID(s)
	s.MerkleRoot = merkleRoot(submissionLeaves(s))
	o.putSubmission(s)
	state.AddToIndex(o.st, subsIndex(contributor), s.ID)
	o.emitSubmitted(s.ID, contributor.String())
	return s.ID
}

// GetSubmission returns a copy of the stored record, nil when unknown.
func (o *Oracle) GetSubmission(id string) *Submission {
	return o.getSubmission(id)
}

// SubmissionsForContributor lists the ids of everything the address
// submitted, in insertion order.
func (o *Oracle) SubmissionsForContributor(addr state.Address) []string {
	return state.IndexMembers(o.st, subsIndex(addr))
}

// VerificationStatus reports the submission's current escalation level.
func (o *Oracle) VerificationStatus(id string) VerificationLevel {
	s := o.getSubmission(id)
	if s == nil {
		return LevelUnverified
	}
	return s.Level
}

// ForwardedToDAO reports whether the submission's score already crossed
// into governance.
func (o *Oracle) ForwardedToDAO(id string) bool {
	s := o.getSubmission(id)
	return s != nil && s.Forwarded
}

// ------------------------------------------------------------------
// verification
// ------------------------------------------------------------------

// VerifySubmission records one verifier action. Only registered verifiers
// may act, once per submission. The level is a pure function of the count
// of distinct approving verifiers; rejections are recorded in the chain
// but never advance it. The first time a submission reaches
// AUDIT_COMPLETE its composite score is handed to governance.
func (o *Oracle) VerifySubmission(id string, verifier state.Address, approved bool, notes string, now int64) bool {
	v := o.getVerifier(verifier)
	if v == nil || !v.Active {
		return false
	}
	s := o.getSubmission(id)
	if s == nil {
		return false
	}
	if o.st.Get(actedKey(id, verifier)) != nil {
		return false // one action per verifier per submission
	}

	o.st.Set(actedKey(id, verifier), "1")
	if approved {
		s.Approvals++
		s.Level = levelForApprovals(s.Approvals)
		v.Approvals++
		state.SetCount(o.st, cntApprovals, state.GetCount(o.st, cntApprovals)+1)
	} else {
		s.Rejections++
		v.Rejections++
		state.SetCount(o.st, cntRejections, state.GetCount(o.st, cntRejections)+1)
	}
	v.LastActionAt = now
	o.putVerifier(v)

	s.ChainCount++
	entry := &Verification{
		Seq: s.ChainCount, SubmissionID: id, Verifier: verifier,
		Approved: approved, Notes: notes, LevelAfter: s.Level, At: now,
	}
	o.st.Set(chainKey(id, s.ChainCount), string(EncodeVerification(entry)))

	// running average of time from submission to verifier action
	if now >= s.SubmittedAt {
		state.SetCount(o.st, cntVerifTimeSum, state.GetCount(o.st, cntVerifTimeSum)+uint64(now-s.SubmittedAt))
		state.SetCount(o.st, cntVerifTimeN, state.GetCount(o.st, cntVerifTimeN)+1)
	}

	if s.Level == LevelAuditComplete && s.Approvals == 3 {
		state.SetCount(o.st, cntAuditComplete, state.GetCount(o.st, cntAuditComplete)+1)
	}
	if s.Level == LevelAuditComplete && !s.Forwarded && o.dao != nil {
		if o.dao.SubmitCompositeScore(s.Contributor, s.Scores, now) {
			s.Forwarded = true
			state.SetCount(o.st, cntForwarded, state.GetCount(o.st, cntForwarded)+1)
			o.emitForwarded(s.ID, s.Contributor.String())
		}
	}
	o.putSubmission(s)
	o.emitVerified(id, verifier.String(), approved, s.Level)
	return true
}

// VerificationChain returns every recorded action for the submission in
// order, including rejections.
func (o *Oracle) VerificationChain(id string) []Verification {
	s := o.getSubmission(id)
	if s == nil {
		return nil
	}
	out := make([]Verification, 0, s.ChainCount)
	for seq := uint64(1); seq <= s.ChainCount; seq++ {
		ptr := o.st.Get(chainKey(id, seq))
		if ptr == nil || *ptr == "" {
			continue
		}
		entry, err := DecodeVerification([]byte(*ptr))
		if err != nil {
			continue
		}
		out = append(out, *entry)
	}
	return out
}

// ------------------------------------------------------------------
// repository links
// ------------------------------------------------------------------

// LinkGitRepository binds a contributor to the repository and commit their
// submissions must reference. Relinking overwrites the previous binding.
func (o *Oracle) LinkGitRepository(contributor state.Address, repoURL, commitSHA string) bool {
	if !contributor.IsValid() || repoURL == "" {
		return false
	}
	link := &RepoLink{Contributor: contributor, RepoURL: repoURL, CommitSHA: commitSHA}
	o.st.Set(repoLinkKey(contributor), string(EncodeRepoLink(link)))
	return true
}

// LinkedRepository returns the contributor's binding, nil when unset.
func (o *Oracle) LinkedRepository(contributor state.Address) *RepoLink {
	ptr := o.st.Get(repoLinkKey(contributor))
	if ptr == nil || *ptr == "" {
		return nil
	}
	link, err := DecodeRepoLink([]byte(*ptr))
	if err != nil {
		return nil
	}
	return link
}

// ------------------------------------------------------------------
// Merkle queries
// ------------------------------------------------------------------

// MerkleRoot returns the submission's stored root, nil when unknown.
func (o *Oracle) MerkleRoot(id string) []byte {
	s := o.getSubmission(id)
	if s == nil {
		return nil
	}
	return s.MerkleRoot
}

// MerkleProof rebuilds the leaf layer and returns the leaf at index plus
// its sibling path. The proof checks out against MerkleRoot(id).
func (o *Oracle) MerkleProof(id string, leafIndex int) ([]byte, []ProofStep) {
	s := o.getSubmission(id)
	if s == nil {
		return nil, nil
	}
	leaves := submissionLeaves(s)
	if leafIndex < 0 || leafIndex >= len(leaves) {
		return nil, nil
	}
	return leaves[leafIndex], merkleProof(leaves, leafIndex)
}
