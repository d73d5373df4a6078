package oracle

import "fmt"

func (o *Oracle) emit(line string) {
	if o.log != nil {
		o.log(line)
	}
}

// emitSubmitted writes a tiny "ss" log for every scored submission.
func (o *Oracle) emitSubmitted(id string, by string) {
	o.emit(fmt.Sprintf("ss|id:%s|by:%s", id, by))
}

// emitVerified replays the resulting level so escalation can be followed
// from logs only.
func (o *Oracle) emitVerified(id string, by string, approved bool, lvl VerificationLevel) {
	o.emit(fmt.Sprintf("vs|id:%s|by:%s|ok:%t|lvl:%s", id, by, approved, lvl.String()))
}

// emitForwarded marks the single DAO hand-off per submission.
func (o *Oracle) emitForwarded(id string, contributor string) {
	o.emit(fmt.Sprintf("fw|id:%s|by:%s", id, contributor))
}

// emitVerifierChange covers both registration and removal.
func (o *Oracle) emitVerifierChange(addr string, added bool) {
	o.emit(fmt.Sprintf("vr|by:%s|on:%t", addr, added))
}

// emitChallenge logs creation and resolution of disputes.
func (o *Oracle) emitChallenge(id string, subID string, action string) {
	o.emit(fmt.Sprintf("ch|id:%s|sub:%s|a:%s", id, subID, action))
}
