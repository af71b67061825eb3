package models

// CancelledBy identifies which party cancelled a session.
//
// swagger:enum CancelledBy
type CancelledBy string

const (
	CancelledBySchool       CancelledBy = "school"
	CancelledByFNE          CancelledBy = "fne"
	CancelledByForceMajeure CancelledBy = "force_majeure"
)

// Valid reports whether the value is one of the known cancelling parties.
func (c CancelledBy) Valid() bool {
	switch c {
	case CancelledBySchool, CancelledByFNE, CancelledByForceMajeure:
		return true
	}

	return false
}

// Notice thresholds from the contract's QUINTO clause, in hours.
const (
	onlineNoticeHours     = 48
	presencialNoticeHours = 336 // two weeks
)

// reschedulingDays is the rescheduling window granted when hours are returned.
const reschedulingDays = 30

// ClauseResult is the outcome of evaluating the cancellation clauses of a
// contract for one cancelled session.
type ClauseResult struct {
	Clause                   string       `json:"clause" example:"clause_1"`                       // Which QUINTO clause applied
	LedgerStatus             LedgerStatus `json:"ledgerStatus" example:"returned"`                 // Status the ledger entry moves to
	ConsultantPaid           bool         `json:"consultantPaid" example:"false"`                  // Whether the consultant is still paid
	ReschedulingDeadlineDays *int         `json:"reschedulingDeadlineDays" example:"30"`           // Days to reschedule, nil when hours are penalized
	Description              string       `json:"description" example:"Clausula 1 — Cancelación"` // Human readable explanation, in Spanish
}

func returnedResult(clause, description string) ClauseResult {
	days := reschedulingDays

	return ClauseResult{
		Clause:                   clause,
		LedgerStatus:             StatusReturned,
		ConsultantPaid:           false,
		ReschedulingDeadlineDays: &days,
		Description:              description,
	}
}

func penalizedResult(clause, description string) ClauseResult {
	return ClauseResult{
		Clause:                   clause,
		LedgerStatus:             StatusPenalized,
		ConsultantPaid:           true,
		ReschedulingDeadlineDays: nil,
		Description:              description,
	}
}

// EvaluateCancellationClause determines which clause of the contract applies
// to a cancellation and what happens to the reserved hours. It is a pure
// function of the session modality, the cancelling party and the notice given
// before the session start, in hours.
//
// Cancellations by FNE or force majeure always return the hours. School
// cancellations return them only with enough notice, 48 hours for online
// sessions and two weeks for presencial ones. An unknown modality is treated
// as online.
func EvaluateCancellationClause(modality Modality, cancelledBy CancelledBy, noticeHours int) (ClauseResult, error) {
	if !cancelledBy.Valid() {
		return ClauseResult{}, ErrInvalidCancelledBy
	}

	if noticeHours < 0 {
		return ClauseResult{}, ErrNegativeNotice
	}

	if cancelledBy == CancelledByFNE {
		return returnedResult("clause_6",
			"Clausula 6 — Cancelación por FNE: las horas se devuelven y se debe reprogramar dentro de 30 días (máximo hasta el fin del contrato)."), nil
	}

	if cancelledBy == CancelledByForceMajeure {
		return returnedResult("clause_5",
			"Clausula 5 — Cancelación por fuerza mayor: las horas se devuelven y se debe reprogramar dentro de 30 días."), nil
	}

	if modality == ModalityPresencial {
		if noticeHours >= presencialNoticeHours {
			return returnedResult("clause_3",
				"Clausula 3 — Cancelación presencial con aviso >= 2 semanas: las horas se devuelven. Se debe reprogramar dentro de 30 días."), nil
		}

		return penalizedResult("clause_4",
			"Clausula 4 — Cancelación presencial con aviso < 2 semanas: las horas se penalizan y el consultor tiene derecho a pago."), nil
	}

	if noticeHours >= onlineNoticeHours {
		return returnedResult("clause_1",
			"Clausula 1 — Cancelación online con aviso >= 48 horas: las horas se devuelven. Se debe reprogramar dentro de 30 días."), nil
	}

	return penalizedResult("clause_2",
		"Clausula 2 — Cancelación online con aviso < 48 horas: las horas se penalizan y el consultor tiene derecho a pago."), nil
}

// CancellationClauses returns the full clause table for client display.
func CancellationClauses() []ClauseResult {
	presencialReturned, _ := EvaluateCancellationClause(ModalityPresencial, CancelledBySchool, presencialNoticeHours)
	presencialPenalized, _ := EvaluateCancellationClause(ModalityPresencial, CancelledBySchool, 0)
	onlineReturned, _ := EvaluateCancellationClause(ModalityOnline, CancelledBySchool, onlineNoticeHours)
	onlinePenalized, _ := EvaluateCancellationClause(ModalityOnline, CancelledBySchool, 0)
	forceMajeure, _ := EvaluateCancellationClause(ModalityOnline, CancelledByForceMajeure, 0)
	fne, _ := EvaluateCancellationClause(ModalityOnline, CancelledByFNE, 0)

	return []ClauseResult{
		onlineReturned,
		onlinePenalized,
		presencialReturned,
		presencialPenalized,
		forceMajeure,
		fne,
	}
}
