package v1

import (
	fne_uuid "github.com/fne-platform/hours-backend/internal/uuid"
)

// URIContract binds the contract ID from the request path.
type URIContract struct {
	ID fne_uuid.UUID `uri:"id" binding:"required"`
}

// URILedgerEntry binds a contract and ledger entry ID from the request path.
type URILedgerEntry struct {
	ID      fne_uuid.UUID `uri:"id" binding:"required"`
	EntryID fne_uuid.UUID `uri:"entryId" binding:"required"`
}
