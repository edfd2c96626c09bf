package couch

import "net/http"

// Outcome is the symbolic result of resolving a response status code against
// the protocol contract.
type Outcome int

// Outcomes the protocol can produce.
const (
	OK Outcome = iota
	Created
	Accepted
	NotFound
	Conflict
	PreconditionFailed
	InternalServerError
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Created:
		return "created"
	case Accepted:
		return "accepted"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case PreconditionFailed:
		return "precondition_failed"
	case InternalServerError:
		return "internal_server_error"
	}
	return "unknown"
}

// statusTable maps every status code the server may legally return to its
// outcome. A code absent from this table is a gap in the protocol contract,
// not a runtime condition; resolve refuses to guess.
var statusTable = map[int]Outcome{
	http.StatusOK:                  OK,
	http.StatusCreated:             Created,
	http.StatusAccepted:            Accepted,
	http.StatusNotFound:            NotFound,
	http.StatusConflict:            Conflict,
	http.StatusPreconditionFailed:  PreconditionFailed,
	http.StatusInternalServerError: InternalServerError,
}

func resolve(status int) (Outcome, error) {
	o, ok := statusTable[status]
	if !ok {
		return 0, &UnmappedStatus{Status: status}
	}
	return o, nil
}
