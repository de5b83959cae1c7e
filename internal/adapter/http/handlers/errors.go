package handlers

import (
	"net/http"

	"github.com/Fikriansyah-12/habitus-fe/pkg"
)

// mapUpstreamError wraps a backend rejection in the shared error envelope.
// The backend message already carries the operator-facing detail, so it is
// surfaced verbatim.
func mapUpstreamError(err error) *pkg.AppError {
	return pkg.NewDomainError("UPSTREAM_REJECTED", err.Error(), err, http.StatusUnprocessableEntity)
}
