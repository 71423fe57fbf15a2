package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/itinerary/internal/handler/gen"
)

// writeError writes body as JSON. It serves the error paths that run before
// a Server method is reached, where no typed response object exists.
func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client may have gone away; nothing useful to do.
	json.NewEncoder(w).Encode(body)
}
