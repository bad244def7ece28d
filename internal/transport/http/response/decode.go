package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// DecodeJSON decodes a JSON request body into dst. It rejects trailing
// data ({}{}). Callers decide how a malformed body maps onto their
// endpoint's error contract.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return err
	}

	// Decode one more time; it must be EOF.
	if err := dec.Decode(&struct{}{}); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	return errors.New("multiple JSON values")
}
