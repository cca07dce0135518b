package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it with the given status code and a
// Content-Type of application/json.
//
// If marshaling fails it responds with 500 Internal Server Error and returns
// the wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := marshal(w, data)
	if err != nil {
		return 0, err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteJSONP writes data as the argument of a call to callback, e.g.
// jsonFlickrApi({...}), with a Content-Type of text/javascript.
func WriteJSONP(w http.ResponseWriter, callback string, data any, statusCode int) (int, error) {
	body, err := marshal(w, data)
	if err != nil {
		return 0, err
	}

	w.Header().Set("Content-Type", "text/javascript")
	w.WriteHeader(statusCode)

	return fmt.Fprintf(w, "%s(%s)", callback, body)
}

func marshal(w http.ResponseWriter, data any) ([]byte, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return nil, fmt.Errorf("error writing data to JSON: %w", err)
	}
	return body, nil
}
