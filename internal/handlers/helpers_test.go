package handlers

import (
	"encoding/json"
	"net/http/httptest"
)

func decodeBody(w *httptest.ResponseRecorder, out interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), out)
}
