package httpx

import (
	"encoding/json"
	"io"
	"net/http"
)

type Response struct {
	*http.Response
	err error
}

func (r *Response) JSONReceive(val any) error {
	if r.err != nil {
		return r.err
	}
	err := json.NewDecoder(r.Body).Decode(&val)
	return err
}

// Bytes reads the full response body. Callers that don't need JSON
// decoding (RSS/Atom XML, raw HTML) use this instead of JSONReceive.
func (r *Response) Bytes() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
