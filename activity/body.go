package activity

import (
	"bytes"
	"io"
	"net/http"
)

// Capture reads body to the end and returns its text together with a fresh
// reader positioned at the start of the same bytes. The original body is
// consumed and closed, so callers must substitute the returned reader before
// handing the request on, and must not capture the same body twice.
//
// If reading fails part way, the replacement yields the bytes that were read
// and then the same error, so downstream handlers see the failure too.
func Capture(body io.ReadCloser) (string, io.ReadCloser, error) {
	if body == nil || body == http.NoBody {
		return "", http.NoBody, nil
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return string(data), io.NopCloser(io.MultiReader(bytes.NewReader(data), errReader{err})), err
	}
	return string(data), io.NopCloser(bytes.NewReader(data)), nil
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
