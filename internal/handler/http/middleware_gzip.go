package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/gophertalk/internal/utils"
)

var gzipReaders sync.Pool

// pooledGzipBody inflates a request body and hands its reader back to the
// pool on Close. net/http only closes the body it created, so withGZipRequest
// closes the wrapper itself.
type pooledGzipBody struct {
	zr     *gzip.Reader
	body   interface{ Close() error }
	closed bool
}

func (b *pooledGzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *pooledGzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	b.zr.Close()
	gzipReaders.Put(b.zr)
	return b.body.Close()
}

func acquireGzipReader(req *http.Request) (*gzip.Reader, error) {
	if zr, ok := gzipReaders.Get().(*gzip.Reader); ok {
		if err := zr.Reset(req.Body); err != nil {
			gzipReaders.Put(zr)
			return nil, err
		}
		return zr, nil
	}
	return gzip.NewReader(req.Body)
}

// withGZipRequest inflates bodies sent with "Content-Encoding: gzip".
// Responses are compressed by chi's Compress middleware.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body == nil || !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zr, err := acquireGzipReader(req)
		if err != nil {
			utils.WriteDetail(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}

		body := &pooledGzipBody{zr: zr, body: req.Body}
		defer body.Close()

		req.Body = body
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}
