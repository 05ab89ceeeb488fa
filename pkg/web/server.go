// Package web is the upload front end: multipart PDFs in, one merged
// unlocked PDF out, plus the image-batch conversion endpoint.
package web

import (
	"net/http"

	"github.com/missdeer/golib/semaphore"
	uuid "github.com/satori/go.uuid"
)

// Uploads beyond this stay on disk via the multipart reader.
const maxUploadMemory = 64 << 20

var sema = semaphore.New(4)

// NewServer builds the HTTP server. maxConcurrent caps how many
// merge/convert requests run at once; requests over the cap wait.
func NewServer(addr string, maxConcurrent int) *http.Server {
	if maxConcurrent > 0 {
		sema = semaphore.New(maxConcurrent)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", withRequestID(handleHome))
	mux.HandleFunc("/merge", withRequestID(handleMerge))
	mux.HandleFunc("/images-to-pdf", withRequestID(handleImages))
	return &http.Server{Addr: addr, Handler: mux}
}

// withRequestID tags every request with an id for log correlation and
// echoes it back to the client.
func withRequestID(h func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewV4().String()
		w.Header().Set("X-Request-Id", id)
		h(w, r, id)
	}
}
