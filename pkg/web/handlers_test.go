package web

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/missdeer/mergepdf/internal/testpdf"
)

type upload struct {
	field, name string
	data        []byte
}

func multipartBody(t *testing.T, uploads []upload, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := mw.CreateFormFile(u.field, u.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(u.data); err != nil {
			t.Fatal(err)
		}
	}
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, mw.FormDataContentType()
}

func doRequest(t *testing.T, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	NewServer(":0", 1).Handler.ServeHTTP(rec, req)
	return rec
}

func TestMergeEndpoint(t *testing.T) {
	body, contentType := multipartBody(t, []upload{
		{"files", "a.pdf", testpdf.New(t, 2)},
		{"files", "b.pdf", testpdf.New(t, 2)},
	}, nil)
	rec := doRequest(t, http.MethodPost, "/merge", body, contentType)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-PDFMerger-Merged-Count"); got != "2" {
		t.Errorf("X-PDFMerger-Merged-Count = %q, want 2", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
	if got := testpdf.NumPages(t, rec.Body.Bytes()); got != 4 {
		t.Errorf("merged output has %d pages, want 4", got)
	}
}

func TestMergeEncryptedWithOverride(t *testing.T) {
	body, contentType := multipartBody(t, []upload{
		{"files", "locked.pdf", testpdf.NewEncrypted(t, 1, "secret")},
	}, map[string]string{"file_passwords[locked.pdf]": "secret"})
	rec := doRequest(t, http.MethodPost, "/merge", body, contentType)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-PDFMerger-Merged-Count"); got != "1" {
		t.Errorf("X-PDFMerger-Merged-Count = %q, want 1", got)
	}
}

func TestMergeSkippedHeaders(t *testing.T) {
	body, contentType := multipartBody(t, []upload{
		{"files", "good.pdf", testpdf.New(t, 1)},
		{"files", "bad.pdf", []byte("corrupt")},
	}, nil)
	rec := doRequest(t, http.MethodPost, "/merge", body, contentType)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-PDFMerger-Skipped"); got != "bad.pdf" {
		t.Errorf("X-PDFMerger-Skipped = %q, want bad.pdf", got)
	}
	if got := rec.Header().Get("X-PDFMerger-Skipped-Count"); got != "1" {
		t.Errorf("X-PDFMerger-Skipped-Count = %q, want 1", got)
	}
}

func TestMergeNothingMerged(t *testing.T) {
	body, contentType := multipartBody(t, []upload{
		{"files", "bad.pdf", []byte("corrupt")},
	}, nil)
	rec := doRequest(t, http.MethodPost, "/merge", body, contentType)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bad.pdf") {
		t.Errorf("error message %q does not name the skipped file", rec.Body.String())
	}
}

func TestMergeNoUploads(t *testing.T) {
	body, contentType := multipartBody(t, nil, map[string]string{"shared_password": "x"})
	rec := doRequest(t, http.MethodPost, "/merge", body, contentType)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMergeForm(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/merge", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q, want html", rec.Header().Get("Content-Type"))
	}
}

func TestImagesEndpoint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatal(err)
	}

	body, contentType := multipartBody(t, []upload{
		{"images", "photo.png", pngBuf.Bytes()},
	}, nil)
	rec := doRequest(t, http.MethodPost, "/images-to-pdf", body, contentType)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Images-Processed"); got != "1" {
		t.Errorf("X-Images-Processed = %q, want 1", got)
	}
	if got := testpdf.NumPages(t, rec.Body.Bytes()); got != 1 {
		t.Errorf("output has %d pages, want 1", got)
	}
}

func TestImagesNothingConverted(t *testing.T) {
	body, contentType := multipartBody(t, []upload{
		{"images", "bad.bin", []byte("not an image")},
	}, nil)
	rec := doRequest(t, http.MethodPost, "/images-to-pdf", body, contentType)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bad.bin") {
		t.Errorf("error message %q does not name the skipped file", rec.Body.String())
	}
}

func TestHomeNotFound(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/nope", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
