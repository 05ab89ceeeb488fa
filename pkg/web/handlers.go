package web

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/missdeer/mergepdf/pkg/imgpdf"
	"github.com/missdeer/mergepdf/pkg/merge"
)

func handleHome(w http.ResponseWriter, r *http.Request, id string) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, homePage)
}

func handleMerge(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, mergePage)
		return
	case http.MethodPost:
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sema.Acquire()
	defer sema.Release()

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "No PDF files were uploaded.", http.StatusBadRequest)
		return
	}
	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		http.Error(w, "No PDF files were uploaded.", http.StatusBadRequest)
		return
	}

	sharedPassword := r.FormValue("shared_password")
	overrides := filePasswords(r.MultipartForm.Value)

	var sources []merge.Source
	for _, header := range uploads {
		if header.Filename == "" {
			continue
		}
		f, err := header.Open()
		if err != nil {
			log.Printf("[%s] cannot open upload %q: %v", id, header.Filename, err)
			continue
		}
		defer f.Close()
		sources = append(sources, merge.Source{
			Name:     header.Filename,
			Reader:   f,
			Password: overrides[header.Filename],
		})
	}
	if len(sources) == 0 {
		http.Error(w, "No valid PDF files were provided.", http.StatusBadRequest)
		return
	}

	result, err := merge.Streams(sources, sharedPassword)
	if err != nil {
		log.Printf("[%s] writing merged output failed: %v", id, err)
		http.Error(w, "Unable to merge the provided PDFs.", http.StatusInternalServerError)
		return
	}
	if result.Buffer == nil {
		message := "Unable to merge the provided PDFs."
		if len(result.SkippedFiles) > 0 {
			message = fmt.Sprintf("Unable to merge the provided PDFs. Skipped: %s.",
				strings.Join(result.SkippedFiles, ", "))
		}
		http.Error(w, message, http.StatusBadRequest)
		return
	}

	if len(result.SkippedFiles) > 0 {
		w.Header().Set("X-PDFMerger-Skipped", strings.Join(result.SkippedFiles, ","))
		w.Header().Set("X-PDFMerger-Skipped-Count", strconv.Itoa(result.SkippedCount))
	}
	w.Header().Set("X-PDFMerger-Merged-Count", strconv.Itoa(result.MergedCount))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="merged_unlocked.pdf"`)
	w.Write(result.Buffer.Bytes())
	log.Printf("[%s] merged %d, skipped %d", id, result.MergedCount, result.SkippedCount)
}

func handleImages(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, imagesPage)
		return
	case http.MethodPost:
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sema.Acquire()
	defer sema.Release()

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "No image files were uploaded.", http.StatusBadRequest)
		return
	}
	uploads := r.MultipartForm.File["images"]
	if len(uploads) == 0 {
		http.Error(w, "No image files were uploaded.", http.StatusBadRequest)
		return
	}

	var sources []imgpdf.Source
	for _, header := range uploads {
		if header.Filename == "" {
			continue
		}
		f, err := header.Open()
		if err != nil {
			log.Printf("[%s] cannot open upload %q: %v", id, header.Filename, err)
			continue
		}
		defer f.Close()
		sources = append(sources, imgpdf.Source{Name: header.Filename, Reader: f})
	}
	if len(sources) == 0 {
		http.Error(w, "No valid image files were provided.", http.StatusBadRequest)
		return
	}

	result := imgpdf.Convert(sources)
	if result.Buffer == nil {
		message := "Unable to convert the provided images to PDF."
		if len(result.SkippedFiles) > 0 {
			message = fmt.Sprintf("Unable to convert the provided images to PDF. Skipped: %s.",
				strings.Join(result.SkippedFiles, ", "))
		}
		http.Error(w, message, http.StatusBadRequest)
		return
	}

	w.Header().Set("X-Images-Processed", strconv.Itoa(result.ProcessedCount))
	if len(result.SkippedFiles) > 0 {
		w.Header().Set("X-Images-Skipped", strings.Join(result.SkippedFiles, ","))
		w.Header().Set("X-Images-Skipped-Count", strconv.Itoa(result.SkippedCount))
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="images.pdf"`)
	w.Write(result.Buffer.Bytes())
	log.Printf("[%s] converted %d image(s), skipped %d", id, result.ProcessedCount, result.SkippedCount)
}

// filePasswords parses per-file override fields of the form
// file_passwords[<original filename>].
func filePasswords(form map[string][]string) map[string]string {
	const prefix = "file_passwords["
	const suffix = "]"
	passwords := make(map[string]string)
	for key, values := range form {
		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, suffix) {
			continue
		}
		filename := key[len(prefix) : len(key)-len(suffix)]
		if len(values) > 0 && values[0] != "" {
			passwords[filename] = values[0]
		}
	}
	return passwords
}
