package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jaipongz/site-backend/errs"
	"github.com/jaipongz/site-backend/storage"
)

// multipartMemoryLimit is how much of a multipart body is held in memory
// before spilling to temp files.
const multipartMemoryLimit = 8 << 20

// formOverheadBytes is headroom on top of the upload ceiling for the scalar
// form fields and multipart framing.
const formOverheadBytes = 1 << 20

// parseMultipartForm reads a multipart write request, capping the body at the
// upload ceiling plus form overhead.
func parseMultipartForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadBytes()+formOverheadBytes)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errs.NewMaxBodySizeExceededError(storage.MaxUploadBytes())
		}
		return errs.Malformed("multipart form")
	}
	return nil
}

// formFile returns the first file sent for the named field, or nil when the
// request carries none.
func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// resolveImage produces the value for a record's image field from a multipart
// request. A new file wins and is persisted through the upload store; with no
// file the submitted scalar is used verbatim (so an echoing caller preserves
// the previous path and an empty field clears it). uploaded reports whether a
// new file was written, so store failures can clean it up.
func resolveImage(r *http.Request, field string) (value *string, uploaded bool, err error) {
	if fileHeader := formFile(r, field); fileHeader != nil {
		path, err := storage.SaveUpload(fileHeader)
		if err != nil {
			return nil, false, err
		}
		return &path, true, nil
	}

	if v := r.FormValue(field); v != "" {
		return &v, false, nil
	}
	return nil, false, nil
}

// parseID reads a positive integer id from the named URL parameter.
func parseID(r *http.Request, param string) (uint, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + param)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("invalid " + param)
	}
	return uint(id), nil
}
