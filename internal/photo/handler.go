package photo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fotowall/service/internal/response"
)

// parseMemory is the in-memory threshold for multipart parsing; larger files
// spool to disk. Not a size limit — the per-file ceiling is MaxFileSize.
const parseMemory = 32 << 20

// Handler holds HTTP handlers for gallery endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new gallery Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type jsonUploadRequest struct {
	URL      string   `json:"url"      example:"data:image/png;base64,iVBORw0..."`
	Category Category `json:"category" example:"interior"`
	Password string   `json:"password"`
}

type deletedData struct {
	Message string `json:"message" example:"photo deleted successfully"`
}

// List godoc
//
//	@Summary		List photos
//	@Description	Returns all non-deleted photos, newest first. Category filtering is done client-side.
//	@Tags			photos
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]Photo}
//	@Failure		500	{object}	response.Envelope
//	@Router			/photos [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch photos")
		return
	}
	response.OK(w, photos)
}

// Upload godoc
//
//	@Summary		Upload photos
//	@Description	Accepts multipart form data (one or more "file" parts plus "category" and "password" fields) or a JSON body with a base64 data URI. Best-effort batch: the response lists stored photos and per-file failures separately.
//	@Tags			photos
//	@Accept			mpfd
//	@Accept			json
//	@Produce		json
//	@Param			file		formData	file	false	"Image file(s), at most 10 MiB each"
//	@Param			category	formData	string	false	"interior or certificate"
//	@Param			password	formData	string	false	"Upload password for the chosen category"
//	@Success		200	{object}	response.Envelope{data=UploadResult}
//	@Failure		400	{object}	response.Envelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/photos [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		h.uploadJSON(w, r)
		return
	}
	h.uploadMultipart(w, r)
}

func (h *Handler) uploadMultipart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(parseMemory); err != nil {
		response.BadRequest(w, ErrMissingFields.Error())
		return
	}

	headers := r.MultipartForm.File["file"]
	files := make([]File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			response.InternalError(w)
			return
		}
		defer f.Close()
		files = append(files, File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Data:        f,
		})
	}

	result, err := h.svc.Upload(
		r.Context(),
		files,
		Category(r.FormValue("category")),
		r.FormValue("password"),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, result)
}

func (h *Handler) uploadJSON(w http.ResponseWriter, r *http.Request) {
	var req jsonUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.svc.UploadDataURI(r.Context(), req.URL, req.Category, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, &UploadResult{Uploaded: []Photo{*p}})
}

// Delete godoc
//
//	@Summary		Delete a photo
//	@Description	Soft-deletes a photo after checking the password query parameter. Idempotent; the stored object is not removed.
//	@Tags			photos
//	@Produce		json
//	@Param			id			path	string	true	"Photo ID"
//	@Param			password	query	string	true	"Delete password"
//	@Success		200	{object}	response.Envelope{data=deletedData}
//	@Failure		400	{object}	response.Envelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/photos/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	password := r.URL.Query().Get("password")

	if err := h.svc.Delete(r.Context(), id, password); err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, deletedData{Message: "photo deleted successfully"})
}

// writeServiceError maps service errors onto the HTTP taxonomy:
// validation 400, credential mismatch 401, unknown id 404, the rest 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrUnknownCategory),
		errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrPasswordRequired):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrUnauthorized):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w)
	}
}
