package card

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/compress"
	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/response"
)

// Handler holds HTTP handlers for card endpoints.
type Handler struct {
	svc            *Service
	maxUploadBytes int64
}

// NewHandler creates a new card Handler. maxUploadMB caps multipart bodies.
func NewHandler(svc *Service, maxUploadMB int) *Handler {
	return &Handler{
		svc:            svc,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

type deleteData struct {
	Deleted bool   `json:"deleted" example:"true"`
	Warning string `json:"warning,omitempty" example:"row deleted, binary cleanup failed"`
}

// List godoc
//
//	@Summary		List cards
//	@Description	Returns all gallery cards, newest first. Optionally filtered by category.
//	@Tags			cards
//	@Produce		json
//	@Param			category	query		string	false	"Category label to filter by"
//	@Success		200			{object}	response.Envelope{data=[]Card}
//	@Router			/cards [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cards := h.svc.Cards(r.URL.Query().Get("category"))
	response.OK(w, cards)
}

// Categories godoc
//
//	@Summary		List categories
//	@Description	Returns the selectable category labels: the fixed movie set plus any labels discovered in the catalog.
//	@Tags			cards
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]string}
//	@Router			/categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.Categories())
}

// Create godoc
//
//	@Summary		Upload a card
//	@Description	Compresses the uploaded image, stores it, and creates a gallery card. Admin only.
//	@Tags			cards
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			image		formData	file	true	"Image file"
//	@Param			prompt		formData	string	true	"Prompt behind the image"
//	@Param			category	formData	string	false	"Movie category label"
//	@Success		201			{object}	response.Envelope{data=Card}
//	@Failure		400			{object}	response.Envelope
//	@Failure		401			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/cards [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		response.BadRequest(w, "invalid or oversized multipart body")
		return
	}

	prompt := r.FormValue("prompt")
	if prompt == "" {
		response.BadRequest(w, "prompt is required")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "image file is required")
		return
	}
	defer file.Close()

	created, err := h.svc.Ingest(r.Context(), file, prompt, r.FormValue("category"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.BadRequest(w, err.Error())
		case errors.Is(err, compress.ErrDecode):
			response.BadRequest(w, "file could not be decoded as an image")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, created)
}

// Delete godoc
//
//	@Summary		Delete a card
//	@Description	Removes the card row, then attempts binary cleanup. Cleanup failure is reported as a warning, not an error. Admin only.
//	@Tags			cards
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Card ID"
//	@Success		200	{object}	response.Envelope{data=deleteData}
//	@Failure		401	{object}	response.Envelope
//	@Failure		403	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/cards/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "card not found")
		case errors.Is(err, ErrPermission):
			response.Forbidden(w, "delete was not applied by the metadata store")
		default:
			response.InternalError(w)
		}
		return
	}

	data := deleteData{Deleted: true}
	if result.CleanupErr != nil {
		data.Warning = "row deleted, binary cleanup failed"
	}
	response.OK(w, data)
}
