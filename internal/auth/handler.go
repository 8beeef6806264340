package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/response"
)

// Handler holds HTTP handlers for auth endpoints.
type Handler struct {
	svc  *Service
	gate *Gate
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *Service, gate *Gate) *Handler {
	return &Handler{svc: svc, gate: gate}
}

type loginRequest struct {
	Email    string `json:"email"    example:"admin@example.com"`
	Password string `json:"password" example:"s3cret"`
}

type loginData struct {
	Token string `json:"token" example:"eyJhbGci..."`
	Email string `json:"email" example:"admin@example.com"`
}

type sessionData struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	Email         string `json:"email,omitempty" example:"admin@example.com"`
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Signs an admin in with email and password and returns a JWT bearer token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	response.Envelope{data=loginData}
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "email and password are required")
		return
	}

	token, admin, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, "invalid email or password")
			return
		}
		response.InternalError(w)
		return
	}

	h.gate.Set(Session{AdminID: admin.ID, Email: admin.Email})

	response.OK(w, loginData{Token: token, Email: admin.Email})
}

// Logout godoc
//
//	@Summary		Admin logout
//	@Description	Clears the mirrored session state. Tokens expire on their own.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=sessionData}
//	@Router			/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Clear()
	response.OK(w, sessionData{Authenticated: false})
}

// CurrentSession godoc
//
//	@Summary		Current session
//	@Description	Reports whether an admin session is currently active.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=sessionData}
//	@Router			/auth/session [get]
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	data := sessionData{Authenticated: h.gate.Authenticated()}
	if s := h.gate.Current(); s != nil {
		data.Email = s.Email
	}
	response.OK(w, data)
}
