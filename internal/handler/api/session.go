package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	reqdto "expo-gateway/internal/handler/dto/request"
	resdto "expo-gateway/internal/handler/dto/response"
	"expo-gateway/internal/handler/middleware"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/pkg/cookie"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/usecase/commands"
	"expo-gateway/internal/usecase/queries"
	"expo-gateway/internal/usecase/readmodel"
	"expo-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionCommands commands.SessionCommands
	sessionQueries  queries.SessionQueries
	cfg             config.Config
}

func NewSessionHandler(sessionCommands commands.SessionCommands, sessionQueries queries.SessionQueries, cfg config.Config) *SessionHandler {
	return &SessionHandler{
		sessionCommands: sessionCommands,
		sessionQueries:  sessionQueries,
		cfg:             cfg,
	}
}

// @Summary Login with registration token
// @Description Authenticate against the backend with email and token, start an edit session
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unesite email i token.",
		})
		return
	}

	result, err := h.sessionCommands.Login(c.Request.Context(), req.Email, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBackendUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Nije moguće kontaktirati server.",
			})
		default:
			// Backend login rejections carry their own details ("Nije
			// pronađeno" etc.) and must surface verbatim.
			c.JSON(backendStatus(err, http.StatusBadGateway), gin.H{
				"error": shared.RejectionDetails(err, "Greška pri prijavi."),
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, result.CookieToken, h.cfg.Session.TTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{Session: result.Session})
}

// @Summary Get session state
// @Description Get the record, edit state, candidate price and guard flags
// @Tags session
// @Produce json
// @Success 200 {object} readmodel.SessionRM
// @Failure 401 {object} map[string]string
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Interna greška servera."})
		return
	}

	sessionRM, err := h.sessionQueries.GetSession(c.Request.Context(), id)
	if err != nil {
		h.respondSessionError(c, err, "Greška pri učitavanju prijave.")
		return
	}

	c.JSON(http.StatusOK, sessionRM)
}

// @Summary Change day selection and attendee count
// @Description Apply an edit and synchronously reconcile the candidate price
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.SelectionRequest true "New selection"
// @Success 200 {object} readmodel.SessionRM
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /session/selection [put]
func (h *SessionHandler) UpdateSelection(c *gin.Context) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Interna greška servera."})
		return
	}

	var req reqdto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Nevažeći zahtev.",
		})
		return
	}

	sessionRM, err := h.sessionCommands.ChangeSelection(c.Request.Context(), id, req.DayIDs, req.Attendees)
	if err != nil {
		h.respondSessionError(c, err, "Greška pri izmeni izbora.")
		return
	}

	// A failed price recompute is part of the state, not an HTTP error.
	c.JSON(http.StatusOK, sessionRM)
}

// @Summary Quote a registration update
// @Description Open a pending confirmation for the current edits
// @Tags session
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /session/update/quote [post]
func (h *SessionHandler) QuoteUpdate(c *gin.Context) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Interna greška servera."})
		return
	}

	quote, err := h.sessionCommands.QuoteUpdate(c.Request.Context(), id)
	if err != nil {
		h.respondSessionError(c, err, "Greška pri ažuriranju prijave.")
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteResult(quote))
}

// @Summary Confirm a registration update
// @Description Submit the update bound to a pending confirmation
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmRequest true "Confirmation id"
// @Success 200 {object} readmodel.SessionRM
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /session/update/confirm [post]
func (h *SessionHandler) ConfirmUpdate(c *gin.Context) {
	h.confirm(c, h.sessionCommands.ConfirmUpdate, "Greška pri ažuriranju prijave.")
}

// @Summary Quote a cancellation
// @Description Open a pending cancellation confirmation
// @Tags session
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /session/cancel/quote [post]
func (h *SessionHandler) QuoteCancel(c *gin.Context) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Interna greška servera."})
		return
	}

	quote, err := h.sessionCommands.QuoteCancel(c.Request.Context(), id)
	if err != nil {
		h.respondSessionError(c, err, "Greška pri otkazivanju.")
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteResult(quote))
}

// @Summary Confirm a cancellation
// @Description Cancel the registration bound to a pending confirmation
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmRequest true "Confirmation id"
// @Success 200 {object} readmodel.SessionRM
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /session/cancel/confirm [post]
func (h *SessionHandler) ConfirmCancel(c *gin.Context) {
	h.confirm(c, h.sessionCommands.ConfirmCancel, "Greška pri otkazivanju.")
}

// @Summary Dismiss an open confirmation
// @Description Close the pending confirmation without submitting
// @Tags session
// @Produce json
// @Success 200 {object} readmodel.SessionRM
// @Failure 401 {object} map[string]string
// @Router /session/dismiss [post]
func (h *SessionHandler) Dismiss(c *gin.Context) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Interna greška servera."})
		return
	}

	sessionRM, err := h.sessionCommands.Dismiss(c.Request.Context(), id)
	if err != nil {
		h.respondSessionError(c, err, "Greška pri odustajanju.")
		return
	}

	c.JSON(http.StatusOK, sessionRM)
}

// @Summary Download the confirmation document
// @Description Download the latest confirmation PDF
// @Tags session
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /session/document [get]
func (h *SessionHandler) GetDocument(c *gin.Context) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Interna greška servera."})
		return
	}

	name, data, err := h.sessionQueries.GetDocument(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoDocument):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Dokument nije dostupan.",
			})
		default:
			h.respondSessionError(c, err, "Greška pri preuzimanju dokumenta.")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Logout
// @Description Drop the edit session and clear the cookie
// @Tags session
// @Success 204 "No Content"
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	if id, ok := middleware.GetSessionID(c); ok {
		_ = h.sessionCommands.Logout(c.Request.Context(), id)
	}
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// confirm binds the confirmation id and runs the commit shared by update and
// cancel; the flows differ only in the command and the fallback message.
func (h *SessionHandler) confirm(c *gin.Context, fn func(context.Context, uuid.UUID, uuid.UUID) (*readmodel.SessionRM, error), fallback string) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Interna greška servera."})
		return
	}

	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Nevažeći zahtev.",
		})
		return
	}

	sessionRM, err := fn(c.Request.Context(), id, req.ConfirmationID)
	if err != nil {
		h.respondSessionError(c, err, fallback)
		return
	}

	c.JSON(http.StatusOK, sessionRM)
}

func (h *SessionHandler) respondSessionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound), errors.Is(err, errs.ErrSessionExpired):
		cookie.ClearSessionCookie(c, h.cfg.Cookie)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sesija je istekla. Prijavite se ponovo.",
		})
	case errors.Is(err, errs.ErrRecordCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Prijava je već otkazana.",
		})
	case errors.Is(err, errs.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Zahtev je već u obradi.",
		})
	case errors.Is(err, errs.ErrNoDaysSelected):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Morate izabrati bar jedan dan.",
		})
	case errors.Is(err, errs.ErrEmailMissing):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Nedostaje email prijave.",
		})
	case errors.Is(err, errs.ErrConfirmationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Potvrda nije pronađena ili je već iskorišćena.",
		})
	case errors.Is(err, errs.ErrConfirmationExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Potvrda je istekla. Zatražite novu ponudu.",
		})
	case errors.Is(err, errs.ErrBackendUnreachable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Nije moguće kontaktirati server.",
		})
	default:
		c.JSON(backendStatus(err, http.StatusBadGateway), gin.H{
			"error": shared.RejectionDetails(err, fallback),
		})
	}
}
