package api

import (
	"errors"
	"net/http"

	reqdto "expo-gateway/internal/handler/dto/request"
	resdto "expo-gateway/internal/handler/dto/response"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/usecase/commands"
	"expo-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationCommands commands.RegistrationCommands
}

func NewRegistrationHandler(registrationCommands commands.RegistrationCommands) *RegistrationHandler {
	return &RegistrationHandler{
		registrationCommands: registrationCommands,
	}
}

// @Summary Quote a new registration
// @Description Validate the form, obtain the authoritative price and open a pending confirmation
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRegistrationRequest true "Registration form"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /registrations/quote [post]
func (h *RegistrationHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Molimo popunite sva obavezna polja ispravno.",
		})
		return
	}

	quote, err := h.registrationCommands.Quote(c.Request.Context(), req.ToForm())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoDaysSelected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Morate izabrati bar jedan dan.",
			})
		case errors.Is(err, errs.ErrInvalidAttendees):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Broj osoba mora biti najmanje 1.",
			})
		case errors.Is(err, errs.ErrUnknownDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Izabran je nepostojeći dan.",
			})
		case errors.Is(err, errs.ErrBackendUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Nije moguće kontaktirati server.",
			})
		case errors.Is(err, errs.ErrPriceComputation):
			c.JSON(backendStatus(err, http.StatusBadGateway), gin.H{
				"error": shared.RejectionDetails(err, "Ne mogu da izračunam cenu."),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Interna greška servera.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteResult(quote))
}

// @Summary Confirm a quoted registration
// @Description Submit the registration bound to a pending confirmation
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmRequest true "Confirmation id"
// @Success 201 {object} resdto.RegisterOutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /registrations/confirm [post]
func (h *RegistrationHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Nevažeći zahtev.",
		})
		return
	}

	outcome, err := h.registrationCommands.Confirm(c.Request.Context(), req.ConfirmationID)
	if err != nil {
		switch {
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
				"error": shared.RejectionDetails(err, "Greška pri registraciji."),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterOutcome(outcome))
}
