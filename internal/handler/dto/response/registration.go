package response

import (
	"expo-gateway/internal/usecase/commands"

	"github.com/google/uuid"
)

// QuoteResponse is the reviewable half of the quote→confirm protocol.
// FinalPrice is omitted for cancellation quotes.
type QuoteResponse struct {
	ConfirmationID uuid.UUID `json:"confirmationId"`
	Summary        string    `json:"summary"`
	FinalPrice     *float64  `json:"finalnaCena,omitempty"`
}

func FromQuoteResult(res *commands.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		ConfirmationID: res.ConfirmationID,
		Summary:        res.Summary,
		FinalPrice:     res.FinalPrice,
	}
}

// RegisterOutcomeResponse reports a committed registration. Document holds
// the confirmation PDF (base64 in JSON) and is omitted when rendering failed;
// the registration itself is still valid in that case.
type RegisterOutcomeResponse struct {
	Token              string  `json:"token"`
	OriginalPrice      float64 `json:"originalPrice"`
	FinalPrice         float64 `json:"finalPrice"`
	GeneratedPromoCode string  `json:"generatedPromoKod,omitempty"`
	DocumentName       string  `json:"documentName,omitempty"`
	Document           []byte  `json:"document,omitempty"`
}

func FromRegisterOutcome(res *commands.RegisterOutcome) *RegisterOutcomeResponse {
	return &RegisterOutcomeResponse{
		Token:              res.Token,
		OriginalPrice:      res.OriginalPrice,
		FinalPrice:         res.FinalPrice,
		GeneratedPromoCode: res.GeneratedPromoCode,
		DocumentName:       res.DocumentName,
		Document:           res.Document,
	}
}
