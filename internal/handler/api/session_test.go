//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/handler/api"
	resdto "expo-gateway/internal/handler/dto/response"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/pkg/ptr"
	"expo-gateway/internal/usecase/commands"
	"expo-gateway/internal/usecase/readmodel"
	"expo-gateway/internal/usecase/shared"
	"expo-gateway/tests/common/builder"
	"expo-gateway/tests/common/httptest"
	"expo-gateway/tests/common/testutil"
	commandsmock "expo-gateway/tests/mock/commands"
	queriesmock "expo-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	mockQueries  *queriesmock.MockSessionQueries
	handler      *api.SessionHandler
	sessionID    uuid.UUID
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.sessionID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/session/login", s.handler.Login)
	s.router.GET("/session", s.withSession(s.handler.GetSession))
	s.router.PUT("/session/selection", s.withSession(s.handler.UpdateSelection))
	s.router.POST("/session/update/quote", s.withSession(s.handler.QuoteUpdate))
	s.router.POST("/session/update/confirm", s.withSession(s.handler.ConfirmUpdate))
	s.router.POST("/session/cancel/quote", s.withSession(s.handler.QuoteCancel))
	s.router.POST("/session/cancel/confirm", s.withSession(s.handler.ConfirmCancel))
	s.router.POST("/session/dismiss", s.withSession(s.handler.Dismiss))
	s.router.GET("/session/document", s.withSession(s.handler.GetDocument))
	s.router.POST("/session/logout", s.withSession(s.handler.Logout))
}

// withSession mimics the session middleware: a request carrying the session
// cookie gets the suite's session id injected into the context.
func (s *SessionHandlerTestSuite) withSession(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := c.Cookie("expo_session"); err == nil {
			c.Set("session_id", s.sessionID)
		}
		h(c)
	}
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) newSessionRM() *readmodel.SessionRM {
	sess := registration.NewEditSession("ana@example.com", builder.NewRecordBuilder().BuildDomain())
	rm, err := readmodel.NewSessionRM(sess.Snapshot())
	s.Require().NoError(err)
	return rm
}

func (s *SessionHandlerTestSuite) TestLogin() {
	url := "/session/login"
	reqBody := map[string]any{"email": "ana@example.com", "token": "TOK-12345"}

	s.Run("success: returns the session and sets the cookie", func() {
		rm := s.newSessionRM()
		s.mockCommands.EXPECT().Login(gomock.Any(), "ana@example.com", "TOK-12345").
			Return(&commands.LoginResult{
				SessionID:   s.sessionID,
				CookieToken: "signed-jwt",
				Session:     rm,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("TOK-12345", response.Session.Record.Token)

		cookie := httptest.ExtractCookie(rec, "expo_session")
		s.Require().NotNil(cookie)
		s.Equal("signed-jwt", cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "missing field: token (required)", mutate: testutil.Field("token", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "empty token", mutate: testutil.Field("token", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unesite email i token.")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "backend rejects the credentials with its own details",
				commandsError:  &shared.Rejection{Status: http.StatusNotFound, Details: "Nije pronađeno"},
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Nije pronađeno",
			},
			{
				name:           "backend unreachable",
				commandsError:  errs.ErrBackendUnreachable,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Nije moguće kontaktirati server.",
			},
			{
				name:           "unexplained failure uses the fallback",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Greška pri prijavi.",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), "ana@example.com", "TOK-12345").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)

				s.Nil(httptest.ExtractCookie(rec, "expo_session"))
			})
		}
	})
}

func (s *SessionHandlerTestSuite) TestGetSession() {
	url := "/session"

	s.Run("success: returns the session state", func() {
		rm := s.newSessionRM()
		s.mockQueries.EXPECT().GetSession(gomock.Any(), s.sessionID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "cookie-token")

		var response readmodel.SessionRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("TOK-12345", response.Record.Token)
		s.Equal("Otkaži prijavu", response.CancelLabel)
		s.True(response.CanUpdate)
	})

	s.Run("error: returns 500 when session_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Interna greška servera.")
	})

	s.Run("error: expired session clears the cookie and returns 401", func() {
		s.mockQueries.EXPECT().GetSession(gomock.Any(), s.sessionID).
			Return(nil, errs.ErrSessionExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "cookie-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Sesija je istekla. Prijavite se ponovo.")

		cookie := httptest.ExtractCookie(rec, "expo_session")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})
}

func (s *SessionHandlerTestSuite) TestUpdateSelection() {
	url := "/session/selection"
	reqBody := map[string]any{"expoDanIDs": []int64{2}, "brojOsoba": 3}

	s.Run("success: returns the reconciled state", func() {
		rm := s.newSessionRM()
		rm.State = string(registration.StatePriceReady)
		rm.CandidatePrice = ptr.Of(3600.0)
		s.mockCommands.EXPECT().ChangeSelection(gomock.Any(), s.sessionID, []int64{2}, 3).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "cookie-token")

		var response readmodel.SessionRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(registration.StatePriceReady), response.State)
		s.Require().NotNil(response.CandidatePrice)
		s.Equal(3600.0, *response.CandidatePrice)
	})

	s.Run("success: a price recompute failure is state, not an error status", func() {
		rm := s.newSessionRM()
		rm.State = string(registration.StatePriceError)
		rm.PriceError = "Ne mogu da izračunam novu cenu."
		s.mockCommands.EXPECT().ChangeSelection(gomock.Any(), s.sessionID, []int64{2}, 3).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "cookie-token")

		var response readmodel.SessionRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ne mogu da izračunam novu cenu.", response.PriceError)
	})

	s.Run("error: 400 Bad Request without an attendee count", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"expoDanIDs": []int64{1}}, "cookie-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Nevažeći zahtev.")
	})

	s.Run("error: cancelled record is immutable", func() {
		s.mockCommands.EXPECT().ChangeSelection(gomock.Any(), s.sessionID, []int64{2}, 3).
			Return(nil, errs.ErrRecordCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "cookie-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Prijava je već otkazana.")
	})
}

func (s *SessionHandlerTestSuite) TestQuoteUpdate() {
	url := "/session/update/quote"

	s.Run("success: returns the pending confirmation", func() {
		quote := &commands.QuoteResult{
			ConfirmationID: uuid.New(),
			Summary:        "Broj osoba: 3",
			FinalPrice:     ptr.Of(3600.0),
		}
		s.mockCommands.EXPECT().QuoteUpdate(gomock.Any(), s.sessionID).
			Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "cookie-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(quote.ConfirmationID, response.ConfirmationID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no days selected",
				commandsError:  errs.ErrNoDaysSelected,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Morate izabrati bar jedan dan.",
			},
			{
				name:           "submission already in flight",
				commandsError:  errs.ErrSubmissionInFlight,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Zahtev je već u obradi.",
			},
			{
				name:           "session gone",
				commandsError:  errs.ErrSessionNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Sesija je istekla. Prijavite se ponovo.",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().QuoteUpdate(gomock.Any(), s.sessionID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "cookie-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SessionHandlerTestSuite) TestConfirmUpdate() {
	url := "/session/update/confirm"
	confirmationID := uuid.New()
	reqBody := map[string]any{"confirmationId": confirmationID}

	s.Run("success: returns the refreshed session state", func() {
		rm := s.newSessionRM()
		rm.HasDocument = true
		s.mockCommands.EXPECT().ConfirmUpdate(gomock.Any(), s.sessionID, confirmationID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "cookie-token")

		var response readmodel.SessionRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.HasDocument)
	})

	s.Run("error: 400 Bad Request without a confirmation id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "cookie-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Nevažeći zahtev.")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "confirmation not found",
				commandsError:  errs.ErrConfirmationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Potvrda nije pronađena ili je već iskorišćena.",
			},
			{
				name:           "confirmation expired",
				commandsError:  errs.ErrConfirmationExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "Potvrda je istekla. Zatražite novu ponudu.",
			},
			{
				name:           "backend rejection surfaces its details",
				commandsError:  &shared.Rejection{Status: http.StatusConflict, Details: "Prijava je zaključana"},
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Prijava je zaključana",
			},
			{
				name:           "unexplained failure uses the fallback",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Greška pri ažuriranju prijave.",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmUpdate(gomock.Any(), s.sessionID, confirmationID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "cookie-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SessionHandlerTestSuite) TestCancelFlow() {
	s.Run("success: quote returns the cancellation confirmation", func() {
		quote := &commands.QuoteResult{
			ConfirmationID: uuid.New(),
			Summary:        "Otkazivanjem prijave vaš token postaje nevažeći. Nastaviti?",
		}
		s.mockCommands.EXPECT().QuoteCancel(gomock.Any(), s.sessionID).
			Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session/cancel/quote", nil, "cookie-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(quote.Summary, response.Summary)
		s.Nil(response.FinalPrice)
	})

	s.Run("error: quoting a cancelled record returns 409", func() {
		s.mockCommands.EXPECT().QuoteCancel(gomock.Any(), s.sessionID).
			Return(nil, errs.ErrRecordCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session/cancel/quote", nil, "cookie-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Prijava je već otkazana.")
	})

	s.Run("success: confirm returns the cancelled state", func() {
		confirmationID := uuid.New()
		rm := s.newSessionRM()
		rm.Record.IsCancelled = true
		rm.Record.Status = registration.StatusCancelled
		rm.CancelLabel = "Već otkazano"
		rm.CanCancel = false
		s.mockCommands.EXPECT().ConfirmCancel(gomock.Any(), s.sessionID, confirmationID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session/cancel/confirm",
			map[string]any{"confirmationId": confirmationID}, "cookie-token")

		var response readmodel.SessionRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Record.IsCancelled)
		s.Equal("Već otkazano", response.CancelLabel)
	})
}

func (s *SessionHandlerTestSuite) TestDismiss() {
	s.Run("success: returns the reverted state", func() {
		rm := s.newSessionRM()
		s.mockCommands.EXPECT().Dismiss(gomock.Any(), s.sessionID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session/dismiss", nil, "cookie-token")

		var response readmodel.SessionRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(registration.StateViewing), response.State)
	})
}

func (s *SessionHandlerTestSuite) TestGetDocument() {
	url := "/session/document"

	s.Run("success: streams the PDF as an attachment", func() {
		s.mockQueries.EXPECT().GetDocument(gomock.Any(), s.sessionID).
			Return("Prijava_TOK-12345.pdf", []byte("%PDF-1.4"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "cookie-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/pdf", rec.Header().Get("Content-Type"))
		s.Equal(`attachment; filename="Prijava_TOK-12345.pdf"`, rec.Header().Get("Content-Disposition"))
		s.Equal("%PDF-1.4", rec.Body.String())
	})

	s.Run("error: 404 when no document is attached", func() {
		s.mockQueries.EXPECT().GetDocument(gomock.Any(), s.sessionID).
			Return("", nil, errs.ErrNoDocument).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "cookie-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Dokument nije dostupan.")
	})
}

func (s *SessionHandlerTestSuite) TestLogout() {
	url := "/session/logout"

	s.Run("success: drops the session and clears the cookie", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), s.sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "cookie-token")
		s.Equal(http.StatusNoContent, rec.Code)

		cookie := httptest.ExtractCookie(rec, "expo_session")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})

	s.Run("success: logout without a session still clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
