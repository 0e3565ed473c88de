package expoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/domain/schedule"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/usecase/shared"
)

const (
	eventInfoPath    = "/api/manifestacija/ManifestacijaInfo"
	computePricePath = "/api/registracija/IzracunajCenu"
	registerPath     = "/api/registracija/Registracija"
	loginPath        = "/api/registracija/Login"
	cancelPath       = "/api/registracija/CancelPrijava"
	updatePath       = "/api/registracija/UpdatePrijava"
)

// Client talks JSON to the remote registration backend. No retries or
// backoff: a failed request surfaces immediately and the caller re-triggers
// the action.
type Client struct {
	cfg        config.BackendConfig
	httpClient *http.Client
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

var _ shared.ExpoGateway = (*Client)(nil)

func (c *Client) FetchEventInfo(ctx context.Context) (*schedule.EventInfo, error) {
	var dto eventInfoDTO
	if err := c.do(ctx, http.MethodGet, eventInfoPath, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) ComputePrice(ctx context.Context, req shared.PriceRequest) (float64, error) {
	body := priceRequestDTO{
		Token:     req.Token,
		Attendees: req.Attendees,
		DayIDs:    req.DayIDs,
		PromoCode: req.PromoCode,
	}
	var price float64
	if err := c.do(ctx, http.MethodPut, computePricePath, body, &price); err != nil {
		return 0, err
	}
	return price, nil
}

func (c *Client) Register(ctx context.Context, form shared.RegisterForm) (*shared.RegisterResult, error) {
	body := registerRequestDTO{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Profession:     form.Profession,
		Address1:       form.Address1,
		Address2:       form.Address2,
		PostalCode:     form.PostalCode,
		City:           form.City,
		Country:        form.Country,
		Email:          form.Email,
		EmailConfirmed: form.EmailConfirmed,
		DayIDs:         form.DayIDs,
		Attendees:      form.Attendees,
		PromoCode:      form.PromoCode,
	}
	var dto registerResponseDTO
	if err := c.do(ctx, http.MethodPost, registerPath, body, &dto); err != nil {
		return nil, err
	}
	// Some backend deployments report failures inside a 2xx body.
	if dto.Error != nil {
		details := ""
		if dto.Error.Details != nil {
			details = *dto.Error.Details
		}
		return nil, &shared.Rejection{Status: http.StatusOK, Details: details}
	}
	return &shared.RegisterResult{
		Token:              dto.Token,
		OriginalPrice:      dto.OriginalPrice,
		FinalPrice:         dto.FinalPrice,
		GeneratedPromoCode: dto.GeneratedPromoCode,
	}, nil
}

func (c *Client) Login(ctx context.Context, email, token string) (*registration.Record, error) {
	var dto recordResponseDTO
	if err := c.do(ctx, http.MethodPut, loginPath, loginRequestDTO{Email: email, Token: token}, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) Cancel(ctx context.Context, token, email string) error {
	return c.do(ctx, http.MethodPut, cancelPath, cancelRequestDTO{Token: token, Email: email}, nil)
}

func (c *Client) Update(ctx context.Context, req shared.UpdateRequest) (*registration.UpdateResult, error) {
	body := updateRequestDTO{
		Token:     req.Token,
		Email:     req.Email,
		DayIDs:    req.DayIDs,
		Attendees: req.Attendees,
		PromoCode: req.PromoCode,
	}
	var dto updateResponseDTO
	if err := c.do(ctx, http.MethodPut, updatePath, body, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encoding backend request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint(path), reader)
	if err != nil {
		return errs.Wrap(err, "building backend request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, errs.ErrBackendUnreachable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Mark(err, errs.ErrBackendUnreachable)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var env errorEnvelope
		_ = json.Unmarshal(data, &env) // absence of the envelope is fine
		details := ""
		if env.Error != nil && env.Error.Details != nil {
			details = *env.Error.Details
		}
		return &shared.Rejection{Status: resp.StatusCode, Details: details}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errs.Wrap(err, "decoding backend response")
		}
	}
	return nil
}
