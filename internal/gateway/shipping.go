package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "snadaily/internal/errors"
)

const komerceBaseURL = "https://rajaongkir.komerce.id/api/v1"

// Destination is a courier-rate destination returned by domestic search.
type Destination struct {
	ID          int    `json:"id"`
	Label       string `json:"label"`
	SubDistrict string `json:"subdistrict_name"`
	District    string `json:"district_name"`
	City        string `json:"city_name"`
	Province    string `json:"province_name"`
	ZipCode     string `json:"zip_code"`
}

// CostOption is one courier service quote for a shipment.
type CostOption struct {
	Courier     string `json:"code"`
	Name        string `json:"name"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	ETD         string `json:"etd"`
}

// TrackingManifest is one checkpoint in a waybill history.
type TrackingManifest struct {
	Description string `json:"manifest_description"`
	Date        string `json:"manifest_date"`
	Time        string `json:"manifest_time"`
	City        string `json:"city_name"`
}

// TrackingInfo is the waybill status for a shipped order.
type TrackingInfo struct {
	Waybill   string             `json:"waybill_number"`
	Status    string             `json:"status"`
	Manifests []TrackingManifest `json:"manifest"`
}

// ShippingGateway proxies the courier-rate provider. All calls are
// awaited per request with no retry policy.
type ShippingGateway interface {
	SearchDestinations(ctx context.Context, query string) ([]Destination, error)
	CalculateCost(ctx context.Context, origin, destination int, weightGrams int, courier string) ([]CostOption, error)
	TrackWaybill(ctx context.Context, awb, courier string) (*TrackingInfo, error)
}

type komerceGateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewKomerceGateway builds a client for the Komerce RajaOngkir API.
func NewKomerceGateway(apiKey string) ShippingGateway {
	return &komerceGateway{
		apiKey:  apiKey,
		baseURL: komerceBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// komerceEnvelope is the provider's standard response wrapper.
type komerceEnvelope struct {
	Meta struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
		Status  string `json:"status"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

func (g *komerceGateway) do(ctx context.Context, method, path string, form url.Values) (json.RawMessage, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, apperrors.NewUpstreamError("komerce", err)
	}
	req.Header.Set("x-api-key", g.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("komerce", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError("komerce", err)
	}

	var envelope komerceEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, apperrors.NewUpstreamError("komerce", fmt.Errorf("decode response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("komerce", fmt.Errorf("status %d: %s", resp.StatusCode, envelope.Meta.Message))
	}
	return envelope.Data, nil
}

// SearchDestinations looks up shippable destinations by name fragment.
func (g *komerceGateway) SearchDestinations(ctx context.Context, query string) ([]Destination, error) {
	path := "/destination/domestic-search?q=" + url.QueryEscape(query)
	data, err := g.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var destinations []Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, apperrors.NewUpstreamError("komerce", fmt.Errorf("decode destinations: %w", err))
	}
	return destinations, nil
}

// CalculateCost quotes domestic shipping for a weight and courier.
func (g *komerceGateway) CalculateCost(ctx context.Context, origin, destination int, weightGrams int, courier string) ([]CostOption, error) {
	form := url.Values{}
	form.Set("origin", strconv.Itoa(origin))
	form.Set("destination", strconv.Itoa(destination))
	form.Set("weight", strconv.Itoa(weightGrams))
	form.Set("courier", courier)

	data, err := g.do(ctx, http.MethodPost, "/calculate/domestic-cost", form)
	if err != nil {
		return nil, err
	}
	var options []CostOption
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, apperrors.NewUpstreamError("komerce", fmt.Errorf("decode cost options: %w", err))
	}
	return options, nil
}

// TrackWaybill fetches the current manifest history for a waybill.
func (g *komerceGateway) TrackWaybill(ctx context.Context, awb, courier string) (*TrackingInfo, error) {
	form := url.Values{}
	form.Set("awb", awb)
	form.Set("courier", courier)

	data, err := g.do(ctx, http.MethodPost, "/track/waybill", form)
	if err != nil {
		return nil, err
	}
	var info TrackingInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, apperrors.NewUpstreamError("komerce", fmt.Errorf("decode tracking: %w", err))
	}
	return &info, nil
}
