package viaggiatreno

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public root of the ViaggiaTreno REST API.
const DefaultBaseURL = "http://www.viaggiatreno.it/infomobilita/resteasy/viaggiatreno"

// Client talks to the ViaggiaTreno REST API. It is safe for concurrent use;
// the departure board enrichment issues one call per train through a single
// shared Client.
type Client struct {
	BaseURL   string
	UserAgent string

	httpClient *http.Client
}

// NewClient returns a Client with its own HTTP client and the given
// per-request timeout.
func NewClient(baseURL string, userAgent string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithHTTP returns a Client using the supplied HTTP client.
func NewClientWithHTTP(baseURL string, userAgent string, httpClient *http.Client) *Client {
	return &Client{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		httpClient: httpClient,
	}
}

// CercaStazione searches stations by (partial) name.
func (c *Client) CercaStazione(ctx context.Context, name string) ([]StationResult, error) {
	var results []StationResult
	err := c.getJSON(ctx, fmt.Sprintf("cercaStazione/%s", url.PathEscape(name)), &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Partenze returns the scheduled departure board for a station. when must be
// in the FormatRequestTime shape.
func (c *Client) Partenze(ctx context.Context, stationID string, when string) ([]Departure, error) {
	var departures []Departure
	err := c.getJSON(ctx, fmt.Sprintf("partenze/%s/%s", url.PathEscape(stationID), url.PathEscape(when)), &departures)
	if err != nil {
		return nil, err
	}

	return departures, nil
}

// Arrivi returns the scheduled arrival board for a station. when must be in
// the FormatRequestTime shape.
func (c *Client) Arrivi(ctx context.Context, stationID string, when string) ([]Arrival, error) {
	var arrivals []Arrival
	err := c.getJSON(ctx, fmt.Sprintf("arrivi/%s/%s", url.PathEscape(stationID), url.PathEscape(when)), &arrivals)
	if err != nil {
		return nil, err
	}

	return arrivals, nil
}

// AndamentoTreno returns the live status of one train, keyed by its origin
// station, number and departure date (epoch milliseconds as reported by the
// board). A nil status with a nil error means the provider has no live data
// for the train; callers decide whether that is fatal.
func (c *Client) AndamentoTreno(ctx context.Context, originID string, trainNumber string, departureDate int64) (*TrainStatus, error) {
	path := fmt.Sprintf("andamentoTreno/%s/%s/%d",
		url.PathEscape(originID), url.PathEscape(trainNumber), departureDate)

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	// The endpoint reports "no data" as an empty or null body, not an error
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}

	var status TrainStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("decoding andamentoTreno response: %w", err)
	}

	return &status, nil
}

// SoluzioniViaggio returns journey solutions between two stations. The
// origin and destination codes are station IDs without their leading letter.
func (c *Client) SoluzioniViaggio(ctx context.Context, originCode string, destinationCode string, when string) (*Solutions, error) {
	path := fmt.Sprintf("soluzioniViaggioNew/%s/%s/%s",
		url.PathEscape(originCode), url.PathEscape(destinationCode), url.PathEscape(when))

	var solutions Solutions
	if err := c.getJSON(ctx, path, &solutions); err != nil {
		return nil, err
	}

	return &solutions, nil
}

// Statistiche returns the national circulation snapshot as of the given
// instant.
func (c *Client) Statistiche(ctx context.Context, at time.Time) (*Stats, error) {
	var stats Stats
	err := c.getJSON(ctx, "statistiche/"+strconv.FormatInt(at.UnixMilli(), 10), &stats)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s", c.BaseURL, path)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header["User-Agent"] = []string{c.UserAgent}
	}

	log.Debug().Str("url", requestURL).Msg("Querying ViaggiaTreno")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ViaggiaTreno returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}

	return body, nil
}
