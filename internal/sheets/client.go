package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the Google Sheets host serving CSV exports.
const DefaultBaseURL = "https://docs.google.com"

// Client fetches sheet tabs as CSV. A failure here is fatal to the build;
// there is nothing useful to produce without the spreadsheet.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client against the real Google Sheets export endpoint.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

// FetchRows downloads one tab of a spreadsheet and parses it. The returned
// rows still include the header row.
func (c *Client) FetchRows(ctx context.Context, sheetID, gid string) ([][]string, error) {
	exportURL := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s", c.BaseURL, sheetID, gid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet %s gid=%s: %w", sheetID, gid, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet %s gid=%s returned HTTP %d", sheetID, gid, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s gid=%s: %w", sheetID, gid, err)
	}

	return Parse(string(body)), nil
}
