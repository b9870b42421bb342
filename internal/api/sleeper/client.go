package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/config"
)

const defaultBaseURL = "https://api.sleeper.app/v1"

type Client struct {
	httpClient *http.Client
	baseURL    string
	Config     config.SleeperAPI
}

func NewClient(cfg config.SleeperAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		Config:     cfg,
	}
}

// Get fetches endpoint and decodes the JSON response into result. Sleeper
// endpoints are read-only, unauthenticated, and take no query parameters.
func (c *Client) Get(endpoint string, result interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, endpoint)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}
