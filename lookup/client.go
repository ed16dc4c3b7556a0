package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Client calls the remote information service: the /locinfo and /image
// endpoints of the token producer's web frontend.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// LocInfo is the location service response.
type LocInfo struct {
	Found     bool   `json:"found"`
	Country   string `json:"country"`
	Continent string `json:"continent"`
	Desc      string `json:"desc"`
	Map       string `json:"map"`
}

// LocInfo queries GET /locinfo?name=&kind=. The second return value is
// false for a completed not-found response.
func (c *Client) LocInfo(ctx context.Context, name, kind string) (LocInfo, bool, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("kind", kind)

	var resp LocInfo
	if err := c.getJSON(ctx, "/locinfo", q, &resp); err != nil {
		return LocInfo{}, false, err
	}
	return resp, resp.Found, nil
}

// Image is one image reference from the image service. The wire form is a
// mixed-type array [url, width, height, ...].
type Image struct {
	URL    string
	Width  int
	Height int
}

func (img *Image) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw[0], &img.URL); err != nil {
			return err
		}
	}
	if len(raw) > 1 {
		_ = json.Unmarshal(raw[1], &img.Width)
	}
	if len(raw) > 2 {
		_ = json.Unmarshal(raw[2], &img.Height)
	}
	return nil
}

type imageResponse struct {
	Found bool  `json:"found"`
	Image Image `json:"image"`
}

// Image queries GET /image?name=&thumb=1 for a (person) image.
func (c *Client) Image(ctx context.Context, name string, thumb bool) (Image, bool, error) {
	q := url.Values{}
	q.Set("name", name)
	if thumb {
		q.Set("thumb", "1")
	}

	var resp imageResponse
	if err := c.getJSON(ctx, "/image", q, &resp); err != nil {
		return Image{}, false, err
	}
	return resp.Image, resp.Found, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	u := c.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Errorf("creating request: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("url", u).Msg("lookup request")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Errorf("lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("lookup request: status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Errorf("decoding lookup response: %w", err)
	}
	return nil
}
