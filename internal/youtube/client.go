// YouTube Data API v3 client used to pre-fetch a channel's upload list.
// The whole feature is optional: without a handle and an API key the
// pipeline simply runs with an empty video index.

package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-deadline-crawler/internal/filter"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// ErrChannelNotFound means the handle search returned no channels.
var ErrChannelNotFound = errors.New("could not find channel")

// Video is one uploaded video. Title is normalized (lowercased) at
// ingestion so matching never has to re-fold it.
type Video struct {
	Title string
	URL   string
}

type Client struct {
	apiKey string
	client *http.Client

	// BaseURL points at the public API; tests swap it for a local server.
	BaseURL string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		BaseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// HasKey reports whether the client was built with an API credential.
func (c *Client) HasKey() bool { return c.apiKey != "" }

// BuildIndex resolves the handle to a channel, finds its uploads playlist
// and pages through the entire playlist. Returns nil without error when
// either the handle or the API key is absent. Any failure in the chain is
// surfaced as a single wrapped error and partial results are discarded.
func (c *Client) BuildIndex(ctx context.Context, handle string) ([]Video, error) {
	if handle == "" || c.apiKey == "" {
		return nil, nil
	}

	channelID, err := c.searchChannel(ctx, strings.TrimPrefix(handle, "@"))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch YouTube videos: %w", err)
	}

	uploadsID, err := c.uploadsPlaylist(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch YouTube videos: %w", err)
	}

	videos, err := c.playlistVideos(ctx, uploadsID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch YouTube videos: %w", err)
	}
	return videos, nil
}

func (c *Client) searchChannel(ctx context.Context, query string) (string, error) {
	var result struct {
		Items []struct {
			ID struct {
				ChannelID string `json:"channelId"`
			} `json:"id"`
		} `json:"items"`
	}

	q := url.Values{}
	q.Set("part", "id")
	q.Set("q", query)
	q.Set("type", "channel")
	q.Set("key", c.apiKey)
	if err := c.getJSON(ctx, "/search", q, &result); err != nil {
		return "", err
	}

	if len(result.Items) == 0 {
		return "", fmt.Errorf("%w with handle: %s", ErrChannelNotFound, query)
	}
	return result.Items[0].ID.ChannelID, nil
}

func (c *Client) uploadsPlaylist(ctx context.Context, channelID string) (string, error) {
	var result struct {
		Items []struct {
			ContentDetails struct {
				RelatedPlaylists struct {
					Uploads string `json:"uploads"`
				} `json:"relatedPlaylists"`
			} `json:"contentDetails"`
		} `json:"items"`
	}

	q := url.Values{}
	q.Set("part", "contentDetails")
	q.Set("id", channelID)
	q.Set("key", c.apiKey)
	if err := c.getJSON(ctx, "/channels", q, &result); err != nil {
		return "", err
	}

	if len(result.Items) == 0 || result.Items[0].ContentDetails.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("no uploads playlist for channel %s", channelID)
	}
	return result.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

// playlistVideos pages through the uploads playlist. Pagination is
// sequential because each request needs the previous page's token, and
// there is no upper bound besides the API running out of pages.
func (c *Client) playlistVideos(ctx context.Context, playlistID string) ([]Video, error) {
	var videos []Video
	pageToken := ""

	for {
		var result struct {
			NextPageToken string `json:"nextPageToken"`
			Items         []struct {
				Snippet struct {
					Title      string `json:"title"`
					ResourceID struct {
						VideoID string `json:"videoId"`
					} `json:"resourceId"`
				} `json:"snippet"`
			} `json:"items"`
		}

		q := url.Values{}
		q.Set("part", "snippet")
		q.Set("playlistId", playlistID)
		q.Set("maxResults", "50")
		q.Set("pageToken", pageToken)
		q.Set("key", c.apiKey)
		if err := c.getJSON(ctx, "/playlistItems", q, &result); err != nil {
			return nil, err
		}

		for _, item := range result.Items {
			videos = append(videos, Video{
				Title: filter.NormalizeText(item.Snippet.Title),
				URL:   "https://www.youtube.com/watch?v=" + item.Snippet.ResourceID.VideoID,
			})
		}

		pageToken = result.NextPageToken
		if pageToken == "" {
			return videos, nil
		}
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
