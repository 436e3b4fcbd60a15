package videy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client proxies uploaded video bytes to the external hosting endpoint and
// returns the identifier it issues.
type Client struct {
	uploadURL  string
	httpClient *http.Client
}

type uploadResponse struct {
	ID string `json:"id"`
}

func NewClient(uploadURL string) *Client {
	return &Client{
		uploadURL: uploadURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Upload streams the file to the hosting endpoint as multipart form data and
// returns the external video id.
func (c *Client) Upload(filename string, file io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.uploadURL, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("video host returned status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("video host returned empty id")
	}

	return parsed.ID, nil
}
