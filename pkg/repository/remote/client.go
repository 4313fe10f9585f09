// Package remote implements repository.Repository against the remote HTTP
// API gateway. It attaches the session's bearer credential to every request
// and normalizes every non-success response into one of the serrors kinds,
// so upstream code never sees a raw transport error.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-faster/jx"

	"orgdash/pkg/repository"
	"orgdash/pkg/serrors"
)

// Options defines the configuration parameters for the gateway client.
type Options struct {
	// BaseURL is the root of the remote API, e.g. "https://api.example.com".
	// Trailing slashes are trimmed.
	BaseURL string
	// Token is the bearer credential obtained from the session. It is
	// attached to every request.
	Token string
}

// Client talks to the remote API and fulfills the repository.Repository
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs the HTTP requests
	baseURL    string       // baseURL is the API root without trailing slash
	token      string       // token is the bearer credential
}

// Ensure Client conforms to the repository interface at compile time.
var _ repository.Repository = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and options to
// interact with the remote API.
func New(httpClient *http.Client, options Options) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(options.BaseURL, "/"),
		token:      options.Token,
	}
}

// Close releases idle transport connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()

	return nil
}

// do performs one API call: it marshals body (when non-nil), attaches the
// bearer credential, sends the request, and either decodes a 2xx response
// into out or normalizes the failure into a semantic error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp.StatusCode, b)
	}

	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			return serrors.Wrap(serrors.ErrUnavailable, err, "could not decode response")
		}
	}

	return nil
}

// normalizeError converts a non-2xx response into a semantic error. The
// structured error body ({"error":{"code","message"}}) wins when present;
// otherwise the HTTP status decides the kind and the status text becomes the
// message.
func normalizeError(status int, body []byte) error {
	code, message := parseErrorBody(body)

	k := kindFromCode(code)
	if k == nil {
		k = kindFromStatus(status)
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return serrors.With(k, "%s", message)
}

// parseErrorBody tolerantly extracts error.code and error.message from an
// arbitrary JSON error body. Anything malformed or unexpected is ignored:
// callers fall back to the HTTP status.
func parseErrorBody(body []byte) (code, message string) {
	if len(body) == 0 {
		return "", ""
	}

	d := jx.DecodeBytes(body)
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		if key != "error" {
			return d.Skip()
		}

		return d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "code":
				v, err := d.Str()
				if err != nil {
					return err
				}
				code = v

				return nil
			case "message":
				v, err := d.Str()
				if err != nil {
					return err
				}
				message = v

				return nil
			default:
				return d.Skip()
			}
		})
	})

	return code, message
}

// kindFromCode maps a wire error code onto a semantic kind, or nil when the
// code is unknown.
func kindFromCode(code string) serrors.Kind {
	switch code {
	case "NOT_FOUND":
		return serrors.ErrNotFound
	case "UNAUTHORIZED":
		return serrors.ErrUnauthorized
	case "FORBIDDEN":
		return serrors.ErrForbidden
	case "VALIDATION_FAILED":
		return serrors.ErrValidation
	case "CONFLICT":
		return serrors.ErrConflict
	case "TIMEOUT":
		return serrors.ErrTimeout
	case "NETWORK_OR_SERVER", "INTERNAL":
		return serrors.ErrUnavailable
	default:
		return nil
	}
}

// kindFromStatus maps an HTTP status onto a semantic kind when the error body
// carried no usable code.
func kindFromStatus(status int) serrors.Kind {
	switch status {
	case http.StatusUnauthorized:
		return serrors.ErrUnauthorized
	case http.StatusForbidden:
		return serrors.ErrForbidden
	case http.StatusNotFound:
		return serrors.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return serrors.ErrValidation
	case http.StatusConflict:
		return serrors.ErrConflict
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return serrors.ErrTimeout
	default:
		return serrors.ErrUnavailable
	}
}
