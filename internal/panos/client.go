// Package panos is a client for the PAN-OS XML management API shared by
// firewalls and Panorama.
package panos

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
)

// Client issues XML API requests to firewall and Panorama management
// interfaces. The zero value is not usable; construct with NewClient.
type Client struct {
	http    *http.Client
	key     string
	retries int
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. The default is 60 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRetries enables n additional attempts after a connection-level
// failure. API-level errors are never retried.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// NewClient returns a Client authenticating with the given API key.
// Certificate verification is disabled: management interfaces ship
// self-signed certificates.
func NewClient(key string, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
			Timeout: 60 * time.Second,
		},
		key: key,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateKey exchanges a username and password for an API key via the
// keygen endpoint.
func (c *Client) GenerateKey(ctx context.Context, host, user, password string) (string, error) {
	params := url.Values{}
	params.Set("type", "keygen")
	params.Set("user", user)
	params.Set("password", password)

	body, err := c.do(ctx, host, params)
	if err != nil {
		return "", err
	}
	return ParseKey(host, body)
}

// Op executes an operational command, e.g.
// "<show><devices><all></all></devices></show>", and returns the raw
// response body after the API status check.
func (c *Client) Op(ctx context.Context, host, cmd string) ([]byte, error) {
	params := url.Values{}
	params.Set("type", "op")
	params.Set("cmd", cmd)
	params.Set("key", c.key)

	return c.do(ctx, host, params)
}

// ShowConfigXPath fetches the configuration node at xpath.
func (c *Client) ShowConfigXPath(ctx context.Context, host, xpath string) ([]byte, error) {
	params := url.Values{}
	params.Set("type", "config")
	params.Set("action", "show")
	params.Set("xpath", xpath)
	params.Set("key", c.key)

	return c.do(ctx, host, params)
}

func (c *Client) do(ctx context.Context, host string, params url.Values) ([]byte, error) {
	endpoint := fmt.Sprintf("https://%s/api/", host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Host: host, Err: err}
	}
	req.URL.RawQuery = params.Encode()

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		resp, err = c.http.Do(req)
		if err == nil {
			break
		}
		if attempt >= c.retries || ctx.Err() != nil {
			return nil, &NetworkError{Host: host, Err: err}
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{Host: host, Status: resp.Status}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Host: host, Err: fmt.Errorf("response status code: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Host: host, Err: err}
	}

	if err := checkResponse(host, body); err != nil {
		return nil, err
	}
	return body, nil
}

// checkResponse inspects the <response> element status attribute and
// surfaces API-reported errors with their message text.
func checkResponse(host string, body []byte) error {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return &ParseError{Host: host, Err: err}
	}

	resp := xmlquery.FindOne(doc, "/response")
	if resp == nil {
		return &ParseError{Host: host, Err: fmt.Errorf("missing response element")}
	}

	status := resp.SelectAttr("status")
	if status == "success" || status == "" {
		return nil
	}
	if status == "unauth" {
		return &AuthError{Host: host, Status: "invalid credential"}
	}

	msg := apiMessage(resp)
	if msg == "" {
		msg = fmt.Sprintf("api error (code %s)", resp.SelectAttr("code"))
	}
	return &APIError{Host: host, Message: msg}
}

// apiMessage collects the message text of an error response. The API is
// inconsistent here: the text lives under msg, msg/line or result/msg
// depending on the request type.
func apiMessage(resp *xmlquery.Node) string {
	var parts []string
	for _, n := range xmlquery.Find(resp, "//msg") {
		if t := strings.TrimSpace(n.InnerText()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "; ")
}
