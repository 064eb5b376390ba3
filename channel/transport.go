package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
)

// Transport delivers a formatted message and returns the message name assigned by FCM.
type Transport interface {
	Send(ctx context.Context, env fcmmessage.Envelope) (name string, err error)
}

const maxResponseSize = 1 << 20

func sendURL(endpoint, projectId string) string {
	return fmt.Sprintf("%s/v1/projects/%s/messages:send", endpoint, projectId)
}

func NewHTTPTransport(url string, tokenSource oauth2.TokenSource, client *http.Client) Transport {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpTransport{url: url, tokenSource: tokenSource, client: client}
}

type httpTransport struct {
	url         string
	tokenSource oauth2.TokenSource
	client      *http.Client
}

func (t *httpTransport) Send(ctx context.Context, env fcmmessage.Envelope) (name string, err error) {
	body, err := env.JSON()
	if err != nil {
		return "", err
	}
	token, err := t.tokenSource.Token()
	if err != nil {
		return "", fmt.Errorf("fcm: access token: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fcm: post: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("fcm: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newSendError(resp.StatusCode, data)
	}
	var res struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(data, &res)
	return res.Name, nil
}
