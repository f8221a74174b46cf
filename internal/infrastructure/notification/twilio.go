package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	domainerrors "blood-link.backend/internal/domain/errors"
)

// TwilioDispatcher posts messages to a Twilio-compatible REST endpoint
type TwilioDispatcher struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioDispatcher creates a dispatcher for the given account. baseURL
// defaults to the public Twilio API when empty.
func NewTwilioDispatcher(accountSID, authToken, fromNumber, baseURL string) *TwilioDispatcher {
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}
	return &TwilioDispatcher{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// Send makes a single form-encoded POST to the Messages resource. Any
// transport or non-2xx failure surfaces as ErrDispatchFailed.
func (d *TwilioDispatcher) Send(ctx context.Context, toNumber, body string) error {
	form := url.Values{
		"To":   {toNumber},
		"From": {d.fromNumber},
		"Body": {body},
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", d.baseURL, d.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrDispatchFailed, err)
	}
	req.SetBasicAuth(d.accountSID, d.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", domainerrors.ErrDispatchFailed, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
