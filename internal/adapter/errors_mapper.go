package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// oauthErrorBody is the RFC 6749 error payload Google returns from its
// token and userinfo endpoints.
type oauthErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// mapHTTPError turns a non-2xx provider response into one of the sentinel
// errors of this package, keeping the OAuth error code for the logs.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := providerErrorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, detail)
	case status == http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, status, detail)
	default:
		return fmt.Errorf("http %d: %s", status, detail)
	}
}

func providerErrorDetail(body []byte) string {
	var oauthErr oauthErrorBody
	if err := json.Unmarshal(body, &oauthErr); err == nil && oauthErr.Error != "" {
		if oauthErr.ErrorDescription == "" {
			return oauthErr.Error
		}
		return oauthErr.Error + ": " + oauthErr.ErrorDescription
	}

	return strings.TrimSpace(string(body))
}
