package gcalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"google.golang.org/api/googleapi"
)

// session is one authorized HTTP client with a transport owned by it alone.
type session struct {
	client    *http.Client
	basePath  string
	transport *http.Transport
}

func (s *session) Close() {
	s.transport.CloseIdleConnections()
}

// page is the envelope shared by the calendarList and events list responses.
type page struct {
	Items         []json.RawMessage `json:"items"`
	NextPageToken string            `json:"nextPageToken"`
}

// listPages follows nextPageToken until the last page and returns all items in order.
func (s *session) listPages(ctx context.Context, path string, expansions map[string]string) ([]json.RawMessage, error) {
	var (
		items     []json.RawMessage
		pageToken string
	)
	for {
		params := url.Values{}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var p page
		if err := s.call(ctx, http.MethodGet, path, expansions, params, nil, &p); err != nil {
			return nil, err
		}
		items = append(items, p.Items...)

		if p.NextPageToken == "" {
			return items, nil
		}
		pageToken = p.NextPageToken
	}
}

// call performs one request against the calendar API. path is a URI template relative
// to the base path; expansions fill its variables with proper escaping. A non-2xx
// response is returned as *googleapi.Error. out is left untouched when nil.
func (s *session) call(ctx context.Context, method, path string, expansions map[string]string, params url.Values, body []byte, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("alt", "json")
	params.Set("prettyPrint", "false")

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	urls := googleapi.ResolveRelative(s.basePath, path) + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, method, urls, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	googleapi.Expand(req.URL, expansions)

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer googleapi.CloseBody(res)

	if err := googleapi.CheckResponse(res); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
