package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Unexported type
type httpUtil struct{}

// exported global variable
var HttpUtil httpUtil

// Downloads the content of the url. The host rule is optional and adds authentication.
func (h httpUtil) DownloadToMemory(ctx context.Context, url string, hostRule *HostRule) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if hostRule != nil {
		h.AddBearerToRequest(req, hostRule.TokenExpanded())
		h.AddBasicAuth(req, hostRule.UsernameExpanded(), hostRule.PasswordExpanded())
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download file '%s'. Status code: %d", url, resp.StatusCode)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return bodyBytes, nil
}

func (h httpUtil) AddBearerToRequest(request *http.Request, token string) {
	if len(token) > 0 {
		request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
}

func (h httpUtil) AddBasicAuth(request *http.Request, username, password string) {
	if len(username) > 0 && len(password) > 0 {
		request.SetBasicAuth(username, password)
	}
}
