package cmd

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// eapiRequest is the JSON-RPC envelope understood by the eAPI endpoint.
type eapiRequest struct {
	JSONRPC string     `json:"jsonrpc"`
	Method  string     `json:"method"`
	Params  eapiParams `json:"params"`
	ID      int        `json:"id"`
}

type eapiParams struct {
	Version int      `json:"version"`
	Cmds    []string `json:"cmds"`
}

// eapiDispatcher delivers commands through Arista's JSON-RPC command API
// over HTTPS with basic authentication.
type eapiDispatcher struct {
	username string
	password string
	client   *http.Client
}

// newEAPIDispatcher builds the eAPI strategy. Certificate verification is off
// unless requested, since switches commonly ship self-signed certificates.
func newEAPIDispatcher(username, password string, verifySSL bool) eapiDispatcher {
	return eapiDispatcher{
		username: username,
		password: password,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !verifySSL},
			},
		},
	}
}

func (d eapiDispatcher) sendCommands(host string, commands []string) (string, error) {
	payload := eapiRequest{
		JSONRPC: "2.0",
		Method:  "runCmds",
		Params:  eapiParams{Version: 1, Cmds: commands},
		ID:      1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode request")
	}

	url := fmt.Sprintf("https://%s/command-api", host)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build request")
	}
	req.SetBasicAuth(d.username, d.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("eapi returned status %s", resp.Status)
	}

	var parsed any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode response")
	}
	out, err := json.Marshal(parsed)
	if err != nil {
		return "", errors.Wrap(err, "failed to re-encode response")
	}
	return string(out), nil
}
