// Package credentials decodes the x-target-k8s-* header contract on the
// receiving side and turns it into Kubernetes client configuration.
package credentials

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/viant/mcptarget/binder"
)

// Credentials represents decoded target cluster credentials.
type Credentials struct {
	Server                   string
	CertificateAuthorityData []byte
	AuthorizationToken       string
	ClientCertificateData    []byte
	ClientKeyData            []byte
	InsecureSkipTLSVerify    bool
}

// ErrMissingCredentials is returned when neither token nor client certificate credentials are present.
var ErrMissingCredentials = errors.New("either " + binder.HeaderAuthorization + " for token authentication or (" +
	binder.HeaderClientCertificateData + " and " + binder.HeaderClientKeyData + ") for client certificate authentication required")

// Parse decodes an Authorization header value holding the header set as raw
// or base64-encoded JSON. Keys are matched case-insensitively.
func Parse(value string) (*Credentials, error) {
	payload := []byte(value)
	if decoded, err := base64.StdEncoding.DecodeString(value); err == nil {
		payload = decoded
	}
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth data: %w", err)
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		text, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected string value, but had %T", k, v)
		}
		values[strings.ToLower(k)] = text
	}
	return fromValues(values)
}

// FromHeader decodes credentials sent as individual request headers.
func FromHeader(header http.Header) (*Credentials, error) {
	values := map[string]string{}
	for _, name := range []string{
		binder.HeaderServer,
		binder.HeaderCertificateAuthorityData,
		binder.HeaderAuthorization,
		binder.HeaderClientCertificateData,
		binder.HeaderClientKeyData,
		binder.HeaderInsecureSkipTLSVerify,
	} {
		if value := header.Get(name); value != "" {
			values[name] = value
		}
	}
	return fromValues(values)
}

// FromRequest decodes credentials from the Authorization header when it
// carries a JSON payload, otherwise from individual headers.
func FromRequest(request *http.Request) (*Credentials, error) {
	if value := request.Header.Get(binder.AuthorizationHeader); value != "" && !strings.HasPrefix(value, "Bearer ") {
		return Parse(value)
	}
	return FromHeader(request.Header)
}

func fromValues(values map[string]string) (*Credentials, error) {
	ret := &Credentials{}
	var err error
	if ret.Server = values[binder.HeaderServer]; ret.Server == "" {
		return nil, fmt.Errorf("%s header is required", binder.HeaderServer)
	}
	caData := values[binder.HeaderCertificateAuthorityData]
	if caData == "" {
		return nil, fmt.Errorf("%s header is required", binder.HeaderCertificateAuthorityData)
	}
	if ret.CertificateAuthorityData, err = decode(caData); err != nil {
		return nil, fmt.Errorf("invalid certificate authority data: %w", err)
	}
	ret.InsecureSkipTLSVerify = strings.EqualFold(values[binder.HeaderInsecureSkipTLSVerify], "true")
	ret.AuthorizationToken = values[binder.HeaderAuthorization]
	if value := values[binder.HeaderClientCertificateData]; value != "" {
		if ret.ClientCertificateData, err = decode(value); err != nil {
			return nil, fmt.Errorf("invalid client certificate data: %w", err)
		}
	}
	if value := values[binder.HeaderClientKeyData]; value != "" {
		if ret.ClientKeyData, err = decode(value); err != nil {
			return nil, fmt.Errorf("invalid client key data: %w", err)
		}
	}
	if !ret.IsValid() {
		return nil, ErrMissingCredentials
	}
	return ret, nil
}

// IsValid reports whether token or client certificate credentials are present.
func (c *Credentials) IsValid() bool {
	if c.AuthorizationToken != "" {
		return true
	}
	return len(c.ClientCertificateData) > 0 && len(c.ClientKeyData) > 0
}

func decode(data string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(data)
}
