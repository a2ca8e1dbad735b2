package transport

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcptarget/binder"
	"github.com/viant/mcptarget/cluster"
	"github.com/viant/mcptarget/credentials"
)

type recorder struct {
	headers []http.Header
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.headers = append(r.headers, req.Header.Clone())
	w.WriteHeader(http.StatusOK)
}

func TestRoundTripper_RoundTrip(t *testing.T) {
	descriptor := &cluster.Descriptor{
		CAData:    base64.StdEncoding.EncodeToString([]byte("CA1")),
		URL:       "https://x",
		AuthToken: "T1",
	}
	headers, err := binder.Bind(descriptor, binder.Token)
	require.NoError(t, err)
	expectJSON, err := headers.Encode(binder.JSON)
	require.NoError(t, err)

	var testCases = []struct {
		description string
		encoding    binder.Encoding
		check       func(t *testing.T, header http.Header)
	}{
		{
			description: "json authorization",
			encoding:    binder.JSON,
			check: func(t *testing.T, header http.Header) {
				assert.Equal(t, expectJSON, header.Get("Authorization"))
				assert.Empty(t, header.Get(binder.HeaderServer))
			},
		},
		{
			description: "base64 authorization",
			encoding:    binder.Base64JSON,
			check: func(t *testing.T, header http.Header) {
				assert.Equal(t, base64.StdEncoding.EncodeToString([]byte(expectJSON)), header.Get("Authorization"))
			},
		},
		{
			description: "individual headers",
			encoding:    binder.Headers,
			check: func(t *testing.T, header http.Header) {
				assert.Empty(t, header.Get("Authorization"))
				assert.Equal(t, "https://x", header.Get(binder.HeaderServer))
				assert.Equal(t, "T1", header.Get(binder.HeaderAuthorization))
			},
		},
	}

	for _, testCase := range testCases {
		handler := &recorder{}
		server := httptest.NewServer(handler)
		roundTripper, err := New(WithHeaderSet(headers), WithEncoding(testCase.encoding))
		require.NoError(t, err, testCase.description)

		request, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(`{}`))
		require.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response, err := roundTripper.Client().Do(request)
		require.NoError(t, err, testCase.description)
		_ = response.Body.Close()
		server.Close()

		require.Len(t, handler.headers, 1, testCase.description)
		received := handler.headers[0]
		testCase.check(t, received)
		assert.Equal(t, "application/json", received.Get("Content-Type"), testCase.description)
		assert.Empty(t, request.Header.Get("Authorization"), testCase.description)
		assert.Empty(t, request.Header.Get(binder.HeaderServer), testCase.description)

		actual, err := credentials.FromRequest(&http.Request{Header: received})
		require.NoError(t, err, testCase.description)
		assert.Equal(t, "T1", actual.AuthorizationToken, testCase.description)
		assert.Equal(t, []byte("CA1"), actual.CertificateAuthorityData, testCase.description)
	}
}

func TestNew(t *testing.T) {
	_, err := New()
	assert.Error(t, err)

	headers, err := binder.Bind(&cluster.Descriptor{CAData: "CA1", URL: "https://x", AuthToken: "T1"}, binder.Token)
	require.NoError(t, err)
	_, err = New(WithHeaderSet(headers), WithEncoding(binder.Encoding(9)))
	assert.Error(t, err)

	roundTripper, err := New(WithHeaderSet(headers), WithTransport(nil))
	require.NoError(t, err)
	assert.Equal(t, binder.JSON, roundTripper.Encoding())
}

func TestNew_InvalidHeaderValue(t *testing.T) {
	pemCA := "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n"
	headers, err := binder.Bind(&cluster.Descriptor{CAData: pemCA, URL: "https://x", AuthToken: "T1"}, binder.Token)
	require.NoError(t, err)

	_, err = New(WithHeaderSet(headers), WithEncoding(binder.Headers))
	require.Error(t, err)
	assert.True(t, errors.Is(err, binder.ErrInvalidHeaderValue))
	assert.Contains(t, err.Error(), binder.HeaderCertificateAuthorityData)

	handler := &recorder{}
	server := httptest.NewServer(handler)
	defer server.Close()
	roundTripper, err := New(WithHeaderSet(headers), WithEncoding(binder.JSON))
	require.NoError(t, err)
	response, err := roundTripper.Client().Post(server.URL, "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	_ = response.Body.Close()
	require.Len(t, handler.headers, 1)
	var actual map[string]string
	require.NoError(t, json.Unmarshal([]byte(handler.headers[0].Get("Authorization")), &actual))
	assert.Equal(t, pemCA, actual[binder.HeaderCertificateAuthorityData])
}
