package vantageapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	// Packages
	vantageapi "github.com/perimeterlabs/vantage/pkg/vantageapi"
	assert "github.com/stretchr/testify/assert"
)

func TestNewMissingEndpoint(t *testing.T) {
	assert := assert.New(t)
	_, err := vantageapi.New("", "")
	assert.Error(err)
}

func TestClientDo(t *testing.T) {
	assert := assert.New(t)

	var method, path, rawQuery, auth string
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		rawQuery = r.URL.RawQuery
		auth = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client, err := vantageapi.New(server.URL, "secret-token")
	if !assert.NoError(err) {
		return
	}

	// GET with query
	response, err := client.Do(context.TODO(), http.MethodGet, "/sites/default/devices", url.Values{"status": []string{"online"}}, nil)
	if assert.NoError(err) {
		assert.Equal(http.MethodGet, method)
		assert.Equal("/sites/default/devices", path)
		assert.Equal("status=online", rawQuery)
		assert.Equal("Bearer secret-token", auth)
		assert.JSONEq(`{"ok": true}`, string(response))
	}

	// POST with body
	_, err = client.Do(context.TODO(), http.MethodPost, "/sites/default/devices/ap-17/upgrade", nil, map[string]any{"version": "7.1.2"})
	if assert.NoError(err) {
		assert.Equal(http.MethodPost, method)
		assert.Equal("/sites/default/devices/ap-17/upgrade", path)
		var decoded map[string]any
		if assert.NoError(json.Unmarshal(body, &decoded)) {
			assert.Equal("7.1.2", decoded["version"])
		}
	}

	// POST without a body still sends a JSON object
	_, err = client.Do(context.TODO(), http.MethodPost, "/sites/default/devices/ap-17/restart", nil, nil)
	if assert.NoError(err) {
		assert.Equal(http.MethodPost, method)
		assert.JSONEq(`{}`, string(body))
	}
}
