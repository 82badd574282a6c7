package imagehost

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	var gotKey, gotName, gotImage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotKey = r.FormValue("key")
		gotName = r.FormValue("name")
		gotImage = r.FormValue("image")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://img.example.com/full.webp","display_url":"https://img.example.com/display.webp"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "api-key", 5*time.Second)
	url, displayURL, err := client.Upload(context.Background(), "mural.webp", []byte("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/full.webp", url)
	assert.Equal(t, "https://img.example.com/display.webp", displayURL)
	assert.Equal(t, "api-key", gotKey)
	assert.Equal(t, "mural.webp", gotName)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), gotImage)
}

func TestUpload_FallsBackToMediumURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"url":"https://img.example.com/full.webp","medium":{"url":"https://img.example.com/medium.webp"}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	_, displayURL, err := client.Upload(context.Background(), "m", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/medium.webp", displayURL)
}

func TestUpload_EmptyURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	_, _, err := client.Upload(context.Background(), "m", []byte("x"))

	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestUpload_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	_, _, err := client.Upload(context.Background(), "m", []byte("x"))

	assert.Error(t, err)
}
