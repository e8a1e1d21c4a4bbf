package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navhub/navhub_backend/models"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchMetaTitleAndRelativeIcon(t *testing.T) {
	server := serveHTML(t, `<html><head>
		<title>  Example Site  </title>
		<link rel="icon" href="/static/favicon.png">
	</head><body></body></html>`)

	title, icon, err := NewMetaService().FetchMeta(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Example Site", title)
	assert.Equal(t, server.URL+"/static/favicon.png", icon)
}

func TestFetchMetaShortcutIconAndBareRelativePath(t *testing.T) {
	server := serveHTML(t, `<html><head>
		<link rel="shortcut icon" href="fav.ico">
	</head></html>`)

	_, icon, err := NewMetaService().FetchMeta(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/fav.ico", icon)
}

func TestFetchMetaAppleTouchIconFallback(t *testing.T) {
	server := serveHTML(t, `<html><head>
		<link rel="apple-touch-icon" href="/apple.png">
		<link rel="stylesheet" href="/style.css">
	</head></html>`)

	_, icon, err := NewMetaService().FetchMeta(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/apple.png", icon)
}

func TestFetchMetaDefaultsToFaviconIco(t *testing.T) {
	server := serveHTML(t, `<html><head><title>No Icons Here</title></head></html>`)

	title, icon, err := NewMetaService().FetchMeta(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "No Icons Here", title)
	assert.Equal(t, server.URL+"/favicon.ico", icon)
}

func TestFetchMetaAbsoluteIconPassesThrough(t *testing.T) {
	server := serveHTML(t, `<html><head>
		<link rel="icon" href="https://cdn.example.com/icon.svg">
	</head></html>`)

	_, icon, err := NewMetaService().FetchMeta(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/icon.svg", icon)
}

func TestFetchMetaRejectsRelativeURL(t *testing.T) {
	_, _, err := NewMetaService().FetchMeta(context.Background(), "not-a-url")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestFetchMetaUnreachableTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, _, err := NewMetaService().FetchMeta(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSourceUnavailable)
}
