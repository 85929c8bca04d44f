package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docslice"
	dochttp "github.com/fwojciec/docslice/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and content type", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := dochttp.NewFetcher(dochttp.WithClient(srv.Client()))
		res, err := f.Fetch(context.Background(), srv.URL+"/page")

		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", res.Body)
		assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
		assert.Equal(t, srv.URL+"/page", res.URL)
	})

	t.Run("follows redirects and reports the final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		f := dochttp.NewFetcher(dochttp.WithClient(srv.Client()))
		res, err := f.Fetch(context.Background(), srv.URL+"/old")

		require.NoError(t, err)
		assert.Equal(t, "moved", res.Body)
		assert.Equal(t, srv.URL+"/new", res.URL)
	})

	t.Run("non-success status is an unavailable error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		}))
		defer srv.Close()

		f := dochttp.NewFetcher(dochttp.WithClient(srv.Client()))
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, docslice.EUNAVAILABLE, docslice.ErrorCode(err))
	})

	t.Run("canceled context propagates the context error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := dochttp.NewFetcher(dochttp.WithClient(srv.Client()))
		_, err := f.Fetch(ctx, srv.URL)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
