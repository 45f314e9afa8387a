package viacep_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/adapters/viacep"
	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paulistaJSON = `{
  "cep": "01310-100",
  "logradouro": "Avenida Paulista",
  "complemento": "de 612 a 1510 - lado par",
  "bairro": "Bela Vista",
  "localidade": "São Paulo",
  "uf": "SP"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*viacep.Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := viacep.NewClient(viacep.Config{BaseURL: srv.URL, CacheSize: 8}, nil)
	require.NoError(t, err)
	return client, &hits
}

func TestLookupCEP_Found(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(paulistaJSON))
	})

	addr, err := client.LookupCEP(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "01310-100", addr.CEP)
	assert.Equal(t, "Avenida Paulista", addr.Street)
	assert.Equal(t, "Bela Vista", addr.Neighborhood)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)

	// second lookup is served from cache
	_, err = client.LookupCEP(context.Background(), "01310100")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestLookupCEP_NotFound(t *testing.T) {
	for _, body := range []string{`{"erro": true}`, `{"erro": "true"}`} {
		t.Run(body, func(t *testing.T) {
			client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := client.LookupCEP(context.Background(), "99999999")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)

			_, err = client.LookupCEP(context.Background(), "99999999")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
			assert.Equal(t, int32(2), atomic.LoadInt32(hits), "misses are not cached")
		})
	}
}

func TestLookupCEP_InvalidCEPSkipsRequest(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("directory must not be called")
	})

	_, err := client.LookupCEP(context.Background(), "0131-01")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestLookupCEP_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "", apperrors.ErrUpstream},
		{"bad request", http.StatusBadRequest, "", apperrors.ErrValidation},
		{"garbage body", http.StatusOK, "<html>", apperrors.ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.LookupCEP(context.Background(), "01310100")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLookupCEP_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := viacep.NewClient(viacep.Config{BaseURL: url}, nil)
	require.NoError(t, err)

	_, err = client.LookupCEP(context.Background(), "01310100")
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestLookupCEP_CancelledCallerDoesNotFailSharedLookup(t *testing.T) {
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		arrived <- struct{}{}
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(paulistaJSON))
	})

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := client.LookupCEP(ctxA, "01310100")
		errA <- err
	}()
	<-arrived

	type result struct {
		street string
		err    error
	}
	resB := make(chan result, 1)
	go func() {
		addr, err := client.LookupCEP(context.Background(), "01310-100")
		resB <- result{addr.Street, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		close(release)
		t.Fatal("cancelled caller did not return")
	}

	close(release)
	select {
	case res := <-resB:
		require.NoError(t, res.err)
		assert.Equal(t, "Avenida Paulista", res.street)
	case <-time.After(2 * time.Second):
		t.Fatal("shared lookup did not complete")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}
