package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/laurisseau/app-dev/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestProbeURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8080/", ProbeURL(config.Default()))
	assert.Equal(t, "http://[::1]:8080/", ProbeURL(config.Server{Host: "::", Port: 8080}))
	assert.Equal(t, "http://10.0.0.5:9000/", ProbeURL(config.Server{Host: "10.0.0.5", Port: 9000}))
}

func TestProbeHealthy(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	assert.NoError(t, Probe(context.Background(), ts.Client(), ts.URL+"/"))
}

func TestProbeWrongPath(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	err := Probe(context.Background(), ts.Client(), ts.URL+"/missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
	assert.Contains(t, err.Error(), "404")
}

func TestProbeUnexpectedBody(t *testing.T) {
	for _, body := range []string{"Hello, World!", Greeting + "!", ""} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		}))

		err := Probe(context.Background(), ts.Client(), ts.URL+"/")

		assert.Error(t, err, body)
		assert.Contains(t, err.Error(), "unexpected response body")

		ts.Close()
	}
}

func TestProbeUnreachable(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	url := ts.URL + "/"
	ts.Close()

	err := Probe(context.Background(), http.DefaultClient, url)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reach")
}

func TestProbeCancelledContext(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Probe(ctx, ts.Client(), ts.URL+"/"), context.Canceled)
}
