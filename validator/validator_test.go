package validator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksome/peppol.bis/validator"
)

func TestValidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/validate", r.URL.Path)
		assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"valid"}`))
	}))
	defer srv.Close()

	c := validator.New(srv.URL)
	res, err := c.Validate(context.Background(), []byte("<Invoice/>"))
	require.NoError(t, err)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors)
}

func TestValidateInvalidDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": "invalid",
			"errors": [
				{"rule": "BR-CO-15", "severity": "fatal", "message": "Tax inclusive amount mismatch"}
			]
		}`))
	}))
	defer srv.Close()

	c := validator.New(srv.URL)
	res, err := c.Validate(context.Background(), []byte("<Invoice/>"))
	require.NoError(t, err)
	assert.False(t, res.Valid())
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "BR-CO-15", res.Errors[0].Rule)
}

func TestValidateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := validator.New(srv.URL)
	_, err := c.Validate(context.Background(), []byte("<Invoice/>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
