package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailgunClientValidation(t *testing.T) {
	_, err := NewMailgunClient(MailgunConfig{APIKey: "key"})
	assert.Error(t, err)

	_, err = NewMailgunClient(MailgunConfig{Domain: "mg.example.com"})
	assert.Error(t, err)
}

func TestMailgunSend(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotSubject, gotHTML string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotFrom = r.PostForm.Get("from")
		gotTo = r.PostForm.Get("to")
		gotSubject = r.PostForm.Get("subject")
		gotHTML = r.PostForm.Get("html")

		_, _ = w.Write([]byte(`{"message":"Queued."}`))
	}))
	defer server.Close()

	client, err := NewMailgunClient(MailgunConfig{
		Domain:  "mg.example.com",
		APIKey:  "key-abc",
		From:    "Bistro Boss <noreply@mg.example.com>",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	err = client.Send(context.Background(), "a@x.com", "Your order is confirmed!", "<p>thanks</p>")
	require.NoError(t, err)

	assert.Equal(t, "/v3/mg.example.com/messages", gotPath)
	assert.Equal(t, "api", gotUser)
	assert.Equal(t, "key-abc", gotPass)
	assert.Equal(t, "Bistro Boss <noreply@mg.example.com>", gotFrom)
	assert.Equal(t, "a@x.com", gotTo)
	assert.Equal(t, "Your order is confirmed!", gotSubject)
	assert.Equal(t, "<p>thanks</p>", gotHTML)
}

func TestMailgunSendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewMailgunClient(MailgunConfig{
		Domain:  "mg.example.com",
		APIKey:  "bad-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	err = client.Send(context.Background(), "a@x.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
