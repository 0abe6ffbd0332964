package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/metrics"
)

func TestAPIClient_Do(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
		wantErr   bool
		notFound  bool
	}{
		{name: "success", statuses: []int{http.StatusOK}, wantCalls: 1},
		{name: "retries server errors", statuses: []int{http.StatusServiceUnavailable, http.StatusInternalServerError, http.StatusOK}, wantCalls: 3},
		{name: "retries rate limiting", statuses: []int{http.StatusTooManyRequests, http.StatusOK}, wantCalls: 2},
		{name: "gives up after attempts", statuses: []int{http.StatusBadGateway, http.StatusBadGateway, http.StatusBadGateway, http.StatusOK}, wantCalls: 3, wantErr: true},
		{name: "bad request is final", statuses: []int{http.StatusBadRequest, http.StatusOK}, wantCalls: 1, wantErr: true},
		{name: "not found is final", statuses: []int{http.StatusNotFound}, wantCalls: 1, wantErr: true, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := calls.Add(1)
				w.WriteHeader(tt.statuses[n-1])
				_, _ = w.Write([]byte(`{"id":"x"}`))
			}))
			defer srv.Close()

			c := newAPIClient("calendar", srv.Client(), nil, clientOptions{attempts: 3, delay: time.Millisecond}, nil)

			var out struct {
				ID string `json:"id"`
			}
			err := c.do(context.Background(), http.MethodGet, srv.URL, nil, &out)

			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.notFound, IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", out.ID)
		})
	}
}

func TestAPIClient_RecordsMetrics(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	m := metrics.NewMetrics(prometheus.NewRegistry())
	c := newAPIClient("gmail", srv.Client(), nil, clientOptions{attempts: 2, delay: time.Millisecond}, m)

	require.NoError(t, c.do(context.Background(), http.MethodPost, srv.URL, map[string]string{"raw": "x"}, nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GoogleCalls.WithLabelValues("gmail", "retried")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GoogleCalls.WithLabelValues("gmail", "ok")))
}

func TestGmailClient_Raw(t *testing.T) {
	c := newGmailClient(nil, "http://gmail", "Atelier MAGSAV", "sav@magscene.fr", "Cordialement")

	t.Run("plain text with cc", func(t *testing.T) {
		raw := string(c.raw(Message{
			To:        "regie@festival-nord.fr",
			Cc:        "atelier@magscene.fr",
			Subject:   "Rappel intervention MAGSAV - Demain 09:30",
			Body:      "Bonjour",
			PlainText: true,
		}))

		headers, body, found := strings.Cut(raw, "\r\n\r\n")
		require.True(t, found)
		assert.Contains(t, headers, "Cc: atelier@magscene.fr")
		assert.Contains(t, headers, "Content-Type: text/plain; charset=UTF-8")
		assert.Equal(t, "Bonjour\r\n\r\nCordialement", body)
	})

	t.Run("non ascii subject is encoded", func(t *testing.T) {
		raw := string(c.raw(Message{To: "a@b.fr", Subject: "Intervention planifiée", Body: "<p>ok</p>"}))

		assert.Contains(t, raw, "Subject: =?utf-8?q?Intervention_planifi=C3=A9e?=\r\n")
		assert.NotContains(t, raw, "Cc:")
	})
}

func TestGmailClient_Send_EmptyRecipient(t *testing.T) {
	c := newGmailClient(nil, "http://gmail", "", "sav@magscene.fr", "")

	assert.Error(t, c.Send(context.Background(), Message{To: " "}))
}

func TestInterventionReminderMessage(t *testing.T) {
	msg, err := InterventionReminderMessage(ReminderMail{
		ClientEmail:   "regie@festival-nord.fr",
		ClientNom:     "Festival <Nord>",
		TechnicienNom: "Alex Martin",
		Date:          "2024-05-02",
		Heure:         "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "regie@festival-nord.fr", msg.To)
	assert.Equal(t, "Rappel intervention MAGSAV - Demain 09:30", msg.Subject)
	assert.Contains(t, msg.Body, "Alex Martin")
	assert.Contains(t, msg.Body, "Festival &lt;Nord&gt;")
}
