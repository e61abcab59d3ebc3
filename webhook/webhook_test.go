package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testSignature = "whsec_test_signature"
	execBody      = `{"event":"payments.card.exec","shop_id":"s_test","order_id":"o_123","pay_type":"Card","status":"CAPTURED","amount":"1000"}`
)

type HandlerSuite struct {
	suite.Suite

	handler  *Handler
	server   *httptest.Server
	mu       sync.Mutex
	received []Event
}

func (s *HandlerSuite) SetupTest() {
	s.received = nil
	s.handler = NewHandler(testSignature)
	s.handler.On(EventCardPaymentExecuted, func(_ context.Context, e Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.received = append(s.received, e)
		return nil
	})
	s.server = httptest.NewServer(Router("/webhooks/fincode", s.handler))
}

func (s *HandlerSuite) TearDownTest() {
	s.server.Close()
}

func (s *HandlerSuite) events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.received...)
}

func (s *HandlerSuite) post(body, signature string) (*http.Response, map[string]string) {
	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/webhooks/fincode", strings.NewReader(body))
	s.Require().NoError(err)
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var ack map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&ack))
	return resp, ack
}

func (s *HandlerSuite) TestDispatchesEvent() {
	resp, ack := s.post(execBody, testSignature)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("0", ack["receive"])
	events := s.events()
	s.Require().Len(events, 1)
	s.Equal("o_123", events[0].OrderID)
	s.Equal("CAPTURED", events[0].Status)

	var extra struct {
		Amount string `json:"amount"`
	}
	s.Require().NoError(events[0].Decode(&extra))
	s.Equal("1000", extra.Amount)
}

func (s *HandlerSuite) TestRejectsMissingSignature() {
	resp, ack := s.post(execBody, "")

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("1", ack["receive"])
	s.Empty(s.events())
}

func (s *HandlerSuite) TestRejectsWrongSignature() {
	resp, ack := s.post(execBody, "whsec_other")

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("1", ack["receive"])
	s.Empty(s.events())
}

func (s *HandlerSuite) TestRejectsInvalidPayload() {
	resp, _ := s.post(`{"shop_id":"s_test"}`, testSignature)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerSuite) TestAcknowledgesUnhandledEvent() {
	resp, ack := s.post(`{"event":"card.regist","shop_id":"s_test"}`, testSignature)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("0", ack["receive"])
	s.Empty(s.events())
}

func (s *HandlerSuite) TestHandlerFailureRequestsRedelivery() {
	s.handler.On(EventCardRegistered, func(context.Context, Event) error {
		return errors.New("database unavailable")
	})

	resp, ack := s.post(`{"event":"card.regist","shop_id":"s_test"}`, testSignature)

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("1", ack["receive"])
}

func (s *HandlerSuite) TestRejectsOtherMethods() {
	resp, err := http.Get(s.server.URL + "/webhooks/fincode")
	s.Require().NoError(err)
	resp.Body.Close()

	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func TestFallback(t *testing.T) {
	t.Parallel()

	var got string
	h := NewHandler(testSignature, WithFallback(func(_ context.Context, e Event) error {
		got = e.Type
		return nil
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"event":"card.update"}`))
	req.Header.Set(SignatureHeader, testSignature)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, EventCardUpdated, got)
	assert.JSONEq(t, `{"receive":"0"}`, rec.Body.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		signature string
		wantErr   error
	}{
		{name: "valid", body: execBody, signature: testSignature},
		{name: "missing signature", body: execBody, wantErr: ErrMissingSignature},
		{name: "prefix of signature", body: execBody, signature: testSignature[:5], wantErr: ErrInvalidSignature},
		{name: "not json", body: "receive", signature: testSignature, wantErr: ErrInvalidPayload},
		{name: "no event type", body: `{"shop_id":"s"}`, signature: testSignature, wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			event, err := Parse([]byte(tt.body), tt.signature, testSignature)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, event)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, EventCardPaymentExecuted, event.Type)
			assert.JSONEq(t, tt.body, string(event.Raw))
		})
	}
}
