package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/handler"
	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/auth"
	"github.com/bookswap/exchange-service/pkg/validate"

	service_mocks "github.com/bookswap/exchange-service/internal/handler/mocks"
)

func TestHandler_ProvisionChannel(t *testing.T) {
	t.Parallel()
	type input struct {
		transactionUid string
		user           string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockChatService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		calls        int
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					ProvisionChannel(ctx, inp.transactionUid, inp.user).
					Return(model.Channel{
						ChannelUid:     "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c",
						TransactionUid: inp.transactionUid,
						BookTitle:      "The Master and Margarita",
						ParticipantA:   "maria",
						ParticipantB:   "ivan",
					}, nil)
			},
			input: input{
				transactionUid: "5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6",
				user:           "ivan",
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"channelUid":"7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c","transactionUid":"5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6","bookTitle":"The Master and Margarita","participantA":"maria","participantB":"ivan","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "retry lands on the same channel",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					ProvisionChannel(ctx, inp.transactionUid, inp.user).
					Return(model.Channel{
						ChannelUid:     "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c",
						TransactionUid: inp.transactionUid,
						BookTitle:      "The Master and Margarita",
						ParticipantA:   "maria",
						ParticipantB:   "ivan",
					}, nil).
					Times(2)
			},
			input: input{
				transactionUid: "5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6",
				user:           "maria",
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"channelUid":"7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c","transactionUid":"5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6","bookTitle":"The Master and Margarita","participantA":"maria","participantB":"ivan","createdAt":"0001-01-01T00:00:00Z"}`,
			},
			calls: 2,
		},
		{
			name: "err. participant missing",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					ProvisionChannel(ctx, inp.transactionUid, inp.user).
					Return(model.Channel{}, errs.ErrMissingParticipant)
			},
			input: input{
				transactionUid: "5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6",
				user:           "ivan",
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"transaction participant is missing"}`,
			},
		},
		{
			name: "err. caller is not a party",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					ProvisionChannel(ctx, inp.transactionUid, inp.user).
					Return(model.Channel{}, errs.ErrForbidden)
			},
			input: input{
				transactionUid: "5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6",
				user:           "oleg",
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"operation not permitted for this user"}`,
			},
		},
		{
			name: "err. unknown transaction",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					ProvisionChannel(ctx, inp.transactionUid, inp.user).
					Return(model.Channel{}, errs.ErrNotFound)
			},
			input: input{
				transactionUid: "5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6",
				user:           "ivan",
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockChatService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(log, nil, nil, svc, nil, &recordEnqueuer{})

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/transactions/:transactionUid/channel", h.ProvisionChannel)

			ctx := auth.SetAuthContext(context.Background(), tt.input.user)
			tt.mockBehavior(svc, ctx, tt.input)

			calls := tt.calls
			if calls == 0 {
				calls = 1
			}
			var w *httptest.ResponseRecorder
			for i := 0; i < calls; i++ {
				r := httptest.NewRequest(
					http.MethodPost, fmt.Sprintf("/transactions/%s/channel", tt.input.transactionUid), http.NoBody).WithContext(ctx)
				w = httptest.NewRecorder()
				e.ServeHTTP(w, r)
			}

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SendMessage(t *testing.T) {
	t.Parallel()
	type input struct {
		channelUid string
		user       string
		body       string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockChatService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					SendMessage(ctx, inp.channelUid, model.SendMessageRequest{
						Text:   "is the book still available?",
						Sender: inp.user,
					}).
					Return(model.Message{
						ID:     1,
						Sender: inp.user,
						Text:   "is the book still available?",
					}, nil)
			},
			input: input{
				channelUid: "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c",
				user:       "ivan",
				body:       `{"text":"is the book still available?"}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"sender":"ivan","text":"is the book still available?","sentAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. text required",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {},
			input: input{
				channelUid: "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c",
				user:       "ivan",
				body:       `{}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. whitespace only",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					SendMessage(ctx, inp.channelUid, model.SendMessageRequest{
						Text:   "   ",
						Sender: inp.user,
					}).
					Return(model.Message{}, errs.ErrEmptyMessage)
			},
			input: input{
				channelUid: "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c",
				user:       "ivan",
				body:       `{"text":"   "}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"message text is empty"}`,
			},
		},
		{
			name: "err. not a member",
			mockBehavior: func(r *service_mocks.MockChatService, ctx context.Context, inp input) {
				r.EXPECT().
					SendMessage(ctx, inp.channelUid, model.SendMessageRequest{
						Text:   "hello",
						Sender: inp.user,
					}).
					Return(model.Message{}, errs.ErrForbidden)
			},
			input: input{
				channelUid: "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c",
				user:       "oleg",
				body:       `{"text":"hello"}`,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"operation not permitted for this user"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockChatService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(log, nil, nil, svc, nil, &recordEnqueuer{})

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/channels/:channelUid/messages", h.SendMessage)

			ctx := auth.SetAuthContext(context.Background(), tt.input.user)
			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/channels/%s/messages", tt.input.channelUid), strings.NewReader(tt.input.body)).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_SubscribeChannel(t *testing.T) {
	t.Parallel()

	const (
		channelUid = "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c"
		user       = "ivan"
	)

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockChatService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(log, nil, nil, svc, nil, &recordEnqueuer{})

	e := echo.New()
	e.GET("/channels/:channelUid/subscribe", h.SubscribeChannel)

	ctx := auth.SetAuthContext(context.Background(), user)

	history := []model.Message{
		{ID: 1, Sender: "maria", Text: "hi"},
		{ID: 2, Sender: "ivan", Text: "hello"},
	}
	live := make(chan model.Message, 1)
	live <- model.Message{ID: 3, Sender: "maria", Text: "deal"}
	close(live)
	cancelled := false

	svc.EXPECT().
		Subscribe(ctx, channelUid, user).
		Return(history, (<-chan model.Message)(live), func() { cancelled = true }, nil)

	r := httptest.NewRequest(
		http.MethodGet, fmt.Sprintf("/channels/%s/subscribe", channelUid), http.NoBody).WithContext(ctx)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/event-stream", w.Header().Get(echo.HeaderContentType))
	require.True(t, cancelled)

	// history replays before the live tail, ordered by id
	want := `data: {"id":1,"sender":"maria","text":"hi","sentAt":"0001-01-01T00:00:00Z"}` + "\n\n" +
		`data: {"id":2,"sender":"ivan","text":"hello","sentAt":"0001-01-01T00:00:00Z"}` + "\n\n" +
		`data: {"id":3,"sender":"maria","text":"deal","sentAt":"0001-01-01T00:00:00Z"}` + "\n\n"
	require.Equal(t, want, w.Body.String())
}

func TestHandler_GetMessages(t *testing.T) {
	t.Parallel()

	const (
		channelUid = "7f3e0a44-1f9e-5b2a-9a1c-3d4e5f6a7b8c"
		user       = "ivan"
	)

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockChatService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(log, nil, nil, svc, nil, &recordEnqueuer{})

	e := echo.New()
	e.GET("/channels/:channelUid/messages", h.GetMessages)

	ctx := auth.SetAuthContext(context.Background(), user)
	svc.EXPECT().
		GetMessages(ctx, channelUid, user).
		Return([]model.Message{
			{ID: 1, Sender: "maria", Text: "hi"},
			{ID: 2, Sender: "ivan", Text: "hello"},
		}, nil)

	r := httptest.NewRequest(
		http.MethodGet, fmt.Sprintf("/channels/%s/messages", channelUid), http.NoBody).WithContext(ctx)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":1,"sender":"maria","text":"hi","sentAt":"0001-01-01T00:00:00Z"},{"id":2,"sender":"ivan","text":"hello","sentAt":"0001-01-01T00:00:00Z"}]`,
		strings.Trim(w.Body.String(), "\n"))
}
