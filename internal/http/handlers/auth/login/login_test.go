package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/session"
	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, pass string) (*models.User, string, error) {
	args := m.Called(ctx, email, pass)
	u, _ := args.Get(0).(*models.User)
	return u, args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		mockUser       *models.User
		mockToken      string
		mockErr        error
		mockExpected   bool
		wantStatusCode int
		wantStatus     string
		wantError      string
		wantCookie     bool
	}{
		{
			name:           "success",
			requestBody:    `{"email":"alice@example.com","password":"secret1"}`,
			mockUser:       &models.User{UID: "uid-1", Email: "alice@example.com"},
			mockToken:      "sometoken",
			mockExpected:   true,
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
			wantCookie:     true,
		},
		{
			name:           "invalid json body",
			requestBody:    `{"email":`,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
			wantError:      "invalid request body",
		},
		{
			name:           "missing password",
			requestBody:    `{"email":"alice@example.com"}`,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
			wantError:      "field Password is a required field",
		},
		{
			name:           "invalid credentials",
			requestBody:    `{"email":"alice@example.com","password":"wrongpass"}`,
			mockErr:        auth.ErrInvalidCredentials,
			mockExpected:   true,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
			wantError:      "invalid credentials",
		},
		{
			name:           "service failure",
			requestBody:    `{"email":"alice@example.com","password":"secret1"}`,
			mockErr:        errors.New("db down"),
			mockExpected:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     response.StatusError,
			wantError:      "failed to login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			if tt.mockExpected {
				service.On("Login", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockUser, tt.mockToken, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), service,
				session.Cookie{Name: "token", TTL: 7 * 24 * time.Hour})

			req := httptest.NewRequest(http.MethodPost, "/api/login",
				bytes.NewBufferString(tt.requestBody))
			req = req.WithContext(context.WithValue(req.Context(),
				middleware.RequestIDKey, "test-request-id"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp response.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantError, resp.Error)

			cookies := rec.Result().Cookies()
			if tt.wantCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, "sometoken", cookies[0].Value)
			} else {
				assert.Empty(t, cookies)
			}

			service.AssertExpectations(t)
		})
	}
}
