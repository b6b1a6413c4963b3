// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// fakeSession records forced logouts.
type fakeSession struct {
	mu      sync.Mutex
	token   string
	guest   bool
	logouts atomic.Int32
}

func (s *fakeSession) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) IsGuest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guest
}

func (s *fakeSession) Logout(context.Context) error {
	s.logouts.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *fakeSession) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func newTestAdapter(t *testing.T, router http.Handler, session SessionGuard) *HTTPServerAdapter {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, session, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, &fakeSession{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── hooks ───────────────────────────────────────────────────────────────────

func TestBeforeRequest_TokenReadAtSendTime(t *testing.T) {
	var got []string
	r := chi.NewRouter()
	r.Get("/ai/recommendations", func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.Recommendation{Message: "ok"})
	})

	session := &fakeSession{}
	a := newTestAdapter(t, r, session)

	_, err := a.Recommendations(context.Background())
	require.NoError(t, err)

	session.setToken("A")
	_, err = a.Recommendations(context.Background())
	require.NoError(t, err)

	session.setToken("")
	_, err = a.Recommendations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer A", ""}, got)
}

func TestBeforeRequest_RequestID(t *testing.T) {
	var ids []string
	r := chi.NewRouter()
	r.Get("/ai/recommendations", func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get(requestIDHeader))
		writeJSON(w, http.StatusOK, models.Recommendation{Message: "ok"})
	})
	a := newTestAdapter(t, r, &fakeSession{})

	_, err := a.Recommendations(context.Background())
	require.NoError(t, err)
	_, err = a.Recommendations(utils.WithRequestID(context.Background(), "fixed-id"))
	require.NoError(t, err)

	require.Len(t, ids, 2)
	_, parseErr := uuid.Parse(ids[0])
	assert.NoError(t, parseErr)
	assert.Equal(t, "fixed-id", ids[1])
}

func TestAfterResponse_UnauthorizedForcesLogout(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/income", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})
	})

	session := &fakeSession{token: "A"}
	a := newTestAdapter(t, r, session)

	var forced atomic.Int32
	a.SetForcedLogoutHandler(func() { forced.Add(1) })

	_, err := a.ListIncome(context.Background(), models.FetchParams{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), session.logouts.Load())
	assert.Equal(t, int32(1), forced.Load())
}

func TestAfterResponse_GuestIgnoresUnauthorized(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/income", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	session := &fakeSession{guest: true}
	a := newTestAdapter(t, r, session)

	var forced atomic.Int32
	a.SetForcedLogoutHandler(func() { forced.Add(1) })

	_, err := a.ListIncome(context.Background(), models.FetchParams{})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, session.logouts.Load())
	assert.Zero(t, forced.Load())
}

func TestAfterResponse_LoginUnauthorizedIsBadCredentials(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})

	session := &fakeSession{token: "A"}
	a := newTestAdapter(t, r, session)

	_, err := a.Login(context.Background(), models.LoginRequest{Identifier: "alice", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", ErrorMessage(err, "fallback"))
	assert.Zero(t, session.logouts.Load())
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Identifier)
		assert.Equal(t, "secret", req.Password)

		writeJSON(w, http.StatusOK, map[string]any{
			"message":      "Login successful",
			"accessToken":  "A",
			"refreshToken": "R",
			"user":         map[string]any{"id": 1, "username": "alice", "email": "a@example.com", "name": "Alice"},
		})
	})
	a := newTestAdapter(t, r, &fakeSession{})

	resp, err := a.Login(context.Background(), models.LoginRequest{Identifier: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, models.Tokens{AccessToken: "A", RefreshToken: "R"}, resp.Tokens())
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestLogin_MissingTokenIsDecodeError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"user":    map[string]any{"id": 1, "username": "alice"},
		})
	})
	a := newTestAdapter(t, r, &fakeSession{})

	_, err := a.Login(context.Background(), models.LoginRequest{Identifier: "alice", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, models.ErrMissingField)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "login", decodeErr.Op)
}

func TestRegister_Conflict(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Username already taken"})
	})
	a := newTestAdapter(t, r, &fakeSession{})

	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username already taken", ErrorMessage(err, "Registration failed. Please try again."))
}

func TestLogoutAndRefresh(t *testing.T) {
	var logoutBody, refreshBody map[string]string
	r := chi.NewRouter()
	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&logoutBody))
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
	})
	r.Post("/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&refreshBody))
		writeJSON(w, http.StatusOK, models.RefreshResponse{AccessToken: "A2"})
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	require.NoError(t, a.Logout(context.Background(), "R"))
	resp, err := a.RefreshToken(context.Background(), "R")

	require.NoError(t, err)
	assert.Equal(t, "A2", resp.AccessToken)
	assert.Equal(t, map[string]string{"refreshToken": "R"}, logoutBody)
	assert.Equal(t, map[string]string{"refreshToken": "R"}, refreshBody)
}

// ── transactions ────────────────────────────────────────────────────────────

func TestListIncome_QueryAndDecode(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/income", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2024-01-01", q.Get("startDate"))
		assert.Equal(t, "2024-01-31", q.Get("endDate"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"data": [{"id": 7, "user_id": 1, "jumlah": 1500, "tanggal": "2024-01-05T00:00:00Z",
			          "kategori_pemasukan": {"id": 3, "nama": "Salary"}}],
			"pagination": {"currentPage": 2, "totalPages": 3, "totalItems": 21, "limit": 10}
		}`)
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	page, err := a.ListIncome(context.Background(), models.FetchParams{
		StartDate: "2024-01-01", EndDate: "2024-01-31", Page: 2, Limit: 10,
	})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(7), page.Data[0].ID)
	assert.Equal(t, "Salary", page.Data[0].CategoryName())
	assert.Equal(t, models.PaginationInfo{CurrentPage: 2, TotalPages: 3, TotalItems: 21, Limit: 10}, page.Pagination)
}

func TestListOutcome_MissingPagination(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/outcome", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}})
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	_, err := a.ListOutcome(context.Background(), models.FetchParams{})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestListIncome_InvalidParamsNoRequest(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/income", func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })
	a := newTestAdapter(t, r, &fakeSession{})

	_, err := a.ListIncome(context.Background(), models.FetchParams{StartDate: "2024-02-01", EndDate: "2024-01-01"})

	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
	assert.Zero(t, calls.Load())
}

func TestCreateUpdateDeleteOutcome(t *testing.T) {
	var seen []string
	r := chi.NewRouter()
	r.Post("/outcome", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, "POST")
		var p models.TransactionPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		writeJSON(w, http.StatusCreated, models.Outcome{ID: 11, Amount: p.Amount, Date: p.Date, CategoryID: p.CategoryID})
	})
	r.Put("/outcome/{id}", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, "PUT "+chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, models.Outcome{ID: 11, Amount: 99})
	})
	r.Delete("/outcome/{id}", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, "DELETE "+chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "deleted"})
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})
	ctx := context.Background()

	cat := int64(801)
	created, err := a.CreateOutcome(ctx, models.TransactionPayload{Amount: 50, CategoryID: &cat, Date: "2024-01-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	updated, err := a.UpdateOutcome(ctx, 11, models.TransactionPayload{Amount: 99, Date: "2024-01-02"})
	require.NoError(t, err)
	assert.InDelta(t, 99.0, updated.Amount, 1e-9)

	require.NoError(t, a.DeleteOutcome(ctx, 11))
	assert.Equal(t, []string{"POST", "PUT 11", "DELETE 11"}, seen)
}

func TestDeleteIncome_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/income/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Income not found", http.StatusNotFound)
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	err := a.DeleteIncome(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Income not found", ErrorMessage(err, "fallback"))
}

func TestCategories(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/income/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Category{{ID: 1, Name: "Salary"}})
	})
	r.Get("/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Category{{ID: 2, Name: "Food"}, {ID: 3, Name: "Rent"}})
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	income, err := a.IncomeCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: 1, Name: "Salary"}}, income)

	outcome, err := a.OutcomeCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, outcome, 2)
}

// ── insights and profile ────────────────────────────────────────────────────

func TestDashboardSummary(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/dashboard/summary", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("startDate"))
		writeJSON(w, http.StatusOK, models.DashboardSummary{TotalIncome: 10, TotalOutcome: 4, Balance: 6, Month: "January 2024"})
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	got, err := a.DashboardSummary(context.Background(), models.FetchParams{StartDate: "2024-01-01"})

	require.NoError(t, err)
	assert.InDelta(t, 6.0, got.Balance, 1e-9)
	assert.Equal(t, "January 2024", got.Month)
}

func TestChat(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/ai/chat", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hi", req["message"])
		assert.Equal(t, []any{}, req["history"])
		writeJSON(w, http.StatusOK, models.NewChatMessage(models.ChatRoleModel, "hello", 0))
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	msg, err := a.Chat(context.Background(), models.ChatRequest{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, models.ChatRoleModel, msg.Role)
	assert.Equal(t, "hello", msg.Text())
}

func TestUploadAvatar(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/users/profile-picture", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer A", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("profilePicture")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)

		assert.Equal(t, "me.png", hdr.Filename)
		assert.Equal(t, "png-bytes", string(data))
		writeJSON(w, http.StatusOK, models.AvatarResponse{AvatarURL: "/uploads/me.png"})
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	resp, err := a.UploadAvatar(context.Background(), "me.png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/me.png", resp.AvatarURL)
}

func TestInternalServerError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/ai/recommendations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "AI service unavailable"})
	})
	a := newTestAdapter(t, r, &fakeSession{token: "A"})

	_, err := a.Recommendations(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "AI service unavailable", ErrorMessage(err, "fallback"))
}

func TestTransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: addr, RequestTimeout: time.Second}, &fakeSession{}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Recommendations(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recommendations request")
	assert.Equal(t, "fallback", ErrorMessage(err, "fallback"))
}
