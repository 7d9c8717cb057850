package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// helper: new Echo with the guard and a simple route
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(SubmissionGuard(rdb, ttl))
	e.POST("/api/inspections", handler)
	e.GET("/api/inspections", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

const subID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // 32-hex

func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"id": "deadbeef"})
}

func Test_BypassOnGET_NoHeaderRequired(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/api/inspections", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_HeaderValidation(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	// missing X-Submission-Id
	rec := doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, map[string]int{"x": 1}), nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing header => want 400, got %d", rec.Code)
	}

	// malformed id
	rec = doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, map[string]int{"x": 1}), map[string]string{
		"X-Submission-Id": "NOT-VALID",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed header => want 400, got %d", rec.Code)
	}

	// uuid form accepted
	rec = doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, map[string]int{"x": 1}), map[string]string{
		"X-Submission-Id": "0b3e4567-e89b-12d3-a456-426614174000",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("uuid id => want 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func Test_ReplaySameBody(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	var calls int32
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		atomic.AddInt32(&calls, 1)
		return c.JSON(http.StatusCreated, map[string]any{"id": "deadbeef"})
	})

	hdr := map[string]string{"X-Submission-Id": subID}
	body := map[string]string{"crew_branch": "phx-north"}

	rec1 := doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, body), hdr)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first: %d", rec1.Code)
	}
	rec2 := doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, body), hdr)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay: %d body=%s", rec2.Code, rec2.Body.String())
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Errorf("replay body differs:\n%s\n%s", rec1.Body.String(), rec2.Body.String())
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("handler ran %d times, want 1 (insert-once)", got)
	}
}

func Test_SameIDDifferentBodyConflicts(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	hdr := map[string]string{"X-Submission-Id": subID}
	rec := doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, map[string]string{"a": "1"}), hdr)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first: %d", rec.Code)
	}
	rec = doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, map[string]string{"a": "2"}), hdr)
	if rec.Code != http.StatusConflict {
		t.Fatalf("different body => want 409, got %d", rec.Code)
	}
}

func Test_InProgressConflicts(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	// Simulate a first request still in flight by planting its provisional
	// lock directly.
	body, _ := json.Marshal(map[string]string{"a": "1"})
	entry := guardEntry{InProgress: true, BodySHA256: bodyHash(body), CreatedAt: time.Now().UTC()}
	payload, _ := json.Marshal(entry)
	mr.Set(buildKey(http.MethodPost, "/api/inspections", subID), string(payload))

	rec := doReq(t, e, http.MethodPost, "/api/inspections", bytes.NewReader(body), map[string]string{
		"X-Submission-Id": subID,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("in progress => want 409, got %d", rec.Code)
	}
}

func Test_GuardUnavailable(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)
	mr.Close() // redis down before the request

	rec := doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, map[string]int{"x": 1}), map[string]string{
		"X-Submission-Id": subID,
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("redis down => want 503, got %d", rec.Code)
	}
}

func Test_DistinctIDsIndependent(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	var calls int32
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		atomic.AddInt32(&calls, 1)
		return c.JSON(http.StatusCreated, map[string]any{"n": atomic.LoadInt32(&calls)})
	})

	body := map[string]string{"same": "payload"}
	rec := doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, body), map[string]string{
		"X-Submission-Id": subID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first: %d", rec.Code)
	}
	rec = doReq(t, e, http.MethodPost, "/api/inspections", mkJSONBody(t, body), map[string]string{
		"X-Submission-Id": "cccccccccccccccccccccccccccccccc",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("second id: %d", rec.Code)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("handler ran %d times, want 2", got)
	}
}
