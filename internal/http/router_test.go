package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "travelapi/internal/config"
	"travelapi/internal/domain"
	h "travelapi/internal/http/handlers"
	"travelapi/internal/repositories"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, map[domain.ResourceKind][]domain.Record) {
	t.Helper()
	seed, err := repositories.SampleData()
	if err != nil {
		t.Fatalf("sample data: %v", err)
	}
	store := repositories.NewMemoryStore()
	if err := store.Init(context.Background(), seed); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return NewRouter(intconfig.Env{StoreDriver: intconfig.DriverMemory}, store, nil), seed
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON array: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestListReturnsSeededRecords(t *testing.T) {
	r, seed := newTestRouter(t)

	for _, kind := range domain.ListingKinds {
		w := do(r, http.MethodGet, "/api"+kind.Path(), "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d", kind, w.Code)
		}
		if got := decodeList(t, w); len(got) != len(seed[kind]) {
			t.Fatalf("%s: got %d records, want %d", kind, len(got), len(seed[kind]))
		}
	}

	w := do(r, http.MethodGet, "/api/bookings", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("bookings should start as empty array, got %d %s", w.Code, w.Body.String())
	}
}

func TestOptionsPreflight(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, kind := range domain.AllKinds() {
		w := do(r, http.MethodOptions, "/api"+kind.Path(), "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: preflight status %d", kind, w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("%s: preflight body not empty: %q", kind, w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" ||
			w.Header().Get("Access-Control-Allow-Methods") != "GET, POST, OPTIONS" ||
			w.Header().Get("Access-Control-Allow-Headers") != "Content-Type" {
			t.Fatalf("%s: missing CORS headers: %v", kind, w.Header())
		}
	}
}

func TestUnsupportedMethodIs405(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, kind := range domain.AllKinds() {
		for _, method := range []string{http.MethodDelete, http.MethodPut, http.MethodPatch} {
			w := do(r, method, "/api"+kind.Path(), "")
			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("%s %s: status %d", method, kind, w.Code)
			}
			if got := strings.TrimSpace(w.Body.String()); got != `{"message":"Method not allowed"}` {
				t.Fatalf("%s %s: body %s", method, kind, got)
			}
			if w.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Fatalf("%s %s: CORS headers missing on 405", method, kind)
			}
		}
	}
}

func TestCreateBusEchoesWithNewID(t *testing.T) {
	r, seed := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/buses", `{"name":"Test Line"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["name"] != "Test Line" {
		t.Fatalf("name not echoed: %#v", got)
	}
	id, _ := got["id"].(string)
	if id == "" {
		t.Fatalf("missing id: %#v", got)
	}
	for _, rec := range seed[domain.KindBuses] {
		if rec.ID() == id {
			t.Fatalf("id %q collides with existing record", id)
		}
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	r, seed := newTestRouter(t)

	for _, kind := range domain.ListingKinds {
		w := do(r, http.MethodPost, "/api"+kind.Path(), `{"name":"Round Trip"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("%s: create status %d", kind, w.Code)
		}
		var created map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &created)

		list := decodeList(t, do(r, http.MethodGet, "/api"+kind.Path(), ""))
		if len(list) != len(seed[kind])+1 {
			t.Fatalf("%s: list size %d after create, want %d", kind, len(list), len(seed[kind])+1)
		}
		if list[len(list)-1]["id"] != created["id"] {
			t.Fatalf("%s: created record not last in list", kind)
		}

		one := do(r, http.MethodGet, "/api"+kind.Path()+"/"+created["id"].(string), "")
		if one.Code != http.StatusOK || !strings.Contains(one.Body.String(), "Round Trip") {
			t.Fatalf("%s: get by id failed: %d %s", kind, one.Code, one.Body.String())
		}
	}
}

func TestCreateAcceptsEmptyBodyAndRejectsNonObject(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/hotels", "")
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"id"`) {
		t.Fatalf("empty body should create a record with only an id: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/hotels", `[1,2,3]`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("array body should be a 500, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Error creating hotels" || body["error"] == nil {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestGetUnknownIDIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/destinations/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not found") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestAuthMeAlwaysUnauthorized(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, cookie := range []string{"", "session=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		if cookie != "" {
			req.Header.Set("Cookie", cookie)
			req.Header.Set("Authorization", "Bearer whatever")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != `{"message":"Unauthorized"}` {
			t.Fatalf("unexpected body %s", got)
		}
	}
}

func TestBookingFlowAndReceipt(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/bookings", `{"propertyName":"Taj Lake Palace","customerName":"Tester","guests":2,"totalPrice":64000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}
	var booking map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &booking)
	conf, _ := booking["confirmationNumber"].(string)
	if !strings.HasPrefix(conf, "TRV-") || booking["status"] != "confirmed" {
		t.Fatalf("booking defaults missing: %#v", booking)
	}

	receipt := do(r, http.MethodGet, "/api/bookings/"+booking["id"].(string)+"/receipt", "")
	if receipt.Code != http.StatusOK {
		t.Fatalf("receipt status %d: %s", receipt.Code, receipt.Body.String())
	}
	if receipt.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected content type %q", receipt.Header().Get("Content-Type"))
	}
	if !strings.Contains(receipt.Header().Get("Content-Disposition"), "RECEIPT_"+conf+".pdf") {
		t.Fatalf("unexpected disposition %q", receipt.Header().Get("Content-Disposition"))
	}

	missing := do(r, http.MethodGet, "/api/bookings/unknown/receipt", "")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("receipt for unknown booking should 404, got %d", missing.Code)
	}
}

func TestHealthAndRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"store":"memory"`) {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/routes", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/api/private-cars") {
		t.Fatalf("routes: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route should 404, got %d", w.Code)
	}
}

// failingStore reports every read and write as a backend failure.
type failingStore struct {
	*repositories.MemoryStore
}

var errBackendDown = errors.New("backend unreachable")

func (failingStore) Ping(context.Context) error { return errBackendDown }

func (failingStore) List(context.Context, domain.ResourceKind) ([]domain.Record, error) {
	return nil, domain.InternalError{Op: "list", Err: errBackendDown}
}

func (failingStore) Create(context.Context, domain.ResourceKind, domain.Record) (domain.Record, error) {
	return nil, domain.InternalError{Op: "create", Err: errBackendDown}
}

func TestStoreFailureIs500(t *testing.T) {
	r := NewRouter(intconfig.Env{StoreDriver: "broken"}, failingStore{repositories.NewMemoryStore()}, nil)

	w := do(r, http.MethodGet, "/api/restaurants", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Error fetching restaurants" || body["error"] != "list: backend unreachable" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("CORS headers missing on 500")
	}

	w = do(r, http.MethodPost, "/api/private-cars", `{"name":"x"}`)
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "Error creating private cars") {
		t.Fatalf("create failure: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("health should report 503, got %d", w.Code)
	}
}

func TestCreateEchoKeepsLargeIntegers(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/destinations", `{"name":"x","bookingRef":9007199254740993,"rating":4.75}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"bookingRef":9007199254740993`) || !strings.Contains(body, `"rating":4.75`) {
		t.Fatalf("create echo changed numeric fields: %s", body)
	}

	var created map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	one := do(r, http.MethodGet, "/api/destinations/"+created["id"].(string), "")
	if !strings.Contains(one.Body.String(), `"bookingRef":9007199254740993`) {
		t.Fatalf("stored record changed numeric fields: %s", one.Body.String())
	}
}

func TestCreateRejectsTrailingDataAndOversizedBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/hotels", `{"name":"a"} {"name":"b"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("two concatenated objects should be rejected, got %d", w.Code)
	}

	big := `{"name":"` + strings.Repeat("x", int(h.MaxBodyBytes)) + `"}`
	w = do(r, http.MethodPost, "/api/hotels", big)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized body should be 413, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"message":"Request body too large"}` {
		t.Fatalf("unexpected body %s", got)
	}

	list := decodeList(t, do(r, http.MethodGet, "/api/hotels", ""))
	for _, rec := range list {
		if rec["name"] == "a" {
			t.Fatalf("rejected payload was stored")
		}
	}
}
