package echo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	app "github.com/mohammadpnp/prospect-import/internal/application/prospect"
)

func TestListProspectsHandlerSuccess(t *testing.T) {
	t.Parallel()

	list := &fakeList{out: app.ListProspectsOutput{
		Prospects: []app.ProspectOutput{
			{ID: 1, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
		},
		Size:  1,
		Total: 12,
	}}
	e := newTestServer(&fakeUpload{}, &fakeImport{}, &fakeProgress{}, list)

	req := httptest.NewRequest(http.MethodGet, "/api/prospects?page=0&page_size=10", nil)
	req.Header.Set("X-User-ID", "1")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decodeEnvelope(t, rec.Body.Bytes())
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %#v", got["data"])
	}
	if data["total"] != float64(12) || data["size"] != float64(1) {
		t.Fatalf("unexpected list payload: %#v", data)
	}
	prospects, ok := data["prospects"].([]any)
	if !ok || len(prospects) != 1 {
		t.Fatalf("unexpected prospects payload: %#v", data["prospects"])
	}
}

func TestListProspectsHandlerUnauthorized(t *testing.T) {
	t.Parallel()

	e := newTestServer(&fakeUpload{}, &fakeImport{}, &fakeProgress{}, &fakeList{})

	req := httptest.NewRequest(http.MethodGet, "/api/prospects", nil)
	req.Header.Set("X-User-ID", "not-a-number")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
