package webapp

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeStatic(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandlerServesRoot(t *testing.T) {
	h := Handler(writeStatic(t))
	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("root: got status %d", rec.Code)
	}
	if got := rec.Body.String(); got != "<html>app</html>" {
		t.Fatalf("root: unexpected body %q", got)
	}
}

func TestHandlerServesAssets(t *testing.T) {
	h := Handler(writeStatic(t))
	rec := get(t, h, "/app.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("asset: got status %d", rec.Code)
	}
	if got := rec.Body.String(); got != "console.log(1)" {
		t.Fatalf("asset: unexpected body %q", got)
	}
}

func TestHandlerSPAFallback(t *testing.T) {
	h := Handler(writeStatic(t))
	for _, path := range []string{"/orders", "/orders/42", "/settings"} {
		rec := get(t, h, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: got status %d", path, rec.Code)
		}
		if got := rec.Body.String(); got != "<html>app</html>" {
			t.Fatalf("%s: expected root document, got %q", path, got)
		}
	}
}

func TestHandlerMissingAssetIs404(t *testing.T) {
	h := Handler(writeStatic(t))
	rec := get(t, h, "/missing.png")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing asset: got status %d", rec.Code)
	}
}
