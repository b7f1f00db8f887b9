package wayfind

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/vdom"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

func TestHandleRegistersRoutesInOrder(t *testing.T) {
	app := New(Config{})
	app.Handle("/", func(ctx context.Context, params Params) (Component, error) {
		return view.Static(vdom.El("h1", "home")), nil
	})
	app.Handle("/notes/:id", func(ctx context.Context, params Params) (Component, error) {
		return view.Static(vdom.El("p", params.Get("id"))), nil
	})

	if got := app.Table().Len(); got != 2 {
		t.Fatalf("table length = %d, want 2", got)
	}
	m, ok := app.Table().Match("/notes/7")
	if !ok {
		t.Fatal("expected /notes/7 to match")
	}
	if got := m.Params.Get("id"); got != "7" {
		t.Errorf("id = %q, want 7", got)
	}
}

func TestHandlePanicsOnInvalidPattern(t *testing.T) {
	app := New(Config{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid pattern")
		}
	}()
	app.Handle("no-leading-slash", func(ctx context.Context, params route.Params) (Component, error) {
		return nil, nil
	})
}

func TestHandlerServesEntryDocument(t *testing.T) {
	app := New(Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	app.Handle("/", func(ctx context.Context, params Params) (Component, error) {
		return view.Static(vdom.El("h1", "home")), nil
	})

	h, err := app.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "wf-root") {
		t.Error("entry document missing mount container")
	}
}
