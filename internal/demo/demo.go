// Package demo is the notes application served by "wayfind serve". It
// exercises the full stack: routed views over a persistent store, link
// interception, a parameterized route, and a deliberately failing route for
// inspecting the error view.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/store"
	"github.com/wayfind-dev/wayfind/pkg/vdom"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// Note is one stored note.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// App holds the demo's routes and storage.
type App struct {
	notes store.Store
}

// NewApp creates the demo over the given store and seeds it with sample
// notes when empty.
func NewApp(notes store.Store) (*App, error) {
	a := &App{notes: notes}
	if err := a.seed(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) seed(ctx context.Context) error {
	keys, err := a.notes.List(ctx, "notes/")
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return nil
	}
	samples := []Note{
		{ID: "1", Title: "Getting started", Body: "Routes live on the server; the browser only relays events."},
		{ID: "2", Title: "Deep links", Body: "Refresh this page. The entry document resolves and the route remounts."},
		{ID: "3", Title: "Back and forward", Body: "Traversal reports a transition; the router remounts without touching history."},
	}
	for _, n := range samples {
		if err := a.putNote(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) putNote(ctx context.Context, n Note) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return a.notes.Put(ctx, "notes/"+n.ID, data)
}

func (a *App) getNote(ctx context.Context, id string) (*Note, error) {
	data, err := a.notes.Get(ctx, "notes/"+id)
	if err != nil {
		return nil, err
	}
	var n Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (a *App) listNotes(ctx context.Context) ([]Note, error) {
	keys, err := a.notes.List(ctx, "notes/")
	if err != nil {
		return nil, err
	}
	out := make([]Note, 0, len(keys))
	for _, key := range keys {
		data, err := a.notes.Get(ctx, key)
		if err != nil {
			continue
		}
		var n Note
		if err := json.Unmarshal(data, &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Register adds the demo routes to the table, in match order.
func (a *App) Register(add func(pattern string, handler route.Handler)) {
	add("/", a.Index)
	add("/notes/:id", a.ShowNote)
	add("/about", a.About)
	add("/broken", a.Broken)
}

func layout(title string, content ...*vdom.VNode) view.Component {
	body := []any{
		vdom.Header(
			vdom.Nav(
				view.NavLink("/", "Notes"),
				view.NavLink("/about", "About"),
			),
		),
		vdom.H1(title),
	}
	for _, n := range content {
		body = append(body, n)
	}
	return view.Static(vdom.Main(body...))
}

// Index lists all notes.
func (a *App) Index(ctx context.Context, params route.Params) (view.Component, error) {
	notes, err := a.listNotes(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]any, 0, len(notes))
	for _, n := range notes {
		items = append(items, vdom.Li(
			vdom.Key(n.ID),
			view.Link("/notes/"+n.ID, n.Title),
		))
	}
	return layout("Notes", vdom.Ul(items...)), nil
}

// ShowNote renders one note; an unknown id is a handler failure, which the
// router surfaces through the error view.
func (a *App) ShowNote(ctx context.Context, params route.Params) (view.Component, error) {
	n, err := a.getNote(ctx, params.Get("id"))
	if err != nil {
		return nil, fmt.Errorf("note %s: %w", params.Get("id"), err)
	}
	return layout(n.Title,
		vdom.P(n.Body),
		vdom.P(view.Link("/", "Back to all notes")),
	), nil
}

// About is a static page.
func (a *App) About(ctx context.Context, params route.Params) (view.Component, error) {
	return layout("About",
		vdom.P("Wayfind keeps routing on the server. The thin client relays clicks and traversal, applies patches, and nothing else."),
	), nil
}

// Broken always fails, for demonstrating the error view.
func (a *App) Broken(ctx context.Context, params route.Params) (view.Component, error) {
	return nil, fmt.Errorf("this route fails on purpose")
}
