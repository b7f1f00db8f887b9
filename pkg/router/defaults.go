package router

import (
	"context"

	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/vdom"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// defaultNotFound is the built-in fallback view.
func defaultNotFound(ctx context.Context, params route.Params) (view.Component, error) {
	path := params.Get("path")
	return view.Static(vdom.Div(
		vdom.Class("wf-not-found"),
		vdom.H1("Page not found"),
		vdom.P(vdom.Textf("No route matches %s.", path)),
		view.Link("/", "Go home"),
	)), nil
}

// defaultErrorView is the built-in handler-failure view. It carries the
// error text as diagnostic context.
func defaultErrorView(err error) view.Component {
	return view.Static(vdom.Div(
		vdom.Class("wf-error"),
		vdom.H1("Something went wrong"),
		vdom.Pre(vdom.Text(err.Error())),
	))
}
