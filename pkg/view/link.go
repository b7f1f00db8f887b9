package view

import "github.com/wayfind-dev/wayfind/pkg/vdom"

// Link creates an anchor element with client-side navigation. The thin
// client intercepts activation of anchors carrying data-nav and relays them
// as navigation events instead of letting the browser reload.
func Link(href string, children ...any) *vdom.VNode {
	args := []any{
		vdom.Href(href),
		vdom.Data("nav", "true"),
	}
	args = append(args, children...)
	return vdom.A(args...)
}

// ActiveLink creates a link that carries an active class when the current
// path matches href. The thin client applies the class; exact controls
// whether the match must be exact or may be a prefix.
func ActiveLink(href, activeClass string, exact bool, children ...any) *vdom.VNode {
	args := []any{
		vdom.Href(href),
		vdom.Data("nav", "true"),
		vdom.Data("active-class", activeClass),
	}
	if exact {
		args = append(args, vdom.Data("active-exact", "true"))
	}
	args = append(args, children...)
	return vdom.A(args...)
}

// NavLink is ActiveLink with common defaults: the "active" class on an exact
// match.
func NavLink(href string, children ...any) *vdom.VNode {
	return ActiveLink(href, "active", true, children...)
}
