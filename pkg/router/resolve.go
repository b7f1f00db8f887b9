package router

import (
	"context"
	"fmt"

	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// resolve matches the canonical path and runs the winning handler off the
// router lock. Every resolve supersedes the previous one: the earlier
// handler's context is cancelled and its eventual result is discarded by
// generation comparison, so a slow early navigation can never overwrite a
// fast later one.
func (r *Router) resolve(canon string, state []byte) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}

	r.gen++
	gen := r.gen
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.status = StatusResolving
	r.mu.Unlock()

	end := r.hookStart(canon)

	m, ok := r.table.Match(canon)
	if !ok {
		r.logger.Debug("router: no route matched", "path", canon)
		go r.run(ctx, gen, canon, state, "", r.notFound, route.Params{"path": canon}, StatusNotFound, end)
		return
	}

	r.logger.Debug("router: resolving", "path", canon, "route", m.Route.Pattern().String())
	go r.run(ctx, gen, canon, state, m.Route.Pattern().String(), m.Handler, m.Params, StatusMounted, end)
}

// run executes a handler and commits its result. Handler panics surface as
// handler failures, not session crashes.
func (r *Router) run(ctx context.Context, gen uint64, canon string, state []byte,
	pattern string, handler route.Handler, params route.Params,
	settled Status, end func(Outcome)) {

	comp, err := callHandler(ctx, handler, params)
	r.commit(gen, canon, state, pattern, comp, err, settled, end)
}

func callHandler(ctx context.Context, handler route.Handler, params route.Params) (comp view.Component, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			comp = nil
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return handler(ctx, params)
}

// commit mounts a settled navigation unless it has gone stale. Stale results
// are discarded silently: no container mutation, no error surfaced. Hook
// settlement runs after the lock is released, so hooks may call back into
// the router.
func (r *Router) commit(gen uint64, canon string, state []byte, pattern string,
	comp view.Component, err error, settled Status, end func(Outcome)) {

	r.mu.Lock()

	if r.closed || gen != r.gen {
		r.mu.Unlock()
		r.logger.Debug("router: discarding stale navigation", "path", canon)
		end(Outcome{Path: canon, Pattern: pattern, Kind: OutcomeStale})
		return
	}
	r.cancel = nil

	if err != nil {
		r.logger.Error("router: handler failed", "path", canon, "route", pattern, "err", err)
		r.mountLocked(canon, state, r.errView(err), StatusMounted)
		r.mu.Unlock()
		end(Outcome{Path: canon, Pattern: pattern, Kind: OutcomeFailed, Err: err})
		return
	}

	r.mountLocked(canon, state, comp, settled)
	kind := OutcomeMounted
	if settled == StatusNotFound {
		kind = OutcomeNotFound
	}
	r.mu.Unlock()
	end(Outcome{Path: canon, Pattern: pattern, Kind: kind})
}

// mountLocked drives the renderer and records the new current location.
// Caller holds r.mu. When a mount fails, the error-view mount that follows
// still releases the previous view, so resources never leak across a failed
// render.
func (r *Router) mountLocked(canon string, state []byte, comp view.Component, settled Status) {
	if _, err := r.renderer.Mount(comp); err != nil {
		r.logger.Error("router: mount failed", "path", canon, "err", err)
		// Last resort: show the error view. If that fails too the container
		// keeps whatever it had; the session error frame reports the rest.
		if _, err := r.renderer.Mount(r.errView(err)); err != nil {
			r.logger.Error("router: error view mount failed", "path", canon, "err", err)
		}
	}
	r.status = settled
	r.curPath = canon
	r.curState = state
}
