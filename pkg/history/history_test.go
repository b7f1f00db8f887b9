package history

import (
	"testing"
)

// fakeBridge records history commands sent to the client.
type fakeBridge struct {
	caps     Capabilities
	pushes   []string
	replaces []string
	states   [][]byte
}

func (b *fakeBridge) PushURL(url string, state []byte) error {
	b.pushes = append(b.pushes, url)
	b.states = append(b.states, state)
	return nil
}

func (b *fakeBridge) ReplaceURL(url string, state []byte) error {
	b.replaces = append(b.replaces, url)
	b.states = append(b.states, state)
	return nil
}

func (b *fakeBridge) Capabilities() Capabilities { return b.caps }

func TestPathAdapterRequiresHistoryAPI(t *testing.T) {
	bridge := &fakeBridge{caps: Capabilities{HistoryAPI: false}}
	if _, err := NewPathAdapter(bridge, Location{Path: "/"}); err != ErrUnavailable {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestPathAdapterNavigateUpdatesCurrentSynchronously(t *testing.T) {
	bridge := &fakeBridge{caps: Capabilities{HistoryAPI: true}}
	a, err := NewPathAdapter(bridge, Location{Path: "/"})
	if err != nil {
		t.Fatalf("NewPathAdapter: %v", err)
	}

	fired := 0
	defer a.OnTransition(func(path string, state []byte) { fired++ })()

	if err := a.Navigate("/about/", nil); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got := a.CurrentPath(); got != "/about" {
		t.Errorf("CurrentPath = %q, want canonical /about", got)
	}
	if fired != 0 {
		t.Error("programmatic Navigate must not fire transition handlers")
	}
	if len(bridge.pushes) != 1 || bridge.pushes[0] != "/about" {
		t.Errorf("pushes = %v, want [/about]", bridge.pushes)
	}
}

func TestPathAdapterReplaceOverwrites(t *testing.T) {
	bridge := &fakeBridge{caps: Capabilities{HistoryAPI: true}}
	a, _ := NewPathAdapter(bridge, Location{Path: "/"})

	if err := a.Replace("/login?next=%2Fnotes", nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(bridge.replaces) != 1 {
		t.Fatalf("replaces = %v, want one entry", bridge.replaces)
	}
	if bridge.replaces[0] != "/login?next=%2Fnotes" {
		t.Errorf("replace URL = %q, want query preserved", bridge.replaces[0])
	}
	if got := a.CurrentPath(); got != "/login" {
		t.Errorf("CurrentPath = %q, want /login", got)
	}
}

func TestPathAdapterTransition(t *testing.T) {
	bridge := &fakeBridge{caps: Capabilities{HistoryAPI: true}}
	a, _ := NewPathAdapter(bridge, Location{Path: "/about"})

	var gotPath string
	var gotState []byte
	unsub := a.OnTransition(func(path string, state []byte) {
		gotPath = path
		gotState = state
	})

	a.HandleTransition("/", []byte(`{"scroll":0}`))
	if gotPath != "/" {
		t.Errorf("transition path = %q, want /", gotPath)
	}
	if string(gotState) != `{"scroll":0}` {
		t.Errorf("transition state = %q, want payload passed through", gotState)
	}
	if a.CurrentPath() != "/" {
		t.Error("transition must update CurrentPath")
	}

	unsub()
	gotPath = ""
	a.HandleTransition("/about", nil)
	if gotPath != "" {
		t.Error("unsubscribed handler must not fire")
	}
	if a.CurrentPath() != "/about" {
		t.Error("location still tracks after unsubscribe")
	}
}

func TestPathAdapterIgnoresHostileTransitionURL(t *testing.T) {
	bridge := &fakeBridge{caps: Capabilities{HistoryAPI: true}}
	a, _ := NewPathAdapter(bridge, Location{Path: "/safe"})

	fired := false
	defer a.OnTransition(func(string, []byte) { fired = true })()

	a.HandleTransition("/../../etc", nil)
	if fired {
		t.Error("hostile URL must not reach handlers")
	}
	if a.CurrentPath() != "/safe" {
		t.Error("hostile URL must not move the location")
	}
}

func TestFragmentAdapterEncoding(t *testing.T) {
	bridge := &fakeBridge{} // no capabilities needed
	a, err := NewFragmentAdapter(bridge, Location{Path: "/app#/notes/7"})
	if err != nil {
		t.Fatalf("NewFragmentAdapter: %v", err)
	}
	if got := a.CurrentPath(); got != "/notes/7" {
		t.Errorf("initial CurrentPath = %q, want /notes/7", got)
	}

	if err := a.Navigate("/about", nil); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if bridge.pushes[0] != "#/about" {
		t.Errorf("push URL = %q, want #/about", bridge.pushes[0])
	}
	if a.CurrentPath() != "/about" {
		t.Error("CurrentPath must be the decoded route, not the fragment URL")
	}
}

func TestFragmentAdapterTransitionDecodesFragment(t *testing.T) {
	bridge := &fakeBridge{}
	a, _ := NewFragmentAdapter(bridge, Location{Path: "/"})

	var got string
	defer a.OnTransition(func(path string, state []byte) { got = path })()

	a.HandleTransition("/index.html#/user/42", nil)
	if got != "/user/42" {
		t.Errorf("transition path = %q, want /user/42", got)
	}

	a.HandleTransition("/index.html#", nil)
	if a.CurrentPath() != "/" {
		t.Error("empty fragment routes to /")
	}
}

func TestMemoryAdapterBackForward(t *testing.T) {
	a, err := NewMemoryAdapter(Location{Path: "/"})
	if err != nil {
		t.Fatalf("NewMemoryAdapter: %v", err)
	}

	var transitions []string
	defer a.OnTransition(func(path string, state []byte) {
		transitions = append(transitions, path)
	})()

	a.Navigate("/a", nil)
	a.Navigate("/b", nil)
	if len(transitions) != 0 {
		t.Fatal("Navigate must not fire transitions")
	}

	if !a.Back() {
		t.Fatal("Back should succeed")
	}
	if a.CurrentPath() != "/a" {
		t.Errorf("CurrentPath = %q, want /a", a.CurrentPath())
	}
	if !a.Forward() {
		t.Fatal("Forward should succeed")
	}
	if a.CurrentPath() != "/b" {
		t.Errorf("CurrentPath = %q, want /b", a.CurrentPath())
	}

	want := []string{"/a", "/b"}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %q, want %q", i, transitions[i], want[i])
		}
	}
}

func TestMemoryAdapterNavigateTruncatesForward(t *testing.T) {
	a, _ := NewMemoryAdapter(Location{Path: "/"})
	a.Navigate("/a", nil)
	a.Navigate("/b", nil)
	a.Back()
	a.Navigate("/c", nil)

	if a.Forward() {
		t.Error("forward entries must be discarded after a push")
	}
	if a.Depth() != 3 {
		t.Errorf("Depth = %d, want 3 (/, /a, /c)", a.Depth())
	}
}

func TestMemoryAdapterBackAtRoot(t *testing.T) {
	a, _ := NewMemoryAdapter(Location{Path: "/"})
	if a.Back() {
		t.Error("Back at the oldest entry should report false")
	}
}
