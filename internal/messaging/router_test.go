package messaging

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pixil98/go-mudcore/internal/living"
)

type fakeWorld struct {
	mu      sync.Mutex
	players map[string]*living.Entity
}

func (w *fakeWorld) FindPlayer(id string) (*living.Entity, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.players[id]
	return e, ok
}

func (w *fakeWorld) ForEachPlayer(fn func(e *living.Entity)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range w.players {
		fn(e)
	}
}

type fakeOutput struct {
	mu    sync.Mutex
	lines []string
}

func (o *fakeOutput) WriteLine(text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, text)
	return nil
}

func (o *fakeOutput) Close() error { return nil }

func (o *fakeOutput) contains(substr string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, l := range o.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func startPlayer(t *testing.T, w *fakeWorld, id, name string) (*living.Entity, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	e := living.NewPlayer(id, name, out)
	e.Start()
	t.Cleanup(e.Stop)
	w.mu.Lock()
	w.players[id] = e
	w.mu.Unlock()
	return e, out
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling: %v", err)
	}
	return data
}

func TestTellDeliversToBothSides(t *testing.T) {
	w := &fakeWorld{players: map[string]*living.Entity{}}
	_, aliceOut := startPlayer(t, w, "alice", "Alice")
	_, bobOut := startPlayer(t, w, "bob", "Bob")

	r := NewRouter(nil, w, nil)
	r.onTell(marshal(t, ChatMessage{
		FromID: "alice", FromName: "Alice", To: "Bob", Text: "meet me at the gate",
	}))

	waitFor(t, "target delivery", func() bool {
		return bobOut.contains("Alice tells you: meet me at the gate")
	})
	waitFor(t, "sender echo", func() bool {
		return aliceOut.contains("You tell Bob: meet me at the gate")
	})
}

func TestTellToOfflinePlayerNotifiesSender(t *testing.T) {
	w := &fakeWorld{players: map[string]*living.Entity{}}
	_, aliceOut := startPlayer(t, w, "alice", "Alice")

	r := NewRouter(nil, w, nil)
	r.onTell(marshal(t, ChatMessage{
		FromID: "alice", FromName: "Alice", To: "ghost", Text: "hello?",
	}))

	waitFor(t, "offline notice", func() bool {
		return aliceOut.contains("No one named 'ghost' is listening.")
	})
}

func TestChannelFansOutExcludingSenderEcho(t *testing.T) {
	w := &fakeWorld{players: map[string]*living.Entity{}}
	_, aliceOut := startPlayer(t, w, "alice", "Alice")
	_, bobOut := startPlayer(t, w, "bob", "Bob")
	_, caraOut := startPlayer(t, w, "cara", "Cara")

	r := NewRouter(nil, w, nil)
	r.onChannel(marshal(t, ChatMessage{
		FromID: "alice", FromName: "Alice", Channel: "gossip", Text: "anyone selling a shield?",
	}))

	waitFor(t, "fan-out", func() bool {
		return bobOut.contains("[gossip] Alice: anyone selling a shield?") &&
			caraOut.contains("[gossip] Alice: anyone selling a shield?")
	})
	waitFor(t, "sender echo", func() bool {
		return aliceOut.contains("[gossip] You: anyone selling a shield?")
	})
	if aliceOut.contains("[gossip] Alice:") {
		t.Error("sender should see the echo form, not their own broadcast")
	}
}

func TestMalformedPayloadIsDropped(t *testing.T) {
	w := &fakeWorld{players: map[string]*living.Entity{}}
	_, aliceOut := startPlayer(t, w, "alice", "Alice")

	r := NewRouter(nil, w, nil)
	r.onTell([]byte("{not json"))
	r.onChannel([]byte("{not json"))
	r.onSystem([]byte("{not json"))

	time.Sleep(20 * time.Millisecond)
	aliceOut.mu.Lock()
	defer aliceOut.mu.Unlock()
	if len(aliceOut.lines) != 0 {
		t.Errorf("expected no delivery, got %v", aliceOut.lines)
	}
}
