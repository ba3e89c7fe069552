package cairo

import (
	"sync"
	"testing"

	"github.com/gogpu/cairo/ffi"
)

// liveKeepAlives returns the tokens currently saved.
func liveKeepAlives() map[ffi.Closure]bool {
	keepAlives.mu.Lock()
	defer keepAlives.mu.Unlock()
	live := make(map[ffi.Closure]bool, len(keepAlives.live))
	for token := range keepAlives.live {
		live[token] = true
	}
	return live
}

// newKeepAliveTokens returns the tokens saved since before was taken.
func newKeepAliveTokens(before map[ffi.Closure]bool) []ffi.Closure {
	var tokens []ffi.Closure
	for token := range liveKeepAlives() {
		if !before[token] {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func TestKeepAliveSaveRelease(t *testing.T) {
	k := newKeepAlive([]byte{1, 2, 3}, "label")
	data, destroy := k.closure()
	if data == 0 {
		t.Fatal("closure() returned the null token")
	}
	if keepAlives.contains(data) {
		t.Fatal("bundle is registered before save")
	}

	keepAlives.save(k)
	if !keepAlives.contains(data) {
		t.Fatal("bundle missing after save")
	}

	released := keepAlives.releases()
	destroy(data)
	if keepAlives.contains(data) {
		t.Error("bundle still registered after release")
	}
	if got := keepAlives.releases() - released; got != 1 {
		t.Errorf("releases = %d, want 1", got)
	}

	// A second release of the same token is ignored.
	destroy(data)
	if got := keepAlives.releases() - released; got != 1 {
		t.Errorf("releases after double release = %d, want 1", got)
	}
}

func TestKeepAliveDoubleSave(t *testing.T) {
	k := newKeepAlive([]byte("x"))
	before := keepAlives.len()
	keepAlives.save(k)
	keepAlives.save(k)
	if got := keepAlives.len() - before; got != 1 {
		t.Errorf("registry grew by %d, want 1", got)
	}
	keepAlives.release(k.token)
	if keepAlives.contains(k.token) {
		t.Error("bundle still registered after release")
	}
}

func TestKeepAliveTokensAreUnique(t *testing.T) {
	seen := make(map[ffi.Closure]bool)
	for range 100 {
		k := newKeepAlive()
		if seen[k.token] {
			t.Fatalf("token %d issued twice", k.token)
		}
		seen[k.token] = true
	}
}

func TestKeepAliveEmptyBuffer(t *testing.T) {
	k := newKeepAlive([]byte{}, []byte(nil))
	keepAlives.save(k)
	keepAlives.release(k.token)
}

func TestKeepAliveConcurrentReleases(t *testing.T) {
	const n = 200
	bundles := make([]*keepAlive, n)
	for i := range bundles {
		bundles[i] = newKeepAlive(make([]byte, 16))
	}

	var wg sync.WaitGroup
	for _, k := range bundles {
		wg.Add(2)
		go func() {
			defer wg.Done()
			keepAlives.save(k)
			data, destroy := k.closure()
			go func() {
				defer wg.Done()
				destroy(data)
			}()
		}()
	}
	wg.Wait()

	for _, k := range bundles {
		if keepAlives.contains(k.token) {
			t.Errorf("token %d still registered", k.token)
		}
	}
}
