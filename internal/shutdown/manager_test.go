package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) Func {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order = append(r.order, name)
	}
}

func TestShutdownReverseOrder(t *testing.T) {
	r := &recorder{}
	m := NewManager(nil)
	m.Register("audio", r.add("audio"))
	m.Register("view", r.add("view"))
	m.Register("controller", r.add("controller"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"controller", "view", "audio"}, r.order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimeout(t *testing.T) {
	r := &recorder{}
	m := NewManager(nil)
	m.SetTimeout(20 * time.Millisecond)

	block := make(chan struct{})
	defer close(block)
	m.Register("first", r.add("first"))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, []string{"first"}, r.order)
}

func TestListenStopsWithManager(t *testing.T) {
	m := NewManager(nil)
	m.Listen(nil)
	m.Shutdown()
	<-m.Done()
}
