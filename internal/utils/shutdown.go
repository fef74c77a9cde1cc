package utils

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// shutdownTimeout bounds the whole teardown: the HTTP server gets to drain
// in-flight booking requests and the storage connections get to close, but
// a hung resource cannot keep the process alive forever.
const shutdownTimeout = 15 * time.Second

// ShutdownManager coordinates the booking service's teardown. Resources are
// registered by name as they come up (HTTP server, MongoDB, Redis) and are
// closed in reverse registration order, so the server stops accepting
// bookings before the stores behind it go away.
type ShutdownManager struct {
	cancelFunc context.CancelFunc

	mu    sync.Mutex
	tasks []shutdownTask
	once  sync.Once
}

type shutdownTask struct {
	name  string
	close func(context.Context) error
}

func NewShutdownManager(ctx context.Context) (context.Context, *ShutdownManager) {
	ctx, cancel := context.WithCancel(ctx)
	manager := &ShutdownManager{
		cancelFunc: cancel,
	}
	return ctx, manager
}

// Register adds a named resource to close during shutdown. Later
// registrations close first.
func (sm *ShutdownManager) Register(name string, close func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tasks = append(sm.tasks, shutdownTask{name: name, close: close})
}

// Shutdown cancels the base context and closes every registered resource in
// reverse order. A failing resource is logged and the rest still close.
// Safe to call more than once; only the first call runs the tasks.
func (sm *ShutdownManager) Shutdown() {
	sm.once.Do(func() {
		sm.cancelFunc()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		sm.mu.Lock()
		tasks := sm.tasks
		sm.mu.Unlock()

		for i := len(tasks) - 1; i >= 0; i-- {
			log.Printf("[SHUTDOWN] Closing %s...", tasks[i].name)
			if err := tasks[i].close(ctx); err != nil {
				log.Printf("[SHUTDOWN] Failed to close %s: %v", tasks[i].name, err)
			}
		}

		log.Println("[SHUTDOWN] Booking service stopped")
	})
}

// ListenAndWait blocks until SIGINT or SIGTERM, then runs Shutdown. main
// calls this last instead of blocking forever.
func (sm *ShutdownManager) ListenAndWait() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("[SHUTDOWN] Received signal: %v", sig)
	sm.Shutdown()
}
