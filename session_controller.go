package printforge

import (
	"context"
	"errors"
	"sync"
	"time"
)

// AuthAPI is the slice of the backend the controller needs. *Client
// satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (string, error)
	Register(ctx context.Context, req RegisterRequest) (string, error)
}

// SessionController owns the reactive session state: it logs in, registers
// and logs out against the backend, keeps the Session view in sync with the
// TokenStore, and broadcasts session changes to subscribers.
//
// Within one operation the order is strict: persist token, derive session,
// publish state, notify subscribers. Subscribers are notified synchronously
// after the state mutation, so none of them reads a stale view following a
// broadcast it received.
type SessionController struct {
	api      AuthAPI
	store    TokenStore
	logger   Logger
	onLogout func()

	watchInterval time.Duration
	stopWatch     chan struct{}
	stopOnce      sync.Once

	mu          sync.RWMutex
	session     Session
	subscribers map[int]func()
	nextSubID   int
}

// NewSessionController returns a controller over api and store. The session
// starts in the loading state until Start runs the first derivation.
func NewSessionController(api AuthAPI, store TokenStore) *SessionController {
	return &SessionController{
		api:         api,
		store:       store,
		logger:      defLogger{},
		session:     Session{IsActive: true, IsLoading: true},
		subscribers: make(map[int]func()),
		stopWatch:   make(chan struct{}),
	}
}

func (s *SessionController) WithLogger(logger Logger) *SessionController {
	s.logger = logger
	return s
}

// WithLogoutRedirect registers the callback run after Logout resets the
// session; the embedding application decides what navigating to the login
// entry point means.
func (s *SessionController) WithLogoutRedirect(fn func()) *SessionController {
	s.onLogout = fn
	return s
}

// WithStoreWatch enables polling the store so token changes made by other
// processes sharing the slot are reflected here eventually.
func (s *SessionController) WithStoreWatch(interval time.Duration) *SessionController {
	s.watchInterval = interval
	return s
}

// Start derives the initial session from the store and, when configured,
// begins watching the store for external changes. Call Stop at shutdown.
func (s *SessionController) Start(ctx context.Context) {
	s.Refresh(ctx)
	if s.watchInterval > 0 {
		go s.watchStore()
	}
}

// Stop ends the store watcher. Safe to call more than once.
func (s *SessionController) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopWatch)
	})
}

// Session returns the current session snapshot.
func (s *SessionController) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Subscribe registers fn to run after every session change and returns a
// cancel function that removes the subscription.
func (s *SessionController) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Login authenticates, persists the returned token, recomputes the session
// and broadcasts the change. Failures reset the session to unauthenticated
// and are returned to the caller for display, never swallowed.
func (s *SessionController) Login(ctx context.Context, req LoginRequest) (string, error) {
	token, err := s.api.Login(ctx, req)
	if err != nil {
		s.logger.Error("login failed: %v", err)
		s.resetOnFailure()
		return "", err
	}
	return token, s.adoptToken(ctx, token)
}

// Register has the same contract as Login against the registration
// endpoint.
func (s *SessionController) Register(ctx context.Context, req RegisterRequest) (string, error) {
	token, err := s.api.Register(ctx, req)
	if err != nil {
		s.logger.Error("registration failed: %v", err)
		s.resetOnFailure()
		return "", err
	}
	return token, s.adoptToken(ctx, token)
}

// Logout clears the stored token, resets the session and broadcasts. It is
// idempotent and has no failure path: a missing token means the session is
// already gone.
func (s *SessionController) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("token clear failed: %v", err)
	}
	s.setSession(DeriveSession(nil))
	s.broadcast()
	if s.onLogout != nil {
		s.onLogout()
	}
}

// Refresh recomputes the session from the current store contents and
// broadcasts only when the view changed. Watchers and storage-change
// handlers call this; a token that fails to decode reads as no session.
func (s *SessionController) Refresh(ctx context.Context) Session {
	next := s.deriveFromStore(ctx)
	if s.setSession(next) {
		s.broadcast()
	}
	return next
}

// adoptToken runs the persist, derive, publish, notify sequence for a token
// fresh from the backend.
func (s *SessionController) adoptToken(ctx context.Context, token string) error {
	if err := s.store.Save(ctx, token); err != nil {
		s.logger.Error("token save failed: %v", err)
		return err
	}

	claims, err := DecodeToken(token)
	if err != nil {
		// Tokens the backend issues should always decode; treat a failure
		// as no session rather than surfacing a crash to the UI.
		s.logger.Error("issued token did not decode: %v", err)
		claims = nil
	}

	s.setSession(DeriveSession(claims))
	s.broadcast()
	return nil
}

func (s *SessionController) deriveFromStore(ctx context.Context) Session {
	token, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoToken) {
			s.logger.Error("token store read failed: %v", err)
		}
		return DeriveSession(nil)
	}

	claims, err := DecodeToken(token)
	if err != nil {
		s.logger.Debug("stored token did not decode: %v", err)
		return DeriveSession(nil)
	}
	return DeriveSession(claims)
}

func (s *SessionController) resetOnFailure() {
	s.setSession(DeriveSession(nil))
}

// setSession swaps in the next view and reports whether it differed from
// the previous one.
func (s *SessionController) setSession(next Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := next != s.session
	s.session = next
	return changed
}

// broadcast invokes every subscriber synchronously. The subscriber list is
// snapshotted first so callbacks may read the session or unsubscribe
// without deadlocking.
func (s *SessionController) broadcast() {
	s.mu.RLock()
	callbacks := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}

func (s *SessionController) watchStore() {
	ticker := time.NewTicker(s.watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopWatch:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			s.Refresh(ctx)
			cancel()
		}
	}
}
