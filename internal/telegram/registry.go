package telegram

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tg_account_bot/pkg/logger"

	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
	"go.uber.org/zap"
)

type Config struct {
	APIID   int    `yaml:"apiId"`
	APIHash string `yaml:"apiHash"`
}

// Registry owns one running MTProto client per phone number. Handles
// are created on first use, live until Logout or Close, and carry the
// phone_code_hash between RequestCode and SignIn.
type Registry struct {
	cfg      Config
	sessions SessionStore
	buyers   BuyerStore

	mu      sync.Mutex
	handles map[string]*handle
}

type handle struct {
	phone    string
	client   *telegram.Client
	stop     context.CancelFunc
	done     chan struct{}
	runErr   error
	codeHash string
}

var _ AccountClient = (*Registry)(nil)

func NewRegistry(cfg Config, sessions SessionStore, buyers BuyerStore) *Registry {
	return &Registry{
		cfg:      cfg,
		sessions: sessions,
		buyers:   buyers,
		handles:  make(map[string]*handle),
	}
}

// connect returns the live handle for the phone, starting a client if
// none exists yet. The client runs in its own goroutine until the
// handle is stopped.
func (r *Registry) connect(ctx context.Context, phone string) (*handle, error) {
	r.mu.Lock()
	if h, ok := r.handles[phone]; ok {
		r.mu.Unlock()
		return h, nil
	}
	r.mu.Unlock()

	log := logger.Logger()

	dispatcher := tg.NewUpdateDispatcher()
	dispatcher.OnNewMessage(r.forwardHook(phone))

	client := telegram.NewClient(r.cfg.APIID, r.cfg.APIHash, telegram.Options{
		SessionStorage: &sessionStorage{store: r.sessions, phone: phone},
		UpdateHandler:  dispatcher,
		Device: telegram.DeviceConfig{
			DeviceModel:   "TelegramBot",
			SystemVersion: "1.0",
			AppVersion:    "1.0",
		},
	})

	runCtx, cancel := context.WithCancel(context.Background())
	h := &handle{
		phone:  phone,
		client: client,
		stop:   cancel,
		done:   make(chan struct{}),
	}

	ready := make(chan struct{})
	go func() {
		defer close(h.done)
		h.runErr = client.Run(runCtx, func(ctx context.Context) error {
			close(ready)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	select {
	case <-ready:
	case <-h.done:
		cancel()
		return nil, fmt.Errorf("client for %s failed to start: %w", phone, h.runErr)
	case <-ctx.Done():
		cancel()
		return nil, ctx.Err()
	}

	r.mu.Lock()
	if existing, ok := r.handles[phone]; ok {
		// Lost the race to another caller; keep theirs.
		r.mu.Unlock()
		cancel()
		return existing, nil
	}
	r.handles[phone] = h
	r.mu.Unlock()

	log.Info("telegram client started", zap.String("phone", phone))
	return h, nil
}

func (r *Registry) RequestCode(ctx context.Context, phone string) error {
	log := logger.Logger()

	h, err := r.connect(ctx, phone)
	if err != nil {
		return err
	}

	status, err := h.client.Auth().Status(ctx)
	if err != nil {
		return fmt.Errorf("auth status for %s: %w", phone, err)
	}
	if status.Authorized {
		log.Info("phone already authorized", zap.String("phone", phone))
		return nil
	}

	sent, err := h.client.Auth().SendCode(ctx, phone, auth.SendCodeOptions{})
	if err != nil {
		if wait, ok := tgerr.AsFloodWait(err); ok {
			log.Warn("flood wait on code request",
				zap.String("phone", phone), zap.Duration("wait", wait))
			return ErrFloodWait
		}
		if tgerr.Is(err, "PHONE_NUMBER_INVALID") {
			log.Warn("invalid phone number", zap.String("phone", phone))
			return ErrPhoneInvalid
		}
		return fmt.Errorf("send code to %s: %w", phone, err)
	}

	code, ok := sent.(*tg.AuthSentCode)
	if !ok {
		return fmt.Errorf("unexpected sent code type %T for %s", sent, phone)
	}
	h.codeHash = code.PhoneCodeHash

	log.Info("login code requested", zap.String("phone", phone))
	return nil
}

func (r *Registry) SignIn(ctx context.Context, phone, code string) error {
	log := logger.Logger()

	r.mu.Lock()
	h, ok := r.handles[phone]
	r.mu.Unlock()
	if !ok {
		return ErrNotConnected
	}

	_, err := h.client.Auth().SignIn(ctx, phone, code, h.codeHash)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordAuthNeeded):
			return ErrPasswordNeeded
		case tgerr.Is(err, "PHONE_CODE_INVALID"):
			return ErrCodeInvalid
		case tgerr.Is(err, "PHONE_CODE_EXPIRED"):
			return ErrCodeExpired
		}
		return fmt.Errorf("sign in %s: %w", phone, err)
	}

	log.Info("signed in to account", zap.String("phone", phone))
	return nil
}

// SetPassword is accepted but not enforced yet: a real password change
// needs the SRP exchange against account.updatePasswordSettings.
// TODO: implement the SRP flow via gotd's auth helpers.
func (r *Registry) SetPassword(ctx context.Context, phone, password string) error {
	logger.Logger().Info("skipping password change, not implemented",
		zap.String("phone", phone))
	return nil
}

func (r *Registry) Logout(ctx context.Context, phone string) error {
	log := logger.Logger()

	r.mu.Lock()
	h, ok := r.handles[phone]
	if ok {
		delete(r.handles, phone)
	}
	r.mu.Unlock()
	if !ok {
		return ErrNotConnected
	}

	if _, err := h.client.API().AuthLogOut(ctx); err != nil {
		log.Warn("logout call failed", zap.String("phone", phone), zap.Error(err))
	}
	h.stop()
	<-h.done

	if err := r.sessions.DeactivateSession(ctx, phone); err != nil {
		return err
	}

	log.Info("logged out", zap.String("phone", phone))
	return nil
}

// Close stops every running client. Used on shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	handles := make([]*handle, 0, len(r.handles))
	for _, h := range r.handles {
		handles = append(handles, h)
	}
	r.handles = make(map[string]*handle)
	r.mu.Unlock()

	for _, h := range handles {
		h.stop()
	}
	deadline := time.After(5 * time.Second)
	for _, h := range handles {
		select {
		case <-h.done:
		case <-deadline:
			return
		}
	}
}
