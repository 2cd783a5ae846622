package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SessionKeyPrefix is the key prefix of the token index
	SessionKeyPrefix = "session:"

	DemoUserName  = "Demo User"
	DemoUserEmail = "demo@neurosphere.ai"
)

// SessionService starts and resolves demo sessions. Every demo login gets its
// own user namespace.
type SessionService struct {
	records  records
	editors  *EditorService
	notifier notify.Notifier
	log      *zap.Logger
}

func NewSessionService(store *recordstore.Store, editors *EditorService, notifier notify.Notifier, log *zap.Logger) *SessionService {
	return &SessionService{
		records:  records{root: store},
		editors:  editors,
		notifier: notifier,
		log:      log.Named("session"),
	}
}

// Demo creates a demo user marker and a session token for it.
func (s *SessionService) Demo(ctx context.Context) (string, models.DemoUser, error) {
	user := models.DemoUser{
		ID:     "demo-" + uuid.NewString(),
		Name:   DemoUserName,
		Email:  DemoUserEmail,
		IsDemo: true,
	}
	if err := s.records.user(user.ID).Put(ctx, user); err != nil {
		return "", models.DemoUser{}, fmt.Errorf("session: store user: %w", err)
	}

	token := uuid.NewString()
	if err := s.records.session(token).Put(ctx, models.Session{Token: token, UserID: user.ID}); err != nil {
		return "", models.DemoUser{}, fmt.Errorf("session: store token: %w", err)
	}

	s.log.Info("demo session started", zap.String("user_id", user.ID))
	s.notifier.Notify(user.ID, notify.Notification{
		Kind:        notify.KindSuccess,
		Title:       "Welcome to NeuroSphere Demo!",
		Description: "Experience the full platform features in demo mode",
	})
	return token, user, nil
}

// Resolve maps a token to its user id. Unknown tokens are ErrUnauthorized.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", models.ErrUnauthorized
	}
	sess, ok, err := s.records.session(token).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("session: resolve: %w", err)
	}
	if !ok || sess.UserID == "" {
		return "", models.ErrUnauthorized
	}
	return sess.UserID, nil
}

// User returns the demo-session marker of userID.
func (s *SessionService) User(ctx context.Context, userID string) (models.DemoUser, error) {
	u, ok, err := s.records.user(userID).Get(ctx)
	if err != nil {
		return models.DemoUser{}, fmt.Errorf("session: user: %w", err)
	}
	if !ok {
		return models.DemoUser{}, models.ErrNotFound
	}
	return u, nil
}

// End drops the token, the user marker and any mounted editor. Stored journal
// data is kept.
func (s *SessionService) End(ctx context.Context, token string) error {
	userID, err := s.Resolve(ctx, token)
	if err != nil {
		return err
	}
	s.editors.Unmount(userID)

	if err := s.records.session(token).Delete(ctx); err != nil {
		return fmt.Errorf("session: end: %w", err)
	}
	if err := s.records.user(userID).Delete(ctx); err != nil {
		return fmt.Errorf("session: end: %w", err)
	}
	s.log.Info("session ended", zap.String("user_id", userID))
	return nil
}
