package usecase

import (
	"context"
	"strings"
	"time"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/infrastructure/logger"
	"budget_portal/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrRoleNotHeld        = errors.New("role not held by user")
)

// ISessionUseCase is the authentication context of the portal.
//
// A session is created by Login and passed explicitly to every workflow call;
// there is no ambient "current user".

type ISessionUseCase interface {
	Login(ctx context.Context, userID, credential string, preferredRole entities.Role) (entities.Session, error)
	Logout(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (entities.Session, error)
	GetActiveRole(ctx context.Context, sessionID string) (entities.Role, error)
	SwitchRole(ctx context.Context, sessionID string, role entities.Role) (entities.Session, error)
	Authenticate(ctx context.Context, token string) (entities.Session, error)
}

type SessionUseCase struct {
	users    interfaces.IUserRepository
	sessions interfaces.ISessionStore
	tokens   interfaces.ITokenIssuer
	ttl      time.Duration
	log      *logger.Logger
	now      func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(users interfaces.IUserRepository, sessions interfaces.ISessionStore, tokens interfaces.ITokenIssuer, ttl time.Duration, log *logger.Logger) *SessionUseCase {
	return &SessionUseCase{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Login succeeds only on an exact identifier and credential match. The active
// role is preferredRole when given, otherwise the user's first role.
func (u *SessionUseCase) Login(ctx context.Context, userID, credential string, preferredRole entities.Role) (entities.Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || credential == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.Session{}, err
	}
	if user.ID == "" {
		u.log.Infof("[session][usecase] login failed unknown user_id=%s", userID)
		return entities.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.CredentialHash), []byte(credential)); err != nil {
		u.log.Infof("[session][usecase] login failed bad credential user_id=%s", userID)
		return entities.Session{}, ErrInvalidCredentials
	}
	if len(user.Roles) == 0 {
		return entities.Session{}, errors.Wrapf(ErrRoleNotHeld, "user %s has no roles", userID)
	}

	active := user.Roles[0]
	if preferredRole != "" {
		if !preferredRole.Valid() {
			return entities.Session{}, errors.Wrapf(ErrInvalidRole, "%q", preferredRole)
		}
		if !user.HasRole(preferredRole) {
			return entities.Session{}, errors.Wrapf(ErrRoleNotHeld, "user %s does not hold %s", userID, preferredRole)
		}
		active = preferredRole
	}

	now := u.now()
	sess := entities.Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Roles:       append([]entities.Role(nil), user.Roles...),
		ActiveRole:  active,
		IssuedAt:    now,
		ExpiresAt:   now.Add(u.ttl),
	}
	if err := u.sessions.Save(ctx, sess); err != nil {
		return entities.Session{}, err
	}
	token, err := u.tokens.Issue(sess)
	if err != nil {
		_ = u.sessions.Delete(ctx, sess.ID)
		return entities.Session{}, err
	}
	sess.Token = token

	u.log.Infof("[session][usecase] login success user_id=%s session_id=%s active_role=%s", user.ID, sess.ID, sess.ActiveRole)
	return sess, nil
}

// Logout clears the session unconditionally.
func (u *SessionUseCase) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	u.log.Infof("[session][usecase] logout session_id=%s", sessionID)
	return nil
}

func (u *SessionUseCase) GetSession(ctx context.Context, sessionID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	sess, ok, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if !ok {
		return entities.Session{}, ErrSessionNotFound
	}
	if !sess.ExpiresAt.IsZero() && !u.now().Before(sess.ExpiresAt) {
		_ = u.sessions.Delete(ctx, sessionID)
		return entities.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (u *SessionUseCase) GetActiveRole(ctx context.Context, sessionID string) (entities.Role, error) {
	sess, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return sess.ActiveRole, nil
}

// SwitchRole changes the active role without re-authenticating. The bearer
// token stays valid since it only names the session.
func (u *SessionUseCase) SwitchRole(ctx context.Context, sessionID string, role entities.Role) (entities.Session, error) {
	if !role.Valid() {
		return entities.Session{}, errors.Wrapf(ErrInvalidRole, "%q", role)
	}
	sess, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if !sess.HasRole(role) {
		return entities.Session{}, errors.Wrapf(ErrRoleNotHeld, "user %s does not hold %s", sess.UserID, role)
	}
	if sess.ActiveRole == role {
		return sess, nil
	}

	prev := sess.ActiveRole
	sess.ActiveRole = role
	if err := u.sessions.Save(ctx, sess); err != nil {
		return entities.Session{}, err
	}
	u.log.Infof("[session][usecase] role switched session_id=%s from=%s to=%s", sess.ID, prev, role)
	return sess, nil
}

// Authenticate resolves a bearer token to its live session.
func (u *SessionUseCase) Authenticate(ctx context.Context, token string) (entities.Session, error) {
	sessionID, err := u.tokens.SessionID(strings.TrimSpace(token))
	if err != nil {
		return entities.Session{}, errors.WithSecondaryError(ErrSessionNotFound, err)
	}
	return u.GetSession(ctx, sessionID)
}
