package usecase

import (
	"context"
	"testing"
	"time"

	"budget_portal/internal/adapter/persistence/memory"
	"budget_portal/internal/domain/entities"
	"budget_portal/internal/domain/workflow"
	"budget_portal/internal/infrastructure/auth"
	"budget_portal/internal/infrastructure/logger"
	mock_interfaces "budget_portal/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, credential string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func newTestSessionUseCase(t *testing.T) *SessionUseCase {
	t.Helper()
	users := memory.NewUserMemoryRepository([]entities.User{
		{ID: "creator001", CredentialHash: hashFor(t, "creator123"), DisplayName: "Creator", Roles: []entities.Role{entities.RoleCreator}},
		{ID: "verifier001", CredentialHash: hashFor(t, "verifier123"), DisplayName: "Verifier", Roles: []entities.Role{entities.RoleVerifier}},
		{ID: "ddo002", CredentialHash: hashFor(t, "ddo12345"), DisplayName: "DDO", Roles: []entities.Role{entities.RoleCreator, entities.RoleVerifier}},
	})
	return NewSessionUseCase(users, auth.NewCacheSessionStore(time.Hour), auth.NewJWTIssuer("test-secret"), time.Hour, logger.NewNop())
}

func TestSessionUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("creator lands on creator dashboard", func(t *testing.T) {
		uc := newTestSessionUseCase(t)
		sess, err := uc.Login(ctx, "creator001", "creator123", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.ActiveRole != entities.RoleCreator {
			t.Fatalf("expected creator, got %s", sess.ActiveRole)
		}
		if got := workflow.LandingRoute(sess.ActiveRole); got != workflow.RouteCreatorDashboard {
			t.Fatalf("expected creator dashboard, got %s", got)
		}
		if sess.ID == "" || sess.Token == "" {
			t.Fatalf("expected session id and token: %+v", sess)
		}
	})

	t.Run("wrong credential creates no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewSessionUseCase(users, store, tokens, time.Hour, logger.NewNop())

		users.EXPECT().GetByID(gomock.Any(), "verifier001").Return(entities.User{
			ID: "verifier001", CredentialHash: hashFor(t, "verifier123"), Roles: []entities.Role{entities.RoleVerifier},
		}, nil)

		_, err := uc.Login(ctx, "verifier001", "wrong", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := newTestSessionUseCase(t)
		_, err := uc.Login(ctx, "nobody", "x", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		uc := newTestSessionUseCase(t)
		_, err := uc.Login(ctx, "  ", "", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("identifier is matched exactly", func(t *testing.T) {
		uc := newTestSessionUseCase(t)
		_, err := uc.Login(ctx, "CREATOR001", "creator123", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("preferred role", func(t *testing.T) {
		uc := newTestSessionUseCase(t)
		sess, err := uc.Login(ctx, "ddo002", "ddo12345", entities.RoleVerifier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.ActiveRole != entities.RoleVerifier {
			t.Fatalf("expected verifier, got %s", sess.ActiveRole)
		}
	})

	t.Run("preferred role not held", func(t *testing.T) {
		uc := newTestSessionUseCase(t)
		_, err := uc.Login(ctx, "creator001", "creator123", entities.RoleApprover)
		if !errors.Is(err, ErrRoleNotHeld) {
			t.Fatalf("expected ErrRoleNotHeld, got %v", err)
		}
	})

	t.Run("session store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewSessionUseCase(users, store, tokens, time.Hour, logger.NewNop())

		users.EXPECT().GetByID(gomock.Any(), "creator001").Return(entities.User{
			ID: "creator001", CredentialHash: hashFor(t, "creator123"), Roles: []entities.Role{entities.RoleCreator},
		}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("cache"))

		_, err := uc.Login(ctx, "creator001", "creator123", "")
		if err == nil || err.Error() != "cache" {
			t.Fatalf("expected cache error, got %v", err)
		}
	})

	t.Run("token error drops the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewSessionUseCase(users, store, tokens, time.Hour, logger.NewNop())

		users.EXPECT().GetByID(gomock.Any(), "creator001").Return(entities.User{
			ID: "creator001", CredentialHash: hashFor(t, "creator123"), Roles: []entities.Role{entities.RoleCreator},
		}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		tokens.EXPECT().Issue(gomock.Any()).Return("", errors.New("sign"))
		store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Login(ctx, "creator001", "creator123", "")
		if err == nil || err.Error() != "sign" {
			t.Fatalf("expected sign error, got %v", err)
		}
	})
}

func TestSessionUseCase_LogoutAndRelogin(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase(t)

	first, err := uc.Login(ctx, "creator001", "creator123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Logout(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetSession(ctx, first.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
	if _, err := uc.Authenticate(ctx, first.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected token to stop working after logout, got %v", err)
	}

	second, err := uc.Login(ctx, "creator001", "creator123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected a fresh session id")
	}
	if second.UserID != first.UserID || second.ActiveRole != first.ActiveRole || len(second.Roles) != len(first.Roles) {
		t.Fatalf("expected equivalent sessions: %+v vs %+v", first, second)
	}

	if err := uc.Logout(ctx, "unknown"); err != nil {
		t.Fatalf("logout of unknown session should not fail: %v", err)
	}
	if err := uc.Logout(ctx, ""); err != nil {
		t.Fatalf("logout of empty session should not fail: %v", err)
	}
}

func TestSessionUseCase_SwitchRole(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase(t)

	sess, err := uc.Login(ctx, "ddo002", "ddo12345", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ActiveRole != entities.RoleCreator {
		t.Fatalf("expected first role to be active, got %s", sess.ActiveRole)
	}

	switched, err := uc.SwitchRole(ctx, sess.ID, entities.RoleVerifier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if switched.ActiveRole != entities.RoleVerifier {
		t.Fatalf("expected verifier, got %s", switched.ActiveRole)
	}

	role, err := uc.GetActiveRole(ctx, sess.ID)
	if err != nil || role != entities.RoleVerifier {
		t.Fatalf("expected stored verifier role, got %s err=%v", role, err)
	}

	authed, err := uc.Authenticate(ctx, sess.Token)
	if err != nil || authed.ActiveRole != entities.RoleVerifier {
		t.Fatalf("expected original token to see the switched role, got %+v err=%v", authed, err)
	}

	if _, err := uc.SwitchRole(ctx, sess.ID, entities.RoleApprover); !errors.Is(err, ErrRoleNotHeld) {
		t.Fatalf("expected ErrRoleNotHeld, got %v", err)
	}
	if _, err := uc.SwitchRole(ctx, sess.ID, entities.Role("admin")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := uc.SwitchRole(ctx, "missing", entities.RoleCreator); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionUseCase_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase(t)

	sess, err := uc.Login(ctx, "creator001", "creator123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.now = func() time.Time { return sess.ExpiresAt.Add(time.Second) }

	if _, err := uc.GetSession(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase(t)

	if _, err := uc.Authenticate(ctx, "garbage"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	sess, err := uc.Login(ctx, "verifier001", "verifier123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := uc.Authenticate(ctx, sess.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sess.ID || got.ActiveRole != entities.RoleVerifier {
		t.Fatalf("unexpected session: %+v", got)
	}
}
