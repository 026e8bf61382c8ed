package persistence

import (
	"context"
	"testing"
	"time"
)

func TestTokenRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)

	t.Run("saved token is valid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-a", owner, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if !valid {
			t.Error("expected token-a to be valid")
		}
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "never-issued")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("expected unknown token to be invalid")
		}
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-expired", owner, time.Now().Add(-time.Minute)); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-expired")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("expected expired token to be invalid")
		}
	})

	t.Run("invalidated token stays invalid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-b", owner, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}
		if err := repo.InvalidateRefreshToken(ctx, "token-b"); err != nil {
			t.Fatalf("InvalidateRefreshToken failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-b")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("expected invalidated token to be invalid")
		}
	})

	t.Run("invalidating all user tokens leaves other users alone", func(t *testing.T) {
		other := seedUser(t, db)
		if err := repo.SaveRefreshToken(ctx, "token-c", owner, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}
		if err := repo.SaveRefreshToken(ctx, "token-other", other, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}

		if err := repo.InvalidateAllUserRefreshTokens(ctx, owner); err != nil {
			t.Fatalf("InvalidateAllUserRefreshTokens failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-c")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("expected owner's token to be invalidated")
		}

		valid, err = repo.IsRefreshTokenValid(ctx, "token-other")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if !valid {
			t.Error("expected other user's token to remain valid")
		}
	})
}
