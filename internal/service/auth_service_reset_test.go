package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
)

// requestReset runs the request flow with a capturing notifier and returns
// the raw token that was embedded in the emailed link.
func requestReset(t *testing.T, svc *AuthService, notifier *mockNotifier, email string) string {
	t.Helper()

	var link string
	notifier.On("SendPasswordResetEmail", mock.Anything, email, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { link = args.String(2) }).
		Return(nil).Once()

	require.NoError(t, svc.RequestPasswordReset(context.Background(), email))
	notifier.AssertExpectations(t)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	token := parsed.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func TestAuthService_RequestPasswordReset_UnknownEmailAcks(t *testing.T) {
	repo := newFakeAdminRepo(newTestAdmin(t, "bob", "bob@x.com", "secret123"))
	notifier := new(mockNotifier)
	svc := newTestAuthService(t, repo, notifier)

	// Same nil outcome as the success path; no mail goes out.
	err := svc.RequestPasswordReset(context.Background(), "nobody@x.com")
	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_RequestPasswordReset_TokenIsURLSafeAndValidates(t *testing.T) {
	admin := newTestAdmin(t, "bob", "bob@x.com", "secret123")
	repo := newFakeAdminRepo(admin)
	notifier := new(mockNotifier)
	svc := newTestAuthService(t, repo, notifier)

	token := requestReset(t, svc, notifier, "bob@x.com")

	assert.Equal(t, token, url.QueryEscape(token), "token must survive a query string unescaped")

	valid, err := svc.ValidateResetToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, valid)

	stored := repo.get(admin.ID)
	require.NotNil(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpiry)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *stored.ResetTokenExpiry, time.Minute)
}

func TestAuthService_RequestPasswordReset_SecondRequestInvalidatesFirst(t *testing.T) {
	repo := newFakeAdminRepo(newTestAdmin(t, "bob", "bob@x.com", "secret123"))
	notifier := new(mockNotifier)
	svc := newTestAuthService(t, repo, notifier)

	first := requestReset(t, svc, notifier, "bob@x.com")
	second := requestReset(t, svc, notifier, "bob@x.com")
	require.NotEqual(t, first, second)

	ctx := context.Background()
	valid, err := svc.ValidateResetToken(ctx, first)
	require.NoError(t, err)
	assert.False(t, valid, "superseded token must stop validating")

	valid, err = svc.ValidateResetToken(ctx, second)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestAuthService_RequestPasswordReset_DeliveryFailureKeepsToken(t *testing.T) {
	admin := newTestAdmin(t, "bob", "bob@x.com", "secret123")
	repo := newFakeAdminRepo(admin)
	notifier := new(mockNotifier)
	svc := newTestAuthService(t, repo, notifier)

	deliveryErr := fmt.Errorf("%w: smtp connect refused", domainErrors.ErrDeliveryFailure)
	notifier.On("SendPasswordResetEmail", mock.Anything, "bob@x.com", mock.AnythingOfType("string")).
		Return(deliveryErr).Once()

	err := svc.RequestPasswordReset(context.Background(), "bob@x.com")
	assert.ErrorIs(t, err, domainErrors.ErrDeliveryFailure)

	// The token persisted before delivery was attempted and stays valid.
	stored := repo.get(admin.ID)
	require.NotNil(t, stored.ResetToken)
	valid, err := svc.ValidateResetToken(context.Background(), *stored.ResetToken)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestAuthService_ValidateResetToken_ExpiryBoundary(t *testing.T) {
	admin := newTestAdmin(t, "bob", "bob@x.com", "secret123")
	repo := newFakeAdminRepo(admin)
	svc := newTestAuthService(t, repo, new(mockNotifier))
	ctx := context.Background()

	boundary := time.Now().Add(time.Hour)
	require.NoError(t, repo.SetResetToken(ctx, "bob@x.com", "boundary-token", boundary))

	// Strictly before expiry: valid.
	svc.now = func() time.Time { return boundary.Add(-time.Second) }
	valid, err := svc.ValidateResetToken(ctx, "boundary-token")
	require.NoError(t, err)
	assert.True(t, valid)

	// At the exact boundary: treated as expired.
	svc.now = func() time.Time { return boundary }
	valid, err = svc.ValidateResetToken(ctx, "boundary-token")
	require.NoError(t, err)
	assert.False(t, valid)

	// Past expiry: invalid.
	svc.now = func() time.Time { return boundary.Add(time.Second) }
	valid, err = svc.ValidateResetToken(ctx, "boundary-token")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestAuthService_ValidateResetToken_UnknownToken(t *testing.T) {
	repo := newFakeAdminRepo(newTestAdmin(t, "bob", "bob@x.com", "secret123"))
	svc := newTestAuthService(t, repo, new(mockNotifier))

	valid, err := svc.ValidateResetToken(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = svc.ValidateResetToken(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestAuthService_CompletePasswordReset_EndToEnd(t *testing.T) {
	admin := newTestAdmin(t, "bob", "bob@x.com", "secret123")
	repo := newFakeAdminRepo(admin)
	notifier := new(mockNotifier)
	svc := newTestAuthService(t, repo, notifier)
	ctx := context.Background()

	token := requestReset(t, svc, notifier, "bob@x.com")

	require.NoError(t, svc.CompletePasswordReset(ctx, token, "newpass1"))

	// Old password no longer works, the new one does.
	_, err := svc.Login(ctx, "bob", "secret123")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	resp, err := svc.Login(ctx, "bob", "newpass1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// The token was consumed and both reset fields are cleared.
	stored := repo.get(admin.ID)
	assert.Nil(t, stored.ResetToken)
	assert.Nil(t, stored.ResetTokenExpiry)

	// Single use: redeeming again fails.
	err = svc.CompletePasswordReset(ctx, token, "anotherpass")
	assert.ErrorIs(t, err, domainErrors.ErrResetTokenInvalid)
}

func TestAuthService_CompletePasswordReset_ExpiredToken(t *testing.T) {
	admin := newTestAdmin(t, "bob", "bob@x.com", "secret123")
	repo := newFakeAdminRepo(admin)
	svc := newTestAuthService(t, repo, new(mockNotifier))
	ctx := context.Background()

	require.NoError(t, repo.SetResetToken(ctx, "bob@x.com", "stale-token", time.Now().Add(-time.Minute)))

	err := svc.CompletePasswordReset(ctx, "stale-token", "newpass1")
	assert.ErrorIs(t, err, domainErrors.ErrResetTokenInvalid)

	// The stale fields stay untouched until overwritten by a new request.
	stored := repo.get(admin.ID)
	assert.Equal(t, admin.PasswordHash, stored.PasswordHash)
}

func TestAuthService_CompletePasswordReset_ConcurrentDoubleConsume(t *testing.T) {
	admin := newTestAdmin(t, "bob", "bob@x.com", "secret123")
	repo := newFakeAdminRepo(admin)
	notifier := new(mockNotifier)
	svc := newTestAuthService(t, repo, notifier)
	ctx := context.Background()

	token := requestReset(t, svc, notifier, "bob@x.com")

	passwords := []string{"first-password", "second-password"}
	results := make([]error, len(passwords))

	var start, done sync.WaitGroup
	start.Add(1)
	for i, password := range passwords {
		done.Add(1)
		go func(i int, password string) {
			defer done.Done()
			start.Wait()
			results[i] = svc.CompletePasswordReset(ctx, token, password)
		}(i, password)
	}
	start.Done()
	done.Wait()

	var winners []int
	for i, err := range results {
		if err == nil {
			winners = append(winners, i)
		} else {
			assert.ErrorIs(t, err, domainErrors.ErrResetTokenInvalid)
		}
	}
	require.Len(t, winners, 1, "exactly one consume must win")

	// The stored hash matches the winner's password and nobody else's.
	winnerPassword := passwords[winners[0]]
	_, err := svc.Login(ctx, "bob", winnerPassword)
	assert.NoError(t, err)
	for i, password := range passwords {
		if i == winners[0] {
			continue
		}
		_, err := svc.Login(ctx, "bob", password)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	}
}

func TestAuthService_ResetTokenHasHighEntropy(t *testing.T) {
	repo := newFakeAdminRepo(newTestAdmin(t, "bob", "bob@x.com", "secret123"))
	notifier := new(mockNotifier)
	svc := newTestAuthService(t, repo, notifier)

	seen := make(map[string]struct{})
	for i := 0; i < 8; i++ {
		token := requestReset(t, svc, notifier, "bob@x.com")
		// 32 random bytes base64url-encode to 43 characters.
		assert.Len(t, token, 43)
		assert.False(t, strings.ContainsAny(token, "+/="), "token must be URL-safe")
		_, dup := seen[token]
		assert.False(t, dup, "tokens must never repeat")
		seen[token] = struct{}{}
	}
}

func TestAdminService_CreateAdmin_Conflicts(t *testing.T) {
	repo := newFakeAdminRepo(newTestAdmin(t, "bob", "bob@x.com", "secret123"))
	svc := NewAdminService(zap.NewNop(), repo, newTestPasswordService(t))
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "bob", "other@x.com", "pw123456", "Other Bob")
	assert.ErrorIs(t, err, domainErrors.ErrUsernameExists)

	_, err = svc.CreateAdmin(ctx, "alice", "bob@x.com", "pw123456", "Alice")
	assert.ErrorIs(t, err, domainErrors.ErrEmailExists)

	created, err := svc.CreateAdmin(ctx, "alice", "alice@x.com", "pw123456", "Alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", created.PasswordHash)

	stored, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", stored.Email)
}
