//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-dashboard/internal/domain/auth"
	"salon-dashboard/internal/domain/user"
	"salon-dashboard/internal/infra"
	"salon-dashboard/internal/pkg/errs"
	"salon-dashboard/internal/pkg/jwt"
	"salon-dashboard/internal/usecase/commands"
	"salon-dashboard/tests/common/builder"
	commandsmock "salon-dashboard/tests/mock/commands"
	queriesmock "salon-dashboard/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	readStore *queriesmock.MockUserReadStore
	sessions  *commandsmock.MockSessionCloser
	jwt       *jwt.Service
	cmds      commands.AuthCommands
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := authFixture{
		readStore: queriesmock.NewMockUserReadStore(ctrl),
		sessions:  commandsmock.NewMockSessionCloser(ctrl),
		jwt:       jwt.NewService("test-secret", time.Hour),
	}
	f.cmds = commands.NewAuthCommands(f.readStore, f.jwt, f.sessions)
	return f
}

func TestLogin(t *testing.T) {
	account := builder.NewUserBuilder().MustBuild()

	t.Run("正常系: トークン発行", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(account, nil)

		res, err := f.cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())
		require.NoError(t, err)
		assert.Equal(t, "usr_001", res.UserID)
		assert.Equal(t, time.Hour, res.ExpiresIn)

		claims, err := f.jwt.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "usr_001", claims.UserID)
		assert.Equal(t, "owner", claims.UserType)
	})

	t.Run("正常系: メールアドレスの大文字小文字は区別しない", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(account, nil)

		req := builder.NewAuthBuilder().WithEmail("Test@Example.COM").BuildDTO()
		res, err := f.cmds.Login(context.Background(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("異常系: 未登録のメールアドレス", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, infra.NewStoreErr(infra.KindNotFound, "user not found"))

		res, err := f.cmds.Login(context.Background(), builder.NewAuthBuilder().WithEmail("nobody@example.com").BuildDTO())
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.Nil(t, res)
	})

	t.Run("異常系: 取得したアカウントのメールアドレスが一致しない", func(t *testing.T) {
		f := newAuthFixture(t)
		other := builder.NewUserBuilder().WithEmail("other@example.com").MustBuild()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(other, nil)

		_, err := f.cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
		assert.True(t, errs.Is(err, auth.ErrInvalidCredentials))
	})

	t.Run("異常系: パスワード未入力", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.Login(context.Background(), builder.NewAuthBuilder().WithPassword("").BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
		assert.True(t, errs.Is(err, user.ErrEmptyPassword))
	})

	t.Run("異常系: メールアドレス形式不正", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.Login(context.Background(), builder.NewAuthBuilder().WithEmail("not-an-email").BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
		assert.True(t, errs.Is(err, user.ErrInvalidEmail))
	})
}

func TestLogout(t *testing.T) {
	t.Run("正常系: セッションを破棄", func(t *testing.T) {
		f := newAuthFixture(t)
		f.sessions.EXPECT().Close("usr_001")

		require.NoError(t, f.cmds.Logout(context.Background(), "usr_001"))
	})

	t.Run("正常系: ユーザーIDなしは何もしない", func(t *testing.T) {
		f := newAuthFixture(t)
		f.sessions.EXPECT().Close(gomock.Any()).Times(0)

		require.NoError(t, f.cmds.Logout(context.Background(), ""))
	})
}
