//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"lending-ledger/internal/domain/user"
	"lending-ledger/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewPersonName("Mina", "Park")
		expected, err := user.NewUser(email, name, "Period 3", "hashed_password", user.RoleRequester, time.Now())
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, "Mina Park", actual.DisplayName())
		assert.Equal(t, "Period 3", actual.Group())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字混じりOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Mina.Park@School.EDU") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "requester ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("requester") },
			},
			{
				name:   "approver ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsApprover() },
			},
			{
				name:   "旧ロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("氏名・グループ検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "前後の空白は除去OK",
				mutate: func(b *builder.UserBuilder) { b.WithName("  Mina ", " Park  ") },
			},
			{
				name:   "名が空NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("", "Park") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "姓が空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.WithName("Mina", "   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "グループ無しOK",
				mutate: func(b *builder.UserBuilder) { b.WithGroup("") },
			},
			{
				name:   "グループ100文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithGroup(strings.Repeat("g", 100)) },
			},
			{
				name:   "グループ101文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithGroup(strings.Repeat("g", 101)) },
				errIs:  user.ErrGroupTooLong,
			},
		})
	})
}

func TestRole_CanApprove(t *testing.T) {
	assert.True(t, user.RoleApprover.CanApprove())
	assert.False(t, user.RoleRequester.CanApprove())
	assert.False(t, user.Role("").CanApprove())
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword(strings.Repeat("a", user.MaxPasswordLength+1))
	require.ErrorIs(t, err, user.ErrPasswordTooLong)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
