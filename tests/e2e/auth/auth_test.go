//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "salon-dashboard/internal/handler/dto/request"
	resdto "salon-dashboard/internal/handler/dto/response"
	"salon-dashboard/internal/pkg/cookie"
	"salon-dashboard/tests/common/authtest"
	"salon-dashboard/tests/common/httptest"
	"salon-dashboard/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"

	ownerEmail = "owner@lumiere-salon.com"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          ownerEmail,
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "フィクスチャのユーザーでログインできること",
		},
		{
			name:           "大文字のメールアドレス",
			email:          "FrontDesk@Lumiere-Salon.com",
			password:       "anything",
			expectedStatus: http.StatusOK,
			description:    "メールアドレスは大文字小文字を区別しないこと",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          ownerEmail,
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Greater(t, loginRes.ExpiresIn, int64(0), "有効期限が無効")
				require.NotNil(t, httptest.ExtractCookie(w, cookie.SessionCookieName), "セッションCookieが無い")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		session := authtest.LoginUser(s.T(), s.Router, ownerEmail, "password123")
		authtest.LogoutUser(s.T(), s.Router, []*http.Cookie{session})
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("無効なトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestMe() {
	s.Run("ログインユーザーの情報取得", func() {
		session := authtest.LoginUser(s.T(), s.Router, ownerEmail, "password123")

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, []*http.Cookie{session}, "")
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("usr_001", me.ID)
		s.Equal(ownerEmail, me.Email)
		s.Equal("owner", me.UserType)
		s.Contains(me.Permissions, "calendar:write")
	})

	s.Run("Bearerトークンでも取得できる", func() {
		token := s.JWT.GenerateToken(s.T(), "usr_002", "receptionist")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("Sam Ortiz", me.Name)
	})

	s.Run("フィクスチャに無いユーザー", func() {
		token := s.JWT.GenerateToken(s.T(), "usr_999", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})

	s.Run("期限切れトークン", func() {
		token := s.JWT.CreateExpiredToken(s.T(), "usr_001", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
