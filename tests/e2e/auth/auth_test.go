//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"equiploan/internal/domain/user"
	"equiploan/internal/handler/dto/request"
	"equiploan/internal/handler/dto/response"
	"equiploan/internal/usecase/queries"
	"equiploan/tests/common/authtest"
	"equiploan/tests/common/builder"
	"equiploan/tests/common/dbtest"
	"equiploan/tests/common/httptest"
	"equiploan/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "member@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "member@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "member@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			ab := builder.NewAuthBuilder()
			ab.Email = tt.email
			ab.Password = tt.password

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, ab.BuildDTO(), "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var body response.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
				require.NotEmpty(t, body.AccessToken)
				require.NotNil(t, body.User)
				require.Equal(t, tt.email, body.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie)
				require.NotEmpty(t, accessCookie.Value)

				httptest.AssertHeaders(t, w, map[string]string{
					"Content-Type": "application/json; charset=utf-8",
				})
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns current user", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var body queries.AuthorizedUserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "member@example.com", body.Email)
	})

	s.Run("rejects missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects garbage token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears auth cookies", func() {
		t := s.T()

		loginW := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "member@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginW.Code)

		cookies := httptest.ExtractCookies(loginW)
		authtest.LogoutUser(t, s.Router, cookies)
	})
}
