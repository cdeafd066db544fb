//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"barberpro/internal/handler/api"
	resdto "barberpro/internal/handler/dto/response"
	"barberpro/internal/usecase/commands"
	"barberpro/tests/common/httptest"
	commandsmock "barberpro/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = new(commandsmock.MockAuthCommands)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/api/register", s.handler.Register)
	s.router.POST("/api/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCommands.AssertExpectations(s.T())
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/api/register"
	userID := uuid.New()

	validBody := map[string]any{
		"name":     "Carlos Silva",
		"email":    "carlos@example.com",
		"password": "s3cret-pass",
	}

	s.Run("success: returns 201 Created with token", func() {
		s.mockCommands.On("Register", mock.Anything, commands.RegisterRequest{
			Name:     "Carlos Silva",
			Email:    "carlos@example.com",
			Password: "s3cret-pass",
		}).Return(&commands.AuthResult{UserID: userID, Token: "test-jwt-token"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(userID, response.UserID)
		s.Equal("test-jwt-token", response.Token)
	})

	s.Run("success: email is normalized before the command runs", func() {
		s.mockCommands.On("Register", mock.Anything, commands.RegisterRequest{
			Name:     "Carlos Silva",
			Email:    "carlos@example.com",
			Password: "s3cret-pass",
		}).Return(&commands.AuthResult{UserID: userID, Token: "t"}, nil).Once()

		body := map[string]any{
			"name":     "Carlos Silva",
			"email":    "  Carlos@Example.COM ",
			"password": "s3cret-pass",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: func(m map[string]any) { delete(m, "name") }},
			{name: "invalid email", mutate: func(m map[string]any) { m["email"] = "not-an-email" }},
			{name: "password too short (7 chars)", mutate: func(m map[string]any) { m["password"] = strings.Repeat("a", 7) }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := map[string]any{}
				for k, v := range validBody {
					body[k] = v
				}
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		s.mockCommands.On("Register", mock.Anything, mock.AnythingOfType("commands.RegisterRequest")).
			Return(nil, commands.ErrEmailTaken).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/login"
	userID := uuid.New()

	validBody := map[string]any{
		"email":    "carlos@example.com",
		"password": "s3cret-pass",
	}

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.On("Login", mock.Anything, "carlos@example.com", "s3cret-pass").
			Return(&commands.AuthResult{UserID: userID, Token: "test-jwt-token"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(userID, response.UserID)
		s.NotEmpty(response.Token)
	})

	s.Run("success: email is normalized before the command runs", func() {
		s.mockCommands.On("Login", mock.Anything, "carlos@example.com", "s3cret-pass").
			Return(&commands.AuthResult{UserID: userID, Token: "test-jwt-token"}, nil).Once()

		body := map[string]any{
			"email":    "  Carlos@Example.COM ",
			"password": "s3cret-pass",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 Unauthorized on bad credentials", func() {
		s.mockCommands.On("Login", mock.Anything, "carlos@example.com", "s3cret-pass").
			Return(nil, commands.ErrInvalidCredentials).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 401 Unauthorized for a deactivated account", func() {
		s.mockCommands.On("Login", mock.Anything, "carlos@example.com", "s3cret-pass").
			Return(nil, commands.ErrUserInactive).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Account is deactivated")
	})

	s.Run("error: 400 Bad Request when the body is malformed", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "carlos@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
