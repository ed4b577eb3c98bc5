package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"journalhub/internal/http-api/models"
	"journalhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the service.AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(email, username, password string) (*models.User, string, error) {
	args := m.Called(email, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) UpdateProfile(email string, update service.ProfileUpdate) (*models.User, string, error) {
	args := m.Called(email, update)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ResolveIdentity(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func protectedRouter(authService service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(authService), func(c *gin.Context) {
		email := c.GetString("email")
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := protectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	mockAuthService.AssertNotCalled(t, "ResolveIdentity", mock.Anything)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := protectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ResolveIdentity", "bad-token").Return(nil, service.ErrInvalidToken)
	router := protectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	mockAuthService.AssertExpectations(t)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	user := &models.User{ID: 1, Email: "e@x.com", Username: "alice"}
	mockAuthService.On("ResolveIdentity", "good-token").Return(user, nil)
	router := protectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "e@x.com")
	mockAuthService.AssertExpectations(t)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ClientSuppliedPreserved(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}
