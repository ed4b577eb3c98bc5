package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"journalhub/internal/http-api/dto"
	"journalhub/internal/http-api/models"
	"journalhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
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

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// passthrough stands in for the auth middleware on routes under test.
func passthrough(c *gin.Context) { c.Next() }

func TestRegister_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	h.RegisterRoutes(router, passthrough)

	user := &models.User{ID: 1, Email: "e@x.com", Username: "alice"}
	mockAuthService.On("Register", "e@x.com", "alice", "password123").Return(user, "tok-abc", nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Email:    "e@x.com",
		Username: "alice",
		Password: "password123",
	})
	req, _ := http.NewRequest("POST", "/users/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.CredentialResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, uint(1), response.User.ID)
	assert.Equal(t, "alice", response.User.Username)
	assert.Equal(t, "tok-abc", response.Token.AccessToken)
	assert.Equal(t, "bearer", response.Token.TokenType)

	mockAuthService.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	h.RegisterRoutes(router, passthrough)

	mockAuthService.On("Register", "e@x.com", "alice", "password123").
		Return(nil, "", service.ErrDuplicateEmail)

	body, _ := json.Marshal(dto.RegisterRequest{
		Email:    "e@x.com",
		Username: "alice",
		Password: "password123",
	})
	req, _ := http.NewRequest("POST", "/users/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
	mockAuthService.AssertExpectations(t)
}

func TestRegister_InvalidPayload(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	h.RegisterRoutes(router, passthrough)

	// missing password, short username
	req, _ := http.NewRequest("POST", "/users/", bytes.NewBufferString(`{"email":"e@x.com","username":"al"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	h.RegisterRoutes(router, passthrough)

	user := &models.User{ID: 1, Email: "e@x.com", Username: "alice"}
	mockAuthService.On("Login", "e@x.com", "password123").Return(user, "tok-abc", nil)

	body, _ := json.Marshal(dto.LoginRequest{Email: "e@x.com", Password: "password123"})
	req, _ := http.NewRequest("POST", "/token", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.CredentialResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "tok-abc", response.Token.AccessToken)
	mockAuthService.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	h.RegisterRoutes(router, passthrough)

	mockAuthService.On("Login", "e@x.com", "wrong").
		Return(nil, "", service.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Email: "e@x.com", Password: "wrong"})
	req, _ := http.NewRequest("POST", "/token", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "incorrect email or password")
}

func TestUpdateProfile_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	h.RegisterRoutes(router, passthrough)

	updated := &models.User{ID: 1, Email: "e@x.com", Username: "alice2"}
	newName := "alice2"
	mockAuthService.On("UpdateProfile", "e@x.com", service.ProfileUpdate{Username: &newName}).
		Return(updated, "tok-new", nil)

	req, _ := http.NewRequest("PUT", "/users/e@x.com", bytes.NewBufferString(`{"username":"alice2"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.CredentialResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "alice2", response.User.Username)
	assert.Equal(t, "tok-new", response.Token.AccessToken)
	mockAuthService.AssertExpectations(t)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	mockAuthService := new(MockAuthService)
	h := NewAuthHandler(mockAuthService)
	router := setupRouter()
	h.RegisterRoutes(router, passthrough)

	mockAuthService.On("UpdateProfile", "gone@x.com", mock.Anything).
		Return(nil, "", service.ErrUserNotFound)

	req, _ := http.NewRequest("PUT", "/users/gone@x.com", bytes.NewBufferString(`{"username":"bob"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
