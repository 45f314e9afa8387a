package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/handlers"
	"github.com/SscSPs/abase_form_kit/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PreferenceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPreferenceService
	jwtSecret   string
	issuer      string
	userID      string
}

func (suite *PreferenceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.issuer = "abase-test"
	suite.userID = uuid.NewString()

	suite.mockService = new(MockPreferenceService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, suite.issuer))
	handlers.RegisterPreferenceRoutes(v1, suite.mockService)
}

func (suite *PreferenceHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PreferenceHandlerTestSuite) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.jwtSecret, suite.issuer, suite.userID))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PreferenceHandlerTestSuite) TestGetPreferences_UsesClientHint() {
	suite.mockService.On("Load", mock.Anything, suite.userID, domain.ThemeDark).
		Return(&domain.Preferences{UserID: suite.userID, Theme: domain.ThemeDark}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences", "", map[string]string{handlers.SystemThemeHeader: `"dark"`})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(handlers.SystemThemeHeader, w.Header().Get("Accept-CH"))
	var resp dto.PreferencesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ThemeDark, resp.Theme)
	suite.Equal("#0f172a", resp.ThemeColor)
	suite.False(resp.ThemeExplicit)
}

func (suite *PreferenceHandlerTestSuite) TestGetPreferences_QueryOverridesHint() {
	suite.mockService.On("Load", mock.Anything, suite.userID, domain.ThemeLight).
		Return(&domain.Preferences{Theme: domain.ThemeLight}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences?system_theme=light", "", map[string]string{handlers.SystemThemeHeader: "dark"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *PreferenceHandlerTestSuite) TestUpdatePreferences() {
	suite.mockService.On("Update", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.UpdatePreferencesRequest) bool {
		return req.Theme != nil && *req.Theme == "dark" && req.SidebarCollapsed == nil
	}), domain.Theme("")).Return(&domain.Preferences{Theme: domain.ThemeDark, ThemeExplicit: true}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/preferences", `{"theme":"dark"}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"themeExplicit":true`)
}

func (suite *PreferenceHandlerTestSuite) TestUpdatePreferences_InvalidTheme() {
	w := suite.do(http.MethodPut, "/api/v1/preferences", `{"theme":"sepia"}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PreferenceHandlerTestSuite) TestToggleRoutes() {
	suite.mockService.On("ToggleTheme", mock.Anything, suite.userID, domain.Theme("")).
		Return(&domain.Preferences{Theme: domain.ThemeDark, ThemeExplicit: true}, nil).Once()
	suite.mockService.On("ToggleSidebar", mock.Anything, suite.userID, domain.Theme("")).
		Return(&domain.Preferences{Theme: domain.ThemeLight, SidebarCollapsed: true}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/preferences/theme/toggle", "", nil).Code)

	w := suite.do(http.MethodPost, "/api/v1/preferences/sidebar/toggle", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"sidebarCollapsed":true`)
}

func (suite *PreferenceHandlerTestSuite) TestResetPreferences() {
	suite.mockService.On("Reset", mock.Anything, suite.userID, domain.ThemeDark).
		Return(&domain.Preferences{Theme: domain.ThemeDark}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/preferences?system_theme=DARK", "", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *PreferenceHandlerTestSuite) TestServiceError() {
	suite.mockService.On("Load", mock.Anything, suite.userID, domain.Theme("")).
		Return(nil, errors.New("db down")).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences", "", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to load preferences")
}

func (suite *PreferenceHandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.jwtSecret, "someone-else", suite.userID))
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestPreferenceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerTestSuite))
}
