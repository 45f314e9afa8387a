package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/core/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PreferenceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPreferenceRepository
	service  portssvc.PreferenceSvcFacade
	ctx      context.Context
	userID   string
	now      time.Time
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPreferenceRepository)
	suite.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewPreferenceService(suite.mockRepo,
		services.WithPreferenceClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *PreferenceServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) expectStored(theme, sidebar string) {
	if theme == "" {
		suite.mockRepo.On("GetPreference", suite.ctx, suite.userID, domain.PrefKeyTheme).Return("", apperrors.ErrNotFound).Once()
	} else {
		suite.mockRepo.On("GetPreference", suite.ctx, suite.userID, domain.PrefKeyTheme).Return(theme, nil).Once()
	}
	if sidebar == "" {
		suite.mockRepo.On("GetPreference", suite.ctx, suite.userID, domain.PrefKeySidebarCollapsed).Return("", apperrors.ErrNotFound).Once()
	} else {
		suite.mockRepo.On("GetPreference", suite.ctx, suite.userID, domain.PrefKeySidebarCollapsed).Return(sidebar, nil).Once()
	}
}

func (suite *PreferenceServiceTestSuite) TestLoad_FollowsSystemThemeWhenUnset() {
	suite.expectStored("", "")

	prefs, err := suite.service.Load(suite.ctx, suite.userID, domain.ThemeDark)

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, prefs.Theme)
	suite.False(prefs.ThemeExplicit)
	suite.False(prefs.SidebarCollapsed)
	suite.Equal(suite.now, prefs.LoadedAt)
}

func (suite *PreferenceServiceTestSuite) TestLoad_DefaultsToLight() {
	suite.expectStored("", "")

	prefs, err := suite.service.Load(suite.ctx, suite.userID, "")

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeLight, prefs.Theme)
	suite.Equal("#ffffff", prefs.Theme.Color())
}

func (suite *PreferenceServiceTestSuite) TestLoad_StoredThemeWins() {
	suite.expectStored("dark", "true")

	prefs, err := suite.service.Load(suite.ctx, suite.userID, domain.ThemeLight)

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, prefs.Theme)
	suite.True(prefs.ThemeExplicit)
	suite.True(prefs.SidebarCollapsed)
}

func (suite *PreferenceServiceTestSuite) TestLoad_IgnoresCorruptValues() {
	suite.expectStored("sepia", "maybe")

	prefs, err := suite.service.Load(suite.ctx, suite.userID, "")

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeLight, prefs.Theme)
	suite.False(prefs.ThemeExplicit)
	suite.False(prefs.SidebarCollapsed)
}

func (suite *PreferenceServiceTestSuite) TestLoad_RepositoryError() {
	dbErr := errors.New("connection refused")
	suite.mockRepo.On("GetPreference", suite.ctx, suite.userID, domain.PrefKeyTheme).Return("", dbErr).Once()

	prefs, err := suite.service.Load(suite.ctx, suite.userID, "")

	suite.Nil(prefs)
	suite.ErrorIs(err, dbErr)
}

func (suite *PreferenceServiceTestSuite) TestLoad_RequiresUser() {
	_, err := suite.service.Load(suite.ctx, "", "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PreferenceServiceTestSuite) TestToggleTheme_FromSystemDark() {
	suite.expectStored("", "")
	suite.mockRepo.On("SetPreference", suite.ctx, suite.userID, domain.PrefKeyTheme, "light").Return(nil).Once()
	suite.expectStored("light", "")

	prefs, err := suite.service.ToggleTheme(suite.ctx, suite.userID, domain.ThemeDark)

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeLight, prefs.Theme)
	suite.True(prefs.ThemeExplicit)
}

func (suite *PreferenceServiceTestSuite) TestSetTheme_Invalid() {
	_, err := suite.service.SetTheme(suite.ctx, suite.userID, domain.Theme("sepia"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PreferenceServiceTestSuite) TestToggleSidebar() {
	suite.expectStored("", "false")
	suite.mockRepo.On("SetPreference", suite.ctx, suite.userID, domain.PrefKeySidebarCollapsed, "true").Return(nil).Once()
	suite.expectStored("", "true")

	prefs, err := suite.service.ToggleSidebar(suite.ctx, suite.userID, "")

	suite.Require().NoError(err)
	suite.True(prefs.SidebarCollapsed)
}

func (suite *PreferenceServiceTestSuite) TestUpdate_WritesBothKeysAtOnce() {
	theme := "dark"
	collapsed := true
	suite.mockRepo.On("SetPreferences", suite.ctx, suite.userID, mock.MatchedBy(func(v map[string]string) bool {
		return len(v) == 2 && v[domain.PrefKeyTheme] == "dark" && v[domain.PrefKeySidebarCollapsed] == "true"
	})).Return(nil).Once()
	suite.expectStored("dark", "true")

	prefs, err := suite.service.Update(suite.ctx, suite.userID, dto.UpdatePreferencesRequest{Theme: &theme, SidebarCollapsed: &collapsed}, "")

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, prefs.Theme)
	suite.True(prefs.SidebarCollapsed)
}

func (suite *PreferenceServiceTestSuite) TestUpdate_EmptyRequestOnlyLoads() {
	suite.expectStored("", "")

	_, err := suite.service.Update(suite.ctx, suite.userID, dto.UpdatePreferencesRequest{}, "")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetPreferences", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PreferenceServiceTestSuite) TestReset_FallsBackToSystemTheme() {
	suite.mockRepo.On("RemovePreference", suite.ctx, suite.userID, domain.PrefKeyTheme).Return(nil).Once()
	suite.mockRepo.On("RemovePreference", suite.ctx, suite.userID, domain.PrefKeySidebarCollapsed).Return(nil).Once()
	suite.expectStored("", "")

	prefs, err := suite.service.Reset(suite.ctx, suite.userID, domain.ThemeDark)

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, prefs.Theme)
	suite.False(prefs.ThemeExplicit)
}

func TestPreferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}
