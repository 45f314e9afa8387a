package services_test

import (
	"testing"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/core/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/utils/brl"
	"github.com/stretchr/testify/suite"
)

type MoneyServiceTestSuite struct {
	suite.Suite
	service portssvc.MoneySvcFacade
}

func (suite *MoneyServiceTestSuite) SetupTest() {
	suite.service = services.NewMoneyService(brl.StrategyBlurOnly)
}

func (suite *MoneyServiceTestSuite) TestParseValue() {
	resp := suite.service.ParseValue("R$ 1.234,56", brl.StrategyBlurOnly)
	suite.Equal(dto.MoneyResponse{
		Cents:     123456,
		Canonical: "1234.56",
		Display:   "R$ 1.234,56",
		Editable:  "1234,56",
		Strategy:  "blur",
	}, resp)

	resp = suite.service.ParseValue("1a2b3", brl.StrategyDigitAccumulation)
	suite.Equal(int64(123), resp.Cents)
	suite.Equal("R$ 1,23", resp.Display)

	resp = suite.service.ParseValue("abc", brl.StrategyBlurOnly)
	suite.Equal("0.00", resp.Canonical)
	suite.Equal(brl.StrategyBlurOnly, suite.service.DefaultStrategy())
}

func (suite *MoneyServiceTestSuite) TestApplyFieldEvent_BlurOnlySequence() {
	resp, err := suite.service.ApplyFieldEvent(dto.MoneyFieldEventRequest{
		Strategy: "blur", Value: "", Event: dto.MoneyFieldInput, Text: "400,5",
	})
	suite.Require().NoError(err)
	suite.Equal("400,5", resp.Value)
	suite.Equal("", resp.Raw)

	resp, err = suite.service.ApplyFieldEvent(dto.MoneyFieldEventRequest{
		Strategy: "blur", Value: resp.Value, Event: dto.MoneyFieldBlur,
	})
	suite.Require().NoError(err)
	suite.Equal("R$ 400,50", resp.Value)
	suite.Equal("400.50", resp.Raw)
	suite.Equal(int64(40050), resp.Cents)

	resp, err = suite.service.ApplyFieldEvent(dto.MoneyFieldEventRequest{
		Strategy: "blur", Value: resp.Value, Raw: resp.Raw, Event: dto.MoneyFieldFocus,
	})
	suite.Require().NoError(err)
	suite.Equal("400,5", resp.Value)

	resp, err = suite.service.ApplyFieldEvent(dto.MoneyFieldEventRequest{
		Strategy: "blur", Value: "R$ 400,50", Raw: "400.50", Event: dto.MoneyFieldSubmit,
	})
	suite.Require().NoError(err)
	suite.Equal("400.50", resp.Value)
}

func (suite *MoneyServiceTestSuite) TestApplyFieldEvent_Digits() {
	resp, err := suite.service.ApplyFieldEvent(dto.MoneyFieldEventRequest{
		Strategy: "digits", Value: "R$ 0,12", Event: dto.MoneyFieldInput, Text: "R$ 0,123",
	})
	suite.Require().NoError(err)
	suite.Equal("R$ 1,23", resp.Value)
	suite.Equal("1.23", resp.Canonical)
}

func (suite *MoneyServiceTestSuite) TestApplyFieldEvent_Invalid() {
	_, err := suite.service.ApplyFieldEvent(dto.MoneyFieldEventRequest{Strategy: "keystroke", Event: dto.MoneyFieldBlur})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ApplyFieldEvent(dto.MoneyFieldEventRequest{Strategy: "blur", Event: "paste"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MoneyServiceTestSuite) TestNormalizeFormValues() {
	values := map[string][]string{
		"valor":   {"R$ 1.234,56"},
		"parcela": {"400", "50,5"},
		"nome":    {"Maria 1.000"},
	}

	normalized := suite.service.NormalizeFormValues(values, []string{"valor, parcela", "valor", "ausente"})

	suite.Equal([]string{"valor", "parcela"}, normalized)
	suite.Equal([]string{"1234.56"}, values["valor"])
	suite.Equal([]string{"400.00", "50.50"}, values["parcela"])
	suite.Equal([]string{"Maria 1.000"}, values["nome"], "fields not listed are untouched")
}

func (suite *MoneyServiceTestSuite) TestRenderFragment() {
	out, err := suite.service.RenderFragment(`<span data-brl-text>5000</span>`)
	suite.Require().NoError(err)
	suite.Contains(out, "R$ 5.000,00")
}

func TestMoneyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MoneyServiceTestSuite))
}
