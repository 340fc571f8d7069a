package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/core/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PartnerServiceTestSuite struct {
	suite.Suite
	vendorRepo     *MockVendorRepository
	paymentRepo    *MockPaymentRepository
	withdrawalRepo *MockWithdrawalRepository
	commissionRepo *MockCommissionRepository
	service        portssvc.PartnerSvcFacade
}

func (suite *PartnerServiceTestSuite) SetupTest() {
	suite.vendorRepo = new(MockVendorRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.withdrawalRepo = new(MockWithdrawalRepository)
	suite.commissionRepo = new(MockCommissionRepository)
	suite.service = services.NewPartnerService(portsrepo.RepositoryProvider{
		VendorRepo:     suite.vendorRepo,
		PaymentRepo:    suite.paymentRepo,
		WithdrawalRepo: suite.withdrawalRepo,
		CommissionRepo: suite.commissionRepo,
	}, services.WithPartnerClock(clock))
}

func (suite *PartnerServiceTestSuite) TearDownTest() {
	suite.vendorRepo.AssertExpectations(suite.T())
	suite.paymentRepo.AssertExpectations(suite.T())
	suite.withdrawalRepo.AssertExpectations(suite.T())
	suite.commissionRepo.AssertExpectations(suite.T())
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (suite *PartnerServiceTestSuite) TestCreateVendor() {
	suite.vendorRepo.On("SaveVendor", mock.Anything, mock.MatchedBy(func(v domain.Vendor) bool {
		return v.Name == "Carlos" && v.Percentage.Equal(decimal.RequireFromString("10")) && v.PixKey == "carlos@pix"
	})).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(context.Background(), dto.VendorRequest{
		Name: " Carlos ", Percentage: dec("10"), PixKey: "carlos@pix",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(vendor.VendorID)
	suite.Equal(fixedNow, vendor.CreatedAt)
}

func (suite *PartnerServiceTestSuite) TestCreateVendor_PercentageBounds() {
	for _, pct := range []string{"-1", "100", "99.991"} {
		_, err := suite.service.CreateVendor(context.Background(), dto.VendorRequest{Name: "Carlos", Percentage: dec(pct)})
		suite.ErrorIs(err, apperrors.ErrValidation, pct)
	}
	_, err := suite.service.CreateVendor(context.Background(), dto.VendorRequest{Name: "Carlos"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PartnerServiceTestSuite) TestDeleteVendor_WithHistoryIsRejected() {
	suite.vendorRepo.On("DeleteVendor", mock.Anything, "v-1").
		Return(apperrors.NewValidationFailedError("partner has commission history")).Once()

	suite.ErrorIs(suite.service.DeleteVendor(context.Background(), "v-1"), apperrors.ErrValidation)
}

func (suite *PartnerServiceTestSuite) TestRecordPayment_ReloadsWithCompanyName() {
	paymentDate := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	var recorded domain.Payment
	suite.paymentRepo.On("RecordPayment", mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.TenantID == "tenant-1" && p.Amount.Equal(decimal.RequireFromString("150.5"))
	})).Run(func(args mock.Arguments) { recorded = args.Get(1).(domain.Payment) }).
		Return(&domain.CommissionAttribution{VendorID: "v-1", CommissionSnapshot: decimal.RequireFromString("15.05")}, nil).Once()
	suite.paymentRepo.On("FindPaymentByID", mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.Payment{PaymentID: "p-1", CompanyName: "Padaria Central"}, nil).Once()

	payment, err := suite.service.RecordPayment(context.Background(), "tenant-1", dto.PaymentFields{
		Amount: decimal.RequireFromString("150.50"), PaymentDate: paymentDate, Notes: " junho ",
	})

	suite.Require().NoError(err)
	suite.Equal("Padaria Central", payment.CompanyName)
	suite.Equal("junho", recorded.Notes)
	suite.Equal(paymentDate, recorded.PaymentDate)
}

func (suite *PartnerServiceTestSuite) TestRecordPayment_RequiresPositiveAmount() {
	_, err := suite.service.RecordPayment(context.Background(), "tenant-1", dto.PaymentFields{Amount: decimal.Zero})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PartnerServiceTestSuite) TestComputeMonthlyCommissions_KeepsPaidAmount() {
	month := domain.Month("2024-06")
	paid := decimal.RequireFromString("12.00")
	suite.commissionRepo.On("ListVendorSales", mock.Anything, month).Return([]domain.VendorSales{
		{VendorID: "v-1", VendorName: "Ana", Percentage: decimal.RequireFromString("10"), TotalSales: decimal.RequireFromString("200")},
		{VendorID: "v-2", VendorName: "Bia", Percentage: decimal.RequireFromString("5"), TotalSales: decimal.RequireFromString("100")},
	}, nil).Once()
	suite.commissionRepo.On("ListCommissionRecords", mock.Anything, month).Return([]domain.CommissionRecord{
		{VendorID: "v-1", Month: month, Status: domain.CommissionPaid, PaidAmount: &paid},
	}, nil).Once()

	rows, err := suite.service.ComputeMonthlyCommissions(context.Background(), month)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(domain.CommissionPaid, rows[0].Status)
	suite.Equal("20", rows[0].Commission.String())
	suite.True(rows[0].PaidAmount.Equal(paid))
	suite.Equal(domain.CommissionPending, rows[1].Status)
	suite.Equal("5", rows[1].Commission.String())
}

func (suite *PartnerServiceTestSuite) TestComputeMonthlyCommissions_RepositoryError() {
	month := domain.Month("2024-06")
	suite.commissionRepo.On("ListVendorSales", mock.Anything, month).Return(nil, errors.New("boom")).Once()

	_, err := suite.service.ComputeMonthlyCommissions(context.Background(), month)

	suite.Error(err)
}

func (suite *PartnerServiceTestSuite) TestPayCommission() {
	month := domain.Month("2024-05")
	amount := decimal.RequireFromString("20")
	suite.commissionRepo.On("PayCommission", mock.Anything, "v-1", month, mock.AnythingOfType("string"), fixedNow).
		Return(&domain.CommissionRecord{VendorID: "v-1", Month: month, Status: domain.CommissionPaid, PaidAmount: &amount}, nil).Once()

	record, err := suite.service.PayCommission(context.Background(), "v-1", month)

	suite.Require().NoError(err)
	suite.Equal(domain.CommissionPaid, record.Status)
}

func (suite *PartnerServiceTestSuite) TestPayCommission_AlreadyPaid() {
	month := domain.Month("2024-05")
	suite.commissionRepo.On("PayCommission", mock.Anything, "v-1", month, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationFailedError("commission already paid for this month")).Once()

	_, err := suite.service.PayCommission(context.Background(), "v-1", month)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PartnerServiceTestSuite) TestMarkCommissionPending() {
	month := domain.Month("2024-05")
	suite.commissionRepo.On("MarkCommissionPending", mock.Anything, "v-1", month).Return(nil).Once()

	suite.NoError(suite.service.MarkCommissionPending(context.Background(), "v-1", month))
}

func (suite *PartnerServiceTestSuite) TestAddWithdrawal() {
	date := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	suite.withdrawalRepo.On("SaveWithdrawal", mock.Anything, mock.MatchedBy(func(w domain.Withdrawal) bool {
		return w.VendorID == "v-1" && w.WithdrawalDate.Equal(date)
	})).Return(nil).Once()
	suite.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.Withdrawal{WithdrawalID: "w-1", VendorID: "v-1", VendorName: "Ana"}, nil).Once()

	w, err := suite.service.AddWithdrawal(context.Background(), dto.WithdrawalFields{
		VendorID: "v-1", Amount: decimal.RequireFromString("30"), WithdrawalDate: date,
	})

	suite.Require().NoError(err)
	suite.Equal("Ana", w.VendorName)
}

func (suite *PartnerServiceTestSuite) TestFinancialSummary() {
	summary := &domain.FinancialSummary{
		TotalReceived:  decimal.RequireFromString("500"),
		TotalWithdrawn: decimal.RequireFromString("120"),
		CashBalance:    decimal.RequireFromString("380"),
	}
	suite.paymentRepo.On("FinancialTotals", mock.Anything).Return(summary, nil).Once()

	got, err := suite.service.FinancialSummary(context.Background())

	suite.Require().NoError(err)
	suite.Equal(summary, got)
}

func (suite *PartnerServiceTestSuite) TestListVendors_NeverNil() {
	suite.vendorRepo.On("ListVendors", mock.Anything).Return(nil, nil).Once()

	vendors, err := suite.service.ListVendors(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(vendors)
	suite.Empty(vendors)
}

func TestPartnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerServiceTestSuite))
}
