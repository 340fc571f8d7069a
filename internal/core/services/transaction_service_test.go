package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txRepo      *MockTransactionRepository
	catalogRepo *MockCatalogRepository
	store       *memStore
	service     portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txRepo = new(MockTransactionRepository)
	suite.catalogRepo = new(MockCatalogRepository)
	suite.store = newMemStore()
	suite.service = services.NewTransactionService(suite.txRepo, suite.catalogRepo, suite.store, "https://api.example.com")
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.txRepo.AssertExpectations(suite.T())
	suite.catalogRepo.AssertExpectations(suite.T())
}

func saleFields() domain.TransactionFields {
	return domain.TransactionFields{
		EmployeeID:      "emp-1",
		Kind:            domain.KindSale,
		TransactionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description:     " Pão ",
		Counterpart:     "Mercado Sol",
		Quantity:        decimal.RequireFromString("3"),
		UnitPrice:       decimal.RequireFromString("0.335"),
		Status:          domain.StatusPaid,
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ComputesTotalServerSide() {
	suite.catalogRepo.On("ItemExists", mock.Anything, "tenant-1", domain.CatalogProduct, "Pão").Return(true, nil).Once()
	suite.catalogRepo.On("ItemExists", mock.Anything, "tenant-1", domain.CatalogBuyer, "Mercado Sol").Return(true, nil).Once()

	var saved domain.Transaction
	suite.txRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Transaction) }).
		Return(nil).Once()
	suite.txRepo.On("FindTransactionByID", mock.Anything, "tenant-1", mock.AnythingOfType("string")).
		Return(nil, errors.New("replica lag")).Once()

	tx, err := suite.service.CreateTransaction(context.Background(), "tenant-1", saleFields())

	suite.Require().NoError(err)
	suite.Equal("Pão", saved.Description)
	// unit price is stored at cents, so the total is 3 x 0.34
	suite.Equal("0.34", saved.UnitPrice.String())
	suite.Equal("1.02", saved.TotalPrice.String())
	suite.True(saved.TotalPrice.Equal(saved.Quantity.Mul(saved.UnitPrice).RoundBank(2)))
	suite.Equal(saved.TransactionID, tx.TransactionID)
	suite.Equal("tenant-1", tx.TenantID)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownDescription() {
	suite.catalogRepo.On("ItemExists", mock.Anything, "tenant-1", domain.CatalogProduct, "Pão").Return(false, nil).Once()

	_, err := suite.service.CreateTransaction(context.Background(), "tenant-1", saleFields())

	suite.ErrorIs(err, apperrors.ErrUnknownCatalogReference)
	suite.Contains(err.Error(), "Pão")
	suite.Contains(err.Error(), string(domain.CatalogProduct))
	suite.txRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateExpense_ChecksSupplierCatalog() {
	fields := saleFields()
	fields.Kind = domain.KindExpense
	fields.Description = "Farinha"
	fields.Counterpart = "Moinho"
	suite.catalogRepo.On("ItemExists", mock.Anything, "tenant-1", domain.CatalogPurchaseItem, "Farinha").Return(true, nil).Once()
	suite.catalogRepo.On("ItemExists", mock.Anything, "tenant-1", domain.CatalogSupplier, "Moinho").Return(false, nil).Once()

	_, err := suite.service.CreateTransaction(context.Background(), "tenant-1", fields)

	suite.ErrorIs(err, apperrors.ErrUnknownCatalogReference)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsInvalidFields() {
	cases := map[string]func(f *domain.TransactionFields){
		"no employee":       func(f *domain.TransactionFields) { f.EmployeeID = "" },
		"bad kind":          func(f *domain.TransactionFields) { f.Kind = "refund" },
		"bad status":        func(f *domain.TransactionFields) { f.Status = "late" },
		"blank description": func(f *domain.TransactionFields) { f.Description = "   " },
		"negative quantity": func(f *domain.TransactionFields) { f.Quantity = decimal.NewFromInt(-1) },
		"zero quantity":     func(f *domain.TransactionFields) { f.Quantity = decimal.Zero },
		"rounds to zero":    func(f *domain.TransactionFields) { f.Quantity = decimal.RequireFromString("0.0004") },
		"negative price":    func(f *domain.TransactionFields) { f.UnitPrice = decimal.NewFromInt(-1) },
	}
	for name, mutate := range cases {
		suite.Run(name, func() {
			fields := saleFields()
			mutate(&fields)
			_, err := suite.service.CreateTransaction(context.Background(), "tenant-1", fields)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	fields := saleFields()
	fields.Counterpart = ""
	suite.catalogRepo.On("ItemExists", mock.Anything, "tenant-1", domain.CatalogProduct, "Pão").Return(true, nil).Once()
	suite.txRepo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.TransactionID == "tx-1" && tx.TenantID == "tenant-1"
	})).Return(apperrors.NewNotFoundError("transaction not found")).Once()

	_, err := suite.service.UpdateTransaction(context.Background(), "tenant-1", "tx-1", fields)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DecoratesAttachmentURL() {
	filter := domain.TransactionFilter{Limit: 2}
	next := "cursor"
	suite.txRepo.On("ListTransactions", mock.Anything, "tenant-1", filter).Return([]domain.Transaction{
		{TransactionID: "tx-1", Attachment: &domain.Attachment{StorageKey: "clients/tenant-1/transactions/tx-1/a-nota.pdf"}},
		{TransactionID: "tx-2"},
	}, &next, nil).Once()

	txs, token, err := suite.service.ListTransactions(context.Background(), "tenant-1", filter)

	suite.Require().NoError(err)
	suite.Require().Len(txs, 2)
	suite.Equal("https://api.example.com/api/files/clients/tenant-1/transactions/tx-1/a-nota.pdf", txs[0].Attachment.URL)
	suite.Nil(txs[1].Attachment)
	suite.Equal(&next, token)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_RemovesStoredFile() {
	key := "clients/tenant-1/transactions/tx-1/a-nota.pdf"
	suite.Require().NoError(suite.store.Save(context.Background(), key, bytes.NewReader([]byte("x")), "application/pdf"))
	suite.txRepo.On("DeleteTransaction", mock.Anything, "tenant-1", "tx-1").Return([]string{key}, nil).Once()

	suite.Require().NoError(suite.service.DeleteTransaction(context.Background(), "tenant-1", "tx-1"))
	suite.False(suite.store.has(key))
}

func (suite *TransactionServiceTestSuite) TestBatchDelete() {
	ids := []string{uuid.NewString(), uuid.NewString()}
	suite.txRepo.On("DeleteTransactions", mock.Anything, "tenant-1", ids).Return(int64(1), nil, nil).Once()

	deleted, err := suite.service.BatchDeleteTransactions(context.Background(), "tenant-1", ids)

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
}

func (suite *TransactionServiceTestSuite) TestBatchDelete_ForeignIDsExcluded() {
	own, foreign := uuid.NewString(), uuid.NewString()
	ownKey := "clients/tenant-1/transactions/" + own + "/a-nota.pdf"
	foreignKey := "clients/tenant-2/transactions/" + foreign + "/b-nota.pdf"
	for _, key := range []string{ownKey, foreignKey} {
		suite.Require().NoError(suite.store.Save(context.Background(), key, bytes.NewReader([]byte("x")), "application/pdf"))
	}
	suite.txRepo.On("DeleteTransactions", mock.Anything, "tenant-1", []string{own, foreign}).
		Return(int64(1), []string{ownKey}, nil).Once()

	deleted, err := suite.service.BatchDeleteTransactions(context.Background(), "tenant-1", []string{own, foreign})

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
	suite.False(suite.store.has(ownKey))
	suite.True(suite.store.has(foreignKey))
}

func (suite *TransactionServiceTestSuite) TestBatchDelete_FailureKeepsEverything() {
	ids := []string{uuid.NewString(), uuid.NewString()}
	keys := []string{
		"clients/tenant-1/transactions/" + ids[0] + "/a-nota.pdf",
		"clients/tenant-1/transactions/" + ids[1] + "/b-nota.pdf",
	}
	for _, key := range keys {
		suite.Require().NoError(suite.store.Save(context.Background(), key, bytes.NewReader([]byte("x")), "application/pdf"))
	}
	suite.txRepo.On("DeleteTransactions", mock.Anything, "tenant-1", ids).
		Return(int64(0), nil, apperrors.NewAppError(500, "failed to delete transactions", errors.New("conn reset"))).Once()

	deleted, err := suite.service.BatchDeleteTransactions(context.Background(), "tenant-1", ids)

	suite.Error(err)
	suite.Zero(deleted)
	for _, key := range keys {
		suite.True(suite.store.has(key), key)
	}
}

func (suite *TransactionServiceTestSuite) TestBatchDelete_RejectsEmptyAndMalformedIDs() {
	_, err := suite.service.BatchDeleteTransactions(context.Background(), "tenant-1", nil)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.BatchDeleteTransactions(context.Background(), "tenant-1", []string{"not-a-uuid"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
