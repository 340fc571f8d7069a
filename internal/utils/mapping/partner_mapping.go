package mapping

import (
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/models"
)

func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:    m.VendorID,
		Name:        m.Name,
		Percentage:  m.Percentage,
		PixKey:      m.PixKey,
		Phone:       m.Phone,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	return mapSlice(ms, ToDomainVendor)
}

func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		TenantID:    m.ClientID,
		CompanyName: m.CompanyName,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	return mapSlice(ms, ToDomainPayment)
}

func ToDomainWithdrawal(m models.Withdrawal) domain.Withdrawal {
	return domain.Withdrawal{
		WithdrawalID:   m.WithdrawalID,
		VendorID:       m.VendorID,
		VendorName:     m.VendorName,
		Amount:         m.Amount,
		WithdrawalDate: m.WithdrawalDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainWithdrawalSlice(ms []models.Withdrawal) []domain.Withdrawal {
	return mapSlice(ms, ToDomainWithdrawal)
}

// ToDomainCommissionRecord converts a model CommissionRecord to a domain CommissionRecord
func ToDomainCommissionRecord(m models.CommissionRecord) domain.CommissionRecord {
	rec := domain.CommissionRecord{
		VendorID:     m.VendorID,
		Month:        domain.Month(m.Month),
		Status:       domain.CommissionStatus(m.Status),
		PaidAt:       m.PaidAt,
		WithdrawalID: m.WithdrawalID,
	}
	if m.PaidAmount.Valid {
		amount := m.PaidAmount.Decimal
		rec.PaidAmount = &amount
	}
	return rec
}

func ToDomainCommissionRecordSlice(ms []models.CommissionRecord) []domain.CommissionRecord {
	return mapSlice(ms, ToDomainCommissionRecord)
}

func ToDomainVendorSales(m models.VendorSales) domain.VendorSales {
	return domain.VendorSales{
		VendorID:   m.VendorID,
		VendorName: m.VendorName,
		Percentage: m.Percentage,
		TotalSales: m.TotalSales,
	}
}

func ToDomainVendorSalesSlice(ms []models.VendorSales) []domain.VendorSales {
	return mapSlice(ms, ToDomainVendorSales)
}
