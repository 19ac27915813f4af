package request

import (
	"time"

	"qr-loyalty-service/internal/domain/scan"
	"qr-loyalty-service/internal/usecase/commands"
)

type CreateQrCodeRequest struct {
	Type       string     `json:"type" binding:"required,oneof=CUSTOMER_CARD LOYALTY_CARD PROMO_CODE"`
	CustomerID string     `json:"customerId"`
	ProgramID  string     `json:"programId"`
	CardID     string     `json:"cardId"`
	BusinessID string     `json:"businessId"`
	PromoCode  string     `json:"promoCode"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

func (r *CreateQrCodeRequest) ToCommand(businessID string) commands.CreateQrCodeRequest {
	if r.BusinessID != "" {
		businessID = r.BusinessID
	}
	return commands.CreateQrCodeRequest{
		Type:       scan.Type(r.Type),
		CustomerID: r.CustomerID,
		ProgramID:  r.ProgramID,
		CardID:     r.CardID,
		BusinessID: businessID,
		PromoCode:  r.PromoCode,
		ExpiryDate: r.ExpiryDate,
	}
}

type UpdateQrCodeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE EXPIRED REVOKED"`
}

type UpdateQrCodeExpiryRequest struct {
	ExpiryDate time.Time `json:"expiryDate" binding:"required"`
}
