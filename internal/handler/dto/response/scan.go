package response

import (
	"qr-loyalty-service/internal/usecase/commands"
)

type ScanResponse struct {
	UniqueID   string `json:"qrUniqueId"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	CustomerID string `json:"customerId,omitempty"`
	ProgramID  string `json:"programId,omitempty"`
	PromoCode  string `json:"promoCode,omitempty"`
	BusinessID string `json:"businessId,omitempty"`
}

func FromScanResult(r *commands.ScanResult) *ScanResponse {
	return &ScanResponse{
		UniqueID:   r.QrCode.UniqueID,
		Type:       string(r.QrCode.Type),
		Status:     string(r.QrCode.Status),
		CustomerID: r.Payload.CustomerID,
		ProgramID:  r.Payload.ProgramID,
		PromoCode:  r.Payload.PromoCode,
		BusinessID: r.Payload.BusinessID,
	}
}
