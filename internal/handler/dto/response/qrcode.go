package response

import (
	"qr-loyalty-service/internal/usecase/queries"
	"qr-loyalty-service/internal/usecase/shared"
)

type QrCodeResponse struct {
	UniqueID   string  `json:"qrUniqueId"`
	Type       string  `json:"type"`
	Data       string  `json:"data"`
	CustomerID *string `json:"customerId,omitempty"`
	BusinessID *string `json:"businessId,omitempty"`
	Status     string  `json:"status"`
	ExpiryDate *int64  `json:"expiryDate,omitempty"`
	CreatedAt  int64   `json:"createdAt"`
	UpdatedAt  int64   `json:"updatedAt"`
}

func FromQrCodeView(v *queries.QrCodeView) *QrCodeResponse {
	resp := &QrCodeResponse{
		UniqueID:   v.UniqueID,
		Type:       string(v.Type),
		Data:       v.Data,
		CustomerID: v.CustomerID,
		BusinessID: v.BusinessID,
		Status:     string(v.Status),
		CreatedAt:  v.CreatedAt.Unix(),
		UpdatedAt:  v.UpdatedAt.Unix(),
	}
	if v.ExpiryDate != nil {
		expiry := v.ExpiryDate.Unix()
		resp.ExpiryDate = &expiry
	}
	return resp
}

func FromQrCodeRecord(qr *shared.QrCode) *QrCodeResponse {
	resp := &QrCodeResponse{
		UniqueID:   qr.UniqueID,
		Type:       string(qr.Type),
		Data:       qr.Data,
		CustomerID: qr.CustomerID,
		BusinessID: qr.BusinessID,
		Status:     string(qr.Status),
		CreatedAt:  qr.CreatedAt.Unix(),
		UpdatedAt:  qr.UpdatedAt.Unix(),
	}
	if qr.ExpiryDate != nil {
		expiry := qr.ExpiryDate.Unix()
		resp.ExpiryDate = &expiry
	}
	return resp
}
