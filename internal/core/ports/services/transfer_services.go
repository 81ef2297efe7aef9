package services

import (
	"context"

	"github.com/savdoplus/savdo_backend/internal/dto"
)

// TransferSvcFacade orchestrates multi-record money movements.
type TransferSvcFacade interface {
	// TransferCurrency exchanges money between two accounts of different
	// currencies at the supplied rate, recording both legs atomically.
	TransferCurrency(ctx context.Context, req dto.TransferRequest, userID string) (*dto.TransferResponse, error)

	// DealerRefund pays money back to a dealer from one of our accounts and
	// reduces the dealer's debt, atomically.
	DealerRefund(ctx context.Context, req dto.DealerRefundRequest, userID string) (*dto.DealerRefundResponse, error)
}
