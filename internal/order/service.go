package order

import (
	"context"
)

type InterfaceService interface {
	GetPaymentStatusService(ctx context.Context, id string) (PaymentStatusResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewOrderService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (s *Service) GetPaymentStatusService(ctx context.Context, id string) (PaymentStatusResponse, error) {
	result, err := s.InterfaceService.GetOrderByID(ctx, id)
	if err != nil {
		return PaymentStatusResponse{}, err
	}

	response := PaymentStatusResponse{}
	response.ParseFromOrderObject(result)
	return response, nil
}
