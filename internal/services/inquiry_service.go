package services

import (
	"fmt"

	"github.com/Mithil2603/machinery-backend/internal/email"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

// InquiryService relays customer inquiries to the sales inbox.
type InquiryService interface {
	SendInquiry(req *dto.InquiryRequest) error
}

type InquiryServiceImpl struct {
	emailProvider email.Provider
	inquiryTo     string
}

func NewInquiryService(emailProvider email.Provider, inquiryTo string) InquiryService {
	return &InquiryServiceImpl{
		emailProvider: emailProvider,
		inquiryTo:     inquiryTo,
	}
}

func (s *InquiryServiceImpl) SendInquiry(req *dto.InquiryRequest) error {
	body := fmt.Sprintf("Inquiry from %s:\n\n%s", req.Email, req.Inquiry)
	if err := s.emailProvider.Send(s.inquiryTo, "New Inquiry", body); err != nil {
		return apperrors.DeliveryError(err)
	}
	return nil
}
