package usecase

import (
	"fmt"

	"booking-console/internal/dto/request"
	"booking-console/pkg/mailer"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type EmailService interface {
	Send(req *request.SendEmailRequest) error
}

type emailService struct {
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewEmailService(m mailer.Mailer, log *zap.Logger) EmailService {
	return &emailService{
		mailer: m,
		log:    log,
	}
}

func (s *emailService) Send(req *request.SendEmailRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Email validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.mailer.Send(req.To, req.Subject, req.HTML); err != nil {
		return fmt.Errorf("failed to send email")
	}

	return nil
}
