package service

import (
	"context"

	"github.com/xgencloud/xgen-site/internal/domain/model"
	apperrors "github.com/xgencloud/xgen-site/internal/errors"
	"github.com/xgencloud/xgen-site/internal/ports"
)

// ContactService handles contact form submissions.
type ContactService struct {
	messages ports.ContactRepository
}

// NewContactService constructs a new ContactService.
func NewContactService(messages ports.ContactRepository) *ContactService {
	return &ContactService{messages: messages}
}

// Submit validates and stores an inbound inquiry.
func (s *ContactService) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	if req == nil {
		return nil, apperrors.Validation("contact request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	msg, err := s.messages.Create(ctx, req)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return msg, nil
}
