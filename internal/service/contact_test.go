package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgencloud/xgen-site/internal/domain/model"
	apperrors "github.com/xgencloud/xgen-site/internal/errors"
)

type fakeContactRepo struct {
	created []*model.ContactMessage
	err     error
}

func (f *fakeContactRepo) Create(_ context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	msg := &model.ContactMessage{ID: "m-1", Name: req.Name, Email: req.Email, Message: req.Message}
	f.created = append(f.created, msg)
	return msg, nil
}

func TestContactService_Submit(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)

	msg, err := svc.Submit(context.Background(), &model.ContactRequest{
		Name: "Priya", Email: "priya@example.com", Message: "Tell me about cloud plans.",
	})
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", msg.Email)
	require.Len(t, repo.created, 1)
}

func TestContactService_Submit_Invalid(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	_, err := svc.Submit(context.Background(), &model.ContactRequest{Name: "Priya", Email: "priya@example.com"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Submit(context.Background(), nil)
	assert.True(t, apperrors.IsValidation(err))
}

func TestContactService_Submit_RepoError(t *testing.T) {
	repo := &fakeContactRepo{err: context.DeadlineExceeded}
	svc := NewContactService(repo)

	_, err := svc.Submit(context.Background(), &model.ContactRequest{
		Name: "Priya", Email: "priya@example.com", Message: "hi",
	})
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.GetCode(err))
}
