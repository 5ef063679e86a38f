package interfaces

//go:generate mockgen -source=wizard_draft_repository_interface.go -destination=mocks/wizard_draft_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"freight_portal/internal/domain/entities"
)

// IWizardDraftRepository abstracts DynamoDB persistence for quote wizard drafts.
//
// GetByID returns a zero-value draft (empty ID) when nothing is stored.
type IWizardDraftRepository interface {
	Create(ctx context.Context, d entities.WizardDraft) (entities.WizardDraft, error)
	GetByID(ctx context.Context, id string) (entities.WizardDraft, error)
	Save(ctx context.Context, d entities.WizardDraft) (entities.WizardDraft, error)
}
