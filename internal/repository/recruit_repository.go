package repository

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

// RecruitRepository stores recruitment listings and their joined members.
// ListMemberIDs is the membership source for the common-availability query.
type RecruitRepository interface {
	Create(ctx context.Context, recruitment *domain.Recruitment) error
	GetByID(ctx context.Context, id int) (*domain.Recruitment, error)
	ListByCourse(ctx context.Context, courseID, viewerID int) ([]*domain.Recruitment, error)
	Delete(ctx context.Context, id int) error

	AddMember(ctx context.Context, recruitmentID, userID int) error
	RemoveMember(ctx context.Context, recruitmentID, userID int) error
	HasMember(ctx context.Context, recruitmentID, userID int) (bool, error)
	CountMembers(ctx context.Context, recruitmentID int) (int, error)
	ListMemberIDs(ctx context.Context, recruitmentID int) ([]int, error)
}
