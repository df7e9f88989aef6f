package quota

import (
	"context"

	"github.com/orris-inc/toolbox/internal/domain/user"
)

// UserSubjectReader adapts the user repository to SubjectReader.
type UserSubjectReader struct {
	users user.Repository
}

func NewUserSubjectReader(users user.Repository) *UserSubjectReader {
	return &UserSubjectReader{users: users}
}

func (r *UserSubjectReader) GetSubject(ctx context.Context, userID uint) (*Subject, error) {
	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Subject{
		UserID:  u.ID(),
		IsAdmin: u.IsAdmin(),
		Tier:    u.Plan(),
	}, nil
}
