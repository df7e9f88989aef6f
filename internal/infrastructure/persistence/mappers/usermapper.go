package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/user"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	var emitter *user.EmitterSettings
	if len(model.EmitterSettings) > 0 && string(model.EmitterSettings) != "null" {
		emitter = &user.EmitterSettings{}
		if err := json.Unmarshal(model.EmitterSettings, emitter); err != nil {
			return nil, fmt.Errorf("failed to decode emitter settings: %w", err)
		}
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		plan.ParseTier(model.Plan),
		user.Billing{
			CustomerID:     model.StripeCustomerID,
			SubscriptionID: model.StripeSubscriptionID,
			PlanExpiresAt:  model.PlanExpiresAt,
		},
		emitter,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	var emitter datatypes.JSON
	if s := entity.EmitterSettings(); s != nil {
		raw, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode emitter settings: %w", err)
		}
		emitter = datatypes.JSON(raw)
	}

	billing := entity.Billing()
	return &models.UserModel{
		ID:                   entity.ID(),
		Username:             entity.Username(),
		PasswordHash:         entity.PasswordHash(),
		Role:                 entity.Role().String(),
		Plan:                 entity.Plan().String(),
		StripeCustomerID:     billing.CustomerID,
		StripeSubscriptionID: billing.SubscriptionID,
		PlanExpiresAt:        billing.PlanExpiresAt,
		EmitterSettings:      emitter,
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
