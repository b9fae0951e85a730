package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/ghso/pkg/domain/model"
)

type UseCase interface {
	AuditSecrets(ctx context.Context, input *model.AuditSecretsInput) error
}
