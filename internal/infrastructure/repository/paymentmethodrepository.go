package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/mappers"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/db"
)

type PaymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

var _ paymentmethod.Repository = (*PaymentMethodRepository)(nil)

func (r *PaymentMethodRepository) ListAll(ctx context.Context) ([]*paymentmethod.Method, error) {
	return r.list(db.GetTxFromContext(ctx, r.db))
}

func (r *PaymentMethodRepository) ListAllForUpdate(ctx context.Context) ([]*paymentmethod.Method, error) {
	return r.list(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()))
}

func (r *PaymentMethodRepository) list(query *gorm.DB) ([]*paymentmethod.Method, error) {
	var methodModels []models.PaymentMethodModel
	if err := query.Order("position ASC, id ASC").Find(&methodModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	methods := make([]*paymentmethod.Method, len(methodModels))
	for i := range methodModels {
		m, err := mappers.PaymentMethodToDomain(&methodModels[i])
		if err != nil {
			return nil, err
		}
		methods[i] = m
	}
	return methods, nil
}

func (r *PaymentMethodRepository) SaveAll(ctx context.Context, methods []*paymentmethod.Method) error {
	if len(methods) == 0 {
		return nil
	}
	methodModels := make([]*models.PaymentMethodModel, len(methods))
	for i, m := range methods {
		methodModels[i] = mappers.PaymentMethodToModel(m)
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&methodModels).Error; err != nil {
		return fmt.Errorf("failed to save payment methods: %w", err)
	}
	return nil
}
