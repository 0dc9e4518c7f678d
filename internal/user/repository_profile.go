package user

import (
	"context"
	"database/sql"
	"errors"

	"bookshop-be/internal/logger"

	"go.uber.org/zap"
)

// UpdateShipping updates the shipping profile columns of a user.
func (r *repository) UpdateShipping(ctx context.Context, p UpdateShippingParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateShipping"),
		zap.Uint("user_id", p.UserID),
	)

	// COALESCE keeps existing values when the input is nil
	query := `
		UPDATE users
		SET address = COALESCE($2, address),
			phone = COALESCE($3, phone),
			province_id = COALESCE($4, province_id),
			city_id = COALESCE($5, city_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		p.UserID, p.Address, p.Phone, p.ProvinceID, p.CityID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error("failed to update shipping profile", zap.Error(err))
		return nil, err
	}

	log.Info("shipping profile updated")
	return u, nil
}
