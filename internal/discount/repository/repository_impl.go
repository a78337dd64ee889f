package repository

import (
	"context"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, rule *pricingdomain.DiscountRule) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO discount_rules (id, discount_type, condition_value, discount_percentage, stackable, active, valid_from, valid_to, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rule.ID,
		rule.DiscountType,
		rule.ConditionValue,
		rule.DiscountPercentage,
		rule.Stackable,
		rule.Active,
		rule.ValidFrom,
		rule.ValidTo,
		rule.CreatedAt,
		rule.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*pricingdomain.DiscountRule, error) {
	var rule pricingdomain.DiscountRule
	err := db.WithContext(ctx).Raw(
		`SELECT id, discount_type, condition_value, discount_percentage, stackable, active, valid_from, valid_to, created_at, updated_at
		 FROM discount_rules WHERE id = ?`,
		id,
	).Scan(&rule).Error
	if err != nil {
		return nil, err
	}
	if rule.ID == 0 {
		return nil, nil
	}
	return &rule, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]pricingdomain.DiscountRule, error) {
	var items []pricingdomain.DiscountRule
	stmt := db.WithContext(ctx).Model(&pricingdomain.DiscountRule{})
	if filter.DiscountType != "" {
		stmt = stmt.Where("discount_type = ?", filter.DiscountType)
	}
	if filter.Active != nil {
		stmt = stmt.Where("active = ?", *filter.Active)
	}
	err := stmt.Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rule *pricingdomain.DiscountRule) error {
	return db.WithContext(ctx).Exec(
		`UPDATE discount_rules SET condition_value = ?, discount_percentage = ?, stackable = ?, active = ?, valid_from = ?, valid_to = ?, updated_at = ?
		 WHERE id = ?`,
		rule.ConditionValue,
		rule.DiscountPercentage,
		rule.Stackable,
		rule.Active,
		rule.ValidFrom,
		rule.ValidTo,
		rule.UpdatedAt,
		rule.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM discount_rules WHERE id = ?`, id).Error
}
