package repository

import (
	"context"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/db/option"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO customers (id, name, email, phone, address, city, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.City,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var c domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, address, city, created_at, updated_at
		 FROM customers WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Customer, error) {
	var c domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, address, city, created_at, updated_at
		 FROM customers WHERE email = ?`,
		email,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	stmt := db.WithContext(ctx).Model(&domain.Customer{})
	if filter.Email != "" {
		stmt = stmt.Where("email = ?", filter.Email)
	}
	if filter.City != "" {
		stmt = stmt.Where("city = ?", filter.City)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`UPDATE customers SET name = ?, phone = ?, address = ?, city = ?, updated_at = ?
		 WHERE id = ?`,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.City,
		customer.UpdatedAt,
		customer.ID,
	).Error
}
