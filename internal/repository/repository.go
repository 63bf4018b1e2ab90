package repository

import "gorm.io/gorm"

type Repository struct {
	DB             *gorm.DB
	Products       ProductRepo
	Variants       VariantRepo
	Prices         ContextualPriceRepo
	Orders         OrderRepo
	PaymentIntents PaymentIntentRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:             db,
		Products:       NewProductRepo(db),
		Variants:       NewVariantRepo(db),
		Prices:         NewContextualPriceRepo(db),
		Orders:         NewOrderRepo(db),
		PaymentIntents: NewPaymentIntentRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
