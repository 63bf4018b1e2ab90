package migrate

import (
	"context"

	"storefront-api/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto for gen_random_uuid()
	CreateChecks           bool // CHECK constraints
	CreateIndexes          bool // indexes and UNIQUE
	CreateUpdatedAtTrigger bool // updated_at trigger on orders and payment_intents
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigrateStoreDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting store database migration")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto extension", zap.Error(err))
			return err
		}
	}

	log.Info("creating tables")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductMedia{},
		&models.ProductMetafield{},
		&models.ContextualPrice{},
		&models.Order{},
		&models.PaymentIntent{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_payment_intents_updated ON payment_intents;
CREATE TRIGGER trg_payment_intents_updated
BEFORE UPDATE ON payment_intents
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("failed to create updated_at triggers", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("creating CHECK constraints")

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('Pending','Confirmed','Shipped','Delivered'));
`).Error; err != nil {
			log.Error("failed to create order status CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_payment_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_payment_status_allowed
  CHECK (payment_status IN ('Pending','Paid','Failed'));
`).Error; err != nil {
			log.Error("failed to create payment status CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE payment_intents
  DROP CONSTRAINT IF EXISTS chk_payment_intents_status_allowed;
ALTER TABLE payment_intents
  ADD CONSTRAINT chk_payment_intents_status_allowed
  CHECK (status IN ('Pending','processing','Completed','Failed'));
`).Error; err != nil {
			log.Error("failed to create payment intent status CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE product_variants
  DROP CONSTRAINT IF EXISTS chk_product_variants_quantity_non_negative;
ALTER TABLE product_variants
  ADD CONSTRAINT chk_product_variants_quantity_non_negative
  CHECK (quantity >= 0);
`).Error; err != nil {
			log.Error("failed to create variant quantity CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_amounts_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_amounts_non_negative
  CHECK (subtotal >= 0 AND tax_amount >= 0 AND shipping_amount >= 0 AND order_total >= 0);
`).Error; err != nil {
			log.Error("failed to create order amounts CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE payment_intents
  DROP CONSTRAINT IF EXISTS chk_payment_intents_amount_non_negative;
ALTER TABLE payment_intents
  ADD CONSTRAINT chk_payment_intents_amount_non_negative
  CHECK (expected_amount >= 0);
`).Error; err != nil {
			log.Error("failed to create payment intent amount CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE contextual_prices
  DROP CONSTRAINT IF EXISTS chk_contextual_prices_currency_len;
ALTER TABLE contextual_prices
  ADD CONSTRAINT chk_contextual_prices_currency_len
  CHECK (char_length(currency_code) = 3);
`).Error; err != nil {
			log.Error("failed to create contextual price currency CHECK", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("creating indexes")

		// uniqueness is the correlation contract between orders and payment intents
		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_orders_order_number
ON orders (order_number);
`).Error; err != nil {
			log.Error("failed to create unique index on orders.order_number", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_payment_intents_tx_ref
ON payment_intents (tx_ref);
`).Error; err != nil {
			log.Error("failed to create unique index on payment_intents.tx_ref", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_contextual_prices_product_country
ON contextual_prices (product_id, country);
`).Error; err != nil {
			log.Error("failed to create unique index on contextual_prices", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_payment_intents_order_number
ON payment_intents (order_number);
`).Error; err != nil {
			log.Error("failed to create index on payment_intents.order_number", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_status_created
ON orders (status, created_at DESC);
`).Error; err != nil {
			log.Error("failed to create index on orders status", zap.Error(err))
			return err
		}
	}

	log.Info("store database migration finished")
	return nil
}
