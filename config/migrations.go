package config

import (
	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20260110_init_schema",
			Migrate: func(tx *gorm.DB) error {
				// Ensure pgcrypto is available for gen_random_uuid()
				if err := tx.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
					return err
				}

				return tx.AutoMigrate(
					&models.User{},
					&models.Team{},
					&models.BusinessCard{},
					&models.ShortLink{},
					&models.LinkVisit{},
					&models.Lead{},
					&models.LeadInteraction{},
					&models.Subscription{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				// Drop tables in reverse dependency order
				return tx.Migrator().DropTable(
					"subscriptions",
					"lead_interactions",
					"leads",
					"link_visits",
					"short_links",
					"business_cards",
					"teams",
					"users",
				)
			},
		},
		{
			ID: "20260110_indexes",
			Migrate: func(tx *gorm.DB) error {
				// Covering indexes for the dashboard list queries
				return tx.Exec(`
					CREATE INDEX IF NOT EXISTS idx_short_links_user_created ON short_links(user_id, created_at DESC);
					CREATE INDEX IF NOT EXISTS idx_leads_card_created ON leads(business_card_id, created_at DESC);
					CREATE INDEX IF NOT EXISTS idx_business_cards_team ON business_cards(team_id) WHERE team_id IS NOT NULL;
				`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`
					DROP INDEX IF EXISTS idx_short_links_user_created;
					DROP INDEX IF EXISTS idx_leads_card_created;
					DROP INDEX IF EXISTS idx_business_cards_team;
				`).Error
			},
		},
		{
			ID: "20260112_subscription_team_unique",
			Migrate: func(tx *gorm.DB) error {
				// AutoMigrate already adds the unique column constraint; make the
				// one-subscription-per-team rule explicit for hand-written SQL paths
				return tx.Exec(`
					CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_team_unique ON subscriptions(team_id)
				`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP INDEX IF EXISTS idx_subscriptions_team_unique`).Error
			},
		},
		{
			ID: "20260115_clicks_non_negative",
			Migrate: func(tx *gorm.DB) error {
				// Click counters must never go negative
				return tx.Exec(`
					ALTER TABLE short_links
					ADD CONSTRAINT chk_short_links_clicks_non_negative CHECK (clicks >= 0)
				`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`
					ALTER TABLE short_links
					DROP CONSTRAINT IF EXISTS chk_short_links_clicks_non_negative
				`).Error
			},
		},
	}
}
