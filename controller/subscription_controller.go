package controller

import (
	"errors"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

// GetByTeam returns the single subscription row for a team.
func (c *SubscriptionController) GetByTeam(teamID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.DB.Where("team_id = ?", teamID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// ApplyBillingEvent upserts the team's subscription from a payment processor
// webhook. The processor is the source of truth; this table is a read model
// the app displays. The unique team_id index keeps it one row per team.
func (c *SubscriptionController) ApplyBillingEvent(event *models.BillingEvent) (*models.Subscription, error) {
	if event.Data.TeamID == uuid.Nil {
		return nil, ErrTeamNotFound
	}

	plan := event.Data.Plan
	if plan == "" {
		plan = util.PlanFree
	}
	status := event.Data.Status
	if status == "" {
		status = util.SubStatusActive
	}

	sub := models.Subscription{
		TeamID:            event.Data.TeamID,
		Plan:              plan,
		Status:            status,
		CurrentPeriodEnd:  event.Data.CurrentPeriodEnd,
		CancelAtPeriodEnd: event.Data.CancelAtPeriodEnd,
		ProcessorCustomer: event.Data.Customer,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "team_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"plan", "status", "current_period_end", "cancel_at_period_end", "processor_customer", "updated_at",
			}),
		}).Create(&sub).Error; err != nil {
			return err
		}
		// Mirror the plan onto the team so list views avoid the join
		return tx.Model(&models.Team{}).Where("id = ?", event.Data.TeamID).Update("plan", plan).Error
	})
	if err != nil {
		return nil, err
	}

	return c.GetByTeam(event.Data.TeamID)
}
