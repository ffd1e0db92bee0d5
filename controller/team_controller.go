package controller

import (
	"encoding/json"
	"errors"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

func defaultTeamSettings() models.TeamSettings {
	return models.TeamSettings{
		AllowNFC:         true,
		MaxCards:         5,
		CustomBranding:   false,
		AnalyticsEnabled: true,
	}
}

// CreateTeam creates a team owned by the caller and moves the caller into it.
func (c *TeamController) CreateTeam(req *models.CreateTeamRequest, ownerID uuid.UUID) (*models.Team, error) {
	settings := defaultTeamSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}

	team := models.Team{
		Name:     req.Name,
		OwnerID:  ownerID,
		Plan:     util.PlanFree,
		Settings: datatypes.JSON(settingsJSON),
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", ownerID).Update("team_id", team.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (c *TeamController) GetTeam(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := c.DB.First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// UpdateSettings replaces the team settings bundle. Only the owner may change it.
func (c *TeamController) UpdateSettings(id uuid.UUID, req *models.UpdateTeamSettingsRequest, userID uuid.UUID) (*models.Team, error) {
	team, err := c.GetTeam(id)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != userID {
		return nil, ErrPermissionDenied
	}

	settingsJSON, err := json.Marshal(req.Settings)
	if err != nil {
		return nil, err
	}

	if err := c.DB.Model(team).Update("settings", datatypes.JSON(settingsJSON)).Error; err != nil {
		return nil, err
	}
	team.Settings = datatypes.JSON(settingsJSON)
	return team, nil
}

// JoinTeam attaches a user to a team; LeaveTeam clears the membership.
func (c *TeamController) JoinTeam(teamID, userID uuid.UUID) error {
	if _, err := c.GetTeam(teamID); err != nil {
		return err
	}
	return c.DB.Model(&models.User{}).Where("id = ?", userID).Update("team_id", teamID).Error
}

func (c *TeamController) LeaveTeam(userID uuid.UUID) error {
	return c.DB.Model(&models.User{}).Where("id = ?", userID).Update("team_id", nil).Error
}
