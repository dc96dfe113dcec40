package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"
)

type ProfileInput struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"` // data URL
}

type BMIInfo struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Display  string  `json:"display"`
}

type Profile struct {
	User   *models.User       `json:"user"`
	Health *models.HealthData `json:"health,omitempty"`
	BMI    *BMIInfo           `json:"bmi,omitempty"`
	Water  string             `json:"water_today,omitempty"`
}

type UserService struct {
	repos   *repositories.Repositories
	avatars AvatarStore
}

func NewUserService(repos *repositories.Repositories, avatars AvatarStore) *UserService {
	return &UserService{repos: repos, avatars: avatars}
}

func (s *UserService) Profile(ctx context.Context, uid string) (*Profile, error) {
	user, err := s.repos.Users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	out := &Profile{User: user}

	health, err := s.repos.HealthData.Get(ctx, uid)
	switch {
	case err == nil:
		out.Health = health
		out.Water = utils.FormatWater(health.WaterIntake)
		out.BMI = bmiFor(health)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}
	return out, nil
}

func bmiFor(h *models.HealthData) *BMIInfo {
	bmi, err := utils.CalculateBMI(h.Height, h.Weight)
	if err != nil {
		return nil
	}
	return &BMIInfo{Value: bmi, Category: utils.BMICategory(bmi), Display: utils.FormatBMI(bmi)}
}

func (s *UserService) UpdateProfile(ctx context.Context, uid string, in ProfileInput) (*models.User, error) {
	user, err := s.repos.Users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Username); name != "" {
		user.Username = name
	}
	if in.ProfilePicture != "" {
		if s.avatars == nil {
			return nil, ErrUnavailable
		}
		url, err := s.avatars.UploadProfilePicture(ctx, uid, in.ProfilePicture)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}
	if err := s.repos.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user together with every row the user owns.
func (s *UserService) DeleteAccount(ctx context.Context, uid string) error {
	return s.repos.Users.Delete(ctx, uid)
}
