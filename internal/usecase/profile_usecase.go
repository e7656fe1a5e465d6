package usecase

import (
	"context"
	"errors"
	"strings"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"
	"caps-connect/internal/domain/user"
	"caps-connect/internal/repository"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// ProfileUsecase covers a member's own record: profile fields plus the skills
// and connections the matching engine scores.
type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, p user.Profile) (user.User, error)

	ListSkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	AddSkill(ctx context.Context, s skill.Skill) (skill.Skill, error)
	RemoveSkill(ctx context.Context, id, userID uuid.UUID) error

	ListConnections(ctx context.Context, userID uuid.UUID) ([]connection.Connection, error)
	AddConnection(ctx context.Context, c connection.Connection) (connection.Connection, error)
	RemoveConnection(ctx context.Context, id, userID uuid.UUID) error
}

type Profile struct {
	users       user.Repository
	skills      repository.SkillRepository
	connections repository.ConnectionRepository
}

func NewProfileUsecase(users user.Repository, skills repository.SkillRepository, connections repository.ConnectionRepository) *Profile {
	return &Profile{users: users, skills: skills, connections: connections}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, p user.Profile) (user.User, error) {
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	if p.DisplayName == "" {
		return user.User{}, ErrInvalidInput
	}

	if err := u.users.UpdateProfile(ctx, userID, p); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return u.Get(ctx, userID)
}

func (u *Profile) ListSkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	items, err := u.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Profile) AddSkill(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	s.SkillName = strings.TrimSpace(s.SkillName)
	if s.UserID == uuid.Nil || s.SkillName == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	if !skill.IsValidCategory(s.Category) || !skill.IsValidWillingness(string(s.WillingnessLevel)) {
		return skill.Skill{}, ErrInvalidInput
	}

	created, err := u.skills.Create(ctx, s)
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	return created, nil
}

func (u *Profile) RemoveSkill(ctx context.Context, id, userID uuid.UUID) error {
	ok, err := u.skills.Delete(ctx, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (u *Profile) ListConnections(ctx context.Context, userID uuid.UUID) ([]connection.Connection, error) {
	items, err := u.connections.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Profile) AddConnection(ctx context.Context, c connection.Connection) (connection.Connection, error) {
	c.OrganizationName = strings.TrimSpace(c.OrganizationName)
	if c.UserID == uuid.Nil || c.OrganizationName == "" {
		return connection.Connection{}, ErrInvalidInput
	}
	if !connection.IsValidSector(c.Sector) || !connection.IsValidRelationship(string(c.RelationshipStrength)) {
		return connection.Connection{}, ErrInvalidInput
	}

	created, err := u.connections.Create(ctx, c)
	if err != nil {
		return connection.Connection{}, ErrInternal
	}
	return created, nil
}

func (u *Profile) RemoveConnection(ctx context.Context, id, userID uuid.UUID) error {
	ok, err := u.connections.Delete(ctx, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
