package seeder

import (
	"context"
	"fmt"

	"caps-connect/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// DemoUsersSeeder loads a small community for local development: members with
// skills and connections shaped so category matching and free-text search
// both return results out of the box.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

type demoSkill struct {
	Category    string
	SkillName   string
	Willingness string
	IsHobby     bool
}

type demoConnection struct {
	Sector       string
	Organization string
	Contact      string
	Relationship string
}

type demoUser struct {
	Email       string
	DisplayName string
	Bio         string
	Location    string
	IsAdmin     bool
	Skills      []demoSkill
	Connections []demoConnection
}

const demoPassword = "caps-demo-1234"

var demoUsers = []demoUser{
	{
		Email:       "admin@caps-connect.local",
		DisplayName: "Portal Admin",
		Bio:         "Community coordinator.",
		Location:    "Charlotte, NC",
		IsAdmin:     true,
	},
	{
		Email:       "sam.coach@caps-connect.local",
		DisplayName: "Sam Coach",
		Bio:         "Youth sports volunteer and part-time referee.",
		Location:    "Charlotte, NC",
		Skills: []demoSkill{
			{Category: "Sports & Coaching", SkillName: "Basketball coaching", Willingness: "pro_bono"},
			{Category: "Education & Tutoring", SkillName: "Math tutoring", Willingness: "advice", IsHobby: true},
		},
		Connections: []demoConnection{
			{Sector: "Sports & Recreation", Organization: "Eastside Rec Center", Contact: "Dana Wells", Relationship: "decision_maker"},
		},
	},
	{
		Email:       "lee.legal@caps-connect.local",
		DisplayName: "Lee Counsel",
		Bio:         "Contract attorney, happy to review agreements for nonprofits.",
		Location:    "Matthews, NC",
		Skills: []demoSkill{
			{Category: "Legal Services", SkillName: "Contract review", Willingness: "discount"},
			{Category: "Legal Services", SkillName: "Nonprofit formation", Willingness: "pro_bono"},
		},
		Connections: []demoConnection{
			{Sector: "Legal", Organization: "Mecklenburg Bar Association", Contact: "J. Ortiz", Relationship: "strong_contact"},
			{Sector: "Non-Profit", Organization: "Carolina Legal Aid", Relationship: "acquaintance"},
		},
	},
	{
		Email:       "pat.builder@caps-connect.local",
		DisplayName: "Pat Mason",
		Bio:         "General contractor, sponsors local builds.",
		Location:    "Concord, NC",
		Skills: []demoSkill{
			{Category: "Construction & Trades", SkillName: "General contracting", Willingness: "sponsor"},
		},
		Connections: []demoConnection{
			{Sector: "Small Business", Organization: "Mason & Sons Construction", Contact: "Pat Mason", Relationship: "decision_maker"},
			{Sector: "Government", Organization: "City Permitting Office", Relationship: "strong_contact"},
		},
	},
}

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "display_name", "is_admin"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skills", "id", "user_id", "category", "skill_name", "willingness_level", "is_hobby"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "connections", "id", "user_id", "sector", "organization_name", "relationship_strength", "contact_name"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range demoUsers {
		row := tx.QueryRow(
			ctx,
			`INSERT INTO users (id, email, password_hash, display_name, bio, location, is_admin, onboarding_complete)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, TRUE)
			 ON CONFLICT (email) DO UPDATE SET display_name = EXCLUDED.display_name
			 RETURNING id`,
			u.Email, string(hash), u.DisplayName, u.Bio, u.Location, u.IsAdmin,
		)
		var userID string
		if err := row.Scan(&userID); err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}

		for _, s := range u.Skills {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, user_id, category, skill_name, willingness_level, is_hobby)
				 SELECT gen_random_uuid(), $1, $2, $3, $4, $5
				 WHERE NOT EXISTS (
					SELECT 1 FROM skills WHERE user_id = $1 AND category = $2 AND skill_name = $3
				 )`,
				userID, s.Category, s.SkillName, s.Willingness, s.IsHobby,
			)
			if err != nil {
				return fmt.Errorf("skill %s/%s: %w", u.Email, s.SkillName, err)
			}
		}

		for _, cn := range u.Connections {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO connections (id, user_id, sector, organization_name, relationship_strength, contact_name)
				 SELECT gen_random_uuid(), $1, $2, $3, $4, $5
				 WHERE NOT EXISTS (
					SELECT 1 FROM connections WHERE user_id = $1 AND sector = $2 AND organization_name = $3
				 )`,
				userID, cn.Sector, cn.Organization, cn.Relationship, cn.Contact,
			)
			if err != nil {
				return fmt.Errorf("connection %s/%s: %w", u.Email, cn.Organization, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
