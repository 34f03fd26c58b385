package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/repomanager"
)

// Demo account created by Seed.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo-password"
)

var demoEmployees = []models.Employee{
	{FirstName: "Ada", LastName: "Lovelace", Email: "ada.lovelace@example.com"},
	{FirstName: "Alan", LastName: "Turing", Email: "alan.turing@example.com"},
	{FirstName: "Grace", LastName: "Hopper", Email: "grace.hopper@example.com"},
	{FirstName: "Edsger", LastName: "Dijkstra", Email: "edsger.dijkstra@example.com"},
	{FirstName: "Barbara", LastName: "Liskov", Email: "barbara.liskov@example.com"},
	{FirstName: "Donald", LastName: "Knuth", Email: "donald.knuth@example.com"},
	{FirstName: "Margaret", LastName: "Hamilton", Email: "margaret.hamilton@example.com"},
	{FirstName: "Ken", LastName: "Thompson", Email: "ken.thompson@example.com"},
	{FirstName: "Frances", LastName: "Allen", Email: "frances.allen@example.com"},
	{FirstName: "John", LastName: "Backus", Email: "john.backus@example.com"},
	{FirstName: "Radia", LastName: "Perlman", Email: "radia.perlman@example.com"},
	{FirstName: "Rob", LastName: "Pike", Email: "rob.pike@example.com"},
}

// Seeder fills empty tables with a demo account and directory.
type Seeder struct {
	repos repomanager.RepositoryManager
	auth  *AuthService
	log   logging.Logger
}

func NewSeeder(m repomanager.RepositoryManager, auth *AuthService, log logging.Logger) *Seeder {
	return &Seeder{repos: m, auth: auth, log: log}
}

// Seed is a no-op for tables that already hold rows.
func (s *Seeder) Seed(ctx context.Context) error {
	hash, err := s.auth.hashPassword(DemoEmail, DemoPassword)
	if err != nil {
		return err
	}

	return s.repos.Tx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		n, err := r.Users().Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if n == 0 {
			if _, err := r.Users().Create(ctx, &models.User{Email: DemoEmail, PasswordHash: hash}); err != nil {
				return fmt.Errorf("seed user: %w", err)
			}
			s.log.Info(ctx, "seeded demo user", "email", DemoEmail)
		}

		n, err = r.Employees().Count(ctx)
		if err != nil {
			return fmt.Errorf("count employees: %w", err)
		}
		if n > 0 {
			return nil
		}
		for _, e := range demoEmployees {
			if _, err := r.Employees().Create(ctx, &e); err != nil {
				return fmt.Errorf("seed employee: %w", err)
			}
		}
		s.log.Info(ctx, "seeded demo employees", "count", len(demoEmployees))
		return nil
	})
}
