package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"standplanner/internal/applications"
	"standplanner/internal/layout"
	"standplanner/internal/plans"
	"standplanner/internal/shared/config"
	"standplanner/internal/shared/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const demoEventID = "spring-market-2025"

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting standplanner database seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Printf("\n🎉 Seeding completed! Open /api/%s/events/%s/layout to start editing.\n", cfg.APIVersion, demoEventID)
}

// CleanDatabase truncates the planner tables
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"event_plans",
		"applications",
	}

	return s.db.PostgreSQL.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			fmt.Printf("  Truncating table: %s\n", table)
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
}

// SeedAll seeds the demo event's applications and its floor plan
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	apps, err := s.SeedApplications(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed applications: %w", err)
	}

	if err := s.SeedPlan(ctx, apps); err != nil {
		return fmt.Errorf("failed to seed plan: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedApplications creates applications in every status, so the roster shows
// both placeable and hidden exhibitors
func (s *Seeder) SeedApplications(ctx context.Context) ([]applications.Application, error) {
	fmt.Println("  🧾 Seeding applications...")

	repo := applications.NewRepository(s.db.PostgreSQL)
	submitted := time.Now().Add(-14 * 24 * time.Hour)

	appsData := []struct {
		id       string
		brand    string
		contact  string
		email    string
		size     layout.SpotSize
		category layout.ZoneCategory
		status   layout.AppStatus
	}{
		{"app-1", "Vintage Vault", "Jana Nováková", "jana@vintagevault.example", layout.SpotSizeM, layout.ZoneCategorySecondhands, layout.AppStatusPaid},
		{"app-2", "Ink & Needle", "Tomáš Dvořák", "tomas@inkneedle.example", layout.SpotSizeS, layout.ZoneCategoryTattoo, layout.AppStatusApproved},
		{"app-3", "Glow Lab", "Petra Svobodová", "petra@glowlab.example", layout.SpotSizeS, layout.ZoneCategoryBeauty, layout.AppStatusPaid},
		{"app-4", "Atelier Nord", "Martin Král", "martin@ateliernord.example", layout.SpotSizeL, layout.ZoneCategoryDesigners, layout.AppStatusApproved},
		{"app-5", "Prague Threads", "Eva Horáková", "eva@praguethreads.example", layout.SpotSizeM, layout.ZoneCategoryLocalBrands, layout.AppStatusPending},
		{"app-6", "Second Round", "Lukáš Beneš", "lukas@secondround.example", layout.SpotSizeS, layout.ZoneCategorySecondhands, layout.AppStatusWaitlist},
		{"app-7", "Neon Nails", "Klára Černá", "klara@neonnails.example", layout.SpotSizeS, layout.ZoneCategoryBeauty, layout.AppStatusRejected},
	}

	created := make([]applications.Application, 0, len(appsData))
	for i, d := range appsData {
		app := applications.Application{
			ID:            d.id,
			EventID:       demoEventID,
			BrandName:     d.brand,
			ContactPerson: d.contact,
			Phone:         fmt.Sprintf("+420 777 000 %03d", i+1),
			Email:         d.email,
			RequestedSize: d.size,
			ZoneCategory:  d.category,
			Status:        d.status,
			SubmittedAt:   submitted.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.Create(ctx, &app); err != nil {
			return nil, fmt.Errorf("failed to create application %s: %w", d.id, err)
		}
		created = append(created, app)
		fmt.Printf("    ✅ Created application: %s (%s, %s)\n", app.BrandName, app.RequestedSize, app.Status)
	}

	return created, nil
}

// SeedPlan lays out two zones and binds some of the paid exhibitors
func (s *Seeder) SeedPlan(ctx context.Context, apps []applications.Application) error {
	fmt.Println("  🗺️  Seeding floor plan...")

	plan := layout.NewEventPlanWithGrid(demoEventID, 20, 12)
	plan.ApplySpotDefaults()
	ed := layout.NewEditor(plan)

	hall := ed.AddZone()
	name, color, category := "Main Hall", "#e76f51", layout.ZoneCategorySecondhands
	ed.UpdateZone(hall.ID, layout.ZoneUpdate{
		Name:       &name,
		Color:      &color,
		Category:   &category,
		Capacities: map[layout.SpotSize]int{layout.SpotSizeS: 6, layout.SpotSizeM: 4, layout.SpotSizeL: 2},
	})
	ed.SelectTool(layout.ToolPlaceM)
	ed.ClickCell(2, 3)
	ed.ClickCell(4, 3)
	ed.SelectTool(layout.ToolPlaceL)
	ed.ClickCell(6, 3)

	yard := ed.AddZone()
	name, color, category = "Courtyard", "#2a9d8f", layout.ZoneCategoryBeauty
	ed.UpdateZone(yard.ID, layout.ZoneUpdate{
		Name:       &name,
		Color:      &color,
		Category:   &category,
		Capacities: map[layout.SpotSize]int{layout.SpotSizeS: 8},
	})
	ed.SelectTool(layout.ToolPlaceS)
	for x := 2; x < 8; x += 2 {
		ed.ClickCell(x, 8)
	}

	// Bind the first paid application per matching size
	for _, app := range apps {
		if app.Status != layout.AppStatusPaid {
			continue
		}
		for _, stand := range ed.Plan().Stands {
			if !stand.IsOccupied() && stand.Size == app.RequestedSize {
				ed.AssignOccupant(stand.ID, app.ID)
				break
			}
		}
	}

	if issues := layout.Check(ed.Plan()); len(issues) > 0 {
		return fmt.Errorf("seeded plan has issues: %v", issues)
	}
	if err := plans.NewRepository(s.db.PostgreSQL).Upsert(ctx, ed.Snapshot()); err != nil {
		return err
	}

	fmt.Printf("    ✅ Created plan: %d zones, %d stands\n", len(ed.Plan().Zones), len(ed.Plan().Stands))
	return nil
}
