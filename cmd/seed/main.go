package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"snadaily/internal/config"
	"snadaily/internal/db"
	"snadaily/internal/model"
	"snadaily/internal/repository"
	"snadaily/internal/service"
)

type seedJudge struct {
	Username string
	Password string
	FullName string
	Phone    string
}

type seedEvent struct {
	Title       string
	Description string
	Location    string
	EventDate   string
	Status      model.EventStatus
	Judges      []string
}

var judges = []seedJudge{
	{Username: "judge.rahmat", Password: "judge12345", FullName: "Rahmat Hidayat", Phone: "081234567801"},
	{Username: "judge.sari", Password: "judge12345", FullName: "Sari Wulandari", Phone: "081234567802"},
	{Username: "judge.budi", Password: "judge12345", FullName: "Budi Santoso", Phone: "081234567803"},
}

var events = []seedEvent{
	{
		Title:       "Jakarta Betta Championship 2026",
		Description: "National halfmoon and plakat classes.",
		Location:    "Jakarta Convention Center",
		EventDate:   "2026-10-17",
		Status:      model.EventStatusUpcoming,
		Judges:      []string{"judge.rahmat", "judge.sari"},
	},
	{
		Title:       "Surabaya Open Betta Show",
		Description: "Open classes for all tail types.",
		Location:    "Grand City Surabaya",
		EventDate:   "2026-11-07",
		Status:      model.EventStatusUpcoming,
		Judges:      []string{"judge.budi"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Event{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, userRepo)

	ctx := context.Background()
	judgeIDs := make(map[string]uint, len(judges))

	created := 0
	for _, j := range judges {
		existing, err := userRepo.FindByUsername(ctx, j.Username)
		if err == nil {
			judgeIDs[j.Username] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Error checking judge %s: %v", j.Username, err)
		}

		judge, err := userService.CreateJudge(ctx, service.JudgeInput{
			Username: j.Username,
			Password: j.Password,
			FullName: j.FullName,
			Phone:    j.Phone,
		})
		if err != nil {
			log.Fatalf("Error creating judge %s: %v", j.Username, err)
		}
		judgeIDs[j.Username] = judge.ID
		created++
	}
	log.Printf("Judges ready: %d created, %d existing", created, len(judges)-created)

	created = 0
	for _, ev := range events {
		event, err := ensureEvent(ctx, eventRepo, eventService, ev)
		if err != nil {
			log.Fatalf("Error seeding event %q: %v", ev.Title, err)
		}
		if event == nil {
			continue
		}
		created++

		ids := make([]uint, 0, len(ev.Judges))
		for _, username := range ev.Judges {
			ids = append(ids, judgeIDs[username])
		}
		if _, err := eventService.AssignJudges(ctx, event.ID, ids); err != nil {
			log.Fatalf("Error assigning judges to %q: %v", ev.Title, err)
		}
	}
	log.Printf("Events ready: %d created, %d existing", created, len(events)-created)

	log.Println("Seed completed successfully!")
}

// ensureEvent creates the event unless one with the same title exists.
// Returns nil when the event was already present.
func ensureEvent(ctx context.Context, repo repository.EventRepository, svc service.EventService, ev seedEvent) (*model.Event, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.Title == ev.Title {
			return nil, nil
		}
	}
	return svc.Create(ctx, service.EventInput{
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		EventDate:   ev.EventDate,
		Status:      ev.Status,
	})
}
