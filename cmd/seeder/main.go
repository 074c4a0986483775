package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"playbracket/internal/bracket"
	"playbracket/internal/database"
)

// Simplified config loading for the script
func loadConfig() (dbName, migrationsDir string) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	dbName, ok := os.LookupEnv("DB_NAME")
	if !ok {
		log.Fatalf("Error: Required environment variable DB_NAME is not set.")
	}
	migrationsDir, ok = os.LookupEnv("MIGRATIONS_DIR")
	if !ok {
		migrationsDir = "./migrations"
	}
	return dbName, migrationsDir
}

func main() {
	log.Info("Starting database seeder...")
	dbName, migrationsDir := loadConfig()

	db, teardown, err := database.InitDB(dbName, "", "", migrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		teardown()
		db.Close()
	}()

	store := bracket.New(db)

	squash, err := store.CreateSport("squash")
	if err != nil {
		log.Fatalf("Failed to create sport: %s", err)
	}

	names := []string{"Seeder Player A", "Seeder Player B", "Seeder Player C", "Seeder Player D"}
	var players []bracket.Player
	for _, name := range names {
		p, err := store.CreatePlayer(name)
		if err != nil {
			log.Fatalf("Failed to create player %s: %s", name, err)
		}
		if err := store.AddPlayerToSport(squash.ID, p.ID); err != nil {
			log.Fatalf("Failed to add player to sport: %s", err)
		}
		players = append(players, p)
	}
	log.Info("Created demo players", "count", len(players))

	league, err := store.CreateLeague("Tuesday Night League", &squash.ID)
	if err != nil {
		log.Fatalf("Failed to create league: %s", err)
	}

	place := "Downtown Courts"
	event, err := store.CreateEvent(&place, time.Now())
	if err != nil {
		log.Fatalf("Failed to create event: %s", err)
	}

	const numMatches = 50
	log.Info("Inserting demo matches...", "total", numMatches)
	startTime := time.Now()

	for i := 0; i < numMatches; i++ {
		a, b := rand.Intn(len(players)), rand.Intn(len(players))
		for b == a {
			b = rand.Intn(len(players))
		}
		winnerScore, loserScore := 3, rand.Intn(3)
		match := bracket.Match{
			Date:        time.Now().AddDate(0, 0, -rand.Intn(30)),
			Winners:     []bracket.Player{players[a]},
			Losers:      []bracket.Player{players[b]},
			WinnerScore: &winnerScore,
			LoserScore:  &loserScore,
			LeagueID:    &league.ID,
			EventID:     &event.ID,
		}
		if err := store.CreateMatch(&match); err != nil {
			log.Fatalf("Failed to record match: %s", err)
		}
	}

	log.Info("Seeding complete", "matches", numMatches, "duration", time.Since(startTime))
}
