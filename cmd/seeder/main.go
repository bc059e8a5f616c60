package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"chainstay/internal/adapters/observability"
	"chainstay/internal/app"
	"chainstay/internal/domain"
	"chainstay/internal/shared"
	mysqlrepo "chainstay/internal/storage/mysql"
)

// The seeder provisions the schema and loads a small realistic data set:
// chains and customers first, then one worker per hotel for its employees,
// rooms and bookings. The DSN needs multiStatements=true for the schema
// files.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	applyMigrations(db)

	repo := mysqlrepo.New(db)
	dir := app.NewDirectoryService(repo, nil)
	book := app.NewBookingService(repo, nil)

	for _, c := range seedChains {
		if err := dir.CreateChain(ctx, c); err != nil {
			log.Fatal().Err(err).Str("chain", c.ChainName).Msg("seed chain failed")
		}
	}
	for _, c := range seedCustomers {
		if err := dir.CreateCustomer(ctx, c); err != nil {
			log.Fatal().Err(err).Str("customer", c.CustomerID).Msg("seed customer failed")
		}
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range seedHotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedOneHotel(ctx, dir, book, h); err != nil {
				log.Warn().Str("hotel", h.hotel.Address).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("hotel", h.hotel.Address).Msg("seed ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func seedOneHotel(ctx context.Context, dir *app.DirectoryService, book *app.BookingService, h seedHotel) error {
	if err := dir.CreateHotel(ctx, h.hotel); err != nil {
		return err
	}

	// manager first, then link it; the employee row must exist before the
	// hotel can reference it
	mgr := h.manager
	mgr.HotelID = &h.hotel.Address
	if err := dir.CreateEmployee(ctx, mgr); err != nil {
		return err
	}
	if _, err := dir.UpdateHotel(ctx, h.hotel.Address, domain.HotelPatch{ManagerID: &mgr.SSN}); err != nil {
		return err
	}

	for _, e := range h.employees {
		e.HotelID = &h.hotel.Address
		if err := dir.CreateEmployee(ctx, e); err != nil {
			return err
		}
	}
	for _, rm := range h.rooms {
		rm.HotelAddress = h.hotel.Address
		if err := dir.CreateRoom(ctx, rm); err != nil {
			return err
		}
	}
	for _, b := range h.bookings {
		if _, err := book.CreateBooking(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func applyMigrations(db *sql.DB) {
	dirPath := os.Getenv("MIGRATIONS_DIR")
	if dirPath == "" {
		dirPath = "internal/storage/mysql/migrations"
	}
	ents, err := os.ReadDir(dirPath)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dirPath).Msg("read migrations dir failed")
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dirPath, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("read migration failed")
		}
		if _, err := db.Exec(string(b)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("apply migration failed")
		}
		log.Info().Str("file", f).Msg("migration applied")
	}
}
