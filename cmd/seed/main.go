// seed populates the database with the unit activity calendar and a set of
// demo staff accounts for manual testing.
//
// Usage: go run ./cmd/seed
// Reads the same configuration as the API (.env / environment variables).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/infrastructure/postgres"
	"github.com/hoangnv/visitgate-api/pkg/config"
)

type staffSeed struct {
	username    string
	displayName string
	role        string
	unit        string
	parentUnit  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	scheduleRepo := postgres.NewScheduleRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)

	// Next-week calendar relative to today.
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}
	events := []*entity.ScheduleEvent{
		{ID: "seed-hl-01", Title: "Huấn luyện bắn súng bài 1", Date: day(1), Type: entity.ScheduleTypeTraining, Description: "Toàn đơn vị ra thao trường, không tiếp khách buổi sáng"},
		{ID: "seed-tc-01", Title: "Trực chiến tăng cường", Date: day(2), Type: entity.ScheduleTypeDuty, Description: "Các đại đội trực 100% quân số"},
		{ID: "seed-cm-01", Title: "Cấm trại toàn đơn vị", Date: day(3), Type: entity.ScheduleTypeRestricted, Description: "Không giải quyết thăm gặp trong ngày"},
		{ID: "seed-sk-01", Title: "Giao lưu văn nghệ", Date: day(5), Type: entity.ScheduleTypeEvent, Description: "Thân nhân có thể kết hợp thăm gặp buổi chiều"},
		{ID: "seed-hl-02", Title: "Hành quân dã ngoại", Date: day(6), Type: entity.ScheduleTypeTraining, Description: "Tiểu đoàn 1 vắng doanh trại cả ngày"},
	}

	var created, skipped int
	for _, ev := range events {
		err := scheduleRepo.Create(ev)
		if isUniqueViolation(err) {
			skipped++
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed schedule %s: %v\n", ev.ID, err)
			os.Exit(1)
		}
		created++
	}

	staff := []staffSeed{
		{username: "tieudoan1", displayName: "Chỉ huy Tiểu đoàn 1", role: entity.RoleOfficer, unit: "Tiểu đoàn 1", parentUnit: "Tiểu đoàn 1"},
		{username: "daidoi1", displayName: "Cán bộ Đại đội 1", role: entity.RoleOfficer, unit: "Đại đội 1 - Tiểu đoàn 1", parentUnit: "Tiểu đoàn 1"},
		{username: "bantm", displayName: "Trực ban Ban Tham mưu", role: entity.RoleOfficer, unit: "Ban Tham mưu - Cơ quan Trung đoàn", parentUnit: "Cơ quan Trung đoàn"},
		{username: "admin1", displayName: "Quản trị Tiểu đoàn 1", role: entity.RoleAdmin, unit: "Tiểu đoàn 1", parentUnit: "Tiểu đoàn 1"},
	}
	for _, s := range staff {
		hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
			os.Exit(1)
		}
		err = accountRepo.Create(&entity.Account{
			Username:     s.username,
			DisplayName:  s.displayName,
			Role:         s.role,
			Unit:         s.unit,
			ParentUnit:   s.parentUnit,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		})
		if err == domain.ErrDuplicateUsername {
			skipped++
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed account %s: %v\n", s.username, err)
			os.Exit(1)
		}
		created++
	}

	fmt.Printf("seed done: %d records created, %d already present\n", created, skipped)
}

// isUniqueViolation reports whether err wraps a unique constraint violation.
// Reruns of the seed are expected to hit existing rows.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
