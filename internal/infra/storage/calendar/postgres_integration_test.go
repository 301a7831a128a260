package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	if os.Getenv("DOCKER_AVAILABLE") != "true" && os.Getenv("DOCKER_AVAILABLE") != "1" {
		t.Skip("docker not available")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "autosense",
			"POSTGRES_PASSWORD": "autosense",
			"POSTGRES_DB":       "autosense",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=autosense password=autosense dbname=autosense sslmode=disable",
		host, port.Port())
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Eventually(t, func() bool { return db.PingContext(ctx) == nil }, 10*time.Second, 200*time.Millisecond)
	return db
}

func TestPostgresStore_Integration(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	store := NewPostgresStore(db)
	require.NoError(t, store.EnsureSchema(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrStoreUnreadable)

	cal, err := scheduler.GenerateSlots(domain.DefaultCalendarConfig(), time.Now())
	require.NoError(t, err)
	_, err = scheduler.BookContiguous(cal, domain.BookingDetails{
		VehicleID:   "LC1234",
		VehicleType: domain.VehicleLCV,
		ServiceType: "Major Service",
		RiskLevel:   "Low",
	}, 0, 60)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, cal))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, cal.Len(), loaded.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.SlotBooked, loaded.Slots[i].Status)
		assert.Equal(t, "LC1234", loaded.Slots[i].VehicleID)
	}
	assert.Equal(t, domain.SlotFree, loaded.Slots[3].Status)

	// Повторное сохранение заменяет таблицу целиком
	smaller, err := scheduler.GenerateSlots(domain.CalendarConfig{
		HorizonDays: 1, FirstSlotHour: 9, LastSlotHour: 10, SlotDurationMinutes: 60, SlotCapacity: 5,
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, smaller))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}
