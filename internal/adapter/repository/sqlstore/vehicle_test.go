package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func day(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func TestVehicle_GetVariants(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewVehicleRepository(gdb)
	ctx := context.Background()

	active := seedVehicle(t, gdb, "A-1", true, nil)
	inactive := seedVehicle(t, gdb, "I-1", false, nil)

	if _, err := repo.GetActiveByExternalID(ctx, "A-1"); err != nil {
		t.Fatalf("GetActiveByExternalID active: %v", err)
	}
	if _, err := repo.GetActiveByExternalID(ctx, "I-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("inactive vehicle must not resolve as active, got %v", err)
	}
	got, err := repo.GetByExternalID(ctx, "I-1")
	if err != nil || got.ID != inactive.ID {
		t.Fatalf("GetByExternalID should include inactive: %+v, %v", got, err)
	}
	if _, err := repo.GetActiveByID(ctx, active.ID); err != nil {
		t.Fatalf("GetActiveByID: %v", err)
	}
	if len(got.Images) != 1 {
		t.Fatalf("images not persisted: %v", got.Images)
	}
}

func TestVehicle_ListActiveOrderAndCount(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewVehicleRepository(gdb)
	ctx := context.Background()

	noDate := seedVehicle(t, gdb, "V-NODATE", true, nil)
	older := seedVehicle(t, gdb, "V-OLD", true, nil)
	newer := seedVehicle(t, gdb, "V-NEW", true, nil)
	seedVehicle(t, gdb, "V-OFF", false, nil)
	gdb.Model(older).Update("event_date", *day("2025-01-01"))
	gdb.Model(newer).Update("event_date", *day("2025-02-01"))

	n, err := repo.CountActive(ctx)
	if err != nil || n != 3 {
		t.Fatalf("CountActive = %d, %v", n, err)
	}

	rows, err := repo.ListActive(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	want := []uint64{newer.ID, older.ID, noDate.ID}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("row %d = %s, want id %d", i, rows[i].ExternalID, id)
		}
	}

	page2, _ := repo.ListActive(ctx, 2, 2)
	if len(page2) != 1 || page2[0].ID != noDate.ID {
		t.Fatalf("page 2 = %+v", page2)
	}
}

func TestVehicle_MarkWon(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewVehicleRepository(gdb)
	ctx := context.Background()
	v := seedVehicle(t, gdb, "W-1", true, nil)

	for i := 0; i < 2; i++ {
		if err := repo.MarkWon(ctx, v.ID); err != nil {
			t.Fatalf("MarkWon #%d: %v", i, err)
		}
	}
	got, _ := repo.GetByExternalID(ctx, "W-1")
	if !got.HasWinningProposal || got.IsActive {
		t.Fatalf("after MarkWon: has_winning=%v is_active=%v", got.HasWinningProposal, got.IsActive)
	}
}

func TestVehicle_DeactivateExpired(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewVehicleRepository(gdb)
	ctx := context.Background()

	expired := seedVehicle(t, gdb, "D-OLD", true, day("2025-03-01"))
	seedVehicle(t, gdb, "D-TODAY", true, day("2025-03-02"))
	seedVehicle(t, gdb, "D-NOBATCH", true, nil)
	won := seedVehicle(t, gdb, "D-WON", true, day("2025-02-01"))
	if err := repo.MarkWon(ctx, won.ID); err != nil {
		t.Fatalf("MarkWon: %v", err)
	}

	out, err := repo.DeactivateExpired(ctx, *day("2025-03-02"))
	if err != nil {
		t.Fatalf("DeactivateExpired: %v", err)
	}
	if len(out) != 1 || out[0].ID != expired.ID {
		t.Fatalf("deactivated = %+v, want only D-OLD", out)
	}

	got, _ := repo.GetByExternalID(ctx, "D-OLD")
	if got.IsActive || got.DeactivatedAt == nil {
		t.Fatalf("D-OLD not deactivated: %+v", got)
	}
	for _, ext := range []string{"D-TODAY", "D-NOBATCH"} {
		if _, err := repo.GetActiveByExternalID(ctx, ext); err != nil {
			t.Fatalf("%s should stay active: %v", ext, err)
		}
	}

	again, err := repo.DeactivateExpired(ctx, *day("2025-03-02"))
	if err != nil || len(again) != 0 {
		t.Fatalf("second run = %+v, %v", again, err)
	}
}
