package repository

import (
	"errors"
	"testing"

	"tracking-service/internal/model"
)

func seedProduction(t *testing.T, r *Repository, userID uint, jobNum, opNum, machine, date, shift string, qty int) *model.Production {
	t.Helper()
	prod := &model.Production{
		JobNumber: jobNum,
		OpNumber:  opNum,
		Machine:   machine,
		MachType:  "Lathe",
		Date:      mustDate(t, date),
		Shift:     shift,
		Quantity:  qty,
	}
	if err := r.CreateProduction(userID, prod); err != nil {
		t.Fatalf("seed production: %v", err)
	}
	return prod
}

func TestGetProductionByID_TenantScoped(t *testing.T) {
	r := openTestRepo(t)
	prod := seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "1st", 40)

	got, err := r.GetProductionByID(7, prod.ID)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if got.Quantity != 40 {
		t.Errorf("quantity = %d, want 40", got.Quantity)
	}

	if _, err := r.GetProductionByID(8, prod.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-tenant lookup err = %v, want ErrNotFound", err)
	}
}

func TestGetProductionShifts_ExcludesFound(t *testing.T) {
	r := openTestRepo(t)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "1st", 40)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "2nd", 35)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "3rd", 30)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", model.ShiftFound, 12)

	shifts, err := r.GetProductionShifts(7, "2024-01-05", "J100", "10", "M1")
	if err != nil {
		t.Fatalf("get shifts: %v", err)
	}
	if len(shifts) != 3 {
		t.Fatalf("got %d shift rows, want 3", len(shifts))
	}
	want := []string{"1st", "2nd", "3rd"}
	for i, prod := range shifts {
		if prod.Shift != want[i] {
			t.Errorf("shift %d = %q, want %q", i, prod.Shift, want[i])
		}
		if prod.IsFound() {
			t.Errorf("reconciliation row leaked into shifts: id %d", prod.ID)
		}
	}

	found, err := r.GetProductionFound(7, "2024-01-05", "J100", "10", "M1")
	if err != nil {
		t.Fatalf("get found: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d found rows, want 1", len(found))
	}
	if !found[0].IsFound() || found[0].Quantity != 12 {
		t.Errorf("found row = %+v, want Found/12", found[0])
	}

	// Shifts and Found partition the drill-down set
	if len(shifts)+len(found) != 4 {
		t.Errorf("partition lost rows: %d + %d != 4", len(shifts), len(found))
	}
}

func TestGetProductionShifts_ScopedToKey(t *testing.T) {
	r := openTestRepo(t)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "1st", 40)
	seedProduction(t, r, 7, "J100", "10", "M2", "2024-01-05", "1st", 20) // other machine
	seedProduction(t, r, 7, "J100", "20", "M1", "2024-01-05", "1st", 15) // other op
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-06", "1st", 10) // other date
	seedProduction(t, r, 8, "J100", "10", "M1", "2024-01-05", "1st", 99) // other tenant

	shifts, err := r.GetProductionShifts(7, "2024-01-05", "J100", "10", "M1")
	if err != nil {
		t.Fatalf("get shifts: %v", err)
	}
	if len(shifts) != 1 || shifts[0].Quantity != 40 {
		t.Fatalf("shifts = %+v, want single qty-40 row", shifts)
	}
}

func TestGetProductionShifts_InvalidDate(t *testing.T) {
	r := openTestRepo(t)
	if _, err := r.GetProductionShifts(7, "not-a-date", "J100", "10", "M1"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
	if _, err := r.GetProductionFound(7, "not-a-date", "J100", "10", "M1"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestGetProductionSetByJobOpAndMachine_GroupsByShift(t *testing.T) {
	r := openTestRepo(t)
	// Interleave shifts and dates so insertion order proves nothing
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-06", "2nd", 1)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "1st", 2)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-06", "1st", 3)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "2nd", 4)

	prod, err := r.GetProductionSetByJobOpAndMachine(7, "J100", "10", "M1")
	if err != nil {
		t.Fatalf("get drill-down set: %v", err)
	}
	if len(prod) != 4 {
		t.Fatalf("got %d rows, want 4", len(prod))
	}
	// Shift groups first, ascending dates within each group
	wantQty := []int{2, 3, 4, 1}
	for i, row := range prod {
		if row.Quantity != wantQty[i] {
			t.Errorf("row %d quantity = %d, want %d", i, row.Quantity, wantQty[i])
		}
	}
}

func TestGetProductionSetByJob_MostRecentFirst(t *testing.T) {
	r := openTestRepo(t)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "1st", 1)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-07", "1st", 2)
	seedProduction(t, r, 7, "J100", "20", "M2", "2024-01-06", "1st", 3)
	seedProduction(t, r, 7, "J200", "10", "M1", "2024-01-08", "1st", 4)

	prod, err := r.GetProductionSetByJob(7, "J100")
	if err != nil {
		t.Fatalf("get production by job: %v", err)
	}
	wantQty := []int{2, 3, 1}
	if len(prod) != len(wantQty) {
		t.Fatalf("got %d rows, want %d", len(prod), len(wantQty))
	}
	for i, row := range prod {
		if row.Quantity != wantQty[i] {
			t.Errorf("row %d quantity = %d, want %d", i, row.Quantity, wantQty[i])
		}
	}
}

func TestGetProductionSetByDate(t *testing.T) {
	r := openTestRepo(t)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "1st", 1)
	seedProduction(t, r, 7, "J200", "10", "M2", "2024-01-05", "2nd", 2)
	seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-06", "1st", 3)

	prod, err := r.GetProductionSetByDate(7, "2024-01-05")
	if err != nil {
		t.Fatalf("get production by date: %v", err)
	}
	if len(prod) != 2 {
		t.Fatalf("got %d rows, want 2", len(prod))
	}

	if _, err := r.GetProductionSetByDate(7, "garbage"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestDeleteProduction(t *testing.T) {
	r := openTestRepo(t)
	prod := seedProduction(t, r, 7, "J100", "10", "M1", "2024-01-05", "1st", 40)

	// A different tenant cannot delete the row
	if err := r.DeleteProduction(8, prod.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-tenant delete err = %v, want ErrNotFound", err)
	}
	if _, err := r.GetProductionByID(7, prod.ID); err != nil {
		t.Fatalf("row vanished after denied delete: %v", err)
	}

	if err := r.DeleteProduction(7, prod.ID); err != nil {
		t.Fatalf("delete production: %v", err)
	}
	if _, err := r.GetProductionByID(7, prod.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound after delete", err)
	}
}
