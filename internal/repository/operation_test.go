package repository

import (
	"errors"
	"testing"

	"tracking-service/internal/model"
)

func seedOperation(t *testing.T, r *Repository, userID uint, jobNum, opNum, machine string) {
	t.Helper()
	op := &model.Operation{JobNumber: jobNum, OpNumber: opNum, Machine: machine}
	if err := r.CreateOperation(userID, op); err != nil {
		t.Fatalf("seed operation %s/%s: %v", jobNum, opNum, err)
	}
}

func TestGetOperation_TenantIsolation(t *testing.T) {
	r := openTestRepo(t)
	seedOperation(t, r, 7, "J100", "10", "L-01")

	op, err := r.GetOperation(7, "J100", "10")
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if op.Machine != "L-01" {
		t.Errorf("machine = %q, want L-01", op.Machine)
	}
	if _, err := r.GetOperation(8, "J100", "10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-tenant lookup err = %v, want ErrNotFound", err)
	}
}

func TestGetOperationsByJob(t *testing.T) {
	r := openTestRepo(t)
	seedOperation(t, r, 7, "J100", "10", "L-01")
	seedOperation(t, r, 7, "J100", "20", "M-01")
	seedOperation(t, r, 7, "J200", "10", "L-01")

	ops, err := r.GetOperationsByJob(7, "J100")
	if err != nil {
		t.Fatalf("list operations: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("got %d operations, want 2", len(ops))
	}
	if ops[0].OpNumber != "10" || ops[1].OpNumber != "20" {
		t.Errorf("order = %q, %q; want 10, 20", ops[0].OpNumber, ops[1].OpNumber)
	}
}

func TestGetOperationsByMachine(t *testing.T) {
	r := openTestRepo(t)
	seedOperation(t, r, 7, "J100", "10", "L-01")
	seedOperation(t, r, 7, "J100", "20", "M-01")
	seedOperation(t, r, 7, "J100", "30", "L-01")

	ops, err := r.GetOperationsByMachine(7, "J100", "L-01")
	if err != nil {
		t.Fatalf("list operations by machine: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("got %d operations, want 2", len(ops))
	}
	for _, op := range ops {
		if op.Machine != "L-01" {
			t.Errorf("operation %s on machine %q, want L-01", op.OpNumber, op.Machine)
		}
	}
}

func TestDeleteOperation(t *testing.T) {
	r := openTestRepo(t)
	seedOperation(t, r, 7, "J100", "10", "L-01")

	if err := r.DeleteOperation(8, "J100", "10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-tenant delete err = %v, want ErrNotFound", err)
	}
	if err := r.DeleteOperation(7, "J100", "10"); err != nil {
		t.Fatalf("delete operation: %v", err)
	}
	if err := r.DeleteOperation(7, "J100", "10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
