package middleware

import (
	"context"
	"errors"
	"testing"
)

type rosterStub struct {
	admins map[int64]bool
	err    error
}

func (r rosterStub) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.admins[userID], nil
}

func TestAllowedRoster(t *testing.T) {
	opts := AdminOptions{Check: rosterStub{admins: map[int64]bool{10: true}}}

	if !opts.Allowed(context.Background(), 10) {
		t.Error("roster admin must be allowed")
	}
	if opts.Allowed(context.Background(), 11) {
		t.Error("non-admin must be denied")
	}
}

func TestAllowedFallbackOnStoreError(t *testing.T) {
	opts := AdminOptions{
		Check:      rosterStub{err: errors.New("connection refused")},
		FallbackID: 42,
	}

	if !opts.Allowed(context.Background(), 42) {
		t.Error("fallback admin must stay allowed when the roster is unreachable")
	}
	if opts.Allowed(context.Background(), 43) {
		t.Error("other users must be denied when the roster is unreachable")
	}
}

func TestAllowedFallbackAugmentsRoster(t *testing.T) {
	opts := AdminOptions{
		Check:      rosterStub{admins: map[int64]bool{}},
		FallbackID: 42,
	}

	if !opts.Allowed(context.Background(), 42) {
		t.Error("configured fallback admin must be allowed even when not on the roster")
	}
}

func TestAllowedNoCheckerNoFallback(t *testing.T) {
	var opts AdminOptions
	if opts.Allowed(context.Background(), 1) {
		t.Error("zero options must deny everyone")
	}
}
