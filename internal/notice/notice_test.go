package notice_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/nourhanadel/pharma-admin-BE/internal/notice"
)

func TestPushAndList(t *testing.T) {
	center := notice.NewCenter(nil)

	center.Success("Order deleted successfully")
	center.Failure("Failed to update quantity")

	notices := center.List()
	if len(notices) != 2 {
		t.Fatalf("len = %d, want 2", len(notices))
	}
	if notices[0].Level != notice.LevelSuccess || notices[1].Level != notice.LevelError {
		t.Fatalf("levels = %s, %s", notices[0].Level, notices[1].Level)
	}
	if notices[1].Message != "Failed to update quantity" {
		t.Fatalf("message = %q", notices[1].Message)
	}
}

func TestOnNoticeHookFires(t *testing.T) {
	var seen []notice.Notice
	center := notice.NewCenter(func(n notice.Notice) {
		seen = append(seen, n)
	})

	pushed := center.Success("Marked all as read")

	if len(seen) != 1 {
		t.Fatalf("hook fired %d times, want 1", len(seen))
	}
	if seen[0].ID != pushed.ID {
		t.Fatalf("hook saw id %s, push returned %s", seen[0].ID, pushed.ID)
	}
}

func TestDismissDropsOnlyTargetNotice(t *testing.T) {
	center := notice.NewCenter(nil)

	keep := center.Success("first")
	drop := center.Failure("second")

	center.Dismiss(drop.ID)

	notices := center.List()
	if len(notices) != 1 || notices[0].ID != keep.ID {
		t.Fatalf("after dismiss: %+v", notices)
	}
}

func TestDismissUnknownIDIsNoOp(t *testing.T) {
	center := notice.NewCenter(nil)
	center.Success("only one")

	center.Dismiss(uuid.New())

	if got := len(center.List()); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
}

func TestCapacityEvictsOldestFirst(t *testing.T) {
	center := notice.NewCenter(nil)

	for i := 0; i < 60; i++ {
		center.Success(fmt.Sprintf("notice %d", i))
	}

	notices := center.List()
	if len(notices) != 50 {
		t.Fatalf("len = %d, want 50", len(notices))
	}
	if notices[0].Message != "notice 10" {
		t.Fatalf("oldest retained = %q, want notice 10", notices[0].Message)
	}
	if notices[len(notices)-1].Message != "notice 59" {
		t.Fatalf("newest retained = %q, want notice 59", notices[len(notices)-1].Message)
	}
}
