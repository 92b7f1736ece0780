package usecase

import (
	"context"
	"testing"
)

func TestStartUsecaseSpan_WithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByCompetition", competitionAttr("PL"))
	defer span.End()

	if got != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.IsRecording() {
		t.Fatalf("expected a no-op span without a parent")
	}
}

func TestEntityAttr_Key(t *testing.T) {
	if got := entityAttr("team", "57"); string(got.Key) != "football.team_id" || got.Value.AsString() != "57" {
		t.Fatalf("unexpected attribute %v=%v", got.Key, got.Value.AsString())
	}
	if got := competitionAttr("2021"); string(got.Key) != "football.competition_id" {
		t.Fatalf("unexpected attribute key %v", got.Key)
	}
}
