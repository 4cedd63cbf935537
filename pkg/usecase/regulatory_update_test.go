package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
	"github.com/regtrack/regtrack/pkg/repository/memory"
	"github.com/regtrack/regtrack/pkg/usecase"
)

func TestRegulatoryUpdateUseCase_Transition(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	created, err := uc.Update.Create(ctx, &model.RegulatoryUpdate{
		Title: "EU AI Act enforcement guidance",
	})
	gt.NoError(t, err).Required()
	gt.V(t, created.Status).Equal(types.UpdateStatusNew)

	// NEW -> UNDER_REVIEW -> ACTIONED is the happy path
	got, err := uc.Update.Transition(ctx, created.ID, types.UpdateStatusUnderReview)
	gt.NoError(t, err).Required()
	gt.V(t, got.Status).Equal(types.UpdateStatusUnderReview)

	got, err = uc.Update.Transition(ctx, created.ID, types.UpdateStatusActioned)
	gt.NoError(t, err).Required()
	gt.V(t, got.Status).Equal(types.UpdateStatusActioned)

	// ACTIONED is terminal
	_, err = uc.Update.Transition(ctx, created.ID, types.UpdateStatusUnderReview)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, usecase.ErrInvalidTransition)).True()
}

func TestRegulatoryUpdateUseCase_TransitionRules(t *testing.T) {
	ctx := context.Background()

	t.Run("new cannot jump straight to actioned", func(t *testing.T) {
		uc := usecase.New(memory.New())
		created, err := uc.Update.Create(ctx, &model.RegulatoryUpdate{Title: "t"})
		gt.NoError(t, err).Required()

		_, err = uc.Update.Transition(ctx, created.ID, types.UpdateStatusActioned)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, usecase.ErrInvalidTransition)).True()
	})

	t.Run("dismissed can be reopened for review", func(t *testing.T) {
		uc := usecase.New(memory.New())
		created, err := uc.Update.Create(ctx, &model.RegulatoryUpdate{Title: "t"})
		gt.NoError(t, err).Required()

		_, err = uc.Update.Transition(ctx, created.ID, types.UpdateStatusDismissed)
		gt.NoError(t, err).Required()

		got, err := uc.Update.Transition(ctx, created.ID, types.UpdateStatusUnderReview)
		gt.NoError(t, err).Required()
		gt.V(t, got.Status).Equal(types.UpdateStatusUnderReview)
	})

	t.Run("transition to current status is a no-op", func(t *testing.T) {
		uc := usecase.New(memory.New())
		created, err := uc.Update.Create(ctx, &model.RegulatoryUpdate{Title: "t"})
		gt.NoError(t, err).Required()

		got, err := uc.Update.Transition(ctx, created.ID, types.UpdateStatusNew)
		gt.NoError(t, err).Required()
		gt.V(t, got.Status).Equal(types.UpdateStatusNew)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		created, err := uc.Update.Create(ctx, &model.RegulatoryUpdate{Title: "t"})
		gt.NoError(t, err).Required()

		_, err = uc.Update.Transition(ctx, created.ID, "SHELVED")
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()
	})
}

func TestRegulatoryUpdateUseCase_UpdatePreservesStatus(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	created, err := uc.Update.Create(ctx, &model.RegulatoryUpdate{Title: "original"})
	gt.NoError(t, err).Required()

	_, err = uc.Update.Transition(ctx, created.ID, types.UpdateStatusUnderReview)
	gt.NoError(t, err).Required()

	// A content edit carrying a stale status must not change the workflow state
	created.Title = "revised"
	created.Status = types.UpdateStatusNew
	got, err := uc.Update.Update(ctx, created)
	gt.NoError(t, err).Required()
	gt.V(t, got.Title).Equal("revised")
	gt.V(t, got.Status).Equal(types.UpdateStatusUnderReview)
}
