package tui

import (
	"context"
	"time"

	"transaction-analyzer/internal/dto"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"

	tea "github.com/charmbracelet/bubbletea"
)

// stateMsg carries a fresh controller snapshot.
type stateMsg struct {
	state models.DashboardState
}

// pollMsg fires when it is time to take the next snapshot.
type pollMsg struct{}

// actionDoneMsg reports a settled controller action.
type actionDoneMsg struct {
	action string
	err    error
}

// pollCmd schedules the next snapshot. Actions settle on controller
// goroutines, so the view catches up by polling rather than by being told.
func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func snapshotCmd(controller services.DashboardControllerInterface) tea.Cmd {
	return func() tea.Msg {
		return stateMsg{state: controller.State()}
	}
}

// actionCmd runs one controller action to completion off the update loop.
func actionCmd(action string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn()}
	}
}

func mountCmd(ctx context.Context, controller services.DashboardControllerInterface) tea.Cmd {
	return actionCmd(models.ActionFetch, func() error {
		return controller.Mount(ctx)
	})
}

// loadTabCmd loads a tab the model has already selected. If focus moved on
// before it runs, the controller leaves the tab alone.
func loadTabCmd(ctx context.Context, controller services.DashboardControllerInterface, tab models.Tab) tea.Cmd {
	return actionCmd(models.ActionSwitchTab, func() error {
		return controller.LoadTab(ctx, tab)
	})
}

func uploadCmd(ctx context.Context, controller services.DashboardControllerInterface, file dto.UploadFile) tea.Cmd {
	return actionCmd(models.ActionUpload, func() error {
		return controller.Upload(ctx, file)
	})
}

func analyzeCmd(ctx context.Context, controller services.DashboardControllerInterface, tab models.Tab) tea.Cmd {
	if tab == models.TabPattern {
		return actionCmd(models.ActionDetectPatterns, func() error {
			return controller.DetectPatterns(ctx)
		})
	}
	return actionCmd(models.ActionAnalyzeMerchants, func() error {
		return controller.AnalyzeMerchants(ctx)
	})
}

func deleteTransactionCmd(ctx context.Context, controller services.DashboardControllerInterface, id models.RecordID) tea.Cmd {
	return actionCmd(models.ActionDeleteTransaction, func() error {
		return controller.DeleteTransaction(ctx, id)
	})
}

func deleteAllCmd(ctx context.Context, controller services.DashboardControllerInterface) tea.Cmd {
	return actionCmd(models.ActionDeleteAll, func() error {
		return controller.DeleteAll(ctx)
	})
}
