// Package tui implements the terminal interface of the scan client: capture
// mode selection, manual scan entry, the ledger view and sync controls.
package tui

import (
	"context"
	"errors"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/service"
	"github.com/avoronin/scanledger/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the whole client session: mode selection, scan capture, ledger
// review and sync. It blocks until the user quits.
func (t *TUI) Run(ctx context.Context, buildInfo models.AppBuildInfo) error {
	model := newAppModel(ctx, t.services, buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
