package tui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/avoronin/scanledger/internal/service"
	"github.com/avoronin/scanledger/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenScan
	screenList
)

// flashDuration is how long a transient acceptance/rejection line stays on
// screen before it is cleared.
const flashDuration = 2 * time.Second

// appModel is the single root model of the client TUI. It keeps the active
// screen and routes key presses to the screen-specific update helpers.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen  screen
	menuIdx int

	scanInput textinput.Model
	flash     string
	errMsg    string

	entries      []models.LedgerEntry
	listIdx      int
	confirmClear bool
	syncing      bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	input := textinput.New()
	input.Placeholder = "штрихкод"
	input.CharLimit = 128

	return appModel{
		ctx:       ctx,
		services:  services,
		scanInput: input,
		buildInfo: buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every screen.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.services.SessionService.Stop()
			m.quitByUser = true
			return m, tea.Quit
		case "v":
			if m.screen == screenMenu {
				m.showBuildInfo = !m.showBuildInfo
				return m, nil
			}
		}

		if m.showBuildInfo {
			if key.String() == "esc" {
				m.showBuildInfo = false
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case clearFlashMsg:
		m.flash = ""
		return m, nil

	case syncDoneMsg:
		return m.onSyncDone(msg)

	case copiedMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = "буфер обмена недоступен: " + msg.err.Error()
		} else {
			m.flash = "журнал скопирован в буфер обмена"
		}
		return m, flashAfter()

	case qrSavedMsg:
		if msg.err != nil {
			m.errMsg = "QR не создан: " + msg.err.Error()
		} else {
			m.flash = "QR сохранён: " + msg.path
		}
		return m, flashAfter()

	case clearDoneMsg:
		m.confirmClear = false
		if msg.err != nil {
			m.errMsg = "журнал не очищен: " + msg.err.Error()
		} else {
			m.entries = nil
			m.listIdx = 0
			m.flash = "журнал очищен"
		}
		return m, flashAfter()
	}

	switch m.screen {
	case screenScan:
		return m.updateScan(msg)
	case screenList:
		return m.updateList(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.screen {
	case screenScan:
		return m.viewScan()
	case screenList:
		return m.viewList()
	default:
		return m.viewMenu()
	}
}

func (m appModel) onSyncDone(msg syncDoneMsg) (tea.Model, tea.Cmd) {
	m.syncing = false
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, service.ErrEmptyLedger):
			m.flash = "журнал пуст, синхронизировать нечего"
		case errors.Is(msg.err, service.ErrOffline):
			m.flash = "нет соединения с сервером"
		case errors.Is(msg.err, service.ErrSyncInFlight):
			m.flash = "синхронизация уже выполняется"
		default:
			m.errMsg = "синхронизация не удалась: " + msg.err.Error()
		}
	} else {
		m.flash = "синхронизировано записей: " + strconv.Itoa(msg.attempt.EntryCount)
		// перечитываем журнал: флаги Synced обновились
		m.entries = m.services.SessionService.Entries()
	}
	return m, flashAfter()
}

func flashAfter() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}
