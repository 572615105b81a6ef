package tui

import (
	"fmt"
	"strings"

	"github.com/avoronin/scanledger/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var menuItems = []string{
	"Одиночный режим (каждый скан — новая запись)",
	"Серийный режим (повторы суммируются)",
	"Журнал",
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(menuItems)-1 {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.quit):
		m.services.SessionService.Stop()
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		m.errMsg = ""
		switch m.menuIdx {
		case 0:
			return m.startSession(models.CaptureSingle)
		case 1:
			return m.startSession(models.CaptureSeries)
		default:
			m.entries = m.services.SessionService.Entries()
			m.listIdx = 0
			m.screen = screenList
			return m, nil
		}
	}

	return m, nil
}

func (m appModel) startSession(mode models.CaptureMode) (tea.Model, tea.Cmd) {
	if err := m.services.SessionService.Start(m.ctx, mode); err != nil {
		m.errMsg = "сессия не запущена: " + err.Error()
		return m, nil
	}

	m.scanInput = textinput.New()
	m.scanInput.Placeholder = "штрихкод"
	m.scanInput.CharLimit = 128
	m.scanInput.Focus()
	m.flash = ""
	m.screen = screenScan
	return m, textinput.Blink
}

func (m appModel) viewMenu() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}

	b.WriteString(fmt.Sprintf("Записей в журнале: %d\n\n", m.services.SessionService.Len()))

	for i, item := range menuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage("СКАНЕР", strings.TrimRight(b.String(), "\n"),
		"enter: выбрать │ ↑/↓: навигация │ v: версия │ q: выход")
}
