package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avoronin/scanledger/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateScan(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.services.SessionService.Stop()
			m.screen = screenMenu
			m.flash = ""
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			raw := m.scanInput.Value()
			m.scanInput.SetValue("")

			entry, err := m.services.SessionService.HandleScan(raw, time.Now())
			switch {
			case err == nil:
				m.flash = fmt.Sprintf("принято: %s ×%d", entry.Code, entry.Quantity)
			case errors.Is(err, service.ErrScanRejected):
				m.flash = "повтор отклонён"
			default:
				m.flash = "код отклонён"
			}
			return m, flashAfter()
		}
	}

	var cmd tea.Cmd
	m.scanInput, cmd = m.scanInput.Update(msg)
	return m, cmd
}

func (m appModel) viewScan() string {
	var b strings.Builder

	b.WriteString("Режим: " + m.services.SessionService.Mode().String() + "\n")
	b.WriteString(fmt.Sprintf("Записей: %d\n\n", m.services.SessionService.Len()))
	b.WriteString(m.scanInput.View())
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString("\n" + flashStyle.Render(m.flash) + "\n")
	}

	return renderPage("СКАНИРОВАНИЕ", strings.TrimRight(b.String(), "\n"),
		"enter: принять код │ esc: завершить сессию")
}
