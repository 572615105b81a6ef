package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/avoronin/scanledger/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmClear {
		switch {
		case key.Matches(keyMsg, keys.yes):
			return m, m.cmdClear()
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirmClear = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenMenu
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.listIdx > 0 {
			m.listIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.listIdx < len(m.entries)-1 {
			m.listIdx++
		}
	case key.Matches(keyMsg, keys.sync):
		if !m.syncing {
			m.syncing = true
			return m, m.cmdSync()
		}
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyTSV()
	case key.Matches(keyMsg, keys.qr):
		if len(m.entries) > 0 {
			return m, m.cmdQRLabel(m.entries[m.listIdx].Code)
		}
	case key.Matches(keyMsg, keys.clear):
		if len(m.entries) > 0 {
			m.confirmClear = true
		}
	}

	return m, nil
}

func (m appModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		attempt, err := m.services.SyncService.Sync(m.ctx)
		return syncDoneMsg{attempt: attempt, err: err}
	}
}

func (m appModel) cmdCopyTSV() tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.services.ExportService.CopyTSV()}
	}
}

func (m appModel) cmdQRLabel(code string) tea.Cmd {
	return func() tea.Msg {
		png, err := m.services.ExportService.QRLabel(code)
		if err != nil {
			return qrSavedMsg{err: err}
		}

		path := "qr-" + sanitizeFileName(code) + ".png"
		if err := os.WriteFile(path, png, 0o600); err != nil {
			return qrSavedMsg{err: err}
		}
		return qrSavedMsg{path: path}
	}
}

func (m appModel) cmdClear() tea.Cmd {
	return func() tea.Msg {
		return clearDoneMsg{err: m.services.SessionService.Clear(m.ctx)}
	}
}

func (m appModel) viewList() string {
	if m.confirmClear {
		return confirmModel{message: fmt.Sprintf("все записи журнала (%d)", len(m.entries))}.View()
	}

	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}
	if m.flash != "" {
		b.WriteString(flashStyle.Render(m.flash) + "\n\n")
	}
	if m.syncing {
		b.WriteString("Синхронизация...\n\n")
	}

	if attempt, ok := m.services.SyncService.LastAttempt(); ok {
		b.WriteString("Последняя синхронизация: " + renderAttempt(attempt) + "\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString("Журнал пуст\n")
	} else {
		b.WriteString(fmt.Sprintf("%-3s %-24s %6s %-8s %s\n", "", "Код", "Кол-во", "Синхр.", "Последний скан"))
		for i, entry := range m.entries {
			cursor := " "
			if i == m.listIdx {
				cursor = ">"
			}
			synced := "нет"
			if entry.Synced {
				synced = "да"
			}
			b.WriteString(fmt.Sprintf("%s %-24s %6d %-8s %s\n",
				cursor+"  ",
				fitText(entry.Code, 24),
				entry.Quantity,
				synced,
				entry.LastSeenAt.Format("02.01 15:04:05"),
			))
		}
	}

	return renderPage("ЖУРНАЛ", strings.TrimRight(b.String(), "\n"),
		"s: синхронизация │ c: копировать TSV │ r: QR │ d: очистить │ esc: меню")
}

func renderAttempt(attempt models.SyncAttempt) string {
	when := attempt.CompletedAt.Format("02.01 15:04:05")
	if attempt.Outcome == models.SyncSucceeded {
		return fmt.Sprintf("успех, записей: %d (%s)", attempt.EntryCount, when)
	}
	return "ошибка (" + when + ")"
}

func sanitizeFileName(code string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, code)
}
