package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/avoronin/scanledger/internal/logger"
	qrcode "github.com/skip2/go-qrcode"
)

const qrLabelSize = 256

// clientExportService renders the ledger for hand-off to spreadsheets,
// inventory systems and label printers.
type clientExportService struct {
	session ClientSessionService
	logger  *logger.Logger
}

// NewClientExportService constructs a [ClientExportService] reading from the
// session service's ledger.
func NewClientExportService(session ClientSessionService, logger *logger.Logger) ClientExportService {
	return &clientExportService{
		session: session,
		logger:  logger,
	}
}

// WriteTSV writes one line per ledger entry in most-recently-touched-first
// order: code, quantity and last-seen timestamp in RFC 3339, separated by
// tabs. No header row, so the output can be piped or pasted directly.
func (s *clientExportService) WriteTSV(w io.Writer) error {
	entries := s.session.Entries()
	if len(entries) == 0 {
		return ErrEmptyExport
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", entry.Code, entry.Quantity, entry.LastSeenAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("write tsv line: %w", err)
		}
	}

	return nil
}

// TSV returns the tab-separated rendering as a string.
func (s *clientExportService) TSV() (string, error) {
	var sb strings.Builder
	if err := s.WriteTSV(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// CopyTSV places the TSV rendering on the system clipboard.
func (s *clientExportService) CopyTSV() error {
	tsv, err := s.TSV()
	if err != nil {
		return err
	}

	if err = clipboard.WriteAll(tsv); err != nil {
		s.logger.Err(err).
			Str("func", "clientExportService.CopyTSV").
			Msg("clipboard write failed")
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	s.logger.Info().
		Str("func", "clientExportService.CopyTSV").
		Int("entries", s.session.Len()).
		Msg("ledger copied to clipboard")
	return nil
}

// QRLabel renders code as a PNG QR image for printing a replacement label.
func (s *clientExportService) QRLabel(code string) ([]byte, error) {
	if code == "" {
		return nil, ErrInvalidDataProvided
	}

	png, err := qrcode.Encode(code, qrcode.Medium, qrLabelSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr label: %w", err)
	}

	return png, nil
}
