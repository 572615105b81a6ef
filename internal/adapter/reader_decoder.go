package adapter

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
)

// readerDecoder adapts a line-oriented byte stream into the Decoder
// contract. Keyboard-wedge and serial barcode readers present decoded values
// as newline-terminated lines, which makes an io.Reader the natural capture
// source for them.
type readerDecoder struct {
	src io.Reader
}

// NewReaderDecoder returns a Decoder that emits one code per non-blank line
// read from src.
func NewReaderDecoder(src io.Reader) Decoder {
	return &readerDecoder{src: src}
}

// StartLiveDecode implements Decoder. Lines are delivered through onResult
// on a single goroutine, in read order. After the returned CancelFunc is
// called no further results are delivered, even if the underlying reader
// still produces data.
func (d *readerDecoder) StartLiveDecode(ctx context.Context, onResult func(code string)) (CancelFunc, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	go func() {
		sc := bufio.NewScanner(d.src)
		sc.Buffer(make([]byte, 0, 4096), 64*1024)

		for sc.Scan() {
			select {
			case <-streamCtx.Done():
				return
			default:
			}

			line := sc.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			onResult(line)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
	}, nil
}

// DecodeStatic implements Decoder. It returns the first non-blank line of
// the capture, or ErrCodeNotFound when there is none.
func (d *readerDecoder) DecodeStatic(data []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), 64*1024)

	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}

	return "", ErrCodeNotFound
}
