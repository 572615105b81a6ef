package adapter

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectCodes запускает живое декодирование и собирает все коды до EOF
func collectCodes(t *testing.T, src io.Reader) []string {
	t.Helper()

	codes := make(chan string, 16)
	d := NewReaderDecoder(src)

	cancel, err := d.StartLiveDecode(context.Background(), func(code string) {
		codes <- code
	})
	require.NoError(t, err)
	defer cancel()

	var got []string
	for {
		select {
		case c := <-codes:
			got = append(got, c)
		case <-time.After(200 * time.Millisecond):
			return got
		}
	}
}

func TestReaderDecoder_EmitsOneCodePerLine(t *testing.T) {
	src := strings.NewReader("4601234567890\n2000000000015\n4601234567890\n")

	got := collectCodes(t, src)

	assert.Equal(t, []string{"4601234567890", "2000000000015", "4601234567890"}, got)
}

func TestReaderDecoder_SkipsBlankLines(t *testing.T) {
	src := strings.NewReader("\n   \nABC-1\n\nABC-2\n")

	got := collectCodes(t, src)

	assert.Equal(t, []string{"ABC-1", "ABC-2"}, got)
}

func TestReaderDecoder_CancelStopsDelivery(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	delivered := make(chan string, 16)
	d := NewReaderDecoder(pr)

	cancel, err := d.StartLiveDecode(context.Background(), func(code string) {
		delivered <- code
	})
	require.NoError(t, err)

	_, _ = pw.Write([]byte("before-cancel\n"))
	select {
	case c := <-delivered:
		assert.Equal(t, "before-cancel", c)
	case <-time.After(time.Second):
		t.Fatal("decode result never delivered")
	}

	cancel()
	_, _ = pw.Write([]byte("after-cancel\n"))

	select {
	case c := <-delivered:
		t.Fatalf("unexpected delivery after cancel: %q", c)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReaderDecoder_CancelIsIdempotent(t *testing.T) {
	d := NewReaderDecoder(strings.NewReader(""))

	cancel, err := d.StartLiveDecode(context.Background(), func(string) {})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		cancel()
		cancel()
	})
}

func TestDecodeStatic_FirstNonBlankLine(t *testing.T) {
	d := NewReaderDecoder(nil)

	code, err := d.DecodeStatic([]byte("\n\n  7290000000001  \nsecond\n"))

	require.NoError(t, err)
	assert.Equal(t, "7290000000001", code)
}

func TestDecodeStatic_NoCode(t *testing.T) {
	d := NewReaderDecoder(nil)

	_, err := d.DecodeStatic([]byte("   \n\n"))

	assert.ErrorIs(t, err, ErrCodeNotFound)
}
