package adapter

import "context"

// noopDecoder is the Decoder used when no scanner device is configured or
// the configured node cannot be opened. Live decode delivers nothing, so the
// session runs on manual entry alone.
type noopDecoder struct{}

// NewNoopDecoder returns a Decoder that never produces a code.
func NewNoopDecoder() Decoder {
	return noopDecoder{}
}

// StartLiveDecode implements Decoder. No goroutine is started and onResult
// is never called.
func (noopDecoder) StartLiveDecode(_ context.Context, _ func(code string)) (CancelFunc, error) {
	return func() {}, nil
}

// DecodeStatic implements Decoder. It always reports ErrCodeNotFound.
func (noopDecoder) DecodeStatic(_ []byte) (string, error) {
	return "", ErrCodeNotFound
}
