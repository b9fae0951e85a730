package safe

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Write writes data to w as best effort. A failure is only logged.
func Write(w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.Default().Warn("Fail to write data", slog.Any("error", err))
	}
}
