package notify

import (
	"context"
	"io"

	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/safe"
)

// Annotation writes workflow command lines that a CI log viewer turns into annotations.
type Annotation struct {
	w io.Writer
}

var _ interfaces.Notifier = (*Annotation)(nil)

func NewAnnotation(w io.Writer) *Annotation {
	return &Annotation{w: w}
}

func annotationPrefix(state types.SecretState) string {
	switch state {
	case types.SecretExpired:
		return "::error::"
	case types.SecretExpiresSoon:
		return "::warn::"
	case types.SecretIgnored:
		return "::info::"
	default:
		return ""
	}
}

// Notify never fails. A write error is only logged.
func (x *Annotation) Notify(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
	line := annotationPrefix(result.State) + Render(result, secret, repo) + "\n"
	safe.Write(x.w, []byte(line))
	return nil
}
