package notify

import (
	"fmt"

	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
)

var qualifiers = map[types.SecretState]string{
	types.SecretExpired:     "Secret is expired.",
	types.SecretExpiresSoon: "Secret expires soon.",
	types.SecretNotExpired:  "Secret is not expired.",
	types.SecretIgnored:     "Secret is ignored.",
}

// glyphs are only decoration for chat based channels
var glyphs = map[types.SecretState]string{
	types.SecretExpired:     ":red_circle:",
	types.SecretExpiresSoon: ":large_orange_circle:",
	types.SecretNotExpired:  ":large_green_circle:",
	types.SecretIgnored:     ":white_circle:",
}

// Render returns the single line message shared by all channels.
func Render(result *model.Classification, secret *model.Secret, repo *model.Repository) string {
	return fmt.Sprintf("[%s] secret=%s repository=%s days_left=%d days_overdue=%d %s",
		result.State,
		secret.Name,
		repo.FullName,
		result.DaysLeft,
		result.DaysOverdue,
		qualifiers[result.State],
	)
}

// Glyph returns a decorative emoji shortcode for the state
func Glyph(state types.SecretState) string {
	return glyphs[state]
}
