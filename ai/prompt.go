package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/retitle/config"
)

// dateLayout is the ISO date format substituted for {current_date}.
const dateLayout = "2006-01-02"

// BuildPrompt composes the provider prompt from the settings template
// fragments and the raw document text. Fragments are concatenated in fixed
// order: main, then the with_date fragment (with any {current_date}
// placeholder replaced by today in ISO format) or the no_date fragment, then
// pre_content, the text verbatim, and post_content. The text is never
// escaped or truncated.
//
// An empty main fragment is a configuration error; a titling request with no
// instructions is meaningless. Pure function, no side effects.
func BuildPrompt(settings *config.Settings, text string, today time.Time) (string, error) {
	if settings.Prompt.Main == "" {
		return "", fmt.Errorf("%w: prompt.main is not set", config.ErrConfig)
	}

	var b strings.Builder
	b.WriteString(settings.Prompt.Main)
	if settings.WithDate {
		b.WriteString(strings.ReplaceAll(settings.Prompt.WithDate, "{current_date}", today.Format(dateLayout)))
	} else {
		b.WriteString(settings.Prompt.NoDate)
	}
	b.WriteString(settings.Prompt.PreContent)
	b.WriteString(text)
	b.WriteString(settings.Prompt.PostContent)
	return b.String(), nil
}
