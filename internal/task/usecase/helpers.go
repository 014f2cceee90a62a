package usecase

import (
	"strings"
	"time"

	"maxitask/pkg/datemath"
)

// resolveCategory re-validates an externally-sourced category against the
// live set, substituting the active category on mismatch. Extraction output
// is never trusted here: the model can drift outside the declared enum.
func resolveCategory(candidate string, categories []string, active string) string {
	for _, c := range categories {
		if c == candidate {
			return candidate
		}
	}
	return active
}

// resolveLocalDate strips a trailing relative-date phrase ("tomorrow",
// "next monday", "in 3 days") from an utterance and resolves it against the
// parser's clock. Returns the remaining title and the date, or the text
// unchanged and an empty date when no phrase matches. At least one word is
// always left for the title.
func (uc *implUseCase) resolveLocalDate(text string) (string, string) {
	words := strings.Fields(text)
	for n := 3; n >= 1; n-- {
		if len(words) < n+1 {
			continue
		}
		phrase := strings.Join(words[len(words)-n:], " ")
		resolved, err := uc.dateMath.Parse(phrase, uc.dateMath.Now())
		if err != nil {
			continue
		}
		return strings.Join(words[:len(words)-n], " "), resolved.Format(datemath.DateFormat)
	}
	return text, ""
}

func validTime(hhmm string) bool {
	_, err := time.Parse("15:04", hhmm)
	return err == nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
