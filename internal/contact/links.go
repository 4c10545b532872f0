package contact

import "regexp"

var (
	reLinkedIn = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w%.-]+`)
	reGitHub   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w.-]+`)
)

// Links holds social/profile URLs found in the document.
type Links struct {
	LinkedIn string
	GitHub   string
}

// ExtractLinks returns the first LinkedIn and GitHub profile URLs found.
func ExtractLinks(text string) Links {
	return Links{
		LinkedIn: reLinkedIn.FindString(text),
		GitHub:   reGitHub.FindString(text),
	}
}
