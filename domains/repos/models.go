// Package repos defines the raw repository artifacts consumed by the
// description synthesizer. All values are constructed by the fetch layer and
// treated as read-only afterwards.
package repos

// Owner is the repository owner summary.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// Info holds basic repository metadata. Optional fields are pointers so an
// absent value survives the trip through JSON unchanged.
type Info struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description *string  `json:"description"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Watchers    int      `json:"watchers"`
	Language    *string  `json:"language"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	License     *string  `json:"license"`
	Topics      []string `json:"topics"`
	Owner       Owner    `json:"owner"`
}

// FileStructure is a shallow tree of the repository: directory names map to
// nested FileStructure values, file names map to their repository path. The
// fetch layer truncates the tree at a fixed depth (2 by default). It is used
// only as an existence/shape signal, never as a full listing.
type FileStructure map[string]any

// LanguageStats maps language name to byte count as reported by GitHub.
type LanguageStats map[string]int64

// FetchFailedSentinel marks a CodeBundle entry whose content could not be
// retrieved. Analysis passes must treat such entries as absent.
const FetchFailedSentinel = "Could not retrieve file content"

// CodeBundle maps file path to file content. Two variants circulate: a small
// sample bundle (at most 3 files from the repository root) and a larger
// size-capped full snapshot, preferred whenever it is non-empty.
type CodeBundle map[string]string

// Retrievable reports whether the entry holds real content rather than the
// fetch-failure sentinel.
func (b CodeBundle) Retrievable(path string) bool {
	content, ok := b[path]
	return ok && content != FetchFailedSentinel
}

// HasContent reports whether at least one entry in the bundle is retrievable.
func (b CodeBundle) HasContent() bool {
	for path := range b {
		if b.Retrievable(path) {
			return true
		}
	}
	return false
}

// Contributor is one entry from the repository contributor listing.
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
}
