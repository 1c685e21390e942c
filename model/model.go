package model

// ContentEntry is one node returned by the contents API. DownloadURL is only
// set for file entries; directories carry nil.
type ContentEntry struct {
	Path        string  `json:"path"`
	Type        string  `json:"type"`
	DownloadURL *string `json:"download_url"`
	SHA         string  `json:"sha,omitempty"`
	Size        int64   `json:"size,omitempty"`
}

const (
	EntryTypeFile = "file"
	EntryTypeDir  = "dir"
)

// IsDir reports whether the entry names a directory.
func (e ContentEntry) IsDir() bool {
	return e.Type == EntryTypeDir
}

// RepoURLComponents holds parsed GitHub URL components
type RepoURLComponents struct {
	Owner      string
	Repository string
	Ref        string
	Dir        string
	FilePath   string
	IsFile     bool
}

// Sandbox is the reshaped response of the sandbox management API.
type Sandbox struct {
	ID        string `json:"id"`
	Template  string `json:"template"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
