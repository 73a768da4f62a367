package manifest

// FolderSummary condenses one asset folder for display.
type FolderSummary struct {
	Folder string `json:"folder"`
	Count  int    `json:"count"`
	First  string `json:"first,omitempty"`
	Last   string `json:"last,omitempty"`
}

// Summarize returns one row per folder in manifest order.
func Summarize(m *Manifest) []FolderSummary {
	rows := make([]FolderSummary, 0, m.Len())
	for _, e := range m.Entries() {
		row := FolderSummary{Folder: e.Folder, Count: len(e.Files)}
		if len(e.Files) > 0 {
			row.First = e.Files[0]
			row.Last = e.Files[len(e.Files)-1]
		}
		rows = append(rows, row)
	}
	return rows
}
