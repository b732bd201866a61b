package note

// ActionType names a change to a note list.
type ActionType int

const (
	ActionSet ActionType = iota
	ActionDelete
	ActionBookmark
	ActionUnbookmark
	ActionUpdate
	ActionAdd
)

// Action describes one change. Set uses Notes; Add and Update use Note;
// Delete, Bookmark and Unbookmark match on Note.Path.
type Action struct {
	Type  ActionType
	Notes []Metadata
	Note  Metadata
}

// Reduce applies a to notes and returns a new list. The input slice and its
// records are never modified.
func Reduce(notes []Metadata, a Action) []Metadata {
	switch a.Type {
	case ActionSet:
		return cloneAll(a.Notes)

	case ActionDelete:
		out := make([]Metadata, 0, len(notes))
		for _, n := range notes {
			if n.Path != a.Note.Path {
				out = append(out, n.Clone())
			}
		}
		return out

	case ActionBookmark, ActionUnbookmark:
		flag := a.Type == ActionBookmark
		return mapNotes(notes, a.Note.Path, func(n Metadata) Metadata {
			n.Bookmarked = flag
			return n
		})

	case ActionUpdate:
		return mapNotes(notes, a.Note.Path, func(n Metadata) Metadata {
			updated := a.Note.Clone()
			updated.Bookmarked = n.Bookmarked
			return updated
		})

	case ActionAdd:
		out := make([]Metadata, 0, len(notes)+1)
		out = append(out, a.Note.Clone())
		for _, n := range notes {
			if n.Path != a.Note.Path {
				out = append(out, n.Clone())
			}
		}
		return out
	}

	return cloneAll(notes)
}

func mapNotes(notes []Metadata, path string, fn func(Metadata) Metadata) []Metadata {
	out := make([]Metadata, len(notes))
	for i, n := range notes {
		n = n.Clone()
		if n.Path == path {
			n = fn(n)
		}
		out[i] = n
	}
	return out
}

func cloneAll(notes []Metadata) []Metadata {
	out := make([]Metadata, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
