package session

// History keeps the most recent transcript entries of a session.
type History struct {
	entries []Entry
	maxSize int
}

// Entry is one line group of the transcript.
type Entry struct {
	Kind EntryKind
	Text string
}

type EntryKind int

const (
	PlayerEntry EntryKind = iota
	GameEntry
	GuidanceEntry
)

func NewHistory(maxSize int) *History {
	return &History{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
	}
}

func (h *History) AddPlayerInput(input string) {
	h.add(Entry{Kind: PlayerEntry, Text: "> " + input})
}

func (h *History) AddResponse(text string) {
	h.add(Entry{Kind: GameEntry, Text: text})
}

func (h *History) AddGuidance(text string) {
	h.add(Entry{Kind: GuidanceEntry, Text: text})
}

func (h *History) add(entry Entry) {
	h.entries = append(h.entries, entry)

	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
}

func (h *History) Entries() []Entry {
	result := make([]Entry, len(h.entries))
	copy(result, h.entries)
	return result
}
