package feed

import "encoding/json"

// InboundMessage is the generic envelope for records on the TV stream.
// The "t" field tells us the event kind; "d" is the payload we parse further.
type InboundMessage struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d"`
}

// summaryPayload is the wire shape of a game summary record.
type summaryPayload struct {
	ID          string        `json:"id"`
	Orientation string        `json:"orientation"`
	Players     []playerEntry `json:"players"`
	FEN         string        `json:"fen"`
}

// playerEntry is the nested player shape the feed sends; the decoder
// flattens it into PlayerInfo.
type playerEntry struct {
	Color string `json:"color"`
	User  struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		ID    string `json:"id"`
	} `json:"user"`
	Rating  int `json:"rating"`
	Seconds int `json:"seconds"`
}

// updatePayload is the wire shape of a position update record. The
// clocks are pointers so a record that omits them can be rejected.
type updatePayload struct {
	FEN string `json:"fen"`
	LM  string `json:"lm"`
	WC  *int   `json:"wc"`
	BC  *int   `json:"bc"`
}
